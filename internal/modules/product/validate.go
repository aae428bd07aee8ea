package product

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const (
	maxTitleLen    = 200
	maxUnitNameLen = 20
)

// ErrInvalidQuantity reports a quantity field that is zero or negative.
// Quantities act as divisors in cost allocation, so the write boundary
// rejects them here and the aggregator never sees one.
var ErrInvalidQuantity = errors.New("must be greater than zero")

// ValidationError ties a rejection to the offending input field so the
// caller can surface it ("components[2].unitPrice: invalid money format").
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }

func invalid(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}

func validateTitle(field, raw string, maxLen int) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", invalid(field, errors.New("is required"))
	}
	if len(title) > maxLen {
		return "", invalid(field, fmt.Errorf("must be at most %d characters", maxLen))
	}
	return title, nil
}

func validateVendorURL(field, raw string) (string, error) {
	vendorURL := strings.TrimSpace(raw)
	if vendorURL == "" {
		return "", nil
	}
	u, err := url.Parse(vendorURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", invalid(field, errors.New("must be an http(s) URL"))
	}
	return vendorURL, nil
}

func buildComponent(idx int, req ComponentRequest) (Component, error) {
	field := fmt.Sprintf("components[%d]", idx)

	title, err := validateTitle(field+".title", req.Title, maxTitleLen)
	if err != nil {
		return Component{}, err
	}
	vendorURL, err := validateVendorURL(field+".vendorUrl", req.VendorURL)
	if err != nil {
		return Component{}, err
	}
	unitName, err := validateTitle(field+".unitName", req.UnitName, maxUnitNameLen)
	if err != nil {
		return Component{}, err
	}
	if req.UnitQtyPerPack <= 0 {
		return Component{}, invalid(field+".unitQtyPerPack", ErrInvalidQuantity)
	}
	if req.UsageQtyPerProduct <= 0 {
		return Component{}, invalid(field+".usageQtyPerProduct", ErrInvalidQuantity)
	}

	unitPriceCents, err := req.UnitPrice.Cents()
	if err != nil {
		return Component{}, invalid(field+".unitPrice", err)
	}

	return Component{
		Title:              title,
		VendorURL:          vendorURL,
		UnitName:           unitName,
		UnitQtyPerPack:     req.UnitQtyPerPack,
		UnitPriceCents:     unitPriceCents,
		UsageQtyPerProduct: req.UsageQtyPerProduct,
	}, nil
}

func buildComponents(reqs []ComponentRequest) ([]Component, error) {
	components := make([]Component, 0, len(reqs))
	for i, req := range reqs {
		c, err := buildComponent(i, req)
		if err != nil {
			return nil, err
		}
		components = append(components, c)
	}
	return components, nil
}

// apply validates req and writes the normalized raw fields onto p. All money
// fields pass through the money package exactly once, here.
func apply(p *Product, req ProductRequest) error {
	title, err := validateTitle("title", req.Title, maxTitleLen)
	if err != nil {
		return err
	}
	if req.LaborMinutes < 0 {
		return invalid("laborMinutes", errors.New("must be zero or greater"))
	}

	laborRateCents, err := req.LaborRatePerHour.Cents()
	if err != nil {
		return invalid("laborRatePerHour", err)
	}

	var sellingPriceCents *int64
	if req.SellingPrice.IsSet() {
		cents, err := req.SellingPrice.Cents()
		if err != nil {
			return invalid("sellingPrice", err)
		}
		sellingPriceCents = &cents
	}

	components, err := buildComponents(req.Components)
	if err != nil {
		return err
	}

	p.Title = title
	p.LaborMinutes = req.LaborMinutes
	p.LaborRateCentsPerHour = laborRateCents
	p.SellingPriceCents = sellingPriceCents
	p.Components = components
	return nil
}

// applyPartial validates the supplied fields of req and writes them onto p,
// leaving the rest untouched. A supplied component list replaces the stored
// one whole.
func applyPartial(p *Product, req UpdateProductRequest) error {
	if req.Title != nil {
		title, err := validateTitle("title", *req.Title, maxTitleLen)
		if err != nil {
			return err
		}
		p.Title = title
	}
	if req.LaborMinutes != nil {
		if *req.LaborMinutes < 0 {
			return invalid("laborMinutes", errors.New("must be zero or greater"))
		}
		p.LaborMinutes = *req.LaborMinutes
	}
	if req.LaborRatePerHour.IsSet() {
		cents, err := req.LaborRatePerHour.Cents()
		if err != nil {
			return invalid("laborRatePerHour", err)
		}
		p.LaborRateCentsPerHour = cents
	}
	if req.SellingPrice.IsSet() {
		cents, err := req.SellingPrice.Cents()
		if err != nil {
			return invalid("sellingPrice", err)
		}
		p.SellingPriceCents = &cents
	}
	if req.Components != nil {
		components, err := buildComponents(*req.Components)
		if err != nil {
			return err
		}
		p.Components = components
	}
	return nil
}
