package product

import (
	"time"

	"github.com/google/uuid"

	"github.com/craftcost/craftcost-backend/internal/costing"
)

// Component is a purchased input of a product. Components have no identity
// of their own: the whole list is validated and replaced as a unit on every
// write.
type Component struct {
	Title              string  `json:"title"`
	VendorURL          string  `json:"vendorUrl,omitempty"`
	UnitName           string  `json:"unitName"`
	UnitQtyPerPack     float64 `json:"unitQtyPerPack"`
	UnitPriceCents     int64   `json:"unitPriceCents"`
	UsageQtyPerProduct float64 `json:"usageQtyPerProduct"`
}

// Product holds the stored fields only. Cost figures are derived on read,
// never persisted, so they can not go stale.
type Product struct {
	ID                    uuid.UUID   `json:"id"`
	UserID                uuid.UUID   `json:"userId"`
	Title                 string      `json:"title"`
	LaborMinutes          int64       `json:"laborMinutes"`
	LaborRateCentsPerHour int64       `json:"laborRateCentsPerHour"`
	SellingPriceCents     *int64      `json:"sellingPriceCents,omitempty"`
	Components            []Component `json:"components"`
	CreatedAt             time.Time   `json:"createdAt"`
	UpdatedAt             time.Time   `json:"updatedAt"`
}

// ComponentView is a component plus its allocated cost per finished product.
type ComponentView struct {
	Component
	UnitCostPerProduct int64 `json:"unitCostPerProduct"`
}

// View is the read model handed to clients: stored fields plus the cost
// breakdown recomputed from them.
type View struct {
	ID                    uuid.UUID       `json:"id"`
	UserID                uuid.UUID       `json:"userId"`
	Title                 string          `json:"title"`
	LaborMinutes          int64           `json:"laborMinutes"`
	LaborRateCentsPerHour int64           `json:"laborRateCentsPerHour"`
	SellingPriceCents     *int64          `json:"sellingPriceCents,omitempty"`
	Components            []ComponentView `json:"components"`
	MaterialsCostCents    int64           `json:"materialsCostCents"`
	LaborCostCents        int64           `json:"laborCostCents"`
	TotalCostCents        int64           `json:"totalCostCents"`
	ProfitAmountCents     *int64          `json:"profitAmountCents,omitempty"`
	ProfitMarginPercent   *float64        `json:"profitMarginPercent,omitempty"`
	CreatedAt             time.Time       `json:"createdAt"`
	UpdatedAt             time.Time       `json:"updatedAt"`
}

// WithCosts derives the full read model for p.
func (p *Product) WithCosts() View {
	in := costing.Input{
		LaborMinutes:          p.LaborMinutes,
		LaborRateCentsPerHour: p.LaborRateCentsPerHour,
		SellingPriceCents:     p.SellingPriceCents,
		Components:            make([]costing.Component, 0, len(p.Components)),
	}
	for _, c := range p.Components {
		in.Components = append(in.Components, costing.Component{
			UnitPriceCents:     c.UnitPriceCents,
			UnitQtyPerPack:     c.UnitQtyPerPack,
			UsageQtyPerProduct: c.UsageQtyPerProduct,
		})
	}

	b := costing.Compute(in)

	components := make([]ComponentView, 0, len(p.Components))
	for i, c := range p.Components {
		components = append(components, ComponentView{
			Component:          c,
			UnitCostPerProduct: b.ComponentCosts[i],
		})
	}

	return View{
		ID:                    p.ID,
		UserID:                p.UserID,
		Title:                 p.Title,
		LaborMinutes:          p.LaborMinutes,
		LaborRateCentsPerHour: p.LaborRateCentsPerHour,
		SellingPriceCents:     p.SellingPriceCents,
		Components:            components,
		MaterialsCostCents:    b.MaterialsCostCents,
		LaborCostCents:        b.LaborCostCents,
		TotalCostCents:        b.TotalCostCents,
		ProfitAmountCents:     b.ProfitAmountCents,
		ProfitMarginPercent:   b.ProfitMarginPercent,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}
