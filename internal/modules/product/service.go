package product

import (
	"context"

	"github.com/craftcost/craftcost-backend/internal/money"
)

// Service defines product business logic. Every operation acts on behalf of
// the authenticated owner passed explicitly as ownerID; there is no ambient
// request state.
type Service interface {
	CreateProduct(ctx context.Context, ownerID string, req ProductRequest) (*View, error)
	GetProduct(ctx context.Context, ownerID, id string) (*View, error)
	ListProducts(ctx context.Context, ownerID string, filter ListFilter) (*Page, error)
	UpdateProduct(ctx context.Context, ownerID, id string, req UpdateProductRequest) (*View, error)
	DeleteProduct(ctx context.Context, ownerID, id string) error
}

// ComponentRequest is one component as submitted by a client. The pack price
// arrives as raw money text and is normalized to cents during validation.
type ComponentRequest struct {
	Title              string          `json:"title"`
	VendorURL          string          `json:"vendorUrl"`
	UnitName           string          `json:"unitName"`
	UnitQtyPerPack     float64         `json:"unitQtyPerPack"`
	UnitPrice          money.RawAmount `json:"unitPrice"`
	UsageQtyPerProduct float64         `json:"usageQtyPerProduct"`
}

// ProductRequest holds the data for creating a product.
type ProductRequest struct {
	Title            string             `json:"title"`
	LaborMinutes     int64              `json:"laborMinutes"`
	LaborRatePerHour money.RawAmount    `json:"laborRatePerHour"`
	SellingPrice     money.RawAmount    `json:"sellingPrice"`
	Components       []ComponentRequest `json:"components"`
}

// UpdateProductRequest holds a partial update; only supplied fields change.
type UpdateProductRequest struct {
	Title            *string             `json:"title"`
	LaborMinutes     *int64              `json:"laborMinutes"`
	LaborRatePerHour money.RawAmount     `json:"laborRatePerHour"`
	SellingPrice     money.RawAmount     `json:"sellingPrice"`
	Components       *[]ComponentRequest `json:"components"`
}

// Page is one page of a product listing.
type Page struct {
	Items []View `json:"items"`
	Total int    `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}
