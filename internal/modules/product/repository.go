package product

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound reports a product that does not exist or belongs to another
// user; the two cases are deliberately indistinguishable.
var ErrNotFound = errors.New("product not found")

// ListFilter narrows and pages a product listing.
type ListFilter struct {
	Query string
	Page  int
	Limit int
}

// Repository defines the interface for product data storage. Every operation
// is scoped to the owning user.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*Product, error)
	List(ctx context.Context, ownerID uuid.UUID, filter ListFilter) ([]*Product, int, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
