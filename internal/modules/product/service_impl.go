package product

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

type service struct {
	repo Repository
}

// NewService creates a new product service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateProduct(ctx context.Context, ownerID string, req ProductRequest) (*View, error) {
	owner, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, fmt.Errorf("parse owner id: %w", err)
	}

	p := &Product{ID: uuid.New(), UserID: owner}
	if err := apply(p, req); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	created, err := s.repo.GetByID(ctx, owner, p.ID)
	if err != nil {
		return nil, err
	}
	view := created.WithCosts()
	return &view, nil
}

func (s *service) GetProduct(ctx context.Context, ownerID, id string) (*View, error) {
	owner, productID, err := parseIDs(ownerID, id)
	if err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(ctx, owner, productID)
	if err != nil {
		return nil, err
	}
	view := p.WithCosts()
	return &view, nil
}

func (s *service) ListProducts(ctx context.Context, ownerID string, filter ListFilter) (*Page, error) {
	owner, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, fmt.Errorf("parse owner id: %w", err)
	}

	if filter.Page < 1 {
		filter.Page = defaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = defaultLimit
	}
	if filter.Limit > maxLimit {
		filter.Limit = maxLimit
	}

	products, total, err := s.repo.List(ctx, owner, filter)
	if err != nil {
		return nil, err
	}

	items := make([]View, 0, len(products))
	for _, p := range products {
		items = append(items, p.WithCosts())
	}

	return &Page{Items: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *service) UpdateProduct(ctx context.Context, ownerID, id string, req UpdateProductRequest) (*View, error) {
	owner, productID, err := parseIDs(ownerID, id)
	if err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(ctx, owner, productID)
	if err != nil {
		return nil, err
	}
	if err := applyPartial(p, req); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, owner, productID)
	if err != nil {
		return nil, err
	}
	view := updated.WithCosts()
	return &view, nil
}

func (s *service) DeleteProduct(ctx context.Context, ownerID, id string) error {
	owner, productID, err := parseIDs(ownerID, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, owner, productID)
}

func parseIDs(ownerID, id string) (uuid.UUID, uuid.UUID, error) {
	owner, err := uuid.Parse(ownerID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("parse owner id: %w", err)
	}
	productID, err := uuid.Parse(id)
	if err != nil {
		// Malformed ids behave like absent products.
		return uuid.Nil, uuid.Nil, ErrNotFound
	}
	return owner, productID, nil
}
