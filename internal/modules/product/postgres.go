package product

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type postgresRepo struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL product repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepo{db: db}
}

func (r *postgresRepo) Create(ctx context.Context, p *Product) error {
	components, err := json.Marshal(p.Components)
	if err != nil {
		return fmt.Errorf("marshal components: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO products
		  (id, user_id, title, labor_minutes, labor_rate_cents_per_hour, selling_price_cents, components)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		p.ID, p.UserID, p.Title, p.LaborMinutes, p.LaborRateCentsPerHour, p.SellingPriceCents, components)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func scanProduct(scan func(...interface{}) error) (*Product, error) {
	p := &Product{}
	var components []byte
	err := scan(&p.ID, &p.UserID, &p.Title, &p.LaborMinutes, &p.LaborRateCentsPerHour,
		&p.SellingPriceCents, &components, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(components, &p.Components); err != nil {
		return nil, fmt.Errorf("unmarshal components: %w", err)
	}
	if p.Components == nil {
		p.Components = []Component{}
	}
	return p, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*Product, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, title, labor_minutes, labor_rate_cents_per_hour, selling_price_cents, components, created_at, updated_at
		FROM products
		WHERE id = $1 AND user_id = $2`, id, ownerID)

	p, err := scanProduct(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query product: %w", err)
	}
	return p, nil
}

func (r *postgresRepo) List(ctx context.Context, ownerID uuid.UUID, filter ListFilter) ([]*Product, int, error) {
	where := `WHERE user_id = $1`
	args := []interface{}{ownerID}
	if filter.Query != "" {
		where += ` AND title ILIKE '%' || $2 || '%'`
		args = append(args, filter.Query)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT id, user_id, title, labor_minutes, labor_rate_cents_per_hour, selling_price_cents, components, created_at, updated_at
		FROM products %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := make([]*Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate products: %w", err)
	}

	return products, total, nil
}

func (r *postgresRepo) Update(ctx context.Context, p *Product) error {
	components, err := json.Marshal(p.Components)
	if err != nil {
		return fmt.Errorf("marshal components: %w", err)
	}

	result, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET title = $1,
		    labor_minutes = $2,
		    labor_rate_cents_per_hour = $3,
		    selling_price_cents = $4,
		    components = $5,
		    updated_at = NOW()
		WHERE id = $6 AND user_id = $7`,
		p.Title, p.LaborMinutes, p.LaborRateCentsPerHour, p.SellingPriceCents, components, p.ID, p.UserID)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update product rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete product rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
