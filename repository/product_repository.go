package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"product-helium-addon/logx"
	"product-helium-addon/models"
)

// ErrProductNotFound is returned when a product does not exist or is inactive
var ErrProductNotFound = errors.New("product not found or inactive")

// ProductRepository handles database operations for products and variations
type ProductRepository struct {
	conn *sql.DB
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(conn *sql.DB) *ProductRepository {
	return &ProductRepository{conn: conn}
}

// Ensure ProductRepository implements ProductRepositoryInterface
var _ ProductRepositoryInterface = (*ProductRepository)(nil)

// GetProduct loads an active product or variation by id
func (r *ProductRepository) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	query := `
		SELECT id, parent_id, name, sku, price, weight, is_active
		FROM products
		WHERE id = $1 AND is_active = TRUE
	`

	var p models.Product
	err := connOrDefault(r.conn).QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.ParentID,
		&p.Name,
		&p.SKU,
		&p.Price,
		&p.Weight,
		&p.IsActive,
	)
	if errors.Is(err, sql.ErrNoRows) {
		logx.Debug().Int64("product_id", id).Msg("❌ GetProduct: product not found")
		return nil, fmt.Errorf("product %d: %w", id, ErrProductNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return &p, nil
}
