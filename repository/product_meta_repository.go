package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ProductMetaRepository handles the product_meta table
type ProductMetaRepository struct {
	conn *sql.DB
}

// NewProductMetaRepository creates a new ProductMetaRepository
func NewProductMetaRepository(conn *sql.DB) *ProductMetaRepository {
	return &ProductMetaRepository{conn: conn}
}

// Ensure ProductMetaRepository implements ProductMetaRepositoryInterface
var _ ProductMetaRepositoryInterface = (*ProductMetaRepository)(nil)

// GetMeta reads a meta value. Missing keys read as "".
func (r *ProductMetaRepository) GetMeta(ctx context.Context, productID int64, key string) (string, error) {
	query := `SELECT meta_value FROM product_meta WHERE product_id = $1 AND meta_key = $2`

	var value string
	err := connOrDefault(r.conn).QueryRowContext(ctx, query, productID, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get meta %s for product %d: %w", key, productID, err)
	}
	return value, nil
}

// SetMeta inserts or replaces a meta value
func (r *ProductMetaRepository) SetMeta(ctx context.Context, productID int64, key, value string) error {
	query := `
		INSERT INTO product_meta (product_id, meta_key, meta_value)
		VALUES ($1, $2, $3)
		ON CONFLICT (product_id, meta_key)
		DO UPDATE SET meta_value = EXCLUDED.meta_value
	`
	if _, err := connOrDefault(r.conn).ExecContext(ctx, query, productID, key, value); err != nil {
		return fmt.Errorf("failed to set meta %s for product %d: %w", key, productID, err)
	}
	return nil
}
