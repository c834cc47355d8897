package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"product-helium-addon/logx"
)

// SettingsRepository handles the shop_options table for one site
type SettingsRepository struct {
	conn   *sql.DB
	siteID int64
}

// NewSettingsRepository creates a SettingsRepository scoped to siteID.
// A nil conn uses the shared db.DB connection.
func NewSettingsRepository(conn *sql.DB, siteID int64) *SettingsRepository {
	return &SettingsRepository{conn: conn, siteID: siteID}
}

// Ensure SettingsRepository implements SettingsRepositoryInterface
var _ SettingsRepositoryInterface = (*SettingsRepository)(nil)

// ForSite returns a repository over the same connection scoped to another site
func (r *SettingsRepository) ForSite(siteID int64) SettingsRepositoryInterface {
	return &SettingsRepository{conn: r.conn, siteID: siteID}
}

// GetOption reads an option. ok is false when the option does not exist.
func (r *SettingsRepository) GetOption(ctx context.Context, name string) (string, bool, error) {
	query := `SELECT option_value FROM shop_options WHERE site_id = $1 AND option_name = $2`

	var value string
	err := connOrDefault(r.conn).QueryRowContext(ctx, query, r.siteID, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get option %s: %w", name, err)
	}
	return value, true, nil
}

// AddOption inserts an option only when it does not exist yet.
// It reports whether a row was inserted.
func (r *SettingsRepository) AddOption(ctx context.Context, name, value string) (bool, error) {
	query := `
		INSERT INTO shop_options (site_id, option_name, option_value)
		VALUES ($1, $2, $3)
		ON CONFLICT (site_id, option_name) DO NOTHING
	`
	res, err := connOrDefault(r.conn).ExecContext(ctx, query, r.siteID, name, value)
	if err != nil {
		return false, fmt.Errorf("failed to add option %s: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to add option %s: %w", name, err)
	}
	return n > 0, nil
}

// SetOption inserts or replaces an option value
func (r *SettingsRepository) SetOption(ctx context.Context, name, value string) error {
	query := `
		INSERT INTO shop_options (site_id, option_name, option_value)
		VALUES ($1, $2, $3)
		ON CONFLICT (site_id, option_name)
		DO UPDATE SET option_value = EXCLUDED.option_value, updated_at = NOW()
	`
	if _, err := connOrDefault(r.conn).ExecContext(ctx, query, r.siteID, name, value); err != nil {
		return fmt.Errorf("failed to set option %s: %w", name, err)
	}
	logx.Debug().Int64("site_id", r.siteID).Str("option", name).Msg("💾 SetOption: option stored")
	return nil
}

// DeleteOption removes an option. Deleting a missing option is not an error.
func (r *SettingsRepository) DeleteOption(ctx context.Context, name string) error {
	query := `DELETE FROM shop_options WHERE site_id = $1 AND option_name = $2`
	if _, err := connOrDefault(r.conn).ExecContext(ctx, query, r.siteID, name); err != nil {
		return fmt.Errorf("failed to delete option %s: %w", name, err)
	}
	return nil
}

// ListSites returns the ids of every registered site, ordered by id
func (r *SettingsRepository) ListSites(ctx context.Context) ([]int64, error) {
	rows, err := connOrDefault(r.conn).QueryContext(ctx, `SELECT id FROM shop_sites ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan site: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sites: %w", err)
	}
	return ids, nil
}
