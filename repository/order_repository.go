package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"product-helium-addon/logx"
	"product-helium-addon/models"
)

// OrderRepository handles database operations for orders
type OrderRepository struct {
	conn *sql.DB
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(conn *sql.DB) *OrderRepository {
	return &OrderRepository{conn: conn}
}

// Ensure OrderRepository implements OrderRepositoryInterface
var _ OrderRepositoryInterface = (*OrderRepository)(nil)

// Create inserts the order and all of its lines in one transaction.
// The order id is generated when unset; line ids come back from the database.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	if len(order.Lines) == 0 {
		return nil, fmt.Errorf("order must have at least one line")
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}

	logx.Info().Str("order_id", order.ID.String()).Int("lines", len(order.Lines)).Msg("📦 Create: creating order")

	tx, err := connOrDefault(r.conn).BeginTx(ctx, nil)
	if err != nil {
		logx.Error().Err(err).Msg("❌ Create: error starting transaction")
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	queryOrder := `
		INSERT INTO orders (id, session_id, currency, total, weight)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	err = tx.QueryRowContext(ctx, queryOrder, order.ID, order.SessionID, order.Currency, order.Total, order.Weight).
		Scan(&order.CreatedAt)
	if err != nil {
		logx.Error().Err(err).Msg("❌ Create: error inserting order")
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	queryLine := `
		INSERT INTO order_lines (order_id, product_id, variation_id, name, qty, unit_price, line_total, weight)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	for i := range order.Lines {
		line := &order.Lines[i]
		line.OrderID = order.ID
		err = tx.QueryRowContext(ctx, queryLine,
			order.ID,
			line.ProductID,
			line.VariationID,
			line.Name,
			line.Quantity,
			line.UnitPrice,
			line.LineTotal,
			line.Weight,
		).Scan(&line.ID)
		if err != nil {
			logx.Error().Err(err).Int64("product_id", line.ProductID).Msg("❌ Create: error inserting order line")
			return nil, fmt.Errorf("failed to insert order line for product %d: %w", line.ProductID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		logx.Error().Err(err).Msg("❌ Create: error committing transaction")
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	logx.Info().Str("order_id", order.ID.String()).Str("total", order.Total.String()).Msg("✅ Create: order created")
	return order, nil
}

// AddOrderItemMeta appends a display key/value to an order line
func (r *OrderRepository) AddOrderItemMeta(ctx context.Context, orderLineID int64, key, value string) error {
	query := `INSERT INTO order_item_meta (order_line_id, meta_key, meta_value) VALUES ($1, $2, $3)`
	if _, err := connOrDefault(r.conn).ExecContext(ctx, query, orderLineID, key, value); err != nil {
		return fmt.Errorf("failed to add meta %s to order line %d: %w", key, orderLineID, err)
	}
	return nil
}
