package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order represents an order created from a cart
type Order struct {
	ID        uuid.UUID       `json:"id"`
	SessionID string          `json:"sessionId"`
	Currency  string          `json:"currency"`
	Total     decimal.Decimal `json:"total"`
	Weight    decimal.Decimal `json:"weight"`
	Lines     []OrderLine     `json:"lines"`
	CreatedAt time.Time       `json:"createdAt"`
}

// OrderLine is one finalized line of an order
type OrderLine struct {
	ID          int64                 `json:"id"`
	OrderID     uuid.UUID             `json:"orderId"`
	ProductID   int64                 `json:"productId"`
	VariationID int64                 `json:"variationId,omitempty"`
	Name        string                `json:"name"`
	Quantity    int                   `json:"quantity"`
	UnitPrice   decimal.Decimal       `json:"unitPrice"`
	LineTotal   decimal.Decimal       `json:"lineTotal"`
	Weight      decimal.Decimal       `json:"weight"`
	Meta        []OrderLineAnnotation `json:"meta,omitempty"`
}

// OrderLineAnnotation is a display-only key/value written once onto an order line
type OrderLineAnnotation struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
