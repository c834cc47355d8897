package models

import "github.com/shopspring/decimal"

// Product is a live catalog product or variation as the cart sees it
type Product struct {
	ID       int64           `json:"id"`
	ParentID int64           `json:"parentId,omitempty"` // set for variations
	Name     string          `json:"name"`
	SKU      string          `json:"sku"`
	Price    decimal.Decimal `json:"price"`
	Weight   decimal.Decimal `json:"weight"`
	IsActive bool            `json:"isActive"`
}
