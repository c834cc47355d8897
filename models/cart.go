package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// CartItem is the live pricing object behind a cart line.
// The cart owns it; the addon only rewrites Price and Weight.
type CartItem struct {
	ProductID int64           `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Weight    decimal.Decimal `json:"weight"`
}

// HeliumAddon is the addon sub-structure carried by a cart line
type HeliumAddon struct {
	Added bool `json:"heliumAdded"`
}

// CartItemData is the metadata attached to a line when it is first added to the cart
type CartItemData struct {
	Helium *HeliumAddon `json:"helium,omitempty"`
}

// HeliumAdded reports whether the metadata carries the opt-in flag
func (d CartItemData) HeliumAdded() bool {
	return d.Helium != nil && d.Helium.Added
}

// CartLine represents one entry in a shopping cart
type CartLine struct {
	Key         string       `json:"key"`
	ProductID   int64        `json:"productId"`
	VariationID int64        `json:"variationId,omitempty"`
	Quantity    int          `json:"quantity"`
	Data        *CartItem    `json:"data"`
	Helium      *HeliumAddon `json:"helium,omitempty"`
	ItemData    []ItemDatum  `json:"itemData,omitempty"`
}

// HeliumAdded reports whether the shopper opted in for this line
func (l *CartLine) HeliumAdded() bool {
	return l != nil && l.Helium != nil && l.Helium.Added
}

// LookupID returns the id used to load the underlying product: the variation when set
func (l *CartLine) LookupID() int64 {
	if l.VariationID != 0 {
		return l.VariationID
	}
	return l.ProductID
}

// LineTotal returns price * quantity for the line
func (l *CartLine) LineTotal() decimal.Decimal {
	if l.Data == nil {
		return decimal.Zero
	}
	return l.Data.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// ItemDatum is one display-only name/value pair shown under a cart line
type ItemDatum struct {
	Name    string `json:"name"`
	Value   string `json:"value"`
	Display string `json:"display"`
}

// SessionValues is what the cart session persists per line
type SessionValues struct {
	Key         string `json:"key"`
	ProductID   int64  `json:"product_id"`
	VariationID int64  `json:"variation_id,omitempty"`
	Quantity    int    `json:"quantity"`
	HeliumAdd   bool   `json:"helium_add,omitempty"`
}

// Cart is the response shape for a loaded cart
type Cart struct {
	SessionID   string          `json:"sessionId"`
	Currency    string          `json:"currency"`
	Lines       []CartLine      `json:"lines"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	TotalWeight decimal.Decimal `json:"totalWeight"`
}

// AddToCartRequest represents the add-to-cart form submission
// Example: {"product_id": 12, "variation_id": 0, "quantity": 1, "helium_add": "1"}
type AddToCartRequest struct {
	ProductID   int64     `json:"product_id"`
	VariationID int64     `json:"variation_id"`
	Quantity    int       `json:"quantity"`
	HeliumAdd   FlagValue `json:"helium_add"`
}

// FlagValue is a checkbox value as submitted by a form or a JSON client.
// Strings are kept as sent; booleans and numbers become "1" when set and "" otherwise.
type FlagValue string

func (f *FlagValue) UnmarshalJSON(b []byte) error {
	raw := bytes.TrimSpace(b)
	switch {
	case bytes.Equal(raw, []byte("null")), bytes.Equal(raw, []byte("false")):
		*f = ""
	case bytes.Equal(raw, []byte("true")):
		*f = "1"
	case len(raw) > 0 && raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		*f = FlagValue(s)
	default:
		n, err := decimal.NewFromString(string(raw))
		if err != nil {
			return fmt.Errorf("flag value %s: %w", raw, err)
		}
		*f = ""
		if !n.IsZero() {
			*f = "1"
		}
	}
	return nil
}
