package service

// Scope carries the per-request shopper settings every storefront call needs
type Scope struct {
	SessionID string
	Currency  string // active display currency, empty for the shop base currency
	Lang      string // Accept-Language value
}
