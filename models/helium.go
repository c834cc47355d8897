package models

import "github.com/shopspring/decimal"

// Settings keys for the global helium addon options
const (
	OptionEnabled = "product_helium_addon_enabled"
	OptionCost    = "product_helium_addon_cost"
	OptionWeight  = "product_helium_addon_weight"
	OptionMessage = "product_helium_addon_message"
)

// Product meta keys for per-product overrides
const (
	MetaIsAddable = "_is_helium_addable"
	MetaCost      = "_helium_addon_cost"
	MetaWeight    = "_helium_addon_weight"
)

// PricePlaceholder is replaced with the rendered price text in the prompt message
const PricePlaceholder = "{price}"

// GlobalConfig holds the shop-wide helium addon defaults.
// It is read once per request and never mutated while the request runs.
type GlobalConfig struct {
	EnabledByDefault      bool            `json:"enabledByDefault"`
	DefaultCost           decimal.Decimal `json:"defaultCost"`
	DefaultWeight         decimal.Decimal `json:"defaultWeight"`
	PromptMessageTemplate string          `json:"promptMessageTemplate"`
}

// Addable is the per-product tri-state opt-in switch
type Addable int

const (
	AddableUnset Addable = iota
	AddableYes
	AddableNo
)

// ParseAddable maps the stored meta value to the tri-state.
// Only "yes" enables the product; any other non-empty value counts as "no".
func ParseAddable(v string) Addable {
	switch v {
	case "":
		return AddableUnset
	case "yes":
		return AddableYes
	default:
		return AddableNo
	}
}

// String returns the stored meta representation
func (a Addable) String() string {
	switch a {
	case AddableYes:
		return "yes"
	case AddableNo:
		return "no"
	default:
		return ""
	}
}

// ProductAddonConfig is the raw per-product override set as persisted in product meta.
// Empty strings mean "unset".
type ProductAddonConfig struct {
	ProductID      int64   `json:"productId"`
	IsAddable      Addable `json:"isAddable"`
	CostOverride   string  `json:"costOverride"`
	WeightOverride string  `json:"weightOverride"`
}

// Resolution is the effective addon configuration for one product
type Resolution struct {
	Addable bool            `json:"addable"`
	Cost    decimal.Decimal `json:"cost"`
	Weight  decimal.Decimal `json:"weight"`
}
