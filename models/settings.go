package models

// Settings field types
const (
	FieldTypeCheckbox = "checkbox"
	FieldTypeText     = "text"
)

// SettingsField describes one admin settings field
type SettingsField struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Desc    string `json:"desc"`
	Type    string `json:"type"`
	DescTip string `json:"descTip,omitempty"`
	Value   string `json:"value"`
}

// SettingsResponse represents the admin settings page payload
type SettingsResponse struct {
	Fields []SettingsField `json:"fields"`
}

// ProductPanel represents the helium section of the product edit screen
type ProductPanel struct {
	ProductID         int64  `json:"productId"`
	IsAddable         string `json:"isAddable"` // "yes" or "no"
	Cost              string `json:"cost"`
	CostPlaceholder   string `json:"costPlaceholder"`
	Weight            string `json:"weight"`
	WeightPlaceholder string `json:"weightPlaceholder"`
}

// OptInView is the view model for the product page opt-in control
type OptInView struct {
	ProductID    int64  `json:"productId"`
	Message      string `json:"message"`
	CurrentValue int    `json:"currentValue"`
	PriceText    string `json:"priceText"`
	Label        string `json:"label"`
	HTML         string `json:"html,omitempty"`
}
