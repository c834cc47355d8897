package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// currencySymbols maps ISO codes to the symbol printed before the amount
var currencySymbols = map[string]string{
	"USD": "$",
	"COP": "$",
	"MXN": "$",
	"CAD": "$",
	"AUD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
}

// CurrencySymbol returns the display symbol for an ISO currency code.
// Unknown codes are printed as the code followed by a space.
func CurrencySymbol(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if s, ok := currencySymbols[code]; ok {
		return s
	}
	if code == "" {
		return "$"
	}
	return code + " "
}

// FormatMoney formats an amount like "$1,234.50": two decimals, comma thousands separator.
func FormatMoney(amount decimal.Decimal, currency string) string {
	neg := amount.IsNegative()
	if neg {
		amount = amount.Neg()
	}

	fixed := amount.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	// Pre-allocate: digits + separators + symbol + fraction
	b.Grow(len(intPart) + len(intPart)/3 + len(frac) + 6)
	if neg {
		b.WriteString("-")
	}
	b.WriteString(CurrencySymbol(currency))

	// Insert separators from the left.
	rem := len(intPart) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(intPart[:rem])
	for i := rem; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}
	b.WriteByte('.')
	b.WriteString(frac)

	return b.String()
}
