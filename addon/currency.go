package addon

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"product-helium-addon/logx"
)

// Converter converts an amount between two currencies.
// Implementations return the amount unchanged when they cannot convert.
type Converter interface {
	Convert(amount decimal.Decimal, from, to string) decimal.Decimal
}

// IdentityConverter is used when no conversion rates are configured
type IdentityConverter struct{}

// Convert returns amount unchanged
func (IdentityConverter) Convert(amount decimal.Decimal, _, _ string) decimal.Decimal {
	return amount
}

// RateTable converts through the shop base currency using fixed rates.
// rates[c] is how many units of c buy one unit of the base currency.
type RateTable struct {
	base  string
	rates map[string]decimal.Decimal
}

// NewConverter returns the identity converter when rates is empty, or a RateTable
// parsed from rates ("EUR:0.92,COP:4100").
func NewConverter(base, rates string) (Converter, error) {
	if strings.TrimSpace(rates) == "" {
		return IdentityConverter{}, nil
	}
	return ParseRates(base, rates)
}

// ParseRates parses a comma-separated CODE:RATE list
func ParseRates(base, list string) (*RateTable, error) {
	base = strings.ToUpper(strings.TrimSpace(base))
	if base == "" {
		return nil, fmt.Errorf("base currency is required")
	}

	t := &RateTable{base: base, rates: map[string]decimal.Decimal{base: decimal.NewFromInt(1)}}
	for _, pair := range strings.Split(list, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		code, rate, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("invalid currency rate %q, expected CODE:RATE", pair)
		}
		code = strings.ToUpper(strings.TrimSpace(code))
		r, err := decimal.NewFromString(strings.TrimSpace(rate))
		if err != nil {
			return nil, fmt.Errorf("invalid rate for %s: %w", code, err)
		}
		if !r.IsPositive() {
			return nil, fmt.Errorf("rate for %s must be greater than 0", code)
		}
		t.rates[code] = r
	}
	return t, nil
}

// Convert converts amount from one currency to another, rounding to cents.
// Unknown currencies leave the amount unchanged.
func (t *RateTable) Convert(amount decimal.Decimal, from, to string) decimal.Decimal {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)
	if from == "" {
		from = t.base
	}
	if to == "" {
		to = t.base
	}
	if from == to {
		return amount
	}

	fromRate, okFrom := t.rates[from]
	toRate, okTo := t.rates[to]
	if !okFrom || !okTo {
		logx.Warn().Str("from", from).Str("to", to).Msg("⚠️  Convert: no rate configured, amount left unconverted")
		return amount
	}
	return amount.Div(fromRate).Mul(toRate).Round(2)
}
