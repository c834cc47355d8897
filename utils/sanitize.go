package utils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// CleanText strips markup, collapses whitespace and trims a single-line form value
func CleanText(v string) string {
	v = tagPattern.ReplaceAllString(v, "")
	v = whitespacePattern.ReplaceAllString(v, " ")
	return strings.TrimSpace(v)
}

// SanitizeDecimal cleans a numeric form value: comma decimal separators become periods
// and anything other than digits, '.' and a leading '-' is dropped. Empty stays empty.
func SanitizeDecimal(v string) string {
	v = strings.ReplaceAll(CleanText(v), ",", ".")

	var b strings.Builder
	b.Grow(len(v))
	for i, c := range v {
		switch {
		case c >= '0' && c <= '9', c == '.':
			b.WriteRune(c)
		case c == '-' && i == 0:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// ParseDecimal parses a stored decimal string; ok is false for empty or malformed input
func ParseDecimal(v string) (decimal.Decimal, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// DecimalOrZero parses v, returning zero when it is empty or malformed
func DecimalOrZero(v string) decimal.Decimal {
	d, _ := ParseDecimal(v)
	return d
}
