package utils

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// IsTruthyFlag reports whether a submitted form value counts as set:
// anything except "", "0" and "false" (case-insensitive) after trimming.
func IsTruthyFlag(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" || v == "0" {
		return false
	}
	return !strings.EqualFold(v, "false")
}

// AbsInt parses the leading integer of v and returns its absolute value.
// Non-numeric input yields 0, so "on" or "yes" are not counted. Out-of-range input
// clamps to math.MaxInt64.
func AbsInt(v string) int64 {
	v = strings.TrimSpace(v)
	end := 0
	for end < len(v) {
		c := v[end]
		if (c >= '0' && c <= '9') || (end == 0 && (c == '-' || c == '+')) {
			end++
			continue
		}
		break
	}
	n, err := strconv.ParseInt(v[:end], 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	if n == math.MinInt64 {
		return math.MaxInt64
	}
	if n < 0 {
		return -n
	}
	return n
}

// IsEnabledOption parses a stored checkbox option ("yes"/"no", "" after install)
func IsEnabledOption(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes", "1", "true", "on":
		return true
	default:
		return false
	}
}
