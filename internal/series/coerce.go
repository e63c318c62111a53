package series

import (
	"math"
	"strconv"
	"strings"
)

// Sentinel tokens some stations emit instead of a reading.
const (
	tokenError   = "ERROR"
	tokenOffline = "OFFLINE"
)

// CoerceNumber converts a raw feed cell into a numeric value, or nil for a
// missing reading. Empty cells and the ERROR/OFFLINE sentinels are
// missing; anything else has every character that is not a digit, '.' or
// '-' stripped before parsing. Coercion never fails loudly: a cell that
// still does not parse, or parses to a non-finite value, is missing.
func CoerceNumber(raw string) *float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == tokenError || trimmed == tokenOffline {
		return nil
	}

	v, err := strconv.ParseFloat(stripNonNumeric(trimmed), 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

// stripNonNumeric keeps only digits, '.' and '-', so unit suffixes like
// "12.3 µg" or decorations like "~45%" coerce cleanly.
func stripNonNumeric(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
