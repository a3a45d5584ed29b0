package input

import (
	"math"
	"regexp"
	"strings"

	"github.com/spf13/cast"
)

// numericPrefix matches the leading decimal number of a field, so "12abc"
// reads as 12 and "0x10" as 0.
var numericPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseNumber converts raw text to a number using its leading numeric part.
// Empty, malformed and non-finite input yields fallback.
func ParseNumber(text string, fallback float64) float64 {
	prefix := numericPrefix.FindString(strings.TrimSpace(text))
	if prefix == "" {
		return fallback
	}
	n, err := cast.ToFloat64E(prefix)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return fallback
	}
	return n
}

// ParseInt is ParseNumber truncated toward zero, for month and year fields.
func ParseInt(text string, fallback int) int {
	return int(ParseNumber(text, float64(fallback)))
}
