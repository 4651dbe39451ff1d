package parser

import (
	"math"
	"regexp"
	"strconv"
)

// Everything that is not a digit, a decimal point, or a minus sign.
var nonAmountChars = regexp.MustCompile(`[^0-9.\-]`)

// NormalizeAmount converts a loosely formatted currency token like
// "$1,234.50" into a float64. Currency symbols, grouping commas, and any
// other stray characters are stripped before parsing.
//
// This is a total function: empty input, unparseable leftovers, and
// non-finite results all normalize to 0.
func NormalizeAmount(raw string) float64 {
	cleaned := nonAmountChars.ReplaceAllString(raw, "")
	if cleaned == "" {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
