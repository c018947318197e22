package engine

import (
	"math"
	"strconv"
)

// defaultPrecision is the display precision for non-integral results:
// values are rounded to this many decimal places and trailing zeros are
// stripped, so integral results print without a trailing ".0".
const defaultPrecision = 12

// formatNumber renders a numeric result for display.
func formatNumber(v float64) string {
	return formatNumberPrec(v, defaultPrecision)
}

func formatNumberPrec(v float64, decimals int) string {
	// Rounding is a no-op at magnitudes past the float64 integer range,
	// and shifting there would overflow.
	if math.Abs(v) >= 1e15 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	shift := math.Pow(10, float64(decimals))
	rounded := math.Round(v*shift) / shift
	if rounded == 0 {
		// Avoid "-0".
		rounded = 0
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
