// Package slider implements the value engine behind a range slider:
// the coordinate/value transform, step precision handling, the drag state
// machine and controlled value synchronization. It knows nothing about
// rendering; hosts supply geometry and pointer events.
package slider

import (
	"math"
	"strconv"
	"strings"
)

// maxDecimalDigits keeps 10^digits inside float64's exact integer range.
const maxDecimalDigits = 15

// DecimalDigits returns the number of digits after the decimal point in the
// shortest textual form of v (0.25 -> 2, 1 -> 0, 1e-7 -> 7).
func DecimalDigits(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	_, frac, ok := strings.Cut(s, ".")
	if !ok {
		return 0
	}
	return min(len(frac), maxDecimalDigits)
}

// Precision returns the rounding factor for a step: 10^DecimalDigits(step).
func Precision(step float64) float64 {
	return math.Pow10(DecimalDigits(step))
}

func roundTo(v, precision float64) float64 {
	return math.Round(v*precision) / precision
}
