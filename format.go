package minicalc

import (
	"math"
	"strconv"
)

// Format returns the canonical text of a result: the shortest decimal that
// evaluates back to exactly v. Numbers from 1e-7 up to 1e21 in magnitude are
// written in plain notation and others with an exponent, e.g. "1e+21".
// Negative zero is "0". Panics if v is not finite.
func Format(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		panic("minicalc: cannot format " + strconv.FormatFloat(v, 'g', -1, 64))
	}
	if v == 0 {
		return "0"
	}
	if a := math.Abs(v); a < 1e-7 || a >= 1e21 {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
