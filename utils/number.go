package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber coerces form text into a number. Anything that does not parse
// (including NaN) becomes 0; callers get an answer, not an error.
func ParseNumber(text string) float64 {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0
	}
	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	// ParseFloat would otherwise accept "inf", "nan" and hex floats
	lower := strings.ToLower(s)
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") || strings.Contains(lower, "x") {
		return 0
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// out of range values come back as ±Inf with ErrRange
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return n
		}
		return 0
	}
	if math.IsNaN(n) {
		return 0
	}
	return n
}
