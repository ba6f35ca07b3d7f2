package models

import (
	"encoding/json"
	"math"
)

// marshalNumber writes v the way encoding/json would, except that NaN and
// ±Inf become null instead of failing the whole response.
func marshalNumber(v float64) []byte {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null")
	}
	b, _ := json.Marshal(v)
	return b
}

func nan() float64 { return math.NaN() }
