package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/gift-xipu/fitness-calculaor/models"
)

// FormatResult renders a result the way the calculator form shows it. Kinds
// without a display format fall back to the result's JSON.
func FormatResult(kind string, r models.Result) (string, error) {
	if r.IsSplit() {
		m := r.Macros
		return fmt.Sprintf("Protein: %sg, Carbs: %sg, Fats: %sg",
			plain(m.Protein), plain(m.Carbs), plain(m.Fats)), nil
	}
	v := r.Value
	switch kind {
	case "bmr":
		return fmt.Sprintf("BMR: %s calories/day", rounded(v)), nil
	case "bmi":
		return fmt.Sprintf("BMI: %s", fixed(v, 1)), nil
	case "bfp":
		return fmt.Sprintf("Body Fat Percentage: %s%%", fixed(v, 1)), nil
	case "idealBodyWeight":
		return fmt.Sprintf("Ideal Body Weight: %s kg", rounded(v)), nil
	case "calorieNeeds":
		return fmt.Sprintf("Daily Calorie Needs: %s calories", rounded(v)), nil
	case "tdee":
		return fmt.Sprintf("TDEE: %s calories/day", rounded(v)), nil
	case "bac":
		return fmt.Sprintf("Blood Alcohol Content: %s%%", fixed(v*100, 3)), nil
	default:
		b, err := json.Marshal(r)
		if err != nil {
			return "", fmt.Errorf("format %s result: %w", kind, err)
		}
		return string(b), nil
	}
}

func fixed(v float64, digits int) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	return strconv.FormatFloat(v, 'f', digits, 64)
}

func rounded(v float64) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	return strconv.FormatFloat(math.Floor(v+0.5), 'f', 0, 64)
}

func plain(v float64) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func nonFinite(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, 1):
		return "Infinity", true
	case math.IsInf(v, -1):
		return "-Infinity", true
	}
	return "", false
}
