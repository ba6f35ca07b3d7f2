package services

import (
	"math"
	"strings"

	"github.com/gift-xipu/fitness-calculaor/models"
)

// activityMultipliers maps an activity level to its TDEE multiplier.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

const defaultActivityMultiplier = 1.2

// macroRatios holds protein/carbs/fat shares of daily calories.
var macroRatios = map[string][3]float64{
	"balanced":     {0.30, 0.40, 0.30},
	"low_carb":     {0.40, 0.20, 0.40},
	"high_protein": {0.40, 0.30, 0.30},
}

const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9

	mlPerFluidOunce    = 29.5735
	ethanolDensity     = 0.789 // g/ml
	eliminationPerHour = 0.015
)

func isMale(gender string) bool {
	return strings.ToLower(gender) == "male"
}

// BMR is the Mifflin-St Jeor basal metabolic rate in kcal/day.
// weight in kg, height in cm, age in years.
func BMR(weight, height, age float64, gender string) float64 {
	base := 10*weight + 6.25*height - 5*age
	if isMale(gender) {
		return base + 5
	}
	return base - 161
}

// BMI expects weight in kilograms and height in centimeters.
func BMI(weight, height float64) float64 {
	h := height / 100
	return weight / (h * h)
}

// BodyFat estimates body fat percentage with the U.S. Navy method. Inputs are
// circumferences in cm; hip is only read for non-male gender. A negative log
// argument yields NaN and a zero one yields -450; neither is corrected.
func BodyFat(waist, neck, height, hip float64, gender string) float64 {
	if isMale(gender) {
		return 495/(1.0324-0.19077*math.Log10(waist-neck)+0.15456*math.Log10(height)) - 450
	}
	return 495/(1.29579-0.35004*math.Log10(waist+hip-neck)+0.22100*math.Log10(height)) - 450
}

// IdealBodyWeight uses the Hamwi formula; height in cm, result in kg.
func IdealBodyWeight(height float64, gender string) float64 {
	inches := height / 2.54
	extra := math.Max(0, inches-60)
	if isMale(gender) {
		return 48.0 + 2.7*extra
	}
	return 45.5 + 2.2*extra
}

// CalorieNeeds scales a BMR by the activity multiplier. Unknown levels count
// as sedentary.
func CalorieNeeds(bmr float64, activityLevel string) float64 {
	mult, ok := activityMultipliers[activityLevel]
	if !ok {
		mult = defaultActivityMultiplier
	}
	return bmr * mult
}

// TDEE is the same quantity as CalorieNeeds.
func TDEE(bmr float64, activityLevel string) float64 {
	return CalorieNeeds(bmr, activityLevel)
}

// Macros splits a calorie budget into grams of protein, carbs and fat.
// Unknown ratios fall back to balanced.
func Macros(calories float64, ratio string) models.MacroSplit {
	r, ok := macroRatios[ratio]
	if !ok {
		r = macroRatios["balanced"]
	}
	return models.MacroSplit{
		Protein: roundHalfUp(calories * r[0] / kcalPerGramProtein),
		Carbs:   roundHalfUp(calories * r[1] / kcalPerGramCarbs),
		Fats:    roundHalfUp(calories * r[2] / kcalPerGramFat),
	}
}

// roundHalfUp rounds .5 toward +Inf, so -2.5 becomes -2.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

// BAC estimates blood alcohol content (g/100ml) with the Widmark formula.
// drinks are counted in fluid ounces, alcoholContent is the ABV share of a
// drink, weight is in kg. Negative estimates clamp to zero; NaN passes through.
func BAC(drinks, alcoholContent, weight, hours float64, gender string) float64 {
	r := 0.55
	if isMale(gender) {
		r = 0.68
	}
	consumed := drinks * alcoholContent * mlPerFluidOunce
	bac := (consumed*ethanolDensity*100)/(weight*1000*r) - eliminationPerHour*hours
	return math.Max(0, bac)
}
