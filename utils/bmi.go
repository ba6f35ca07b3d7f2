package utils

import "math"

// BMICategory labels a BMI value with the WHO adult classes.
func BMICategory(bmi float64) string {
	switch {
	case math.IsNaN(bmi):
		return "Unknown"
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}
