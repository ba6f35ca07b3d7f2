package services

import (
	"math"
	"testing"

	"github.com/gift-xipu/fitness-calculaor/models"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBMR(t *testing.T) {
	tests := []struct {
		name   string
		gender string
		want   float64
	}{
		{"male", "male", 1648.75},
		{"male mixed case", "MaLe", 1648.75},
		{"female", "female", 1482.75},
		{"anything else", "", 1482.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BMR(70, 175, 30, tt.gender); !approx(got, tt.want) {
				t.Errorf("BMR = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBMI(t *testing.T) {
	got := BMI(70, 175)
	if math.Abs(got-22.857) > 0.001 {
		t.Errorf("BMI(70, 175) = %v, want ~22.857", got)
	}
	if got := BMI(70, 0); !math.IsInf(got, 1) {
		t.Errorf("BMI(70, 0) = %v, want +Inf", got)
	}
}

func TestBodyFat(t *testing.T) {
	if got := BodyFat(85, 38, 178, 0, "male"); math.Abs(got-16.436) > 0.001 {
		t.Errorf("male body fat = %v, want ~16.436", got)
	}
	if got := BodyFat(70, 33, 165, 95, "female"); math.Abs(got-24.334) > 0.001 {
		t.Errorf("female body fat = %v, want ~24.334", got)
	}
}

func TestBodyFatDegenerateInputsPropagate(t *testing.T) {
	tests := []struct {
		name                     string
		waist, neck, height, hip float64
		gender                   string
	}{
		{"male waist below neck", 30, 40, 178, 0, "male"},
		{"female circumferences below neck", 10, 40, 165, 5, "female"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BodyFat(tt.waist, tt.neck, tt.height, tt.hip, tt.gender)
			if !math.IsNaN(got) {
				t.Errorf("BodyFat = %v, want NaN", got)
			}
		})
	}
	// log10(0) is -Inf, which drives the quotient to zero
	if got := BodyFat(40, 40, 178, 0, "male"); got != -450 {
		t.Errorf("BodyFat(waist == neck) = %v, want -450", got)
	}
}

func TestIdealBodyWeight(t *testing.T) {
	if got := IdealBodyWeight(175, "male"); math.Abs(got-72.0236) > 0.0001 {
		t.Errorf("male = %v, want ~72.0236", got)
	}
	if got := IdealBodyWeight(165, "female"); math.Abs(got-56.4134) > 0.0001 {
		t.Errorf("female = %v, want ~56.4134", got)
	}
	// under five feet there is no extra
	if got := IdealBodyWeight(140, "female"); got != 45.5 {
		t.Errorf("short female = %v, want 45.5", got)
	}
	if got := IdealBodyWeight(0, "male"); got != 48 {
		t.Errorf("zero height male = %v, want 48", got)
	}
}

func TestCalorieNeeds(t *testing.T) {
	tests := []struct {
		level string
		want  float64
	}{
		{"sedentary", 1200},
		{"light", 1375},
		{"moderate", 1550},
		{"active", 1725},
		{"very_active", 1900},
		{"couch", 1200},
		{"", 1200},
		{"Moderate", 1200},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := CalorieNeeds(1000, tt.level); !approx(got, tt.want) {
				t.Errorf("CalorieNeeds(1000, %q) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestTDEEMatchesCalorieNeeds(t *testing.T) {
	for level := range activityMultipliers {
		if TDEE(1648.75, level) != CalorieNeeds(1648.75, level) {
			t.Errorf("TDEE and CalorieNeeds differ for %q", level)
		}
	}
}

func TestMacros(t *testing.T) {
	tests := []struct {
		ratio    string
		calories float64
		want     models.MacroSplit
	}{
		{"balanced", 2000, models.MacroSplit{Protein: 150, Carbs: 200, Fats: 67}},
		{"low_carb", 2000, models.MacroSplit{Protein: 200, Carbs: 100, Fats: 89}},
		{"high_protein", 2500, models.MacroSplit{Protein: 250, Carbs: 188, Fats: 83}},
		{"keto", 2000, models.MacroSplit{Protein: 150, Carbs: 200, Fats: 67}},
		{"balanced", 0, models.MacroSplit{}},
	}
	for _, tt := range tests {
		t.Run(tt.ratio, func(t *testing.T) {
			if got := Macros(tt.calories, tt.ratio); got != tt.want {
				t.Errorf("Macros(%v, %q) = %+v, want %+v", tt.calories, tt.ratio, got, tt.want)
			}
		})
	}
}

func TestRoundHalfUp(t *testing.T) {
	for in, want := range map[float64]float64{2.5: 3, -2.5: -2, 187.5: 188, 66.6: 67, -0.4: 0} {
		if got := roundHalfUp(in); got != want {
			t.Errorf("roundHalfUp(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestBAC(t *testing.T) {
	if got := BAC(0, 0, 70, 0, "male"); got != 0 {
		t.Errorf("no drinks = %v, want 0", got)
	}
	if got := BAC(3, 0.4, 80, 1, "male"); math.Abs(got-0.036471) > 1e-6 {
		t.Errorf("male = %v, want ~0.036471", got)
	}
	if got := BAC(3, 0.4, 60, 2, "female"); math.Abs(got-0.054849) > 1e-6 {
		t.Errorf("female = %v, want ~0.054849", got)
	}
	// long enough after drinking the estimate would go negative
	if got := BAC(1, 0.05, 90, 10, "male"); got != 0 {
		t.Errorf("clamped = %v, want 0", got)
	}
	if got := BAC(0, 0, 0, 0, "male"); !math.IsNaN(got) {
		t.Errorf("zero weight, no drinks = %v, want NaN", got)
	}
}
