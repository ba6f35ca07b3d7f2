package services

import "slices"

// CatalogEntry describes one calculation for clients building a form.
type CatalogEntry struct {
	Kind        Kind     `json:"kind"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Fields      []string `json:"fields"`
	Unit        string   `json:"unit"`
}

var catalog = []CatalogEntry{
	{
		Kind:        KindBMR,
		Label:       "Basal Metabolic Rate (BMR)",
		Description: "Calories your body burns at rest to keep basic functions like breathing, circulation and cell production going.",
		Fields:      []string{"gender", "weight", "height", "age"},
		Unit:        "kcal/day",
	},
	{
		Kind:        KindBMI,
		Label:       "Body Mass Index (BMI)",
		Description: "Weight relative to height squared. Does not account for muscle mass.",
		Fields:      []string{"weight", "height"},
		Unit:        "kg/m2",
	},
	{
		Kind:        KindBFP,
		Label:       "Body Fat Percentage (BFP)",
		Description: "Share of body weight that is fat, estimated from circumferences with the U.S. Navy method.",
		Fields:      []string{"gender", "waist", "neck", "hip", "height"},
		Unit:        "%",
	},
	{
		Kind:        KindIdealBodyWeight,
		Label:       "Ideal Body Weight",
		Description: "Hamwi estimate of a healthy weight for your height and gender. A general guideline; may not apply to athletes or the elderly.",
		Fields:      []string{"gender", "height"},
		Unit:        "kg",
	},
	{
		Kind:        KindCalorieNeeds,
		Label:       "Calorie Needs",
		Description: "Calories to eat per day to keep your current weight, from BMR and activity level.",
		Fields:      []string{"gender", "weight", "height", "age", "activityLevel"},
		Unit:        "kcal/day",
	},
	{
		Kind:        KindTDEE,
		Label:       "Total Daily Energy Expenditure (TDEE)",
		Description: "Total calories burned per day including physical activity.",
		Fields:      []string{"gender", "weight", "height", "age", "activityLevel"},
		Unit:        "kcal/day",
	},
	{
		Kind:        KindMacros,
		Label:       "Macro Calculator",
		Description: "Grams of protein, carbohydrates and fat for a daily calorie budget. The budget is sent in the weight field.",
		Fields:      []string{"weight", "macroRatio"},
		Unit:        "g",
	},
	{
		Kind:        KindBAC,
		Label:       "Blood Alcohol Content (BAC)",
		Description: "Widmark estimate of alcohol in the bloodstream from drinks, weight, gender and time elapsed.",
		Fields:      []string{"gender", "drinks", "alcoholContent", "weight", "hours"},
		Unit:        "g/100ml",
	},
}

// Catalog returns a copy of the calculation descriptions in display order.
// Callers may modify it freely.
func (s *CalculatorService) Catalog() []CatalogEntry {
	out := make([]CatalogEntry, len(catalog))
	for i, e := range catalog {
		e.Fields = slices.Clone(e.Fields)
		out[i] = e
	}
	return out
}
