package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gift-xipu/fitness-calculaor/models"
	"github.com/gift-xipu/fitness-calculaor/services"
	"github.com/gift-xipu/fitness-calculaor/utils"

	"github.com/spf13/cobra"
)

var (
	calcInput models.CalculationRequest
	calcJSON  bool
)

var calcCmd = &cobra.Command{
	Use:   "calc <kind>",
	Short: "Evaluate one calculation locally",
	Long: `Evaluate one calculation without starting the server.

Kinds: bmr, bmi, bfp, idealBodyWeight, calorieNeeds, tdee, macros, bac.
Numeric flags that do not parse count as 0. For macros, --weight carries
the daily calorie budget.

Examples:
  fitcalc calc bmr --weight 70 --height 175 --age 30 --gender male
  fitcalc calc macros --weight 2000 --macro-ratio high_protein
  fitcalc calc bac --drinks 3 --alcohol-content 0.4 --weight 80 --hours 1 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)

	f := calcCmd.Flags()
	numeric := []struct {
		dst   *models.NumericText
		name  string
		usage string
	}{
		{&calcInput.Weight, "weight", "body weight in kg (daily calories for macros)"},
		{&calcInput.Height, "height", "height in cm"},
		{&calcInput.Age, "age", "age in years"},
		{&calcInput.Waist, "waist", "waist circumference in cm"},
		{&calcInput.Neck, "neck", "neck circumference in cm"},
		{&calcInput.Hip, "hip", "hip circumference in cm"},
		{&calcInput.Drinks, "drinks", "number of drinks"},
		{&calcInput.AlcoholContent, "alcohol-content", "alcohol content per drink"},
		{&calcInput.Hours, "hours", "hours since the first drink"},
	}
	for _, n := range numeric {
		f.Var((*numericFlag)(n.dst), n.name, n.usage)
	}
	f.StringVarP(&calcInput.Gender, "gender", "g", "male", "male or female")
	f.StringVar(&calcInput.ActivityLevel, "activity-level", "sedentary",
		"sedentary, light, moderate, active or very_active")
	f.StringVar(&calcInput.MacroRatio, "macro-ratio", "balanced", "balanced, low_carb or high_protein")
	f.BoolVar(&calcJSON, "json", false, "print the JSON envelope instead of text")
}

func runCalc(cmd *cobra.Command, args []string) error {
	req := calcInput
	req.Calculation = args[0]

	result, err := services.NewCalculatorService().Evaluate(req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if calcJSON {
		enc := json.NewEncoder(out)
		return enc.Encode(models.CalculationResponse{Result: result})
	}

	text, err := utils.FormatResult(req.Calculation, result)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, text)
	if req.Calculation == string(services.KindBMI) {
		fmt.Fprintf(out, "Category: %s\n", utils.BMICategory(result.Value))
	}
	return nil
}

// numericFlag keeps the raw flag text so it goes through the same coercion
// as form input.
type numericFlag models.NumericText

func (n *numericFlag) String() string { return string(*n) }

func (n *numericFlag) Set(s string) error {
	*n = numericFlag(strings.TrimSpace(s))
	return nil
}

func (n *numericFlag) Type() string { return "number" }
