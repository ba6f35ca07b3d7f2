package services

import (
	"errors"
	"fmt"

	"github.com/gift-xipu/fitness-calculaor/models"
	"github.com/gift-xipu/fitness-calculaor/utils"
)

// ErrUnsupportedCalculation is the only error Evaluate returns.
var ErrUnsupportedCalculation = errors.New("unsupported calculation kind")

// Kind names one of the supported calculations.
type Kind string

const (
	KindBMR             Kind = "bmr"
	KindBMI             Kind = "bmi"
	KindBFP             Kind = "bfp"
	KindIdealBodyWeight Kind = "idealBodyWeight"
	KindCalorieNeeds    Kind = "calorieNeeds"
	KindTDEE            Kind = "tdee"
	KindMacros          Kind = "macros"
	KindBAC             Kind = "bac"
)

type formula func(in inputs) models.Result

// inputs is a CalculationRequest after every numeric field went through
// utils.ParseNumber.
type inputs struct {
	weight, height, age     float64
	waist, neck, hip        float64
	drinks, alcohol, hours  float64
	gender, activity, ratio string
}

func parseInputs(req models.CalculationRequest) inputs {
	return inputs{
		weight:   utils.ParseNumber(string(req.Weight)),
		height:   utils.ParseNumber(string(req.Height)),
		age:      utils.ParseNumber(string(req.Age)),
		waist:    utils.ParseNumber(string(req.Waist)),
		neck:     utils.ParseNumber(string(req.Neck)),
		hip:      utils.ParseNumber(string(req.Hip)),
		drinks:   utils.ParseNumber(string(req.Drinks)),
		alcohol:  utils.ParseNumber(string(req.AlcoholContent)),
		hours:    utils.ParseNumber(string(req.Hours)),
		gender:   req.Gender,
		activity: req.ActivityLevel,
		ratio:    req.MacroRatio,
	}
}

// CalculatorService evaluates calculator requests. It holds no mutable state
// and is safe for concurrent use.
type CalculatorService struct {
	formulas map[Kind]formula
}

func NewCalculatorService() *CalculatorService {
	return &CalculatorService{
		formulas: map[Kind]formula{
			KindBMR: func(in inputs) models.Result {
				return models.Scalar(BMR(in.weight, in.height, in.age, in.gender))
			},
			KindBMI: func(in inputs) models.Result {
				return models.Scalar(BMI(in.weight, in.height))
			},
			KindBFP: func(in inputs) models.Result {
				return models.Scalar(BodyFat(in.waist, in.neck, in.height, in.hip, in.gender))
			},
			KindIdealBodyWeight: func(in inputs) models.Result {
				return models.Scalar(IdealBodyWeight(in.height, in.gender))
			},
			KindCalorieNeeds: func(in inputs) models.Result {
				bmr := BMR(in.weight, in.height, in.age, in.gender)
				return models.Scalar(CalorieNeeds(bmr, in.activity))
			},
			KindTDEE: func(in inputs) models.Result {
				bmr := BMR(in.weight, in.height, in.age, in.gender)
				return models.Scalar(TDEE(bmr, in.activity))
			},
			// the form reuses the weight field for daily calories
			KindMacros: func(in inputs) models.Result {
				return models.Split(Macros(in.weight, in.ratio))
			},
			KindBAC: func(in inputs) models.Result {
				return models.Scalar(BAC(in.drinks, in.alcohol, in.weight, in.hours, in.gender))
			},
		},
	}
}

// Evaluate runs the formula selected by req.Calculation.
func (s *CalculatorService) Evaluate(req models.CalculationRequest) (models.Result, error) {
	f, ok := s.formulas[Kind(req.Calculation)]
	if !ok {
		return models.Result{}, fmt.Errorf("%w: %q", ErrUnsupportedCalculation, req.Calculation)
	}
	return f(parseInputs(req)), nil
}

// Supports reports whether kind has a formula.
func (s *CalculatorService) Supports(kind string) bool {
	_, ok := s.formulas[Kind(kind)]
	return ok
}

// Kinds lists the supported calculations in catalog order.
func (s *CalculatorService) Kinds() []Kind {
	out := make([]Kind, 0, len(catalog))
	for _, e := range catalog {
		out = append(out, e.Kind)
	}
	return out
}
