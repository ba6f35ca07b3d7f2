package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// NumericText holds a form value exactly as the client sent it. Browsers post
// numbers as strings, scripts post them as numbers; both end up here.
type NumericText string

func (n *NumericText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("true")):
		*n = "1"
	case bytes.Equal(data, []byte("false")):
		*n = "0"
	default:
		s, err := valueText(data)
		if err != nil {
			return err
		}
		*n = NumericText(s)
	}
	return nil
}

// valueText turns a JSON value into the text a browser would read as a
// number: arrays join their elements with commas, so [70] reads as 70 and
// [1,2] does not parse; objects never parse.
func valueText(data []byte) (string, error) {
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		return "", nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	case data[0] == '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return "", err
		}
		parts := make([]string, len(items))
		for i, it := range items {
			s, err := valueText(bytes.TrimSpace(it))
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return strings.Join(parts, ","), nil
	case data[0] == '{':
		return "[object Object]", nil
	default:
		// numbers, and true/false inside arrays
		return string(data), nil
	}
}

// CalculationRequest is one submission of the calculator form.
type CalculationRequest struct {
	Calculation    string      `json:"calculation"`
	Weight         NumericText `json:"weight"`
	Height         NumericText `json:"height"`
	Age            NumericText `json:"age"`
	Gender         string      `json:"gender"`
	Waist          NumericText `json:"waist"`
	Neck           NumericText `json:"neck"`
	Hip            NumericText `json:"hip"`
	ActivityLevel  string      `json:"activityLevel"`
	Drinks         NumericText `json:"drinks"`
	AlcoholContent NumericText `json:"alcoholContent"`
	Hours          NumericText `json:"hours"`
	MacroRatio     string      `json:"macroRatio"`
}

// MacroSplit is a daily gram target per macronutrient.
type MacroSplit struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fats    float64 `json:"fats"`
}

// MarshalJSON writes NaN and ±Inf grams as null.
func (m MacroSplit) MarshalJSON() ([]byte, error) {
	b := append([]byte(`{"protein":`), marshalNumber(m.Protein)...)
	b = append(b, `,"carbs":`...)
	b = append(b, marshalNumber(m.Carbs)...)
	b = append(b, `,"fats":`...)
	b = append(b, marshalNumber(m.Fats)...)
	return append(b, '}'), nil
}

// Result is either a single number or a macro split.
type Result struct {
	Value  float64
	Macros *MacroSplit
}

func Scalar(v float64) Result { return Result{Value: v} }

func Split(m MacroSplit) Result { return Result{Macros: &m} }

func (r Result) IsSplit() bool { return r.Macros != nil }

func (r Result) MarshalJSON() ([]byte, error) {
	if r.Macros != nil {
		return json.Marshal(r.Macros)
	}
	return marshalNumber(r.Value), nil
}

func (r *Result) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = Result{Value: nan()}
		return nil
	}
	if len(data) > 0 && data[0] == '{' {
		var m MacroSplit
		if err := json.Unmarshal(data, &m); err != nil {
			return err
		}
		*r = Split(m)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("result: %w", err)
	}
	*r = Scalar(v)
	return nil
}

// CalculationResponse is the success envelope.
type CalculationResponse struct {
	Result Result `json:"result"`
}

// ErrorResponse is the failure envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
