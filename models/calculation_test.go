package models

import (
	"encoding/json"
	"math"
	"testing"
)

func TestCalculationRequestAcceptsStringsAndNumbers(t *testing.T) {
	body := `{
		"calculation": "bmr",
		"weight": "70",
		"height": 175,
		"age": null,
		"gender": "male",
		"waist": true,
		"neck": " 38 ",
		"activityLevel": "light"
	}`
	var req CalculationRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	tests := []struct {
		field string
		got   NumericText
		want  NumericText
	}{
		{"weight", req.Weight, "70"},
		{"height", req.Height, "175"},
		{"age", req.Age, ""},
		{"waist", req.Waist, "1"},
		{"neck", req.Neck, " 38 "},
		{"hip", req.Hip, ""},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.field, tt.got, tt.want)
		}
	}
	if req.Calculation != "bmr" || req.Gender != "male" || req.ActivityLevel != "light" {
		t.Errorf("string fields not decoded: %+v", req)
	}
}

func TestNumericTextFromArraysAndObjects(t *testing.T) {
	tests := []struct {
		body string
		want NumericText
	}{
		{`[70]`, "70"},
		{`["70"]`, "70"},
		{`[[70]]`, "70"},
		{`[]`, ""},
		{`[null]`, ""},
		{`[1, 2]`, "1,2"},
		{`[true]`, "true"},
		{`{"kg": 70}`, "[object Object]"},
	}
	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var req CalculationRequest
			if err := json.Unmarshal([]byte(`{"weight":`+tt.body+`}`), &req); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if req.Weight != tt.want {
				t.Errorf("weight = %q, want %q", req.Weight, tt.want)
			}
		})
	}
}

func TestResultMarshal(t *testing.T) {
	tests := []struct {
		name string
		in   CalculationResponse
		want string
	}{
		{"scalar", CalculationResponse{Result: Scalar(22.5)}, `{"result":22.5}`},
		{"zero", CalculationResponse{Result: Scalar(0)}, `{"result":0}`},
		{"nan", CalculationResponse{Result: Scalar(math.NaN())}, `{"result":null}`},
		{"inf", CalculationResponse{Result: Scalar(math.Inf(-1))}, `{"result":null}`},
		{"split", CalculationResponse{Result: Split(MacroSplit{Protein: 150, Carbs: 200, Fats: 67})},
			`{"result":{"protein":150,"carbs":200,"fats":67}}`},
		{"split with non-finite grams", CalculationResponse{Result: Split(MacroSplit{Protein: math.Inf(1), Carbs: math.NaN(), Fats: 2.5})},
			`{"result":{"protein":null,"carbs":null,"fats":2.5}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.in)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("got %s, want %s", b, tt.want)
			}
		})
	}
}

func TestResultUnmarshal(t *testing.T) {
	var resp CalculationResponse
	if err := json.Unmarshal([]byte(`{"result":{"protein":1,"carbs":2,"fats":3}}`), &resp); err != nil {
		t.Fatalf("Unmarshal split: %v", err)
	}
	if !resp.Result.IsSplit() || *resp.Result.Macros != (MacroSplit{1, 2, 3}) {
		t.Errorf("split = %+v", resp.Result)
	}

	var null CalculationResponse
	if err := json.Unmarshal([]byte(`{"result":null}`), &null); err != nil {
		t.Fatalf("Unmarshal null: %v", err)
	}
	if null.Result.IsSplit() || !math.IsNaN(null.Result.Value) {
		t.Errorf("null = %+v, want NaN scalar", null.Result)
	}
}
