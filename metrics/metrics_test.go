package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveCalculation(t *testing.T) {
	okBefore := testutil.ToFloat64(calculations.WithLabelValues("bmi", "ok"))
	errBefore := testutil.ToFloat64(calculations.WithLabelValues("unsupported", "error"))

	ObserveCalculation("bmi", true, time.Microsecond)
	ObserveCalculation("made-up-kind", false, time.Microsecond)

	if got := testutil.ToFloat64(calculations.WithLabelValues("bmi", "ok")) - okBefore; got != 1 {
		t.Errorf("ok delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(calculations.WithLabelValues("unsupported", "error")) - errBefore; got != 1 {
		t.Errorf("error delta = %v, want 1", got)
	}
	if n := testutil.CollectAndCount(calculations); n == 0 {
		t.Error("no series collected")
	}
}

func TestRegisterIsIdempotent(t *testing.T) {
	Register()
	Register()
}

func TestSetWSSessions(t *testing.T) {
	SetWSSessions(3)
	if got := testutil.ToFloat64(wsSessions); got != 3 {
		t.Errorf("ws_sessions = %v, want 3", got)
	}
	SetWSSessions(0)
	if got := testutil.ToFloat64(wsSessions); got != 0 {
		t.Errorf("ws_sessions = %v, want 0", got)
	}
}
