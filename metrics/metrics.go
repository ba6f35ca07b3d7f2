package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	calculations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fitcalc",
			Name:      "calculations_total",
			Help:      "Calculations evaluated, by kind and outcome.",
		},
		[]string{"kind", "status"},
	)

	calculationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fitcalc",
			Name:      "calculation_duration_seconds",
			Help:      "Time spent evaluating a calculation.",
			Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005},
		},
		[]string{"kind"},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fitcalc",
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by method, route and status code.",
		},
		[]string{"method", "route", "code"},
	)

	wsSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "fitcalc",
			Name:      "ws_sessions",
			Help:      "Open websocket calculation sessions.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(calculations, calculationDuration, httpRequests, wsSessions)
	})
}

// ObserveCalculation records one evaluation. Unknown kinds are labelled
// "unsupported" so clients cannot blow up label cardinality.
func ObserveCalculation(kind string, ok bool, took time.Duration) {
	status := "ok"
	if !ok {
		kind = "unsupported"
		status = "error"
	}
	calculations.WithLabelValues(kind, status).Inc()
	calculationDuration.WithLabelValues(kind).Observe(took.Seconds())
}

func IncHTTPRequest(method, route, code string) {
	httpRequests.WithLabelValues(method, route, code).Inc()
}

func SetWSSessions(n int) {
	wsSessions.Set(float64(n))
}
