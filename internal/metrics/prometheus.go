package metrics

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	LLMRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prepmimo_llm_requests_total",
			Help: "Language-model calls by provider, operation and outcome",
		},
		[]string{"provider", "operation", "status"},
	)

	LLMRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "prepmimo_llm_request_duration_seconds",
			Help:    "Language-model call latency in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 40, 60, 120},
		},
		[]string{"provider", "operation"},
	)

	FeedbackTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prepmimo_feedback_total",
			Help: "Feedback generation requests by outcome",
		},
		[]string{"status"},
	)

	InterviewsGeneratedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prepmimo_interviews_generated_total",
			Help: "Question generation requests by outcome",
		},
		[]string{"status"},
	)

	registerOnce sync.Once
)

const (
	StatusSuccess = "success"
	StatusTimeout = "timeout"
	StatusError   = "error"
)

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(LLMRequestsTotal)
		prometheus.MustRegister(LLMRequestDuration)
		prometheus.MustRegister(FeedbackTotal)
		prometheus.MustRegister(InterviewsGeneratedTotal)
	})
}

func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
