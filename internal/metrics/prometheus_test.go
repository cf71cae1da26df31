package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsHandler(t *testing.T) {
	Init()
	Init()

	FeedbackTotal.WithLabelValues(StatusSuccess).Inc()
	LLMRequestsTotal.WithLabelValues("gemini", "feedback", StatusTimeout).Inc()

	app := fiber.New()
	app.Get("/metrics", MetricsHandler())

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `prepmimo_feedback_total{status="success"}`)
	assert.Contains(t, string(body), `prepmimo_llm_requests_total{operation="feedback",provider="gemini",status="timeout"}`)
}

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(InterviewsGeneratedTotal.WithLabelValues(StatusError))
	InterviewsGeneratedTotal.WithLabelValues(StatusError).Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(InterviewsGeneratedTotal.WithLabelValues(StatusError)))
}
