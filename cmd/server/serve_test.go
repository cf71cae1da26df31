package main

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prepmimo/backend/internal/config"
	"github.com/prepmimo/backend/internal/metrics"
	"github.com/prepmimo/backend/internal/service/mocks"
	"github.com/prepmimo/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestApp(t *testing.T, env string) *fiber.App {
	t.Helper()
	metrics.Init()
	llm := mocks.NewMockLLMServiceInterface(gomock.NewController(t))
	llm.EXPECT().Name().Return("mock").AnyTimes()

	appConfig := &config.AppConfig{
		Name:                 "PrepMimo",
		Env:                  env,
		RateLimitMax:         100,
		RateLimitWindow:      time.Minute,
		GenerateRateLimitMax: 10,
	}
	return newApp(appConfig, testutil.NewTestDB(t), llm, llm)
}

func get(t *testing.T, app *fiber.App, path string) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestNewApp_OperationalEndpoints(t *testing.T) {
	app := newTestApp(t, "development")

	status, _ := get(t, app, "/livez")
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = get(t, app, "/readyz")
	assert.Equal(t, fiber.StatusOK, status)

	status, body := get(t, app, "/metrics")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "go_goroutines")

	status, _ = get(t, app, "/debug/pprof/")
	assert.Equal(t, fiber.StatusOK, status)
}

func TestNewApp_PprofDisabledInProduction(t *testing.T) {
	app := newTestApp(t, "production")

	status, _ := get(t, app, "/debug/pprof/")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestNewApp_RegistersAPIRoutes(t *testing.T) {
	app := newTestApp(t, "development")

	status, body := get(t, app, "/api/vapi/generate")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `"hello"`)

	status, _ = get(t, app, "/api/interview")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestRootCommand_Subcommands(t *testing.T) {
	cmd := newRootCommand()
	names := make([]string, 0)
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "migrate"}, names)
}
