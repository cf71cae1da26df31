package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prepmimo/backend/internal/repository"
	"github.com/prepmimo/backend/internal/service/mocks"
	"github.com/prepmimo/backend/internal/testutil"
	"github.com/prepmimo/backend/internal/usecase"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type testServer struct {
	app *fiber.App
	llm *mocks.MockLLMServiceInterface
	db  *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db := testutil.NewTestDB(t)
	llm := mocks.NewMockLLMServiceInterface(gomock.NewController(t))
	llm.EXPECT().Name().Return("mock").AnyTimes()

	feedbackUC := usecase.NewFeedbackUsecase(
		usecase.NewFeedbackGenerator(llm, time.Minute, 0),
		repository.NewFeedbackRepository(db),
	)
	interviewUC := usecase.NewInterviewUsecase(llm, time.Minute, repository.NewInterviewRepository(db))

	app := fiber.New()
	NewFeedbackHandler(feedbackUC, 100).RegisterRoutes(app)
	NewInterviewHandler(interviewUC, 100).RegisterRoutes(app)
	return &testServer{app: app, llm: llm, db: db}
}

func (s *testServer) do(t *testing.T, method, target string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, ok := body.(string)
		if !ok {
			encoded, err := json.Marshal(body)
			require.NoError(t, err)
			raw = string(encoded)
		}
		reader = bytes.NewBufferString(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded), string(data))
	return resp.StatusCode, decoded
}
