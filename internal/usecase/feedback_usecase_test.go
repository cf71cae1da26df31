package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prepmimo/backend/internal/apperror"
	"github.com/prepmimo/backend/internal/dto"
	"github.com/prepmimo/backend/internal/model"
	"github.com/prepmimo/backend/internal/repository"
	"github.com/prepmimo/backend/internal/service/mocks"
	"github.com/prepmimo/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const sampleTranscriptJSON = `[
	{"role":"assistant","content":"Tell me about a challenge you faced."},
	{"role":"user","content":"I led a migration project..."}
]`

func newFeedbackUsecase(t *testing.T) (*FeedbackUsecase, *mocks.MockLLMServiceInterface, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	llm := newMockLLM(t)
	uc := NewFeedbackUsecase(NewFeedbackGenerator(llm, time.Minute, 0), repository.NewFeedbackRepository(db))
	return uc, llm, db
}

func countFeedback(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&model.Feedback{}).Count(&count).Error)
	return count
}

func TestFeedbackUsecase_CreateEndToEnd(t *testing.T) {
	uc, llm, db := newFeedbackUsecase(t)
	logs := observeLogs(t)
	user := testutil.SeedUser(t, db, "user-1")
	interview := testutil.SeedInterview(t, db, user.ID)

	llm.EXPECT().GenerateText(gomock.Any(), gomock.Any(), gomock.Any()).Return(testutil.ValidEvaluationJSON(), nil).Times(1)

	created, err := uc.Create(context.Background(), dto.CreateFeedbackRequest{
		UserID:      user.ID,
		InterviewID: interview.ID.String(),
		Transcript:  json.RawMessage(sampleTranscriptJSON),
	})
	require.NoError(t, err)
	assert.Equal(t, interview.ID, created.InterviewID)

	stored, err := uc.Get(context.Background(), interview.ID.String(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, stored.ID)

	evaluation := stored.Evaluation()
	assert.Equal(t, testutil.ValidEvaluation(), evaluation)
	assert.NotEmpty(t, evaluation.KeyStrengths)
	assert.NotEmpty(t, evaluation.KeyWeaknesses)
	assert.NotEmpty(t, evaluation.CriticalAreasForImprovement)
	assert.NotEmpty(t, evaluation.DetailedFeedback)
	assert.NotEmpty(t, evaluation.QuestionResponses)

	stored2 := logs.FilterMessage("feedback stored").All()
	require.Len(t, stored2, 1)
	assert.Equal(t, zapcore.InfoLevel, stored2[0].Level)
}

func TestFeedbackUsecase_CreateValidation(t *testing.T) {
	validID := uuid.NewString()
	tests := []struct {
		name      string
		req       dto.CreateFeedbackRequest
		wantField string
	}{
		{"missing user", dto.CreateFeedbackRequest{InterviewID: validID, Transcript: json.RawMessage(`[]`)}, "userId"},
		{"blank user", dto.CreateFeedbackRequest{UserID: "  ", InterviewID: validID, Transcript: json.RawMessage(`[]`)}, "userId"},
		{"missing interview", dto.CreateFeedbackRequest{UserID: "u", Transcript: json.RawMessage(`[]`)}, "interviewId"},
		{"malformed interview", dto.CreateFeedbackRequest{UserID: "u", InterviewID: "not-a-uuid", Transcript: json.RawMessage(`[]`)}, "interviewId"},
		{"missing transcript", dto.CreateFeedbackRequest{UserID: "u", InterviewID: validID}, "transcript"},
		{"null transcript", dto.CreateFeedbackRequest{UserID: "u", InterviewID: validID, Transcript: json.RawMessage(`null`)}, "transcript"},
		{"object transcript", dto.CreateFeedbackRequest{UserID: "u", InterviewID: validID, Transcript: json.RawMessage(`{"role":"user"}`)}, "transcript"},
		{"string transcript", dto.CreateFeedbackRequest{UserID: "u", InterviewID: validID, Transcript: json.RawMessage(`"hello"`)}, "transcript"},
		{"list of strings", dto.CreateFeedbackRequest{UserID: "u", InterviewID: validID, Transcript: json.RawMessage(`["hello"]`)}, "transcript"},
		{"unknown role", dto.CreateFeedbackRequest{UserID: "u", InterviewID: validID, Transcript: json.RawMessage(`[{"role":"robot","content":"hi"}]`)}, "transcript[0].role"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, db := newFeedbackUsecase(t)

			_, err := uc.Create(context.Background(), tt.req)

			var validationErr *apperror.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
			assert.Zero(t, countFeedback(t, db))
		})
	}
}

func TestFeedbackUsecase_EmptyTranscriptWarns(t *testing.T) {
	uc, llm, db := newFeedbackUsecase(t)
	logs := observeLogs(t)
	user := testutil.SeedUser(t, db, "user-1")
	interview := testutil.SeedInterview(t, db, user.ID)

	llm.EXPECT().GenerateText(gomock.Any(), gomock.Any(), gomock.Any()).Return(testutil.ValidEvaluationJSON(), nil).Times(1)

	_, err := uc.Create(context.Background(), dto.CreateFeedbackRequest{
		UserID:      user.ID,
		InterviewID: interview.ID.String(),
		Transcript:  json.RawMessage(`[]`),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
	assert.EqualValues(t, 1, countFeedback(t, db))
}

func TestFeedbackUsecase_UnknownInterview(t *testing.T) {
	uc, llm, db := newFeedbackUsecase(t)
	user := testutil.SeedUser(t, db, "user-1")

	llm.EXPECT().GenerateText(gomock.Any(), gomock.Any(), gomock.Any()).Return(testutil.ValidEvaluationJSON(), nil).Times(1)

	_, err := uc.Create(context.Background(), dto.CreateFeedbackRequest{
		UserID:      user.ID,
		InterviewID: uuid.NewString(),
		Transcript:  json.RawMessage(sampleTranscriptJSON),
	})

	var riErr *apperror.ReferentialIntegrityError
	require.ErrorAs(t, err, &riErr)
	assert.Zero(t, countFeedback(t, db))
}

func TestFeedbackUsecase_InvalidModelOutputStoresNothing(t *testing.T) {
	uc, llm, db := newFeedbackUsecase(t)
	user := testutil.SeedUser(t, db, "user-1")
	interview := testutil.SeedInterview(t, db, user.ID)

	llm.EXPECT().GenerateText(gomock.Any(), gomock.Any(), gomock.Any()).Return(`{"overallScore": 7,}`, nil).Times(1)

	_, err := uc.Create(context.Background(), dto.CreateFeedbackRequest{
		UserID:      user.ID,
		InterviewID: interview.ID.String(),
		Transcript:  json.RawMessage(sampleTranscriptJSON),
	})

	var outErr *apperror.InvalidModelOutputError
	require.ErrorAs(t, err, &outErr)
	assert.Zero(t, countFeedback(t, db))
}

func TestFeedbackUsecase_ConcurrentInterviewsAreIndependent(t *testing.T) {
	uc, llm, db := newFeedbackUsecase(t)
	user := testutil.SeedUser(t, db, "user-1")
	first := testutil.SeedInterview(t, db, user.ID)
	second := testutil.SeedInterview(t, db, user.ID)

	// The score echoes which transcript the model was shown.
	llm.EXPECT().
		GenerateText(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, prompt string) (string, error) {
			score := 9
			if strings.Contains(prompt, "first interview") {
				score = 3
			}
			return testutil.EvaluationJSONWith("overallScore", score), nil
		}).
		Times(2)

	requests := map[uuid.UUID]string{
		first.ID:  `[{"role":"user","content":"first interview answer"}]`,
		second.ID: `[{"role":"user","content":"second interview answer"}]`,
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(requests))
	for id, transcript := range requests {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Create(context.Background(), dto.CreateFeedbackRequest{
				UserID:      user.ID,
				InterviewID: id.String(),
				Transcript:  json.RawMessage(transcript),
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := uc.Get(context.Background(), first.ID.String(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.OverallScore)

	got, err = uc.Get(context.Background(), second.ID.String(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, got.OverallScore)
}

func TestFeedbackUsecase_GetValidation(t *testing.T) {
	uc, _, _ := newFeedbackUsecase(t)

	_, err := uc.Get(context.Background(), "", "user-1")
	var validationErr *apperror.ValidationError
	require.ErrorAs(t, err, &validationErr)

	_, err = uc.Get(context.Background(), uuid.NewString(), "")
	require.ErrorAs(t, err, &validationErr)

	_, err = uc.Get(context.Background(), uuid.NewString(), "user-1")
	var nfErr *apperror.NotFoundError
	require.ErrorAs(t, err, &nfErr)
}
