package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/prepmimo/backend/internal/apperror"
	"github.com/prepmimo/backend/internal/dto"
	"github.com/prepmimo/backend/internal/logger"
	"github.com/prepmimo/backend/internal/metrics"
	"github.com/prepmimo/backend/internal/model"
	"github.com/prepmimo/backend/internal/repository"
	"go.uber.org/zap"
)

type FeedbackUsecase struct {
	generator    *FeedbackGenerator
	feedbackRepo *repository.FeedbackRepository
}

func NewFeedbackUsecase(generator *FeedbackGenerator, feedbackRepo *repository.FeedbackRepository) *FeedbackUsecase {
	return &FeedbackUsecase{generator: generator, feedbackRepo: feedbackRepo}
}

// Create validates the request, generates an evaluation and stores it as one
// feedback row. Nothing is stored when any step fails.
func (uc *FeedbackUsecase) Create(ctx context.Context, req dto.CreateFeedbackRequest) (*model.Feedback, error) {
	feedback, err := uc.create(ctx, req)
	if err != nil {
		metrics.FeedbackTotal.WithLabelValues(outcome(err)).Inc()
		return nil, err
	}
	metrics.FeedbackTotal.WithLabelValues(metrics.StatusSuccess).Inc()
	return feedback, nil
}

func (uc *FeedbackUsecase) create(ctx context.Context, req dto.CreateFeedbackRequest) (*model.Feedback, error) {
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		return nil, apperror.NewValidationError("userId", "is required")
	}
	interviewID, err := parseInterviewID(req.InterviewID)
	if err != nil {
		return nil, err
	}
	transcript, err := parseTranscript(req.Transcript)
	if err != nil {
		return nil, err
	}
	if len(transcript) == 0 {
		logger.Warn("generating feedback from an empty transcript",
			zap.String("interview_id", interviewID.String()),
			zap.String("user_id", userID),
		)
	}

	evaluation, err := uc.generator.Generate(ctx, transcript)
	if err != nil {
		return nil, err
	}

	feedback := model.NewFeedback(interviewID, userID, evaluation)
	if err := uc.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, err
	}

	logger.Info("feedback stored",
		zap.String("feedback_id", feedback.ID.String()),
		zap.String("interview_id", interviewID.String()),
		zap.String("user_id", userID),
	)
	return feedback, nil
}

// Get returns the first stored feedback for the interview and user.
func (uc *FeedbackUsecase) Get(ctx context.Context, interviewID, userID string) (*model.Feedback, error) {
	id, err := parseInterviewID(interviewID)
	if err != nil {
		return nil, err
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, apperror.NewValidationError("userId", "is required")
	}
	return uc.feedbackRepo.FindByInterviewAndUser(ctx, id, userID)
}

func parseInterviewID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, apperror.NewValidationError("interviewId", "is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.NewValidationError("interviewId", "must be a valid UUID")
	}
	return id, nil
}

func parseTranscript(raw json.RawMessage) ([]model.Utterance, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, apperror.NewValidationError("transcript", "must be a list")
	}

	var transcript []model.Utterance
	if err := json.Unmarshal(trimmed, &transcript); err != nil {
		return nil, apperror.NewValidationError("transcript", "must be a list of {role, content} objects")
	}
	for i, u := range transcript {
		if !u.Role.Valid() {
			return nil, apperror.NewValidationError(fmt.Sprintf("transcript[%d].role", i), "must be one of user, assistant, system")
		}
	}
	return transcript, nil
}

func outcome(err error) string {
	var timeoutErr *apperror.ProviderTimeoutError
	if errors.As(err, &timeoutErr) {
		return metrics.StatusTimeout
	}
	return metrics.StatusError
}
