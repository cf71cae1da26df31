package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prepmimo/backend/internal/apperror"
	"github.com/prepmimo/backend/internal/dto"
	"github.com/prepmimo/backend/internal/logger"
	"github.com/prepmimo/backend/internal/metrics"
	"github.com/prepmimo/backend/internal/model"
	"github.com/prepmimo/backend/internal/repository"
	"github.com/prepmimo/backend/internal/response"
	"github.com/prepmimo/backend/internal/service"
	"github.com/prepmimo/backend/internal/util"
	"go.uber.org/zap"
)

const maxQuestionAmount = 50

// QuestionParams is a validated question-generation request.
type QuestionParams struct {
	Level     string
	Amount    int
	Techstack []string
	Role      string
	Type      string
	UserID    string
}

type InterviewUsecase struct {
	llm           service.LLMServiceInterface
	timeout       time.Duration
	interviewRepo *repository.InterviewRepository
}

func NewInterviewUsecase(llm service.LLMServiceInterface, timeout time.Duration, interviewRepo *repository.InterviewRepository) *InterviewUsecase {
	return &InterviewUsecase{llm: llm, timeout: timeout, interviewRepo: interviewRepo}
}

// Generate asks the model for interview questions and stores them as a new interview.
func (uc *InterviewUsecase) Generate(ctx context.Context, req dto.GenerateInterviewRequest) (*model.Interview, error) {
	interview, err := uc.generate(ctx, req)
	if err != nil {
		metrics.InterviewsGeneratedTotal.WithLabelValues(outcome(err)).Inc()
		return nil, err
	}
	metrics.InterviewsGeneratedTotal.WithLabelValues(metrics.StatusSuccess).Inc()
	return interview, nil
}

func (uc *InterviewUsecase) generate(ctx context.Context, req dto.GenerateInterviewRequest) (*model.Interview, error) {
	params, err := NewQuestionParams(req)
	if err != nil {
		return nil, err
	}

	text, err := callModel(ctx, uc.llm, uc.timeout, operationQuestions, "", buildQuestionsPrompt(params))
	if err != nil {
		return nil, err
	}
	questions, err := ParseQuestions(text)
	if err != nil {
		return nil, err
	}

	interview := &model.Interview{
		Level:     params.Level,
		Amount:    params.Amount,
		Role:      params.Role,
		Type:      params.Type,
		Techstack: params.Techstack,
		Questions: questions,
		UserID:    params.UserID,
	}
	if err := uc.interviewRepo.Create(ctx, interview); err != nil {
		return nil, err
	}

	logger.Info("interview stored",
		zap.String("interview_id", interview.ID.String()),
		zap.String("user_id", interview.UserID),
		zap.Int("questions", len(questions)),
	)
	return interview, nil
}

func (uc *InterviewUsecase) GetByID(ctx context.Context, id string) (*model.Interview, error) {
	interviewID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return nil, apperror.NewValidationError("id", "must be a valid UUID")
	}
	return uc.interviewRepo.FindByID(ctx, interviewID)
}

// ListByUser returns a user's interviews. Pagination is nil when pageSize is zero.
func (uc *InterviewUsecase) ListByUser(ctx context.Context, userID string, page, pageSize int) ([]model.Interview, *response.Pagination, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, nil, apperror.NewValidationError("userId", "is required")
	}
	if page < 0 || pageSize < 0 {
		return nil, nil, apperror.NewValidationError("page", "must not be negative")
	}

	interviews, total, err := uc.interviewRepo.FindByUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, nil, err
	}
	if pageSize == 0 {
		return interviews, nil, nil
	}
	return interviews, response.NewPagination(page, pageSize, total, len(interviews)), nil
}

// NewQuestionParams validates req and splits its comma-separated tech stack.
func NewQuestionParams(req dto.GenerateInterviewRequest) (*QuestionParams, error) {
	params := &QuestionParams{
		Level:     strings.TrimSpace(req.Level),
		Amount:    req.Amount,
		Techstack: splitTechstack(req.Techstack),
		Role:      strings.TrimSpace(req.Role),
		Type:      strings.TrimSpace(req.Type),
		UserID:    strings.TrimSpace(req.UserID),
	}

	switch {
	case params.UserID == "":
		return nil, apperror.NewValidationError("userId", "is required")
	case params.Role == "":
		return nil, apperror.NewValidationError("role", "is required")
	case params.Level == "":
		return nil, apperror.NewValidationError("level", "is required")
	case params.Type == "":
		return nil, apperror.NewValidationError("type", "is required")
	case len(params.Techstack) == 0:
		return nil, apperror.NewValidationError("techstack", "is required")
	case params.Amount < 1 || params.Amount > maxQuestionAmount:
		return nil, apperror.NewValidationError("amount", "must be between 1 and 50")
	}
	return params, nil
}

func splitTechstack(raw string) []string {
	var stack []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			stack = append(stack, item)
		}
	}
	return stack
}

// ParseQuestions decodes a model reply that should be a JSON array of strings.
func ParseQuestions(text string) ([]string, error) {
	var questions []string
	if err := json.Unmarshal([]byte(util.StripCodeFences(text)), &questions); err != nil {
		logger.Error("failed to parse model response as a question list",
			zap.Error(err),
			zap.String("raw_text", text),
		)
		return nil, &apperror.InvalidModelOutputError{RawText: text, Err: err}
	}
	if len(questions) == 0 {
		logger.Error("model returned no questions", zap.String("raw_text", text))
		return nil, &apperror.InvalidModelOutputError{RawText: text, Err: errors.New("no questions in response")}
	}
	return questions, nil
}
