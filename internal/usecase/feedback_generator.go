package usecase

import (
	"context"
	"encoding/json"
	"time"
	"unicode/utf8"

	"github.com/prepmimo/backend/internal/apperror"
	"github.com/prepmimo/backend/internal/logger"
	"github.com/prepmimo/backend/internal/model"
	"github.com/prepmimo/backend/internal/service"
	"github.com/prepmimo/backend/internal/util"
	"github.com/prepmimo/backend/internal/validation"
	"go.uber.org/zap"
)

// FeedbackGenerator turns a transcript into a validated evaluation with one model call.
type FeedbackGenerator struct {
	llm                service.LLMServiceInterface
	timeout            time.Duration
	maxTranscriptChars int
}

// NewFeedbackGenerator builds a generator. A zero timeout or maxTranscriptChars disables that limit.
func NewFeedbackGenerator(llm service.LLMServiceInterface, timeout time.Duration, maxTranscriptChars int) *FeedbackGenerator {
	return &FeedbackGenerator{llm: llm, timeout: timeout, maxTranscriptChars: maxTranscriptChars}
}

func (g *FeedbackGenerator) Generate(ctx context.Context, transcript []model.Utterance) (*model.Evaluation, error) {
	formatted := formatTranscript(transcript)
	if g.maxTranscriptChars > 0 {
		if n := utf8.RuneCountInString(formatted); n > g.maxTranscriptChars {
			return nil, apperror.NewValidationError("transcript", "exceeds the maximum length accepted by the model")
		}
	}

	text, err := callModel(ctx, g.llm, g.timeout, operationFeedback, feedbackSystemInstruction, buildFeedbackPrompt(formatted))
	if err != nil {
		return nil, err
	}
	return ParseEvaluation(text)
}

// ParseEvaluation extracts the JSON object from a model reply, checks it
// against the evaluation schema and decodes it.
func ParseEvaluation(text string) (*model.Evaluation, error) {
	extracted := util.ExtractJSONObject(text)

	doc, err := validation.DecodeJSON(extracted)
	if err != nil {
		logger.Error("failed to parse model response as JSON",
			zap.Error(err),
			zap.String("raw_text", text),
		)
		return nil, &apperror.InvalidModelOutputError{RawText: text, Err: err}
	}

	if violations := validation.ValidateEvaluation(doc); len(violations) > 0 {
		logger.Warn("model response failed schema validation", zap.Strings("violations", violations))
		return nil, &apperror.SchemaValidationError{Violations: violations}
	}

	var evaluation model.Evaluation
	if err := json.Unmarshal([]byte(extracted), &evaluation); err != nil {
		return nil, &apperror.SchemaValidationError{Violations: []string{err.Error()}}
	}
	return &evaluation, nil
}
