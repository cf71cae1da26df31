package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/prepmimo/backend/internal/apperror"
	"github.com/prepmimo/backend/internal/logger"
	"github.com/prepmimo/backend/internal/metrics"
	"github.com/prepmimo/backend/internal/service"
	"go.uber.org/zap"
)

const (
	operationFeedback  = "feedback"
	operationQuestions = "questions"
)

// callModel makes exactly one call to llm under timeout. A deadline hit becomes
// a ProviderTimeoutError and any other failure a ProviderCallError.
func callModel(ctx context.Context, llm service.LLMServiceInterface, timeout time.Duration, operation, system, prompt string) (string, error) {
	provider := llm.Name()

	callCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := llm.GenerateText(callCtx, system, prompt)
	elapsed := time.Since(start)
	metrics.LLMRequestDuration.WithLabelValues(provider, operation).Observe(elapsed.Seconds())

	if err != nil {
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
			metrics.LLMRequestsTotal.WithLabelValues(provider, operation, metrics.StatusTimeout).Inc()
			logger.Error("model call timed out",
				zap.String("provider", provider),
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
			return "", &apperror.ProviderTimeoutError{Provider: provider, Timeout: timeout, Err: err}
		}
		metrics.LLMRequestsTotal.WithLabelValues(provider, operation, metrics.StatusError).Inc()
		logger.Error("model call failed",
			zap.String("provider", provider),
			zap.String("operation", operation),
			zap.Error(err),
		)
		return "", &apperror.ProviderCallError{Provider: provider, Err: err}
	}

	metrics.LLMRequestsTotal.WithLabelValues(provider, operation, metrics.StatusSuccess).Inc()
	logger.Debug("model call completed",
		zap.String("provider", provider),
		zap.String("operation", operation),
		zap.Duration("elapsed", elapsed),
	)
	return text, nil
}
