package service

//go:generate go tool mockgen -destination=mocks/mock_llm.go -package=mocks github.com/prepmimo/backend/internal/service LLMServiceInterface

import (
	"context"
	"fmt"

	"github.com/prepmimo/backend/internal/config"
)

// LLMServiceInterface is a single-attempt text completion against one model.
// Implementations never retry; the caller owns deadlines through ctx.
type LLMServiceInterface interface {
	GenerateText(ctx context.Context, system, prompt string) (string, error)
	Name() string
}

// NewLLMService builds the provider selected by cfg, bound to model.
func NewLLMService(ctx context.Context, cfg *config.LLMConfig, model string) (LLMServiceInterface, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("LLM_API_KEY not set for provider %q", cfg.Provider)
	}
	if model == "" {
		model = cfg.Model
	}

	switch cfg.Provider {
	case config.ProviderGemini, "":
		gemini, err := NewGeminiService(ctx, cfg, model)
		if err != nil {
			return nil, err
		}
		return gemini, nil
	case config.ProviderOpenRouter:
		return NewOpenRouterService(cfg, model), nil
	case config.ProviderOpenAI:
		return NewOpenAIService(cfg, model), nil
	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER %q", cfg.Provider)
	}
}
