package config

import (
	"sync"
	"time"
)

const (
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderOpenAI     = "openai"
)

var defaultModels = map[string]string{
	ProviderGemini:     "gemini-2.0-flash-001",
	ProviderOpenRouter: "openai/gpt-4o-mini",
	ProviderOpenAI:     "gpt-4o-mini",
}

// provider-specific key names accepted when LLM_API_KEY is empty
var apiKeyFallbacks = map[string]string{
	ProviderGemini:     "gemini_api_key",
	ProviderOpenRouter: "openrouter_api_key",
	ProviderOpenAI:     "openai_api_key",
}

type LLMConfig struct {
	Provider      string
	APIKey        string
	Model         string
	QuestionModel string
	BaseURL       string
	Timeout       time.Duration
	Temperature   float32
}

var (
	llmConfig *LLMConfig
	llmOnce   sync.Once
)

func LoadLLMConfig() *LLMConfig {
	llmOnce.Do(func() {
		s := source()
		provider := s.GetString("llm_provider")

		apiKey := s.GetString("llm_api_key")
		if apiKey == "" {
			if key, ok := apiKeyFallbacks[provider]; ok {
				apiKey = s.GetString(key)
			}
		}

		model := s.GetString("llm_model")
		if model == "" {
			model = defaultModels[provider]
		}
		questionModel := s.GetString("llm_question_model")
		if questionModel == "" {
			questionModel = model
		}

		llmConfig = &LLMConfig{
			Provider:      provider,
			APIKey:        apiKey,
			Model:         model,
			QuestionModel: questionModel,
			BaseURL:       s.GetString("llm_base_url"),
			Timeout:       s.GetDuration("llm_timeout"),
			Temperature:   float32(s.GetFloat64("llm_temperature")),
		}
	})
	return llmConfig
}
