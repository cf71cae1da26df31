package service

import (
	"context"
	"fmt"

	"github.com/prepmimo/backend/internal/config"
	openai "github.com/sashabaranov/go-openai"
)

type OpenAIService struct {
	client      *openai.Client
	Model       string
	Temperature float32
}

func NewOpenAIService(cfg *config.LLMConfig, model string) *OpenAIService {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	return &OpenAIService{
		client:      openai.NewClientWithConfig(clientConfig),
		Model:       model,
		Temperature: cfg.Temperature,
	}
}

func (s *OpenAIService) Name() string {
	return config.ProviderOpenAI
}

func (s *OpenAIService) GenerateText(ctx context.Context, system, prompt string) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if system != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: system})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: prompt})

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.Model,
		Messages:    messages,
		Temperature: s.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}
