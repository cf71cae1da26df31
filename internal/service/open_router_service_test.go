package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prepmimo/backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRouterService_GenerateText(t *testing.T) {
	var got struct {
		Model    string              `json:"model"`
		Messages []map[string]string `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"a\":1}"}}]}`))
	}))
	defer srv.Close()

	svc := NewOpenRouterService(&config.LLMConfig{APIKey: "secret", BaseURL: srv.URL}, "openai/gpt-4o-mini")
	text, err := svc.GenerateText(context.Background(), "be terse", "hello")
	require.NoError(t, err)

	assert.Equal(t, `{"a":1}`, text)
	assert.Equal(t, "openai/gpt-4o-mini", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0]["role"])
	assert.Equal(t, "hello", got.Messages[1]["content"])
}

func TestOpenRouterService_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"invalid key"}}`))
	}))
	defer srv.Close()

	svc := NewOpenRouterService(&config.LLMConfig{APIKey: "bad", BaseURL: srv.URL}, "m")
	_, err := svc.GenerateText(context.Background(), "", "hello")
	require.ErrorContains(t, err, "invalid key")
}

func TestOpenRouterService_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	svc := NewOpenRouterService(&config.LLMConfig{APIKey: "k", BaseURL: srv.URL}, "m")
	_, err := svc.GenerateText(context.Background(), "", "hello")
	require.ErrorContains(t, err, "no response")
}

func TestOpenRouterService_HonoursDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	svc := NewOpenRouterService(&config.LLMConfig{APIKey: "k", BaseURL: srv.URL}, "m")
	_, err := svc.GenerateText(ctx, "", "hello")
	require.Error(t, err)
	assert.ErrorIs(t, ctx.Err(), context.DeadlineExceeded)
}
