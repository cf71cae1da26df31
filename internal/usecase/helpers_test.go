package usecase

import (
	"testing"

	"github.com/prepmimo/backend/internal/logger"
	"github.com/prepmimo/backend/internal/service/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = prev })
	return logs
}

func newMockLLM(t *testing.T) *mocks.MockLLMServiceInterface {
	t.Helper()
	llm := mocks.NewMockLLMServiceInterface(gomock.NewController(t))
	llm.EXPECT().Name().Return("mock").AnyTimes()
	return llm
}
