package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prepmimo/backend/internal/config"
	"github.com/prepmimo/backend/internal/database"
	"github.com/prepmimo/backend/internal/domain/fiber/handler"
	"github.com/prepmimo/backend/internal/logger"
	"github.com/prepmimo/backend/internal/metrics"
	"github.com/prepmimo/backend/internal/middleware"
	"github.com/prepmimo/backend/internal/repository"
	"github.com/prepmimo/backend/internal/service"
	"github.com/prepmimo/backend/internal/usecase"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	appConfig := config.LoadAppConfig()
	llmConfig := config.LoadLLMConfig()

	db, err := database.Connect(config.LoadDBConfig(), appConfig.IsProduction())
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	feedbackLLM, err := service.NewLLMService(ctx, llmConfig, llmConfig.Model)
	if err != nil {
		return err
	}
	questionLLM, err := service.NewLLMService(ctx, llmConfig, llmConfig.QuestionModel)
	if err != nil {
		return err
	}

	app := newApp(appConfig, db, feedbackLLM, questionLLM)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running",
			zap.String("addr", appConfig.Port),
			zap.String("env", appConfig.Env),
			zap.String("llm_provider", feedbackLLM.Name()),
		)
		errCh <- app.Listen(appConfig.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	return nil
}

// newApp wires middleware, operational endpoints and API routes.
func newApp(appConfig *config.AppConfig, db *gorm.DB, feedbackLLM, questionLLM service.LLMServiceInterface) *fiber.App {
	llmConfig := config.LoadLLMConfig()
	feedbackConfig := config.LoadFeedbackConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"success": false, "message": message, "error": message})
		},
	})
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	app.Use(healthcheck.New(healthcheck.Config{
		ReadinessProbe: func(c *fiber.Ctx) bool {
			sqlDB, err := db.DB()
			return err == nil && sqlDB.PingContext(c.UserContext()) == nil
		},
	}))
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	app.Get("/metrics", metrics.MetricsHandler())

	app.Use(middleware.RateLimiter(appConfig.RateLimitMax, appConfig.RateLimitWindow))

	feedbackUC := usecase.NewFeedbackUsecase(
		usecase.NewFeedbackGenerator(feedbackLLM, llmConfig.Timeout, feedbackConfig.MaxTranscriptChars),
		repository.NewFeedbackRepository(db),
	)
	interviewUC := usecase.NewInterviewUsecase(questionLLM, llmConfig.Timeout, repository.NewInterviewRepository(db))

	handler.NewFeedbackHandler(feedbackUC, appConfig.GenerateRateLimitMax).RegisterRoutes(app)
	handler.NewInterviewHandler(interviewUC, appConfig.GenerateRateLimitMax).RegisterRoutes(app)

	return app
}
