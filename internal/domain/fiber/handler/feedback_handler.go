package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prepmimo/backend/internal/apperror"
	"github.com/prepmimo/backend/internal/dto"
	"github.com/prepmimo/backend/internal/middleware"
	"github.com/prepmimo/backend/internal/usecase"
	"github.com/prepmimo/backend/internal/util"
)

type FeedbackHandler struct {
	uc            *usecase.FeedbackUsecase
	generateLimit int
}

func NewFeedbackHandler(uc *usecase.FeedbackUsecase, generateLimit int) *FeedbackHandler {
	return &FeedbackHandler{uc: uc, generateLimit: generateLimit}
}

func (h *FeedbackHandler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Post("/feedback", middleware.RateLimiter(h.generateLimit, time.Minute), h.Create)
	api.Get("/feedback", h.Get)
}

func (h *FeedbackHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	feedback, err := h.uc.Create(c.UserContext(), req)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    apperror.HTTPStatus(err),
			Message: "failed to generate feedback",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Key:  "feedbackData",
		Data: dto.NewFeedbackDTO(feedback),
	})
}

func (h *FeedbackHandler) Get(c *fiber.Ctx) error {
	feedback, err := h.uc.Get(c.UserContext(), c.Query("interviewId"), c.Query("userId"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    apperror.HTTPStatus(err),
			Message: "failed to get feedback",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Key:  "feedbackData",
		Data: dto.NewFeedbackDTO(feedback),
	})
}
