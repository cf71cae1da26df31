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

type InterviewHandler struct {
	uc            *usecase.InterviewUsecase
	generateLimit int
}

func NewInterviewHandler(uc *usecase.InterviewUsecase, generateLimit int) *InterviewHandler {
	return &InterviewHandler{uc: uc, generateLimit: generateLimit}
}

func (h *InterviewHandler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Get("/vapi/generate", h.Hello)
	api.Post("/vapi/generate", middleware.RateLimiter(h.generateLimit, time.Minute), h.Generate)
	api.Get("/interview", h.List)
	api.Get("/interview/:id", h.Get)
}

func (h *InterviewHandler) Hello(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "hello",
	})
}

func (h *InterviewHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	interview, err := h.uc.Generate(c.UserContext(), req)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    apperror.HTTPStatus(err),
			Message: "failed to generate interview",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Key:  "interView",
		Data: interview,
	})
}

func (h *InterviewHandler) List(c *fiber.Ctx) error {
	interviews, pagination, err := h.uc.ListByUser(c.UserContext(), c.Query("userId"), c.QueryInt("page"), c.QueryInt("pageSize"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    apperror.HTTPStatus(err),
			Message: "failed to get interviews",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Key:        "interviews",
		Data:       interviews,
		Pagination: pagination,
	})
}

func (h *InterviewHandler) Get(c *fiber.Ctx) error {
	interview, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    apperror.HTTPStatus(err),
			Message: "failed to get interview",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Key:  "interView",
		Data: interview,
	})
}
