package util

import (
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/prepmimo/backend/internal/apperror"
	"github.com/prepmimo/backend/internal/config"
	"github.com/prepmimo/backend/internal/response"
)

// SuccessResponseFormat describes a success envelope. Data is rendered under
// Key, or under "data" when Key is empty.
type SuccessResponseFormat struct {
	Code       int
	Message    string
	Key        string
	Data       any
	Pagination *response.Pagination
	Meta       any
}

type ErrorResponseFormat struct {
	Code       int
	Message    string
	DevMessage string
	Details    any
	Trace      string
}

type OrderedErrorResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Error      string `json:"error,omitempty"`
	DevMessage string `json:"dev_message,omitempty"`
	Details    any    `json:"details,omitempty"`
	Trace      string `json:"trace,omitempty"`
}

// SuccessResponse writes the standard success envelope.
func SuccessResponse(c *fiber.Ctx, params SuccessResponseFormat) error {
	body := fiber.Map{"success": true}
	if params.Message != "" {
		body["message"] = params.Message
	}
	if params.Data != nil {
		key := params.Key
		if key == "" {
			key = "data"
		}
		body[key] = params.Data
	}
	if params.Pagination != nil {
		body["pagination"] = params.Pagination
	}
	if params.Meta != nil {
		body["meta"] = params.Meta
	}

	code := params.Code
	if code == 0 {
		code = fiber.StatusOK
	}
	return c.Status(code).JSON(body)
}

// ErrorResponse writes the standard error envelope. The status comes from
// params.Code, or from the first error when Code is zero. Stack traces are
// only attached outside production.
func ErrorResponse(c *fiber.Ctx, params ErrorResponseFormat, errs ...error) error {
	var err error
	if len(errs) > 0 {
		err = errs[0]
	}

	body := OrderedErrorResponse{
		Success: false,
		Message: params.Message,
		Details: params.Details,
	}
	if err != nil {
		body.Error = err.Error()
	}

	if !config.LoadAppConfig().IsProduction() {
		if err != nil {
			body.Trace = string(debug.Stack())
		}
		if params.DevMessage != "" {
			body.DevMessage = params.DevMessage
		}
		if params.Trace != "" {
			body.Trace = params.Trace
		}
	}

	code := params.Code
	if code == 0 {
		code = fiber.StatusInternalServerError
		if err != nil {
			code = apperror.HTTPStatus(err)
		}
	}
	return c.Status(code).JSON(body)
}
