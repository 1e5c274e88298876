package utils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/trip-planner-service/internal/pkg/errors"
)

type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

// ErrorResponse - тело ошибки. Поле detail дублирует сообщение:
// мобильный клиент читает только его.
type ErrorResponse struct {
	Error  *errors.AppError `json:"error"`
	Detail string           `json:"detail"`
}

type Meta struct {
	Total    int     `json:"total,omitempty"`
	Page     int     `json:"page,omitempty"`
	Limit    int     `json:"limit,omitempty"`
	TimeMSec float64 `json:"time_ms,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := err.(*errors.AppError); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error:  appErr,
			Detail: appErr.Message,
		})
	}

	// Unknown error - return 500
	return c.Status(500).JSON(ErrorResponse{
		Error:  errors.ErrInternalServer,
		Detail: errors.ErrInternalServer.Message,
	})
}
