package presenters

import (
	"Recipe-API/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, status int, message string) error {
	return c.Status(status).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	res := Response{
		Status:  false,
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
	}
	return c.Status(status).JSON(res)
}

// DomainError renders a domain failure as a plain string body, which is the
// observable contract of the recipe and review endpoints. Callers choose the
// status for missing entities because the original mapping is not uniform
// (404 on reads, 400 on delete/update).
func DomainError(c *fiber.Ctx, err error, notFoundStatus int) error {
	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		return c.Status(notFoundStatus).SendString(notFound.Message)
	}
	var invalid *domain.InvalidStateError
	if errors.As(err, &invalid) {
		return c.Status(fiber.StatusBadRequest).SendString(invalid.Message)
	}
	return c.Status(fiber.StatusBadRequest).SendString(err.Error())
}
