package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/payment-terminal-api/internal/application/dto"
	"github.com/jhoicas/payment-terminal-api/internal/domain"
)

// respondError mapea los errores de dominio a la respuesta HTTP acordada.
// Los errores de validación llevan el campo que falló.
func respondError(c *fiber.Ctx, err error) error {
	if ve, ok := domain.AsValidation(err); ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: ve.Message, Field: ve.Field,
		})
	}
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrEmailNotVerified):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "EMAIL_NOT_VERIFIED", Message: err.Error()})
	case errors.Is(err, domain.ErrPaymentFailed):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "PAYMENT_FAILED", Message: err.Error()})
	case errors.Is(err, domain.ErrEmailSendFailed):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "EMAIL_FAILED", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
