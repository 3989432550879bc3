package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/payment-terminal-api/internal/application/billing"
	"github.com/jhoicas/payment-terminal-api/internal/application/dto"
)

// PaymentHandler maneja cobros, intents y el historial de transacciones.
type PaymentHandler struct {
	uc *billing.PaymentUseCase
}

// NewPaymentHandler construye el handler inyectando el caso de uso.
func NewPaymentHandler(uc *billing.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Charge godoc
// @Summary      Procesar un cobro en el terminal
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChargeRequest  true  "Datos del cobro"
// @Success      201   {object}  dto.ChargeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/payments/charge [post]
func (h *PaymentHandler) Charge(c *fiber.Ctx) error {
	var in dto.ChargeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Charge(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateIntent godoc
// @Summary      Crear un intento de pago para confirmar del lado del cliente
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIntentRequest  true  "Monto y moneda"
// @Success      201   {object}  dto.CreateIntentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/payments/intents [post]
func (h *PaymentHandler) CreateIntent(c *fiber.Ctx) error {
	var in dto.CreateIntentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateIntent(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Transactions godoc
// @Summary      Historial de transacciones (más reciente primero)
// @Tags         payments
// @Produce      json
// @Success      200  {object}  dto.TransactionListResponse
// @Router       /api/transactions [get]
func (h *PaymentHandler) Transactions(c *fiber.Ctx) error {
	return c.JSON(h.uc.Transactions())
}
