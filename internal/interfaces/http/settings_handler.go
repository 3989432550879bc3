package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/payment-terminal-api/internal/application/dto"
	"github.com/jhoicas/payment-terminal-api/internal/application/usecase"
)

// SettingsHandler maneja la configuración de la aplicación.
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler inyectando el caso de uso.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener configuración
// @Tags         settings
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.uc.Get())
}

// Update godoc
// @Summary      Actualizar configuración (merge parcial)
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateSettingsRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings [put]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
