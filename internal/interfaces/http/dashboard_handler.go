package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/payment-terminal-api/internal/application/usecase"
)

// DashboardHandler expone el resumen ejecutivo del terminal.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler inyectando el caso de uso.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen: ingresos, transacciones, empresas y borradores
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.uc.Summary())
}
