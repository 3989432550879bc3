package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/payment-terminal-api/internal/application/billing"
	"github.com/jhoicas/payment-terminal-api/internal/infrastructure/share"
)

// PayHandler expone la página pública de pago: los datos de la factura y el
// QR del enlace. No requiere sesión; el ID de la factura es la capacidad.
type PayHandler struct {
	invoiceUC *billing.InvoiceUseCase
}

// NewPayHandler construye el handler inyectando el caso de uso.
func NewPayHandler(invoiceUC *billing.InvoiceUseCase) *PayHandler {
	return &PayHandler{invoiceUC: invoiceUC}
}

// Show godoc
// @Summary      Datos públicos de la factura para la página de pago
// @Tags         pay
// @Produce      json
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {object}  dto.DraftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /pay/{id} [get]
func (h *PayHandler) Show(c *fiber.Ctx) error {
	out, err := h.invoiceUC.Draft(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// QR godoc
// @Summary      Código QR del enlace de pago (PNG)
// @Tags         pay
// @Produce      image/png
// @Param        id    path   string  true   "ID de la factura"
// @Param        size  query  int     false  "Lado en píxeles"  default(256)
// @Success      200   {file}  binary
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /pay/{id}/qr [get]
func (h *PayHandler) QR(c *fiber.Ctx) error {
	id := c.Params("id")
	links, err := h.invoiceUC.Share(id)
	if err != nil {
		return respondError(c, err)
	}
	size := c.QueryInt("size", 256)
	if size < 64 || size > 1024 {
		size = 256
	}
	png, err := share.QRPNG(links.PaymentURL, size)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
