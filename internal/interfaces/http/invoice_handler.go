package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/payment-terminal-api/internal/application/billing"
	"github.com/jhoicas/payment-terminal-api/internal/application/dto"
)

// InvoiceHandler maneja la construcción, borradores, PDF y envío de facturas.
type InvoiceHandler struct {
	invoiceUC *billing.InvoiceUseCase
	emailUC   *billing.EmailUseCase
	pdfGen    billing.InvoicePDFGenerator
}

// NewInvoiceHandler construye el handler inyectando los casos de uso.
func NewInvoiceHandler(invoiceUC *billing.InvoiceUseCase, emailUC *billing.EmailUseCase, pdfGen billing.InvoicePDFGenerator) *InvoiceHandler {
	return &InvoiceHandler{invoiceUC: invoiceUC, emailUC: emailUC, pdfGen: pdfGen}
}

// Preview godoc
// @Summary      Previsualizar factura (sin validar ni persistir)
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BuildInvoiceRequest  true  "Datos de la factura"
// @Success      200   {object}  dto.InvoiceResponse
// @Router       /api/invoices/preview [post]
func (h *InvoiceHandler) Preview(c *fiber.Ctx) error {
	var in dto.BuildInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return c.JSON(h.invoiceUC.Preview(in))
}

// Generate godoc
// @Summary      Generar factura (valida y registra al cliente)
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BuildInvoiceRequest  true  "Datos de la factura"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/invoices/generate [post]
func (h *InvoiceHandler) Generate(c *fiber.Ctx) error {
	var in dto.BuildInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.invoiceUC.Generate(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SaveDraft godoc
// @Summary      Guardar borrador (siempre añade, sin validar)
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BuildInvoiceRequest  true  "Datos de la factura"
// @Success      201   {object}  dto.DraftResponse
// @Router       /api/invoices/drafts [post]
func (h *InvoiceHandler) SaveDraft(c *fiber.Ctx) error {
	var in dto.BuildInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.invoiceUC.SaveDraft(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Drafts godoc
// @Summary      Listar borradores
// @Tags         invoices
// @Produce      json
// @Success      200  {object}  dto.DraftListResponse
// @Router       /api/invoices/drafts [get]
func (h *InvoiceHandler) Drafts(c *fiber.Ctx) error {
	return c.JSON(h.invoiceUC.Drafts())
}

// Draft godoc
// @Summary      Obtener borrador por ID
// @Tags         invoices
// @Produce      json
// @Param        id   path  string  true  "ID del borrador o de la factura"
// @Success      200  {object}  dto.DraftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/drafts/{id} [get]
func (h *InvoiceHandler) Draft(c *fiber.Ctx) error {
	out, err := h.invoiceUC.Draft(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Share godoc
// @Summary      Obtener enlaces de pago de la factura
// @Tags         invoices
// @Produce      json
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {object}  dto.ShareResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/share [get]
func (h *InvoiceHandler) Share(c *fiber.Ctx) error {
	out, err := h.invoiceUC.Share(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Descargar la factura en PDF
// @Tags         invoices
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/pdf [get]
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	id := c.Params("id")
	record, err := h.invoiceUC.DraftRecord(id)
	if err != nil {
		return respondError(c, err)
	}
	share, err := h.invoiceUC.Share(id)
	if err != nil {
		return respondError(c, err)
	}
	data, err := h.pdfGen.GenerateInvoicePDF(c.Context(), record, share.PaymentURL)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+record.InvoiceNumber+`.pdf"`)
	return c.Send(data)
}

// Email godoc
// @Summary      Enviar la factura por correo
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de la factura"
// @Param        body  body  dto.EmailInvoiceRequest  true  "Destino y opciones"
// @Success      200   {object}  dto.EmailInvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/email [post]
func (h *InvoiceHandler) Email(c *fiber.Ctx) error {
	var in dto.EmailInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.emailUC.SendInvoice(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
