package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItemRequest línea de factura tal como llega del formulario. Quantity y
// Rate usan LooseDecimal; Amount no se acepta del cliente, siempre se deriva.
type LineItemRequest struct {
	ID          string       `json:"id,omitempty"`
	Description string       `json:"description"`
	Quantity    LooseDecimal `json:"quantity"`
	Rate        LooseDecimal `json:"rate"`
}

// BuildInvoiceRequest body para POST /api/invoices/preview y /generate.
// Currency y TaxRatePercent son overrides opcionales sobre los defaults de
// AppSettings.
type BuildInvoiceRequest struct {
	CompanyID      string            `json:"company_id"`
	ClientName     string            `json:"client_name"`
	ClientEmail    string            `json:"client_email"`
	ClientAddress  string            `json:"client_address,omitempty"`
	InvoiceNumber  string            `json:"invoice_number,omitempty"` // vacío = se genera
	DueDate        string            `json:"due_date,omitempty"`       // YYYY-MM-DD
	Currency       string            `json:"currency,omitempty"`
	TaxRatePercent *LooseDecimal     `json:"tax_rate_percent,omitempty"`
	Items          []LineItemRequest `json:"items"`
	Notes          string            `json:"notes,omitempty"`
}

// LineItemResponse línea con el monto derivado.
type LineItemResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvoiceResponse factura normalizada (preview, generación o borrador).
type InvoiceResponse struct {
	ID            string             `json:"id"`
	CompanyID     string             `json:"company_id"`
	CompanyName   string             `json:"company_name"`
	ClientName    string             `json:"client_name"`
	ClientEmail   string             `json:"client_email"`
	ClientAddress string             `json:"client_address,omitempty"`
	InvoiceNumber string             `json:"invoice_number"`
	DueDate       string             `json:"due_date,omitempty"`
	Currency      string             `json:"currency"`
	Items         []LineItemResponse `json:"items"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	TaxRate       decimal.Decimal    `json:"tax_rate"` // fracción
	Tax           decimal.Decimal    `json:"tax"`
	Total         decimal.Decimal    `json:"total"`
	TotalDisplay  string             `json:"total_display"` // formateado con la moneda
	Notes         string             `json:"notes,omitempty"`
	Status        string             `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
}

// DraftResponse borrador guardado.
type DraftResponse struct {
	ID      string          `json:"id"`
	SavedAt time.Time       `json:"saved_at"`
	Data    InvoiceResponse `json:"data"`
}

// DraftListResponse listado de borradores.
type DraftListResponse struct {
	Items []DraftResponse `json:"items"`
}

// ShareResponse enlaces de cobro para compartir una factura.
type ShareResponse struct {
	PaymentURL string `json:"payment_url"`
	ShortURL   string `json:"short_url"`
	QRPath     string `json:"qr_path"` // endpoint que sirve el PNG del QR
}

// EmailInvoiceRequest body para POST /api/invoices/:id/email.
type EmailInvoiceRequest struct {
	To         string `json:"to"`
	Subject    string `json:"subject,omitempty"` // vacío = asunto por defecto
	Message    string `json:"message"`
	AttachPDF  bool   `json:"attach_pdf"`
	SendCopy   bool   `json:"send_copy"` // cc a la empresa emisora
	IncludeURL bool   `json:"include_payment_link"`
}

// EmailInvoiceResponse resultado del envío.
type EmailInvoiceResponse struct {
	Sent       bool   `json:"sent"`
	PaymentURL string `json:"payment_url,omitempty"`
}
