package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una factura.
const (
	InvoiceStatusDraft   = "draft"
	InvoiceStatusSent    = "sent"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

// LineItem es una línea facturable. Amount siempre se deriva como
// Quantity * Rate; nunca se acepta un valor editado por el usuario.
type LineItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// Client datos del receptor de la factura.
type Client struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// InvoiceRecord es la forma normalizada de una factura generada. Se construye
// una sola vez (builder) y no se muta después de generada; corregirla implica
// crear un registro nuevo.
type InvoiceRecord struct {
	ID            string          `json:"id"`
	Company       *Company        `json:"company"`
	Client        Client          `json:"client"`
	InvoiceNumber string          `json:"invoiceNumber"`
	DueDate       string          `json:"dueDate"` // YYYY-MM-DD, vacío = sin vencimiento
	Currency      string          `json:"currency"`
	Items         []LineItem      `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxRate       decimal.Decimal `json:"taxRate"` // fracción (0.1 = 10%)
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	Notes         string          `json:"notes"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Draft factura guardada sin enviar. Lista append-only; solo el id es único.
type Draft struct {
	ID      string        `json:"id"`
	Data    InvoiceRecord `json:"data"`
	SavedAt time.Time     `json:"savedAt"`
}
