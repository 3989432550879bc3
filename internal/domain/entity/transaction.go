package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una transacción de pago.
const (
	TxStatusSucceeded = "succeeded"
	TxStatusFailed    = "failed"
)

// Métodos de pago del terminal.
const (
	PayMethodCard   = "card"
	PayMethodMobile = "mobile"
	PayMethodQR     = "qr"
	PayMethodLink   = "link"
)

// Transaction registro de un cobro procesado por el terminal. El log de
// transacciones es append-only: nunca se actualiza ni se borra.
type Transaction struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"companyId,omitempty"` // vacío en cobros sueltos del terminal
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Description   string          `json:"description"`
	CustomerName  string          `json:"customerName,omitempty"`
	CustomerEmail string          `json:"customerEmail,omitempty"`
	PaymentMethod string          `json:"paymentMethod"`
	Status        string          `json:"status"`
	Date          time.Time       `json:"date"`
	ProcessingFee decimal.Decimal `json:"processingFee"`
	TotalWithFees decimal.Decimal `json:"totalWithFees"`
	MethodDetails string          `json:"methodDetails,omitempty"` // ej: "Visa ****4242"
	IntentRef     string          `json:"intentRef,omitempty"`     // handle opaco del procesador
}
