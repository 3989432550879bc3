package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChargeRequest body para POST /api/payments/charge (terminal).
type ChargeRequest struct {
	Amount        LooseDecimal `json:"amount"`
	Currency      string       `json:"currency,omitempty"` // vacío = default de settings
	Description   string       `json:"description"`
	CustomerName  string       `json:"customer_name,omitempty"`
	CustomerEmail string       `json:"customer_email,omitempty"`
	PaymentMethod string       `json:"payment_method"`
	MethodDetails string       `json:"method_details,omitempty"`
	CompanyID     string       `json:"company_id,omitempty"` // acredita estadísticas de la empresa
}

// ChargeResponse transacción registrada tras un cobro exitoso.
type ChargeResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Display     string              `json:"display"` // monto formateado para el recibo
}

// TransactionResponse transacción del log.
type TransactionResponse struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"company_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Description   string          `json:"description"`
	CustomerName  string          `json:"customer_name,omitempty"`
	CustomerEmail string          `json:"customer_email,omitempty"`
	PaymentMethod string          `json:"payment_method"`
	Status        string          `json:"status"`
	Date          time.Time       `json:"date"`
	ProcessingFee decimal.Decimal `json:"processing_fee"`
	TotalWithFees decimal.Decimal `json:"total_with_fees"`
	MethodDetails string          `json:"method_details,omitempty"`
}

// TransactionListResponse log de transacciones (append-only).
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
}

// CreateIntentRequest body para POST /api/payments/intents.
type CreateIntentRequest struct {
	Amount        LooseDecimal      `json:"amount"` // unidades mayores
	Currency      string            `json:"currency,omitempty"`
	Description   string            `json:"description"`
	CustomerEmail string            `json:"customer_email,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// CreateIntentResponse handle confirmable por el cliente.
type CreateIntentResponse struct {
	IntentID     string `json:"intent_id"`
	ClientSecret string `json:"client_secret"`
	Currency     string `json:"currency"`     // moneda final (con fallback aplicado)
	AmountMinor  int64  `json:"amount_minor"` // unidades menores enviadas al procesador
}
