package billing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/payment-terminal-api/internal/domain/entity"
)

// IntentRequest datos para crear un intento de pago en el procesador.
// Amount va en unidades mayores; el adaptador convierte a unidades menores
// con la tabla de monedas.
type IntentRequest struct {
	Amount        decimal.Decimal
	Currency      string
	Description   string
	CustomerEmail string
	Metadata      map[string]string
}

// Intent handle opaco confirmable por el cliente.
type Intent struct {
	ID           string
	ClientSecret string
	Currency     string
	AmountMinor  int64
}

// ChargeRequest cobro directo del terminal.
type ChargeRequest struct {
	AmountMinor   int64
	Currency      string
	Description   string
	CustomerEmail string
	PaymentMethod string
	MethodDetails string
}

// ChargeResult referencia del cobro en el procesador.
type ChargeResult struct {
	Ref string
}

// PaymentGateway puerto del procesador de pagos. La operación no se reintenta
// automáticamente ni admite cancelación: iniciada, se espera su resolución.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, in IntentRequest) (*Intent, error)
	Charge(ctx context.Context, in ChargeRequest) (*ChargeResult, error)
}

// Message correo saliente. Attachment opcional (PDF de la factura).
type Message struct {
	From           string
	To             []string
	Subject        string
	Body           string
	AttachmentName string
	Attachment     []byte
}

// Mailer puerto de envío de correo. Un fallo se reporta como aviso
// transitorio; el reintento es manual.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// InvoicePDFGenerator genera la representación gráfica de la factura.
// paymentURL se incrusta como QR en el pie de página; vacío = sin QR.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, record *entity.InvoiceRecord, paymentURL string) ([]byte, error)
}
