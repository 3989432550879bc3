// Package billing construye el registro normalizado de una factura y orquesta
// su envío por correo, su cobro en el terminal y sus enlaces de pago.
package billing

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/payment-terminal-api/internal/domain"
	"github.com/jhoicas/payment-terminal-api/internal/domain/entity"
	domInvoice "github.com/jhoicas/payment-terminal-api/internal/domain/invoice"
	"github.com/jhoicas/payment-terminal-api/internal/domain/money"
)

// Patrón estándar de email para el chequeo de formato del receptor.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// BuildOverrides overrides opcionales sobre los defaults de AppSettings.
type BuildOverrides struct {
	InvoiceNumber  string
	DueDate        string
	Currency       string
	TaxRatePercent *decimal.Decimal // nil = usar el default de settings
	Notes          string
}

// InvoiceBuilder arma el InvoiceRecord normalizado a partir de empresa,
// cliente, líneas y configuración. Sin efectos secundarios: persistir como
// borrador es una acción explícita del caller.
type InvoiceBuilder struct{}

// NewInvoiceBuilder construye el builder.
func NewInvoiceBuilder() *InvoiceBuilder { return &InvoiceBuilder{} }

// Build normaliza las líneas (amount siempre derivado), resuelve moneda y
// tasa desde settings salvo override, calcula los totales y genera un número
// de factura por defecto basado en tiempo si no se indicó uno.
func (b *InvoiceBuilder) Build(
	company *entity.Company,
	client entity.Client,
	items []entity.LineItem,
	settings entity.AppSettings,
	ov BuildOverrides,
) *entity.InvoiceRecord {
	currency := ov.Currency
	if currency == "" {
		currency = settings.DefaultCurrency
	}
	currency = money.Lookup(currency).Code

	taxPercent := settings.DefaultTaxRate.Mul(decimal.NewFromInt(100))
	if ov.TaxRatePercent != nil {
		taxPercent = *ov.TaxRatePercent
	}

	number := ov.InvoiceNumber
	if number == "" {
		number = fmt.Sprintf("INV-%d", time.Now().UnixMilli())
	}

	normalized := domInvoice.NormalizeItems(items)
	for i := range normalized {
		if normalized[i].ID == "" {
			normalized[i].ID = uuid.New().String()
		}
	}
	subtotal := domInvoice.Subtotal(normalized)
	tax, total := domInvoice.ApplyTax(subtotal, taxPercent)

	return &entity.InvoiceRecord{
		ID:            uuid.New().String(),
		Company:       company,
		Client:        client,
		InvoiceNumber: number,
		DueDate:       ov.DueDate,
		Currency:      currency,
		Items:         normalized,
		Subtotal:      subtotal,
		TaxRate:       taxPercent.Div(decimal.NewFromInt(100)),
		Tax:           tax,
		Total:         total,
		Notes:         ov.Notes,
		Status:        entity.InvoiceStatusDraft,
		CreatedAt:     time.Now(),
	}
}

// ValidateForGenerate decide si el registro está listo para generarse:
// empresa seleccionada, nombre y email del cliente (con chequeo de formato) y
// descripción en cada línea. Devuelve un ValidationError que nombra la
// primera condición que falla. El preview no pasa por esta validación.
func (b *InvoiceBuilder) ValidateForGenerate(record *entity.InvoiceRecord) error {
	if record.Company == nil || record.Company.ID == "" {
		return domain.NewValidationError("company", "seleccione una empresa")
	}
	if record.Client.Name == "" {
		return domain.NewValidationError("client_name", "el nombre del cliente es obligatorio")
	}
	if record.Client.Email == "" {
		return domain.NewValidationError("client_email", "el email del cliente es obligatorio")
	}
	if !emailPattern.MatchString(record.Client.Email) {
		return domain.NewValidationError("client_email", "formato de email inválido")
	}
	for _, it := range record.Items {
		if it.Description == "" {
			return domain.NewValidationError("item_description", "cada línea necesita una descripción")
		}
	}
	return nil
}
