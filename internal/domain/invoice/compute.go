// Package invoice implementa el cálculo de una factura: monto por línea,
// subtotal, impuesto y total, además de la comisión de procesamiento del
// terminal de pagos.
package invoice

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/payment-terminal-api/internal/domain/entity"
)

// ItemAmount deriva el monto de una línea: cantidad * tarifa. El monto de una
// línea nunca es editable; se recalcula en cada cambio de cualquiera de los
// dos operandos.
func ItemAmount(quantity, rate decimal.Decimal) decimal.Decimal {
	return quantity.Mul(rate)
}

// NormalizeItems re-deriva el Amount de cada línea a partir de Quantity y
// Rate, descartando cualquier monto que haya llegado del cliente. Cantidades
// o tarifas negativas se tratan como 0 (política "nunca bloquear el tipeo").
func NormalizeItems(items []entity.LineItem) []entity.LineItem {
	out := make([]entity.LineItem, len(items))
	for i, it := range items {
		if it.Quantity.IsNegative() {
			it.Quantity = decimal.Zero
		}
		if it.Rate.IsNegative() {
			it.Rate = decimal.Zero
		}
		it.Amount = ItemAmount(it.Quantity, it.Rate)
		out[i] = it
	}
	return out
}

// Subtotal suma los montos de todas las líneas. Lista vacía -> 0.
func Subtotal(items []entity.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Amount)
	}
	return sum
}

// ApplyTax calcula impuesto y total a partir del subtotal y la tasa en
// porcentaje: tax = subtotal * pct/100, total = subtotal + tax.
// Una tasa negativa se ajusta a 0; no hay tope superior (el 0–100 de la UI es
// una sugerencia, no una restricción).
func ApplyTax(subtotal, taxRatePercent decimal.Decimal) (tax, total decimal.Decimal) {
	if taxRatePercent.IsNegative() {
		taxRatePercent = decimal.Zero
	}
	tax = subtotal.Mul(taxRatePercent).Div(decimal.NewFromInt(100))
	total = subtotal.Add(tax)
	return tax, total
}

// Totals calcula subtotal, impuesto y total de una lista de líneas ya
// normalizadas. taxRate viene como fracción (0.1 = 10%).
func Totals(items []entity.LineItem, taxRate decimal.Decimal) (subtotal, tax, total decimal.Decimal) {
	subtotal = Subtotal(items)
	tax, total = ApplyTax(subtotal, taxRate.Mul(decimal.NewFromInt(100)))
	return subtotal, tax, total
}

// ProcessingFee comisión del procesador: monto*tasa + fijo. Solo aplica al
// flujo del terminal de pagos, nunca a la factura en sí.
func ProcessingFee(amount, rate, fixed decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Add(fixed)
}

// TotalWithFees monto a cobrar incluyendo la comisión de procesamiento.
func TotalWithFees(amount, rate, fixed decimal.Decimal) decimal.Decimal {
	return amount.Add(ProcessingFee(amount, rate, fixed))
}
