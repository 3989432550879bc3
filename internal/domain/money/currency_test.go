package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/payment-terminal-api/internal/domain/money"
)

// ──────────────────────────────────────────────────────────────────────────────
// Lookup
// ──────────────────────────────────────────────────────────────────────────────

func TestLookup_CodigoConocido(t *testing.T) {
	cur := money.Lookup("EUR")
	assert.Equal(t, "EUR", cur.Code)
	assert.Equal(t, "€", cur.Symbol)
	assert.Equal(t, 2, cur.Decimals)
}

func TestLookup_InsensibleAMayusculas(t *testing.T) {
	assert.Equal(t, "JPY", money.Lookup("jpy").Code)
	assert.Equal(t, "KWD", money.Lookup(" kwd ").Code)
}

// Un código desconocido cae a la moneda por defecto (USD) sin fallar jamás.
func TestLookup_CodigoDesconocidoCaeAUSD(t *testing.T) {
	cur := money.Lookup("XYZ")
	require.Equal(t, "USD", cur.Code)
	assert.Equal(t, "$", cur.Symbol)

	assert.Equal(t, "USD", money.Lookup("").Code)
}

func TestIsSupported(t *testing.T) {
	assert.True(t, money.IsSupported("usd"))
	assert.True(t, money.IsSupported("CLP"))
	assert.False(t, money.IsSupported("XYZ"))
}

func TestSymbol_Fallback(t *testing.T) {
	assert.Equal(t, "₩", money.Symbol("KRW"))
	assert.Equal(t, "$", money.Symbol("NOPE"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Format: la precisión mostrada es la declarada por la moneda, no 2 fijo.
// ──────────────────────────────────────────────────────────────────────────────

func TestFormat_PrecisionPorMoneda(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		code   string
		want   string
	}{
		{"dos decimales con miles", decimal.NewFromInt(4700), "USD", "$4,700.00"},
		{"redondeo a dos decimales", decimal.NewFromFloat(1234.567), "EUR", "€1,234.57"},
		{"cero decimales sin fraccion", decimal.NewFromFloat(1500.75), "JPY", "¥1,501"},
		{"cero decimales won", decimal.NewFromInt(98000), "KRW", "₩98,000"},
		{"tres decimales exactos", decimal.NewFromFloat(12.5), "KWD", "د.ك12.500"},
		{"tres decimales bahrein", decimal.NewFromFloat(0.1), "BHD", ".د.ب0.100"},
		{"codigo desconocido usa USD", decimal.NewFromInt(10), "XYZ", "$10.00"},
		{"monto cero", decimal.Zero, "USD", "$0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, money.Format(tt.amount, tt.code))
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// MinorUnits: conversión a unidades menores según los decimales de la moneda.
// ──────────────────────────────────────────────────────────────────────────────

func TestMinorUnits_PorDecimalesDeLaMoneda(t *testing.T) {
	tests := []struct {
		amount decimal.Decimal
		code   string
		want   int64
	}{
		{decimal.NewFromFloat(10.50), "USD", 1050},
		{decimal.NewFromInt(500), "JPY", 500},     // 0 decimales: sin multiplicar
		{decimal.NewFromFloat(1.234), "KWD", 1234}, // 3 decimales
		{decimal.NewFromFloat(0.999), "USD", 100},  // redondea al centavo
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, money.MinorUnits(tt.amount, tt.code),
			"MinorUnits(%s, %s)", tt.amount, tt.code)
	}
}

func TestFromMinorUnits_EsInversa(t *testing.T) {
	amount := decimal.NewFromFloat(123.45)
	back := money.FromMinorUnits(money.MinorUnits(amount, "USD"), "USD")
	assert.True(t, amount.Equal(back), "esperado %s, obtenido %s", amount, back)

	assert.True(t, decimal.NewFromInt(500).Equal(money.FromMinorUnits(500, "VND")))
}
