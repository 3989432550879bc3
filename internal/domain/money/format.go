package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// Format renderiza un monto con el símbolo y la precisión declarada de la
// moneda, con separador de miles: Format(4700, "USD") -> "$4,700.00".
// Una moneda de 0 decimales nunca muestra fracción; una de 3 muestra
// exactamente 3 dígitos. El redondeo es al decimal declarado, no a 2 fijo.
func Format(amount decimal.Decimal, code string) string {
	cur := Lookup(code)
	rounded := amount.Round(int32(cur.Decimals))
	n := number.Decimal(rounded.InexactFloat64(),
		number.MinFractionDigits(cur.Decimals),
		number.MaxFractionDigits(cur.Decimals),
	)
	return printer.Sprintf("%s%v", cur.Symbol, n)
}

// MinorUnits convierte un monto en unidades mayores a la convención de
// unidades menores del procesador de pagos usando los decimales de la moneda:
// USD 10.50 -> 1050, JPY 500 -> 500, KWD 1.234 -> 1234. Generalizar esto con
// la tabla evita el clásico bug del "multiplicar por 100" con monedas de 0 o
// 3 decimales.
func MinorUnits(amount decimal.Decimal, code string) int64 {
	cur := Lookup(code)
	return amount.Shift(int32(cur.Decimals)).Round(0).IntPart()
}

// FromMinorUnits operación inversa a MinorUnits.
func FromMinorUnits(minor int64, code string) decimal.Decimal {
	cur := Lookup(code)
	return decimal.NewFromInt(minor).Shift(-int32(cur.Decimals))
}
