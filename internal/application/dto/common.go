package dto

import "github.com/shopspring/decimal"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"` // campo que falló, en errores de validación
}

// LooseDecimal decimal tolerante para campos numéricos de formularios.
// La política del editor es "nunca bloquear el tipeo": una entrada no numérica
// se convierte en 0 en lugar de rechazar la petición. Acepta números JSON y
// strings ("12.5", "" o "abc" -> 0).
type LooseDecimal struct {
	decimal.Decimal
}

// UnmarshalJSON coerciona entradas inválidas a cero, nunca retorna error.
func (ld *LooseDecimal) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		ld.Decimal = decimal.Zero
		return nil
	}
	ld.Decimal = d
	return nil
}

// MarshalJSON delega en decimal.
func (ld LooseDecimal) MarshalJSON() ([]byte, error) {
	return ld.Decimal.MarshalJSON()
}
