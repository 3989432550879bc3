package dto

import "github.com/shopspring/decimal"

// UpdateSettingsRequest body para PUT /api/settings. Merge parcial: solo los
// campos presentes se aplican, el resto conserva su valor.
type UpdateSettingsRequest struct {
	DefaultCurrency    *string       `json:"default_currency,omitempty"`
	DefaultTaxRate     *LooseDecimal `json:"default_tax_rate,omitempty"`     // fracción
	ProcessingFeeRate  *LooseDecimal `json:"processing_fee_rate,omitempty"`  // fracción
	ProcessingFeeFixed *LooseDecimal `json:"processing_fee_fixed,omitempty"` // monto fijo
}

// SettingsResponse configuración vigente.
type SettingsResponse struct {
	DefaultCurrency    string          `json:"default_currency"`
	DefaultTaxRate     decimal.Decimal `json:"default_tax_rate"`
	ProcessingFeeRate  decimal.Decimal `json:"processing_fee_rate"`
	ProcessingFeeFixed decimal.Decimal `json:"processing_fee_fixed"`
}
