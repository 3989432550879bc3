package entity

import "github.com/shopspring/decimal"

// AppSettings configuración global de la aplicación (singleton del estado).
// Las tasas se guardan como fracciones (0.1 = 10%).
type AppSettings struct {
	DefaultCurrency    string          `json:"defaultCurrency"`
	DefaultTaxRate     decimal.Decimal `json:"defaultTaxRate"`
	ProcessingFeeRate  decimal.Decimal `json:"processingFeeRate"`
	ProcessingFeeFixed decimal.Decimal `json:"processingFeeFixed"`
}

// DefaultSettings valores con los que se siembra el estado la primera vez:
// USD, IVA 10%, comisión 2.9% + $0.30.
func DefaultSettings() AppSettings {
	return AppSettings{
		DefaultCurrency:    "USD",
		DefaultTaxRate:     decimal.NewFromFloat(0.1),
		ProcessingFeeRate:  decimal.NewFromFloat(0.029),
		ProcessingFeeFixed: decimal.NewFromFloat(0.3),
	}
}
