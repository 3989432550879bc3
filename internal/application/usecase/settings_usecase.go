package usecase

import (
	"github.com/jhoicas/payment-terminal-api/internal/application/dto"
	"github.com/jhoicas/payment-terminal-api/internal/application/store"
	"github.com/jhoicas/payment-terminal-api/internal/domain"
	"github.com/jhoicas/payment-terminal-api/internal/domain/entity"
	"github.com/jhoicas/payment-terminal-api/internal/domain/money"
)

// SettingsUseCase lectura y merge parcial de la configuración global.
type SettingsUseCase struct {
	store *store.Store
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(st *store.Store) *SettingsUseCase {
	return &SettingsUseCase{store: st}
}

// Get configuración vigente.
func (uc *SettingsUseCase) Get() *dto.SettingsResponse {
	return toSettingsResponse(uc.store.Settings())
}

// Update aplica solo los campos presentes. La moneda por defecto debe existir
// en la tabla; las tasas negativas se rechazan.
func (uc *SettingsUseCase) Update(in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	patch := store.SettingsPatch{}
	if in.DefaultCurrency != nil {
		if !money.IsSupported(*in.DefaultCurrency) {
			return nil, domain.NewValidationError("default_currency", "moneda no soportada")
		}
		code := money.Lookup(*in.DefaultCurrency).Code
		patch.DefaultCurrency = &code
	}
	if in.DefaultTaxRate != nil {
		if in.DefaultTaxRate.IsNegative() {
			return nil, domain.NewValidationError("default_tax_rate", "la tasa no puede ser negativa")
		}
		patch.DefaultTaxRate = &in.DefaultTaxRate.Decimal
	}
	if in.ProcessingFeeRate != nil {
		if in.ProcessingFeeRate.IsNegative() {
			return nil, domain.NewValidationError("processing_fee_rate", "la tasa no puede ser negativa")
		}
		patch.ProcessingFeeRate = &in.ProcessingFeeRate.Decimal
	}
	if in.ProcessingFeeFixed != nil {
		if in.ProcessingFeeFixed.IsNegative() {
			return nil, domain.NewValidationError("processing_fee_fixed", "el fijo no puede ser negativo")
		}
		patch.ProcessingFeeFixed = &in.ProcessingFeeFixed.Decimal
	}
	settings, err := uc.store.UpdateSettings(patch)
	if err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

func toSettingsResponse(s entity.AppSettings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		DefaultCurrency:    s.DefaultCurrency,
		DefaultTaxRate:     s.DefaultTaxRate,
		ProcessingFeeRate:  s.ProcessingFeeRate,
		ProcessingFeeFixed: s.ProcessingFeeFixed,
	}
}
