package usecase

import (
	"strings"

	"github.com/jhoicas/payment-terminal-api/internal/application/dto"
	"github.com/jhoicas/payment-terminal-api/internal/application/store"
	"github.com/jhoicas/payment-terminal-api/internal/domain"
	"github.com/jhoicas/payment-terminal-api/internal/domain/entity"
)

// CompanyUseCase reglas de negocio para empresas: el almacén no valida nada
// más allá de presencia, la validación de entrada vive acá.
type CompanyUseCase struct {
	store *store.Store
}

// NewCompanyUseCase construye el caso de uso sobre el contenedor de estado.
func NewCompanyUseCase(st *store.Store) *CompanyUseCase {
	return &CompanyUseCase{store: st}
}

// Create valida nombre y email y agrega la empresa.
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.NewValidationError("name", "el nombre es obligatorio")
	}
	if strings.TrimSpace(in.Email) == "" {
		return nil, domain.NewValidationError("email", "el email es obligatorio")
	}
	company, err := uc.store.AddCompany(entity.Company{
		Name:             in.Name,
		Email:            in.Email,
		Address:          in.Address,
		Phone:            in.Phone,
		Website:          in.Website,
		TaxID:            in.TaxID,
		PaymentAccountID: in.PaymentAccountID,
	})
	if err != nil {
		return nil, err
	}
	resp := toCompanyResponse(company)
	return &resp, nil
}

// Update merge parcial. Id inexistente: no-op (found=false), no error.
func (uc *CompanyUseCase) Update(id string, in dto.UpdateCompanyRequest) (found bool, err error) {
	return uc.store.UpdateCompany(id, store.CompanyPatch{
		Name:             in.Name,
		Email:            in.Email,
		Address:          in.Address,
		Phone:            in.Phone,
		Website:          in.Website,
		TaxID:            in.TaxID,
		PaymentAccountID: in.PaymentAccountID,
	})
}

// Delete elimina la empresa (irreversible, sin cascada).
func (uc *CompanyUseCase) Delete(id string) (found bool, err error) {
	return uc.store.DeleteCompany(id)
}

// Toggle activa/desactiva la empresa (reversible).
func (uc *CompanyUseCase) Toggle(id string) (found bool, err error) {
	return uc.store.ToggleCompanyStatus(id)
}

// GetByID busca una empresa.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, ok := uc.store.Company(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	resp := toCompanyResponse(company)
	return &resp, nil
}

// List todas las empresas más el conteo de activas.
func (uc *CompanyUseCase) List() *dto.CompanyListResponse {
	companies := uc.store.Companies()
	items := make([]dto.CompanyResponse, 0, len(companies))
	active := 0
	for _, c := range companies {
		if c.IsActive {
			active++
		}
		items = append(items, toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{Items: items, ActiveCount: active}
}

func toCompanyResponse(c entity.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		ID:               c.ID,
		Name:             c.Name,
		Email:            c.Email,
		Address:          c.Address,
		Phone:            c.Phone,
		Website:          c.Website,
		TaxID:            c.TaxID,
		PaymentAccountID: c.PaymentAccountID,
		IsActive:         c.IsActive,
		CreatedAt:        c.CreatedAt,
		Stats: dto.CompanyStatsResponse{
			TotalRevenue: c.Stats.TotalRevenue,
			InvoiceCount: c.Stats.InvoiceCount,
			ClientCount:  c.Stats.ClientCount,
		},
	}
}
