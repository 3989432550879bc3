package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCompanyRequest body para POST /api/companies.
type CreateCompanyRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Address          string `json:"address"`
	Phone            string `json:"phone,omitempty"`
	Website          string `json:"website,omitempty"`
	TaxID            string `json:"tax_id,omitempty"`
	PaymentAccountID string `json:"payment_account_id,omitempty"`
}

// UpdateCompanyRequest body para PUT /api/companies/:id. Todos los campos
// son opcionales: solo los presentes se fusionan (merge parcial). El id, la
// fecha de creación y los contadores nunca se tocan por esta vía.
type UpdateCompanyRequest struct {
	Name             *string `json:"name,omitempty"`
	Email            *string `json:"email,omitempty"`
	Address          *string `json:"address,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	Website          *string `json:"website,omitempty"`
	TaxID            *string `json:"tax_id,omitempty"`
	PaymentAccountID *string `json:"payment_account_id,omitempty"`
}

// CompanyResponse empresa en respuestas.
type CompanyResponse struct {
	ID               string               `json:"id"`
	Name             string               `json:"name"`
	Email            string               `json:"email"`
	Address          string               `json:"address"`
	Phone            string               `json:"phone,omitempty"`
	Website          string               `json:"website,omitempty"`
	TaxID            string               `json:"tax_id,omitempty"`
	PaymentAccountID string               `json:"payment_account_id,omitempty"`
	IsActive         bool                 `json:"is_active"`
	CreatedAt        time.Time            `json:"created_at"`
	Stats            CompanyStatsResponse `json:"stats"`
}

// CompanyStatsResponse contadores agregados de la empresa.
type CompanyStatsResponse struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	InvoiceCount int             `json:"invoice_count"`
	ClientCount  int             `json:"client_count"`
}

// CompanyListResponse listado de empresas.
type CompanyListResponse struct {
	Items       []CompanyResponse `json:"items"`
	ActiveCount int               `json:"active_count"`
}
