package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/payment-terminal-api/internal/application/dto"
	"github.com/jhoicas/payment-terminal-api/internal/application/store"
	"github.com/jhoicas/payment-terminal-api/internal/domain/entity"
	"github.com/jhoicas/payment-terminal-api/internal/domain/money"
)

// DashboardUseCase arma el resumen del tablero.
type DashboardUseCase struct {
	store *store.Store
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(st *store.Store) *DashboardUseCase {
	return &DashboardUseCase{store: st}
}

// Summary recorre el log de transacciones exitosas y cuenta empresas activas
// y borradores.
func (uc *DashboardUseCase) Summary() *dto.DashboardSummaryResponse {
	revenue := decimal.Zero
	fees := decimal.Zero
	count := 0
	for _, t := range uc.store.Transactions() {
		if t.Status != entity.TxStatusSucceeded {
			continue
		}
		revenue = revenue.Add(t.Amount)
		fees = fees.Add(t.ProcessingFee)
		count++
	}
	companies := uc.store.Companies()
	active := 0
	for _, c := range companies {
		if c.IsActive {
			active++
		}
	}
	currency := uc.store.Settings().DefaultCurrency
	return &dto.DashboardSummaryResponse{
		TotalRevenue:        revenue,
		TotalRevenueDisplay: money.Format(revenue, currency),
		TransactionCount:    count,
		CompanyCount:        len(companies),
		ActiveCompanyCount:  active,
		DraftCount:          len(uc.store.Drafts()),
		Fees:                fees,
	}
}
