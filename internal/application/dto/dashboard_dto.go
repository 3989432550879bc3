package dto

import "github.com/shopspring/decimal"

// DashboardSummaryResponse vista agregada para el tablero: los ingresos del
// resumen se derivan del log de transacciones; los contadores por empresa son
// los mantenidos en sus Stats.
type DashboardSummaryResponse struct {
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	TotalRevenueDisplay string          `json:"total_revenue_display"`
	TransactionCount    int             `json:"transaction_count"`
	CompanyCount        int             `json:"company_count"`
	ActiveCompanyCount  int             `json:"active_company_count"`
	DraftCount          int             `json:"draft_count"`
	Fees                decimal.Decimal `json:"fees_collected"`
}
