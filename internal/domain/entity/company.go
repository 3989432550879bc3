package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Company representa una empresa emisora de facturas.
type Company struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Email            string       `json:"email"`
	Address          string       `json:"address"`
	Phone            string       `json:"phone,omitempty"`
	Website          string       `json:"website,omitempty"`
	TaxID            string       `json:"taxId,omitempty"`
	PaymentAccountID string       `json:"paymentAccountId,omitempty"` // cuenta en el procesador de pagos
	IsActive         bool         `json:"isActive"`
	CreatedAt        time.Time    `json:"createdAt"`
	Stats            CompanyStats `json:"stats"`
}

// CompanyStats contadores agregados de la empresa. Se mantienen como contadores
// independientes: AddTransaction suma ingresos y facturas, RecordClient cuenta
// clientes distintos. No se recalculan desde las facturas.
type CompanyStats struct {
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	InvoiceCount int             `json:"invoiceCount"`
	ClientCount  int             `json:"clientCount"`
}

// ZeroStats contadores iniciales de una empresa recién creada.
func ZeroStats() CompanyStats {
	return CompanyStats{TotalRevenue: decimal.Zero}
}
