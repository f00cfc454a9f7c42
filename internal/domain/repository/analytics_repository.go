package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// CustomerTotals agregados sobre el conjunto completo de clientes.
type CustomerTotals struct {
	TotalOutstanding  decimal.Decimal // Σ saldos pendientes (con signo)
	TotalCustomers    int
	CustomersWithDues int // clientes con saldo > 0
}

// AnalyticsRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// GetCustomerTotals agrega saldo total pendiente, conteo de clientes y
	// conteo de clientes con deuda. Usa COALESCE para devolver cero sin filas.
	GetCustomerTotals(ctx context.Context) (CustomerTotals, error)
}
