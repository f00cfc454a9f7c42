package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs sobre el conjunto completo de clientes más los totales del día
// calendario local en curso.
type DashboardSummaryDTO struct {
	// Agregados globales
	TotalOutstanding  decimal.Decimal `json:"total_outstanding"`   // Σ saldos de todos los clientes
	TotalCustomers    int             `json:"total_customers"`
	CustomersWithDues int             `json:"customers_with_dues"` // saldo > 0

	// Totales de hoy (00:00:00.000 – 23:59:59.999, hora local del servidor).
	// Dos agregados con nombre propio: las ventas solo suman tipo sale y los
	// recaudos solo tipo payment; las devoluciones no entran en ninguno.
	TodaySales       decimal.Decimal `json:"today_sales"`
	TodayCollections decimal.Decimal `json:"today_collections"`
}
