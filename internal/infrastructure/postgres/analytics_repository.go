package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/fiado-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para los agregados del dashboard.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetCustomerTotals devuelve deuda total, número de clientes y clientes con saldo pendiente.
// Usa COALESCE para devolver cero si no hay clientes registrados.
func (r *AnalyticsRepo) GetCustomerTotals(ctx context.Context) (repository.CustomerTotals, error) {
	const query = `
	SELECT
	    COALESCE(SUM(outstanding_balance), 0)                      AS total_outstanding,
	    COUNT(*)                                                   AS total_customers,
	    COUNT(*) FILTER (WHERE outstanding_balance > 0)            AS customers_with_dues
	FROM customers`

	var totals repository.CustomerTotals
	err := r.pool.QueryRow(ctx, query).Scan(
		&totals.TotalOutstanding,
		&totals.TotalCustomers,
		&totals.CustomersWithDues,
	)
	if err != nil {
		return repository.CustomerTotals{}, fmt.Errorf("analytics.GetCustomerTotals: %w", err)
	}
	return totals, nil
}
