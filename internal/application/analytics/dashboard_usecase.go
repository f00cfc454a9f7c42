// Package analytics contiene el caso de uso del resumen del dashboard:
// agregados globales de clientes y totales del día en curso.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fiado-api/internal/application/dto"
	"github.com/jhoicas/fiado-api/internal/domain/entity"
	"github.com/jhoicas/fiado-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen de saldos y los totales del día.
//
// Los agregados de clientes los calcula la base de datos (SUM/COUNT vía
// AnalyticsRepository); los totales del día se suman aquí sobre el subconjunto
// de movimientos de hoy.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	txRepo        repository.TransactionRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	analyticsRepo repository.AnalyticsRepository,
	txRepo repository.TransactionRepository,
) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, txRepo: txRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Dos consultas en paralelo:
//  1. GetCustomerTotals       → saldo total, clientes, clientes con deuda
//  2. ListByDateRange(hoy)    → movimientos del día para ventas y recaudos
//
// "Hoy" es el día calendario local del servidor: 00:00:00.000 – 23:59:59.999,
// inclusive en ambos extremos.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	todayStart, todayEnd := todayRange(time.Now())

	type customersResult struct {
		totals repository.CustomerTotals
		err    error
	}
	type txsResult struct {
		txs []entity.Transaction
		err error
	}

	customersCh := make(chan customersResult, 1)
	txsCh := make(chan txsResult, 1)

	go func() {
		totals, err := uc.analyticsRepo.GetCustomerTotals(ctx)
		customersCh <- customersResult{totals, err}
	}()
	go func() {
		txs, err := uc.txRepo.ListByDateRange(todayStart, todayEnd)
		txsCh <- txsResult{txs, err}
	}()

	customers := <-customersCh
	today := <-txsCh

	if customers.err != nil {
		return nil, fmt.Errorf("dashboard: agregados de clientes: %w", customers.err)
	}
	if today.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos de hoy: %w", today.err)
	}

	sales, collections := dayTotals(today.txs)

	return &dto.DashboardSummaryDTO{
		TotalOutstanding:  customers.totals.TotalOutstanding,
		TotalCustomers:    customers.totals.TotalCustomers,
		CustomersWithDues: customers.totals.CustomersWithDues,
		TodaySales:        sales,
		TodayCollections:  collections,
	}, nil
}

// dayTotals suma los movimientos del día en dos agregados con nombre propio:
// ventas (solo tipo sale) y recaudos (solo tipo payment). Las devoluciones no
// entran en ninguno de los dos, aunque para el saldo pesen igual que un
// abono: la distinción es deliberada y está cubierta por tests.
func dayTotals(txs []entity.Transaction) (sales, collections decimal.Decimal) {
	sales, collections = decimal.Zero, decimal.Zero
	for _, tx := range txs {
		switch tx.Type {
		case entity.TransactionSale:
			sales = sales.Add(tx.Amount)
		case entity.TransactionPayment:
			collections = collections.Add(tx.Amount)
		}
	}
	return sales, collections
}

// todayRange devuelve el día calendario local que contiene a t:
// [00:00:00.000, 23:59:59.999...] inclusive en ambos extremos.
func todayRange(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end = start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}
