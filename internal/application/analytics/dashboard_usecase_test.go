package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fiado-api/internal/application/analytics"
	"github.com/jhoicas/fiado-api/internal/domain/entity"
	"github.com/jhoicas/fiado-api/internal/domain/repository"
)

func dec(v string) decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		panic(err)
	}
	return d
}

type fakeAnalyticsRepo struct {
	totals repository.CustomerTotals
}

func (r *fakeAnalyticsRepo) GetCustomerTotals(context.Context) (repository.CustomerTotals, error) {
	return r.totals, nil
}

// fakeTxRepo filtra en memoria por el rango recibido, como haría la consulta
// SQL, y guarda el rango para verificar que el caso de uso pide el día
// calendario completo.
type fakeTxRepo struct {
	txs     []entity.Transaction
	gotFrom time.Time
	gotTo   time.Time
}

func (r *fakeTxRepo) Create(*entity.Transaction) error { return nil }

func (r *fakeTxRepo) ListByCustomer(string) ([]entity.Transaction, error) { return nil, nil }

func (r *fakeTxRepo) ListByDateRange(from, to time.Time) ([]entity.Transaction, error) {
	r.gotFrom, r.gotTo = from, to
	var out []entity.Transaction
	for _, tx := range r.txs {
		if !tx.Date.Before(from) && !tx.Date.After(to) {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (r *fakeTxRepo) ListRecent(int) ([]entity.Transaction, error) { return nil, nil }

// TestGetSummary_TotalesDeHoy escenario de referencia: una venta (500) y un
// abono (200) fechados hoy, una venta (300) de ayer → today_sales = 500 y
// today_collections = 200; la venta de ayer queda fuera.
func TestGetSummary_TotalesDeHoy(t *testing.T) {
	now := time.Now()
	ayer := now.AddDate(0, 0, -1)

	txRepo := &fakeTxRepo{txs: []entity.Transaction{
		{ID: "t1", Date: now, Type: entity.TransactionSale, Amount: dec("500")},
		{ID: "t2", Date: now, Type: entity.TransactionPayment, Amount: dec("200")},
		{ID: "t3", Date: ayer, Type: entity.TransactionSale, Amount: dec("300")},
	}}
	uc := analytics.NewDashboardUseCase(&fakeAnalyticsRepo{
		totals: repository.CustomerTotals{
			TotalOutstanding:  dec("1800"),
			TotalCustomers:    4,
			CustomersWithDues: 2,
		},
	}, txRepo)

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.True(t, summary.TodaySales.Equal(dec("500")), "la venta de ayer no debe sumar")
	assert.True(t, summary.TodayCollections.Equal(dec("200")))
	assert.True(t, summary.TotalOutstanding.Equal(dec("1800")))
	assert.Equal(t, 4, summary.TotalCustomers)
	assert.Equal(t, 2, summary.CustomersWithDues)
}

// TestGetSummary_DevolucionesExcluidas una devolución de hoy no entra ni en
// ventas ni en recaudos, aunque para el saldo pese igual que un abono.
func TestGetSummary_DevolucionesExcluidas(t *testing.T) {
	now := time.Now()
	txRepo := &fakeTxRepo{txs: []entity.Transaction{
		{ID: "t1", Date: now, Type: entity.TransactionSale, Amount: dec("500")},
		{ID: "t2", Date: now, Type: entity.TransactionPayment, Amount: dec("200")},
		{ID: "t3", Date: now, Type: entity.TransactionReturn, Amount: dec("150")},
	}}
	uc := analytics.NewDashboardUseCase(&fakeAnalyticsRepo{}, txRepo)

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.True(t, summary.TodaySales.Equal(dec("500")))
	assert.True(t, summary.TodayCollections.Equal(dec("200")),
		"la devolución no debe sumar a los recaudos")
}

// TestGetSummary_RangoDiaCompleto el rango consultado es el día calendario
// local completo, inclusive en ambos extremos.
func TestGetSummary_RangoDiaCompleto(t *testing.T) {
	txRepo := &fakeTxRepo{}
	uc := analytics.NewDashboardUseCase(&fakeAnalyticsRepo{}, txRepo)

	_, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	now := time.Now()
	inicio := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	assert.True(t, txRepo.gotFrom.Equal(inicio), "inicio del rango: %s", txRepo.gotFrom)
	assert.True(t, txRepo.gotTo.After(inicio.Add(24*time.Hour-time.Millisecond)),
		"el fin del rango debe cubrir hasta 23:59:59.999")
	assert.True(t, txRepo.gotTo.Before(inicio.Add(24*time.Hour)),
		"el fin del rango no debe pisar el día siguiente")
}

// TestGetSummary_DiaSinMovimientos sin movimientos hoy, los totales del día
// son cero (no nil).
func TestGetSummary_DiaSinMovimientos(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeAnalyticsRepo{}, &fakeTxRepo{})

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.True(t, summary.TodaySales.IsZero())
	assert.True(t, summary.TodayCollections.IsZero())
}
