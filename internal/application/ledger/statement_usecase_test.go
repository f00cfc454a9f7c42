package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fiado-api/internal/application/dto"
	appledger "github.com/jhoicas/fiado-api/internal/application/ledger"
	"github.com/jhoicas/fiado-api/internal/domain"
	"github.com/jhoicas/fiado-api/internal/domain/entity"
	domledger "github.com/jhoicas/fiado-api/internal/domain/ledger"
)

type fakePDFGenerator struct {
	gotStatement domledger.Statement
}

func (g *fakePDFGenerator) GenerateStatementPDF(
	_ context.Context,
	_ *entity.Customer,
	st domledger.Statement,
) ([]byte, error) {
	g.gotStatement = st
	return []byte("%PDF-1.4 fake"), nil
}

func statementStore() *fakeStore {
	s := newStore("500")
	fecha := func(day int) time.Time {
		return time.Date(2026, time.March, day, 12, 0, 0, 0, time.UTC)
	}
	c := s.customers["cli-1"]
	c.OutstandingBalance = dec("500")
	s.customers["cli-1"] = c
	s.txs = []entity.Transaction{
		{ID: "t1", CustomerID: "cli-1", Date: fecha(1), Type: entity.TransactionSale, Amount: dec("1000"), Description: "Saree seda"},
		{ID: "t2", CustomerID: "cli-1", Date: fecha(2), Type: entity.TransactionPayment, Amount: dec("400"), PaymentMode: entity.PaymentModeCash},
		{ID: "t3", CustomerID: "cli-1", Date: fecha(3), Type: entity.TransactionReturn, Amount: dec("100"), Description: "Item Return"},
	}
	return s
}

// TestGetStatement_ColumnasDebeHaber el extracto separa débito (venta) de
// crédito (abono/devolución) y ancla el total adeudado al saldo actual.
func TestGetStatement_ColumnasDebeHaber(t *testing.T) {
	store := statementStore()
	uc := appledger.NewStatementUseCase(
		&fakeCustomerRepo{s: store}, &fakeTxRepo{s: store}, &fakePDFGenerator{},
	)

	st, err := uc.GetStatement("cli-1")
	require.NoError(t, err)

	assert.True(t, st.OpeningBalance.IsZero())
	assert.True(t, st.TotalDue.Equal(dec("500")))
	require.Len(t, st.Lines, 3)

	// Venta: débito, sin crédito.
	require.NotNil(t, st.Lines[0].Debit)
	assert.Nil(t, st.Lines[0].Credit)
	assert.True(t, st.Lines[0].Debit.Equal(dec("1000")))
	// Abono y devolución: crédito, sin débito.
	assert.Nil(t, st.Lines[1].Debit)
	require.NotNil(t, st.Lines[1].Credit)
	require.NotNil(t, st.Lines[2].Credit)
	// Saldos corridos 1000, 600, 500.
	assert.True(t, st.Lines[1].RunningBalance.Equal(dec("600")))
	assert.True(t, st.Lines[2].RunningBalance.Equal(dec("500")))
}

// TestGetStatement_ClienteInexistente cliente desconocido → not found, sin
// derivación.
func TestGetStatement_ClienteInexistente(t *testing.T) {
	store := statementStore()
	uc := appledger.NewStatementUseCase(
		&fakeCustomerRepo{s: store}, &fakeTxRepo{s: store}, &fakePDFGenerator{},
	)

	_, err := uc.GetStatement("no-existe")
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

// TestDownloadStatementPDF_PasaDerivacionAlGenerador el PDF recibe la misma
// derivación que la vista JSON y el filename sale del nombre del cliente.
func TestDownloadStatementPDF_PasaDerivacionAlGenerador(t *testing.T) {
	store := statementStore()
	gen := &fakePDFGenerator{}
	uc := appledger.NewStatementUseCase(
		&fakeCustomerRepo{s: store}, &fakeTxRepo{s: store}, gen,
	)

	pdf, filename, err := uc.DownloadStatementPDF(context.Background(), "cli-1")
	require.NoError(t, err)

	assert.NotEmpty(t, pdf)
	assert.Equal(t, "extracto_juluri_rani.pdf", filename)
	require.Len(t, gen.gotStatement.Lines, 3)
	assert.True(t, gen.gotStatement.OpeningBalance.IsZero())
}

// TestCustomerCreate_Defaults el alta inicia con saldo cero y el resumen de
// historial por defecto, y valida el teléfono.
func TestCustomerCreate_Defaults(t *testing.T) {
	store := &fakeStore{customers: map[string]entity.Customer{}}
	uc := appledger.NewCustomerUseCase(&fakeCustomerRepo{s: store})

	resp, err := uc.Create(dto.CreateCustomerRequest{
		Name:  "Rama Krishna",
		Phone: "9441906269",
	})
	require.NoError(t, err)
	assert.True(t, resp.OutstandingBalance.IsZero())
	assert.Equal(t, entity.DefaultSalesHistory, resp.SalesHistorySummary)

	// Teléfono corto: rechazado con el campo señalado.
	_, err = uc.Create(dto.CreateCustomerRequest{Name: "X", Phone: "12345"})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "phone", vErr.Field)

	// Nombre vacío: rechazado.
	_, err = uc.Create(dto.CreateCustomerRequest{Phone: "9441906269"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestCustomerUpdate_Parcial el update parcial no toca campos no enviados y
// nunca toca el saldo.
func TestCustomerUpdate_Parcial(t *testing.T) {
	store := statementStore()
	uc := appledger.NewCustomerUseCase(&fakeCustomerRepo{s: store})

	direccion := "17/131, Vijaya Hospital Lane"
	resp, err := uc.Update("cli-1", dto.UpdateCustomerRequest{Address: &direccion})
	require.NoError(t, err)

	assert.Equal(t, "Juluri Rani", resp.Name, "el nombre no enviado no debe cambiar")
	assert.Equal(t, direccion, resp.Address)
	assert.True(t, resp.OutstandingBalance.Equal(dec("500")), "el saldo nunca se edita por perfil")
}
