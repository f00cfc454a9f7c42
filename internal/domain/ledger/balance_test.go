package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fiado-api/internal/domain"
	"github.com/jhoicas/fiado-api/internal/domain/entity"
	"github.com/jhoicas/fiado-api/internal/domain/ledger"
)

func dec(v string) decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		panic(err)
	}
	return d
}

// TestNextBalance_Escenarios cubre la regla de actualización con los tres
// tipos de movimiento encadenados: venta 1000 sobre saldo 0, abono 400,
// devolución 100. El saldo final debe ser 500.
func TestNextBalance_Escenarios(t *testing.T) {
	balance := decimal.Zero

	balance, err := ledger.NextBalance(balance, entity.TransactionSale, dec("1000"))
	require.NoError(t, err)
	assert.True(t, balance.Equal(dec("1000")), "venta de 1000 sobre 0 debe dejar 1000, quedó %s", balance)

	balance, err = ledger.NextBalance(balance, entity.TransactionPayment, dec("400"))
	require.NoError(t, err)
	assert.True(t, balance.Equal(dec("600")), "abono de 400 sobre 1000 debe dejar 600, quedó %s", balance)

	balance, err = ledger.NextBalance(balance, entity.TransactionReturn, dec("100"))
	require.NoError(t, err)
	assert.True(t, balance.Equal(dec("500")), "devolución de 100 sobre 600 debe dejar 500, quedó %s", balance)
}

// TestNextBalance_MontoInvalido: montos cero o negativos se rechazan sin
// alterar el saldo.
func TestNextBalance_MontoInvalido(t *testing.T) {
	for _, monto := range []string{"0", "-1", "-500.25"} {
		balance, err := ledger.NextBalance(dec("300"), entity.TransactionSale, dec(monto))
		assert.ErrorIs(t, err, domain.ErrInvalidAmount, "monto %s", monto)
		assert.True(t, balance.Equal(dec("300")), "el saldo no debe cambiar con monto %s", monto)
	}
}

// TestNextBalance_TipoInvalido: un tipo fuera de la variante cerrada se
// rechaza.
func TestNextBalance_TipoInvalido(t *testing.T) {
	_, err := ledger.NextBalance(decimal.Zero, entity.TransactionType("refund"), dec("10"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestNextBalance_PropiedadSumaFirmada: para cualquier secuencia aplicada
// desde saldo 0, el saldo final es Σ(+venta) + Σ(-abono) + Σ(-devolución).
func TestNextBalance_PropiedadSumaFirmada(t *testing.T) {
	secuencia := []struct {
		tipo  entity.TransactionType
		monto string
	}{
		{entity.TransactionSale, "1500.50"},
		{entity.TransactionPayment, "200"},
		{entity.TransactionSale, "320.75"},
		{entity.TransactionReturn, "120.75"},
		{entity.TransactionPayment, "1000"},
		{entity.TransactionSale, "45"},
	}

	balance := decimal.Zero
	esperado := decimal.Zero
	for _, paso := range secuencia {
		var err error
		balance, err = ledger.NextBalance(balance, paso.tipo, dec(paso.monto))
		require.NoError(t, err)
		esperado = esperado.Add(paso.tipo.Effect(dec(paso.monto)))
	}
	assert.True(t, balance.Equal(esperado), "saldo final %s != suma firmada %s", balance, esperado)
	assert.True(t, balance.Equal(dec("545.50")))
}

// TestEffect: la polaridad centralizada del tipo de movimiento.
func TestEffect(t *testing.T) {
	monto := dec("250")
	assert.True(t, entity.TransactionSale.Effect(monto).Equal(dec("250")))
	assert.True(t, entity.TransactionPayment.Effect(monto).Equal(dec("-250")))
	assert.True(t, entity.TransactionReturn.Effect(monto).Equal(dec("-250")))
}
