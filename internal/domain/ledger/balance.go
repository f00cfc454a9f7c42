// Package ledger implementa el motor de saldos del fiado: la regla de
// actualización de saldo al insertar un movimiento y las dos derivaciones de
// saldo corrido (extracto imprimible y tabla en pantalla).
//
// Todo el paquete es puro: recibe saldo actual + movimientos y devuelve la
// proyección derivada. Nada de aquí se persiste como estado autoritativo;
// se recalcula en cada vista y por eso se autocorrige si el saldo o el log
// cambian entre vistas.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fiado-api/internal/domain"
	"github.com/jhoicas/fiado-api/internal/domain/entity"
)

// NextBalance aplica la regla de actualización de saldo:
//
//	venta      → saldo + monto
//	abono      → saldo - monto
//	devolución → saldo - monto (crédito, misma polaridad que el abono)
//
// El monto debe ser estrictamente positivo y el tipo debe pertenecer a la
// variante cerrada; de lo contrario se devuelve el saldo sin tocar y un error.
func NextBalance(balance decimal.Decimal, txType entity.TransactionType, amount decimal.Decimal) (decimal.Decimal, error) {
	if !txType.IsValid() {
		return balance, domain.ErrInvalidInput
	}
	if !amount.GreaterThan(decimal.Zero) {
		return balance, domain.ErrInvalidAmount
	}
	return balance.Add(txType.Effect(amount)), nil
}

// NetEffect suma los efectos con signo de todos los movimientos.
// Es la base de la derivación del saldo de apertura: para un cliente que
// abrió en cero, NetEffect(historial) == saldo actual.
func NetEffect(txs []entity.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Type.Effect(tx.Amount))
	}
	return total
}
