package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType variante cerrada del tipo de movimiento del ledger.
type TransactionType string

const (
	TransactionSale    TransactionType = "sale"    // venta a crédito: aumenta la deuda
	TransactionPayment TransactionType = "payment" // abono del cliente: reduce la deuda
	TransactionReturn  TransactionType = "return"  // devolución de mercancía: reduce la deuda
)

// IsValid indica si el tipo pertenece a la variante cerrada.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionSale, TransactionPayment, TransactionReturn:
		return true
	}
	return false
}

// Effect devuelve el delta con signo que el movimiento aplica al saldo:
// +amount para venta, -amount para abono o devolución. Toda la aritmética
// del ledger pasa por aquí; no hay comparaciones de strings regadas.
func (t TransactionType) Effect(amount decimal.Decimal) decimal.Decimal {
	if t == TransactionSale {
		return amount
	}
	return amount.Neg()
}

// Modos de pago aceptados en abonos.
const (
	PaymentModeCash         = "Cash"
	PaymentModeBankTransfer = "Bank Transfer"
	PaymentModeUPI          = "UPI"
)

// IsValidPaymentMode valida el modo de pago de un abono.
func IsValidPaymentMode(mode string) bool {
	switch mode {
	case PaymentModeCash, PaymentModeBankTransfer, PaymentModeUPI:
		return true
	}
	return false
}

// Transaction movimiento inmutable del ledger de un cliente.
// Se crea únicamente vía la operación de alta (inserción + ajuste de saldo
// en una sola transacción); nunca se actualiza ni se borra.
type Transaction struct {
	ID          string
	CustomerID  string
	Date        time.Time
	Type        TransactionType
	Amount      decimal.Decimal // siempre > 0; el signo lo aporta Effect
	Description string

	// Opcionales según el tipo de movimiento.
	Quantity     decimal.Decimal // ventas
	Rate         decimal.Decimal // ventas
	PaymentMode  string          // abonos: Cash | Bank Transfer | UPI
	ReturnReason string          // devoluciones
}
