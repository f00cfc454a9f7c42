package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest alta de movimiento (venta, abono o devolución).
// La fecha llega como ISO-8601; si viene vacía se usa el momento del alta.
type CreateTransactionRequest struct {
	CustomerID  string          `json:"customer_id"`
	Type        string          `json:"type"` // sale | payment | return
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`

	Quantity     decimal.Decimal `json:"quantity"`
	Rate         decimal.Decimal `json:"rate"`
	PaymentMode  string          `json:"payment_mode"`  // abonos
	ReturnReason string          `json:"return_reason"` // devoluciones
}

// TransactionResponse representación HTTP del movimiento.
type TransactionResponse struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customer_id"`
	Type        string          `json:"type"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`

	Quantity     *decimal.Decimal `json:"quantity,omitempty"`
	Rate         *decimal.Decimal `json:"rate,omitempty"`
	PaymentMode  string           `json:"payment_mode,omitempty"`
	ReturnReason string           `json:"return_reason,omitempty"`
}

// AddTransactionResponse resultado del alta atómica: el movimiento creado y
// el saldo del cliente ya ajustado, para que la UI re-renderice sin otra
// consulta.
type AddTransactionResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	NewBalance  decimal.Decimal     `json:"new_balance"`
}
