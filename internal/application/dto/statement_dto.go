package dto

import "github.com/shopspring/decimal"

// StatementLineDTO una línea del extracto: el movimiento con su saldo corrido
// y las columnas débito/crédito ya separadas (venta = débito, abono o
// devolución = crédito).
type StatementLineDTO struct {
	Transaction    TransactionResponse `json:"transaction"`
	Debit          *decimal.Decimal    `json:"debit,omitempty"`
	Credit         *decimal.Decimal    `json:"credit,omitempty"`
	RunningBalance decimal.Decimal     `json:"running_balance"`
}

// StatementDTO respuesta de GET /api/customers/:id/statement.
// Proyección derivada al momento de la consulta; nunca se persiste.
type StatementDTO struct {
	Customer       CustomerResponse   `json:"customer"`
	OpeningBalance decimal.Decimal    `json:"opening_balance"`
	Lines          []StatementLineDTO `json:"lines"`
	TotalDue       decimal.Decimal    `json:"total_due"` // saldo actual del cliente
}
