package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest alta de cliente. El saldo inicia en cero y el resumen
// de historial con su valor por defecto; ninguno de los dos se acepta aquí.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UpdateCustomerRequest actualización parcial del perfil. Los punteros
// distinguen "no enviado" de "enviado vacío".
type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// CustomerResponse representación HTTP del cliente.
type CustomerResponse struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Phone               string          `json:"phone"`
	Address             string          `json:"address,omitempty"`
	OutstandingBalance  decimal.Decimal `json:"outstanding_balance"`
	SalesHistorySummary string          `json:"sales_history_summary"`
}
