package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultSalesHistory resumen inicial del historial de ventas de un cliente.
// Solo se reemplaza manualmente; el sistema nunca lo actualiza solo.
const DefaultSalesHistory = "New customer."

// Customer representa un cliente de la tienda con su saldo de fiado.
// OutstandingBalance es un decimal con signo: positivo = el cliente debe.
type Customer struct {
	ID                  string
	Name                string
	Phone               string
	Address             string
	OutstandingBalance  decimal.Decimal
	SalesHistorySummary string
	CreatedAt           time.Time
}
