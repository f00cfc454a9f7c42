package repository

import (
	"time"

	"github.com/jhoicas/fiado-api/internal/domain/entity"
)

// TransactionRepository define el puerto de persistencia para los movimientos
// del ledger. Los movimientos son inmutables: no hay Update ni Delete.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	// ListByCustomer devuelve el historial completo de un cliente en orden
	// cronológico ascendente.
	ListByCustomer(customerID string) ([]entity.Transaction, error)
	// ListByDateRange devuelve movimientos de todos los clientes en el rango
	// [from, to] inclusive, ascendente por fecha. Con from/to en cero
	// devuelve todo el log.
	ListByDateRange(from, to time.Time) ([]entity.Transaction, error)
	// ListRecent devuelve los últimos movimientos (fecha descendente).
	ListRecent(limit int) ([]entity.Transaction, error)
}
