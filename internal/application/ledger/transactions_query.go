package ledger

import (
	"time"

	"github.com/jhoicas/fiado-api/internal/application/dto"
	"github.com/jhoicas/fiado-api/internal/domain"
	"github.com/jhoicas/fiado-api/internal/domain/repository"
)

const defaultRecentLimit = 5

// TransactionQueryUseCase consultas de lectura sobre el log de movimientos.
type TransactionQueryUseCase struct {
	customerRepo repository.CustomerRepository
	txRepo       repository.TransactionRepository
}

// NewTransactionQueryUseCase construye el caso de uso.
func NewTransactionQueryUseCase(
	customerRepo repository.CustomerRepository,
	txRepo repository.TransactionRepository,
) *TransactionQueryUseCase {
	return &TransactionQueryUseCase{customerRepo: customerRepo, txRepo: txRepo}
}

// ListByCustomer historial completo de un cliente, cronológico ascendente.
func (uc *TransactionQueryUseCase) ListByCustomer(customerID string) ([]dto.TransactionResponse, error) {
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}

	txs, err := uc.txRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, toTransactionResponse(tx))
	}
	return out, nil
}

// ListByDateRange movimientos de todos los clientes, con rango opcional.
// from/to en cero significa sin filtro.
func (uc *TransactionQueryUseCase) ListByDateRange(from, to time.Time) ([]dto.TransactionResponse, error) {
	txs, err := uc.txRepo.ListByDateRange(from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, toTransactionResponse(tx))
	}
	return out, nil
}

// ListRecent últimos movimientos para el widget de actividad del dashboard.
func (uc *TransactionQueryUseCase) ListRecent(limit int) ([]dto.TransactionResponse, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	txs, err := uc.txRepo.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, toTransactionResponse(tx))
	}
	return out, nil
}
