package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fiado-api/internal/domain/entity"
	"github.com/jhoicas/fiado-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación de TransactionRepository (usable con pool o
// tx). Los movimientos son inmutables: solo INSERT y SELECT.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

const transactionColumns = `id, customer_id, date, type, amount, description, quantity, rate, payment_mode, return_reason`

// Create persiste un movimiento del ledger.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, customer_id, date, type, amount, description, quantity, rate, payment_mode, return_reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.CustomerID, tx.Date, string(tx.Type), tx.Amount, tx.Description,
		nullDecimal(tx.Quantity), nullDecimal(tx.Rate),
		nullString(tx.PaymentMode), nullString(tx.ReturnReason),
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// ListByCustomer historial completo de un cliente, cronológico ascendente.
func (r *TransactionRepo) ListByCustomer(customerID string) ([]entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE customer_id = $1 ORDER BY date, id`
	rows, err := r.q.Query(context.Background(), query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return collectTransactions(rows)
}

// ListByDateRange movimientos de todos los clientes en [from, to] inclusive.
// Con from/to en cero no se filtra.
func (r *TransactionRepo) ListByDateRange(from, to time.Time) ([]entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions`
	var args []any
	var conds []string
	if !from.IsZero() {
		args = append(args, from)
		conds = append(conds, fmt.Sprintf("date >= $%d", len(args)))
	}
	if !to.IsZero() {
		args = append(args, to)
		conds = append(conds, fmt.Sprintf("date <= $%d", len(args)))
	}
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY date, id`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions by range: %w", err)
	}
	return collectTransactions(rows)
}

// ListRecent últimos movimientos, fecha descendente.
func (r *TransactionRepo) ListRecent(limit int) ([]entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY date DESC, id DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent transactions: %w", err)
	}
	return collectTransactions(rows)
}

func collectTransactions(rows pgx.Rows) ([]entity.Transaction, error) {
	defer rows.Close()
	var list []entity.Transaction
	for rows.Next() {
		var (
			tx                        entity.Transaction
			txType                    string
			quantity, rate            *decimal.Decimal
			paymentMode, returnReason *string
		)
		if err := rows.Scan(
			&tx.ID, &tx.CustomerID, &tx.Date, &txType, &tx.Amount, &tx.Description,
			&quantity, &rate, &paymentMode, &returnReason,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		tx.Type = entity.TransactionType(txType)
		if quantity != nil {
			tx.Quantity = *quantity
		}
		if rate != nil {
			tx.Rate = *rate
		}
		if paymentMode != nil {
			tx.PaymentMode = *paymentMode
		}
		if returnReason != nil {
			tx.ReturnReason = *returnReason
		}
		list = append(list, tx)
	}
	return list, rows.Err()
}

// nullDecimal mapea decimal cero a NULL (columnas opcionales).
func nullDecimal(d decimal.Decimal) *decimal.Decimal {
	if d.IsZero() {
		return nil
	}
	return &d
}

// nullString mapea cadena vacía a NULL.
func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
