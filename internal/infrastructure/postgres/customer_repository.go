package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fiado-api/internal/domain"
	"github.com/jhoicas/fiado-api/internal/domain/entity"
	"github.com/jhoicas/fiado-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `id, name, phone, address, outstanding_balance, sales_history_summary, created_at`

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, phone, address, outstanding_balance, sales_history_summary, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Phone, customer.Address,
		customer.OutstandingBalance, customer.SalesHistorySummary, customer.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	return r.scanOne(query, id, "get customer")
}

// GetByIDForUpdate lee el cliente bloqueando la fila para serializar ajustes
// de saldo concurrentes. Solo tiene sentido dentro de una transacción.
func (r *CustomerRepo) GetByIDForUpdate(id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id, "lock customer")
}

// List devuelve todos los clientes ordenados por nombre.
func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// UpdateProfile actualiza los campos editables del perfil. El saldo y el
// resumen de historial no se tocan desde aquí.
func (r *CustomerRepo) UpdateProfile(customer *entity.Customer) error {
	query := `UPDATE customers SET name = $2, phone = $3, address = $4 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Phone, customer.Address,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

// UpdateBalance reemplaza el saldo pendiente. Lo invoca únicamente la unidad
// atómica del alta de movimiento, dentro de la transacción que también
// inserta el movimiento.
func (r *CustomerRepo) UpdateBalance(id string, balance decimal.Decimal) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE customers SET outstanding_balance = $2 WHERE id = $1`, id, balance,
	)
	if err != nil {
		return fmt.Errorf("update balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepo) scanOne(query, id, op string) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

// scanCustomer admite tanto pgx.Row como pgx.Rows.
func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID, &c.Name, &c.Phone, &c.Address,
		&c.OutstandingBalance, &c.SalesHistorySummary, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
