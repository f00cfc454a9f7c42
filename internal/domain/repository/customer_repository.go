package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fiado-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	// GetByID devuelve (nil, nil) si el cliente no existe.
	GetByID(id string) (*entity.Customer, error)
	// List devuelve todos los clientes ordenados por nombre.
	List() ([]*entity.Customer, error)
	// UpdateProfile actualiza solo los campos editables del cliente
	// (nombre, teléfono, dirección). El saldo y el resumen de historial no
	// son escribibles desde aquí.
	UpdateProfile(customer *entity.Customer) error
	// UpdateBalance reemplaza el saldo pendiente. Solo se invoca dentro de
	// la unidad atómica de alta de movimiento.
	UpdateBalance(id string, balance decimal.Decimal) error
	// GetByIDForUpdate lee el cliente bloqueando la fila (SELECT FOR UPDATE)
	// para serializar actualizaciones de saldo concurrentes. Solo tiene
	// sentido dentro de una transacción.
	GetByIDForUpdate(id string) (*entity.Customer, error)
}
