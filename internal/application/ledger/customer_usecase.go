// Package ledger contiene los casos de uso del libro de fiado: clientes,
// alta atómica de movimientos y derivación de extractos.
package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fiado-api/internal/application/dto"
	"github.com/jhoicas/fiado-api/internal/domain"
	"github.com/jhoicas/fiado-api/internal/domain/entity"
	"github.com/jhoicas/fiado-api/internal/domain/repository"
)

const (
	phoneMinLen = 10
	phoneMaxLen = 15
)

// CustomerUseCase casos de uso para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un cliente con saldo cero y el resumen de historial por defecto.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.Invalid("name", "el nombre es obligatorio")
	}
	if err := validatePhone(in.Phone); err != nil {
		return nil, err
	}

	customer := &entity.Customer{
		ID:                  uuid.New().String(),
		Name:                in.Name,
		Phone:               in.Phone,
		Address:             in.Address,
		OutstandingBalance:  decimal.Zero,
		SalesHistorySummary: entity.DefaultSalesHistory,
		CreatedAt:           time.Now(),
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	return toCustomerResponse(customer), nil
}

// List lista todos los clientes ordenados por nombre.
func (uc *CustomerUseCase) List() ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Update actualización parcial del perfil (nombre, teléfono, dirección).
// El saldo pendiente y el resumen de historial no son editables por aquí.
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.Invalid("name", "el nombre es obligatorio")
		}
		customer.Name = *in.Name
	}
	if in.Phone != nil {
		if err := validatePhone(*in.Phone); err != nil {
			return nil, err
		}
		customer.Phone = *in.Phone
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}

	if err := uc.repo.UpdateProfile(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

func validatePhone(phone string) error {
	if len(phone) < phoneMinLen {
		return domain.Invalid("phone", "el teléfono debe tener al menos 10 dígitos")
	}
	if len(phone) > phoneMaxLen {
		return domain.Invalid("phone", "el teléfono no puede exceder 15 dígitos")
	}
	return nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:                  c.ID,
		Name:                c.Name,
		Phone:               c.Phone,
		Address:             c.Address,
		OutstandingBalance:  c.OutstandingBalance,
		SalesHistorySummary: c.SalesHistorySummary,
	}
}
