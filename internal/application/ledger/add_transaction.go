package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fiado-api/internal/application/dto"
	"github.com/jhoicas/fiado-api/internal/domain"
	"github.com/jhoicas/fiado-api/internal/domain/entity"
	domledger "github.com/jhoicas/fiado-api/internal/domain/ledger"
	"github.com/jhoicas/fiado-api/internal/domain/repository"
)

// AddTransactionUseCase crea un movimiento y ajusta el saldo del cliente en
// una sola transacción de base de datos: o se confirman ambos o ninguno. Si
// el cliente no existe, no se escribe nada.
type AddTransactionUseCase struct {
	txRunner TxRunner
}

// NewAddTransactionUseCase construye el caso de uso.
func NewAddTransactionUseCase(txRunner TxRunner) *AddTransactionUseCase {
	return &AddTransactionUseCase{txRunner: txRunner}
}

// Add valida la entrada y ejecuta la unidad atómica inserción + ajuste de
// saldo. La fila del cliente se bloquea dentro de la transacción para
// serializar escritores concurrentes sobre el mismo saldo.
func (uc *AddTransactionUseCase) Add(ctx context.Context, in dto.CreateTransactionRequest) (*dto.AddTransactionResponse, error) {
	tx, err := buildTransaction(in)
	if err != nil {
		return nil, err
	}

	var newBalance decimal.Decimal
	err = uc.txRunner.Run(ctx, func(
		customerRepo repository.CustomerRepository,
		txRepo repository.TransactionRepository,
	) error {
		customer, err := customerRepo.GetByIDForUpdate(tx.CustomerID)
		if err != nil {
			return fmt.Errorf("bloquear cliente: %w", err)
		}
		if customer == nil {
			return domain.ErrCustomerNotFound
		}

		newBalance, err = domledger.NextBalance(customer.OutstandingBalance, tx.Type, tx.Amount)
		if err != nil {
			return err
		}

		if err := txRepo.Create(tx); err != nil {
			return fmt.Errorf("insertar movimiento: %w", err)
		}
		if err := customerRepo.UpdateBalance(customer.ID, newBalance); err != nil {
			return fmt.Errorf("ajustar saldo: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.AddTransactionResponse{
		Transaction: toTransactionResponse(*tx),
		NewBalance:  newBalance,
	}, nil
}

// buildTransaction valida el request y arma la entidad. Toda validación
// ocurre antes de tocar la base de datos.
func buildTransaction(in dto.CreateTransactionRequest) (*entity.Transaction, error) {
	if in.CustomerID == "" {
		return nil, domain.Invalid("customer_id", "el cliente es obligatorio")
	}
	txType := entity.TransactionType(in.Type)
	if !txType.IsValid() {
		return nil, domain.Invalid("type", "tipo de movimiento desconocido (sale, payment o return)")
	}
	if !in.Amount.GreaterThanOrEqual(decimal.NewFromFloat(0.01)) {
		return nil, domain.Invalid("amount", "el monto debe ser mayor que cero")
	}

	date := time.Now()
	if in.Date != "" {
		parsed, err := time.Parse(time.RFC3339, in.Date)
		if err != nil {
			return nil, domain.Invalid("date", "la fecha debe ser ISO-8601")
		}
		date = parsed
	}

	description := in.Description
	switch txType {
	case entity.TransactionSale:
		if description == "" {
			return nil, domain.Invalid("description", "la descripción es obligatoria en ventas")
		}
	case entity.TransactionPayment:
		if in.PaymentMode != "" && !entity.IsValidPaymentMode(in.PaymentMode) {
			return nil, domain.Invalid("payment_mode", "modo de pago desconocido (Cash, Bank Transfer o UPI)")
		}
		if description == "" {
			description = "Payment received"
		}
	case entity.TransactionReturn:
		// El motivo de la devolución viaja también como descripción, igual
		// que en la pantalla de devoluciones.
		if description == "" {
			if in.ReturnReason != "" {
				description = in.ReturnReason
			} else {
				description = "Item Return"
			}
		}
	}

	return &entity.Transaction{
		ID:           uuid.New().String(),
		CustomerID:   in.CustomerID,
		Date:         date,
		Type:         txType,
		Amount:       in.Amount,
		Description:  description,
		Quantity:     in.Quantity,
		Rate:         in.Rate,
		PaymentMode:  in.PaymentMode,
		ReturnReason: in.ReturnReason,
	}, nil
}

func toTransactionResponse(tx entity.Transaction) dto.TransactionResponse {
	out := dto.TransactionResponse{
		ID:           tx.ID,
		CustomerID:   tx.CustomerID,
		Type:         string(tx.Type),
		Date:         tx.Date,
		Amount:       tx.Amount,
		Description:  tx.Description,
		PaymentMode:  tx.PaymentMode,
		ReturnReason: tx.ReturnReason,
	}
	if !tx.Quantity.IsZero() {
		q := tx.Quantity
		out.Quantity = &q
	}
	if !tx.Rate.IsZero() {
		r := tx.Rate
		out.Rate = &r
	}
	return out
}
