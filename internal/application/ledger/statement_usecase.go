package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/fiado-api/internal/application/dto"
	"github.com/jhoicas/fiado-api/internal/domain"
	"github.com/jhoicas/fiado-api/internal/domain/entity"
	domledger "github.com/jhoicas/fiado-api/internal/domain/ledger"
	"github.com/jhoicas/fiado-api/internal/domain/repository"
)

// StatementUseCase deriva el extracto de un cliente (apertura + saldos
// corridos anclados en el saldo actual) y genera su versión imprimible.
type StatementUseCase struct {
	customerRepo repository.CustomerRepository
	txRepo       repository.TransactionRepository
	generator    StatementPDFGenerator
}

// NewStatementUseCase construye el caso de uso.
func NewStatementUseCase(
	customerRepo repository.CustomerRepository,
	txRepo repository.TransactionRepository,
	generator StatementPDFGenerator,
) *StatementUseCase {
	return &StatementUseCase{customerRepo: customerRepo, txRepo: txRepo, generator: generator}
}

// GetStatement deriva el extracto como JSON para la vista previa.
func (uc *StatementUseCase) GetStatement(customerID string) (*dto.StatementDTO, error) {
	customer, st, err := uc.derive(customerID)
	if err != nil {
		return nil, err
	}

	lines := make([]dto.StatementLineDTO, 0, len(st.Lines))
	for _, l := range st.Lines {
		line := dto.StatementLineDTO{
			Transaction:    toTransactionResponse(l.Transaction),
			RunningBalance: l.RunningBalance,
		}
		// Columnas débito/crédito: venta al debe, abono o devolución al haber.
		amount := l.Transaction.Amount
		if l.Transaction.Type == entity.TransactionSale {
			line.Debit = &amount
		} else {
			line.Credit = &amount
		}
		lines = append(lines, line)
	}

	return &dto.StatementDTO{
		Customer:       *toCustomerResponse(customer),
		OpeningBalance: st.OpeningBalance,
		Lines:          lines,
		TotalDue:       customer.OutstandingBalance,
	}, nil
}

// DownloadStatementPDF deriva el extracto y lo convierte en PDF imprimible.
// Devuelve los bytes y el nombre de archivo sugerido.
func (uc *StatementUseCase) DownloadStatementPDF(ctx context.Context, customerID string) (pdfBytes []byte, filename string, err error) {
	customer, st, err := uc.derive(customerID)
	if err != nil {
		return nil, "", err
	}

	pdfBytes, err = uc.generator.GenerateStatementPDF(ctx, customer, st)
	if err != nil {
		return nil, "", fmt.Errorf("extracto: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("extracto_%s.pdf", slug(customer.Name))
	return pdfBytes, filename, nil
}

// derive carga cliente + historial y corre la derivación pura.
func (uc *StatementUseCase) derive(customerID string) (*entity.Customer, domledger.Statement, error) {
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, domledger.Statement{}, fmt.Errorf("extracto: obtener cliente: %w", err)
	}
	if customer == nil {
		return nil, domledger.Statement{}, domain.ErrCustomerNotFound
	}

	txs, err := uc.txRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, domledger.Statement{}, fmt.Errorf("extracto: obtener movimientos: %w", err)
	}

	return customer, domledger.DeriveStatement(customer.OutstandingBalance, txs), nil
}

// slug normaliza el nombre del cliente para usarlo en el nombre de archivo.
func slug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-' || r == '_':
			return '_'
		}
		return -1
	}, s)
}
