package ledger

import (
	"context"

	"github.com/jhoicas/fiado-api/internal/domain/entity"
	domledger "github.com/jhoicas/fiado-api/internal/domain/ledger"
	"github.com/jhoicas/fiado-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción de la base de datos, con
// repos atados a esa transacción. Si fn retorna error se hace rollback: el
// movimiento y el ajuste de saldo se confirman juntos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		txRepo repository.TransactionRepository,
	) error) error
}

// StatementPDFGenerator genera la representación imprimible del extracto.
type StatementPDFGenerator interface {
	GenerateStatementPDF(
		ctx context.Context,
		customer *entity.Customer,
		statement domledger.Statement,
	) ([]byte, error)
}
