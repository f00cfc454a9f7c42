package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/fiado-api/internal/application/dto"
	appledger "github.com/jhoicas/fiado-api/internal/application/ledger"
)

// TransactionHandler maneja el alta y las consultas de movimientos del ledger.
type TransactionHandler struct {
	addUC   *appledger.AddTransactionUseCase
	queryUC *appledger.TransactionQueryUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(
	addUC *appledger.AddTransactionUseCase,
	queryUC *appledger.TransactionQueryUseCase,
) *TransactionHandler {
	return &TransactionHandler{addUC: addUC, queryUC: queryUC}
}

// Create POST /api/transactions
// Registra una venta, abono o devolución y ajusta el saldo del cliente en la
// misma transacción de base de datos. Devuelve el movimiento y el saldo nuevo.
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.addUC.Add(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// ListByCustomer GET /api/customers/:id/transactions
func (h *TransactionHandler) ListByCustomer(c *fiber.Ctx) error {
	txs, err := h.queryUC.ListByCustomer(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(txs)
}

// List GET /api/transactions?from=2024-01-01&to=2024-01-31
// Sin parámetros devuelve todos los movimientos. El rango es inclusivo y
// cada fecha se interpreta en la zona horaria del servidor.
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	from, err := parseDateQuery(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "from inválido; use formato YYYY-MM-DD", Field: "from",
		})
	}
	to, err := parseDateQuery(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "to inválido; use formato YYYY-MM-DD", Field: "to",
		})
	}
	if !to.IsZero() {
		// Rango inclusivo: extender "to" hasta el final del día.
		to = to.Add(24*time.Hour - time.Nanosecond)
	}

	txs, err := h.queryUC.ListByDateRange(from, to)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(txs)
}

// ListRecent GET /api/transactions/recent?limit=5
func (h *TransactionHandler) ListRecent(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "5"))
	txs, err := h.queryUC.ListRecent(limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(txs)
}

// parseDateQuery acepta YYYY-MM-DD en hora local; vacío devuelve cero (sin filtro).
func parseDateQuery(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
