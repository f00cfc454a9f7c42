package http

import (
	"github.com/gofiber/fiber/v2"
	appledger "github.com/jhoicas/fiado-api/internal/application/ledger"
)

// StatementHandler sirve el extracto de cuenta en JSON y en PDF.
type StatementHandler struct {
	uc *appledger.StatementUseCase
}

// NewStatementHandler construye el handler.
func NewStatementHandler(uc *appledger.StatementUseCase) *StatementHandler {
	return &StatementHandler{uc: uc}
}

// Get GET /api/customers/:id/statement
// Extracto en JSON: saldo de apertura, líneas con débito/crédito y saldo
// corrido, y total adeudado al cierre.
func (h *StatementHandler) Get(c *fiber.Ctx) error {
	statement, err := h.uc.GetStatement(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(statement)
}

// DownloadPDF GET /api/customers/:id/statement/pdf
// Genera el extracto imprimible y lo entrega como descarga.
func (h *StatementHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.DownloadStatementPDF(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
