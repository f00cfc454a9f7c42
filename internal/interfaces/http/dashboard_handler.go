package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/fiado-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve el resumen del negocio para la pantalla principal.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (total_outstanding, total_customers,
// customers_with_dues, today_sales, today_collections).
// No requiere parámetros; "hoy" se calcula en la zona horaria del servidor.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}
