package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/fiado-api/internal/application/dto"
	"github.com/jhoicas/fiado-api/internal/application/usecase"
	"github.com/jhoicas/fiado-api/internal/domain"
)

// AIHandler maneja el análisis de líneas del extracto asistido por IA.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// AnalyzeLineItem godoc
// @Summary      Analizar una línea del extracto con IA
// @Description  Evalúa si una línea del extracto luce problemática para ese
//               cliente (monto inusual, fuera de su patrón de compras) y
//               devuelve el veredicto con su motivo. Timeout interno de 10 s.
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LineItemAnalysisRequest  true  "item_description y customer_name (obligatorios)"
// @Success      200   {object}  dto.LineItemAnalysisDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      408   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/ai/analyze-line-item [post]
func (h *AIHandler) AnalyzeLineItem(c *fiber.Ctx) error {
	var req dto.LineItemAnalysisRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo de la petición inválido",
		})
	}

	result, err := h.uc.AnalyzeLineItem(c.Context(), req)
	if err != nil {
		// Timeout del contexto → 408 Request Timeout
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return c.Status(fiber.StatusRequestTimeout).JSON(dto.ErrorResponse{
				Code: "TIMEOUT", Message: "el servicio de IA tardó demasiado; intenta de nuevo",
			})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return writeError(c, err)
		}
		// API key no configurada
		if strings.Contains(err.Error(), "API_KEY") {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code: "AI_UNAVAILABLE", Message: "el servicio de análisis IA no está configurado",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	return c.JSON(result)
}

// isTimeout detecta errores de timeout/cancelación de contexto en el mensaje de error.
func isTimeout(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "deadline exceeded") ||
		strings.Contains(msg, "cancelación")
}
