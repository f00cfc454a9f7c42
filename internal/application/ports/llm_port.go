package ports

import (
	"context"

	"github.com/jhoicas/fiado-api/internal/application/dto"
)

// LLMService define el puerto de salida hacia el servicio de inteligencia
// artificial. Cualquier adaptador (Gemini, Anthropic, mock) debe implementar
// esta interfaz; la capa de aplicación solo conoce este contrato.
type LLMService interface {
	// AnalyzeStatementLineItem examina una línea del extracto (descripción,
	// monto, cliente e historial) y decide si es potencialmente problemática.
	// Es una llamada remota opaca: el contexto debe llevar timeout y no hay
	// política de reintentos.
	AnalyzeStatementLineItem(
		ctx context.Context,
		in dto.LineItemAnalysisRequest,
	) (*dto.LineItemAnalysisDTO, error)
}
