package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/fiado-api/internal/application/dto"
	"github.com/jhoicas/fiado-api/internal/application/ports"
	"github.com/jhoicas/fiado-api/internal/domain"
)

// aiTimeout las llamadas a LLMs pueden demorar varios segundos; el timeout
// evita que las latencias externas bloqueen los goroutines del servidor.
const aiTimeout = 10 * time.Second

// AIUseCase orquesta el análisis de líneas del extracto asistido por IA.
type AIUseCase struct {
	llm ports.LLMService
}

// NewAIUseCase construye el caso de uso inyectando el puerto LLMService.
func NewAIUseCase(llm ports.LLMService) *AIUseCase {
	return &AIUseCase{llm: llm}
}

// AnalyzeLineItem valida la entrada y delega al servicio de LLM con un
// timeout de 10 s. No hay reintentos: la llamada es opaca y un fallo se
// reporta al usuario tal cual.
func (uc *AIUseCase) AnalyzeLineItem(
	ctx context.Context,
	req dto.LineItemAnalysisRequest,
) (*dto.LineItemAnalysisDTO, error) {
	if req.ItemDescription == "" {
		return nil, domain.Invalid("item_description", "la descripción de la línea es obligatoria")
	}
	if req.CustomerName == "" {
		return nil, domain.Invalid("customer_name", "el nombre del cliente es obligatorio")
	}

	ctx, cancel := context.WithTimeout(ctx, aiTimeout)
	defer cancel()

	result, err := uc.llm.AnalyzeStatementLineItem(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("análisis IA: %w", err)
	}
	return result, nil
}
