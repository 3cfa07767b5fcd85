package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/gtmpro-api/internal/application/dto"
	"github.com/jhoicas/gtmpro-api/internal/application/ports"
	"github.com/jhoicas/gtmpro-api/internal/domain"
)

// aiTimeout límite por llamada al proveedor LLM.
const aiTimeout = 30 * time.Second

// AIUseCase orquesta el asistente de reportes: selecciona el proveedor,
// acota la llamada con timeout y degrada las condiciones del proveedor
// (credencial inválida, cuota agotada) a flags que la UI muestra en lugar
// de un error lanzado.
type AIUseCase struct {
	anthropic ports.LLMService
	gemini    ports.LLMService
}

// NewAIUseCase construye el caso de uso con ambos adaptadores.
func NewAIUseCase(anthropic, gemini ports.LLMService) *AIUseCase {
	return &AIUseCase{anthropic: anthropic, gemini: gemini}
}

// GenerateReport genera el texto del reporte con el proveedor pedido
// (anthropic por defecto).
func (uc *AIUseCase) GenerateReport(ctx context.Context, req dto.AIReportRequest) (*dto.AIReportDTO, error) {
	svc := uc.anthropic
	if req.Provider == "gemini" {
		svc = uc.gemini
	}

	ctx, cancel := context.WithTimeout(ctx, aiTimeout)
	defer cancel()

	out, err := svc.GenerateReport(ctx, req.Prompt, req.Style)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrLLMInvalidCredential):
			return &dto.AIReportDTO{Flag: dto.AIFlagInvalidKey}, nil
		case errors.Is(err, domain.ErrLLMRateLimited):
			return &dto.AIReportDTO{Flag: dto.AIFlagRateLimited}, nil
		}
		return nil, fmt.Errorf("relatório IA: %w", err)
	}
	return out, nil
}
