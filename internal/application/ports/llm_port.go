package ports

import (
	"context"

	"github.com/jhoicas/gtmpro-api/internal/application/dto"
)

// LLMService define el puerto de salida hacia los proveedores de IA del
// asistente de reportes. Cualquier adaptador (Anthropic, Gemini, mock) debe
// implementar esta interfaz; la aplicación solo conoce este contrato (DIP).
//
// Las condiciones de credencial inválida y cuota agotada se devuelven como
// domain.ErrLLMInvalidCredential y domain.ErrLLMRateLimited para que el caso
// de uso las degrade a flags de UI en lugar de propagarlas.
type LLMService interface {
	// GenerateReport genera el texto de un reporte a partir del prompt y el
	// estilo pedido, con citas (título, URI) cuando el proveedor las entrega.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	GenerateReport(ctx context.Context, prompt, style string) (*dto.AIReportDTO, error)
}
