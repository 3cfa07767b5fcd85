// Package ai contiene los adaptadores HTTP hacia los proveedores LLM del
// asistente de reportes.
package ai

import (
	"net/http"

	"github.com/jhoicas/gtmpro-api/internal/domain"
)

// Estilos de respuesta aceptados por el asistente.
const (
	StyleFormal    = "formal"
	StyleResumido  = "resumido"
	StyleDetalhado = "detalhado"
)

// styleInstruction traduce el tag de estilo a una instrucción de sistema.
// Un estilo vacío o desconocido no agrega instrucción.
func styleInstruction(style string) string {
	switch style {
	case StyleFormal:
		return "\nTom: formal, adequado para diretoria."
	case StyleResumido:
		return "\nTom: resumido, no máximo três parágrafos curtos."
	case StyleDetalhado:
		return "\nTom: detalhado, com seções e números quando houver."
	default:
		return ""
	}
}

// classifyStatus mapea los códigos HTTP del proveedor a los sentinels que el
// caso de uso degrada a flags de UI. Devuelve nil para códigos sin mapeo.
func classifyStatus(code int) error {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrLLMInvalidCredential
	case http.StatusTooManyRequests:
		return domain.ErrLLMRateLimited
	default:
		return nil
	}
}
