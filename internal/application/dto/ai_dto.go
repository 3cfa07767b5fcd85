package dto

// Flags tipados de fallo del proveedor LLM: se exponen a la UI, no se lanzan.
const (
	AIFlagInvalidKey  = "invalid_key"
	AIFlagRateLimited = "rate_limited"
)

// AIReportRequest entrada del asistente de reportes.
// Provider selecciona el adaptador; Style ajusta el tono del texto generado.
type AIReportRequest struct {
	Prompt   string `json:"prompt" validate:"required,min=1,max=4000"`
	Style    string `json:"style" validate:"omitempty,oneof=formal resumido detalhado"`
	Provider string `json:"provider" validate:"omitempty,oneof=anthropic gemini"`
}

// AICitation referencia (título, URI) devuelta junto al texto generado.
type AICitation struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// AIReportDTO salida del asistente: texto libre + citas opcionales.
// Flag distingue las condiciones del proveedor que la UI debe mostrar
// (credencial inválida, cuota agotada) de un éxito normal.
type AIReportDTO struct {
	Text      string       `json:"text"`
	Citations []AICitation `json:"citations,omitempty"`
	Flag      string       `json:"flag,omitempty"`
}
