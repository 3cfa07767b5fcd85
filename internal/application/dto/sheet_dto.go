package dto

import (
	"time"

	"github.com/jhoicas/gtmpro-api/internal/domain/entity"
)

// SheetRequest entrada para vincular o actualizar una planilla externa.
type SheetRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title" validate:"required,min=1,max=200"`
	URL         string `json:"url" validate:"required,url"`
	Category    string `json:"category" validate:"max=100"`
	Description string `json:"description" validate:"max=2000"`
}

// SheetResponse salida de una planilla vinculada.
type SheetResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewSheetResponse mapea la entidad a su DTO de salida.
func NewSheetResponse(s *entity.LinkedSheet) SheetResponse {
	return SheetResponse{
		ID:          s.ID,
		UserID:      s.UserID,
		Title:       s.Title,
		URL:         s.URL,
		Category:    s.Category,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
	}
}

// NewSheetList mapea una colección de planillas.
func NewSheetList(list []*entity.LinkedSheet) []SheetResponse {
	out := make([]SheetResponse, 0, len(list))
	for _, s := range list {
		out = append(out, NewSheetResponse(s))
	}
	return out
}
