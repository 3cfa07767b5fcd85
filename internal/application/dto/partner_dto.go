package dto

import (
	"time"

	"github.com/jhoicas/gtmpro-api/internal/domain/entity"
)

// ContactInput contacto embebido en la entrada de un partner.
type ContactInput struct {
	ID       string `json:"id"`
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Role     string `json:"role" validate:"max=100"`
	WhatsApp string `json:"whatsapp" validate:"max=20"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// PartnerRequest entrada para crear o actualizar un partner.
// Con ID presente es una actualización; sin ID, una creación.
type PartnerRequest struct {
	ID        string         `json:"id"`
	Name      string         `json:"name" validate:"required,min=1,max=200"`
	TargetIES string         `json:"target_ies" validate:"max=200"`
	Status    string         `json:"status" validate:"omitempty,oneof=PROSPECT CONTACTED NEGOTIATION PARTNER CHURN"`
	Contacts  []ContactInput `json:"contacts" validate:"dive"`
}

// PartnerResponse salida de un partner.
type PartnerResponse struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Name      string           `json:"name"`
	TargetIES string           `json:"target_ies"`
	Status    string           `json:"status"`
	Contacts  []entity.Contact `json:"contacts"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// NewPartnerResponse mapea la entidad a su DTO de salida.
func NewPartnerResponse(p *entity.Partner) PartnerResponse {
	contacts := p.Contacts
	if contacts == nil {
		contacts = []entity.Contact{}
	}
	return PartnerResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		Name:      p.Name,
		TargetIES: p.TargetIES,
		Status:    p.Status,
		Contacts:  contacts,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// NewPartnerList mapea una colección de partners.
func NewPartnerList(list []*entity.Partner) []PartnerResponse {
	out := make([]PartnerResponse, 0, len(list))
	for _, p := range list {
		out = append(out, NewPartnerResponse(p))
	}
	return out
}
