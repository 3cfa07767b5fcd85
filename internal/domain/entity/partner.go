package entity

import "time"

// Estados del pipeline comercial. Progresión fija PROSPECT → CONTACTED →
// NEGOTIATION → PARTNER; CHURN es la salida terminal.
const (
	StatusProspect    = "PROSPECT"
	StatusContacted   = "CONTACTED"
	StatusNegotiation = "NEGOTIATION"
	StatusPartner     = "PARTNER"
	StatusChurn       = "CHURN"
)

// NormalizePipelineStatus garantiza que el estado leído del store remoto sea
// uno de los cinco valores del enum; valores desconocidos caen en PROSPECT.
func NormalizePipelineStatus(raw string) string {
	switch raw {
	case StatusProspect, StatusContacted, StatusNegotiation, StatusPartner, StatusChurn:
		return raw
	default:
		return StatusProspect
	}
}

// Contact es un contacto embebido en Partner. No tiene ciclo de vida propio:
// se reemplaza por completo al editar el Partner.
type Contact struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
	WhatsApp string `json:"whatsapp,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Partner representa una empresa/parceiro del pipeline comercial de un usuario.
type Partner struct {
	ID        string
	UserID    string
	Name      string
	TargetIES string // institución objetivo de la negociación
	Status    string // ver constantes Status*
	Contacts  []Contact
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PrimaryContact devuelve el contacto principal (índice 0 por convención) o nil.
func (p *Partner) PrimaryContact() *Contact {
	if len(p.Contacts) == 0 {
		return nil
	}
	return &p.Contacts[0]
}
