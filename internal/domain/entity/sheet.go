package entity

import "time"

// LinkedSheet es un marcador a una planilla externa (Google Sheets u otra)
// vinculada por un usuario.
type LinkedSheet struct {
	ID          string
	UserID      string
	Title       string
	URL         string
	Category    string
	Description string
	CreatedAt   time.Time
}
