package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleUser    = "USER"
)

// User representa un usuario del sistema. Cada usuario es dueño de sus
// parceiros, tareas y planillas; el pipeline no se comparte entre usuarios.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // ADMIN, MANAGER, USER
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeRole devuelve un rol válido; valores desconocidos caen en USER.
func NormalizeRole(raw string) string {
	switch raw {
	case RoleAdmin, RoleManager, RoleUser:
		return raw
	default:
		return RoleUser
	}
}
