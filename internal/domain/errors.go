package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// Condiciones del proveedor LLM, expuestas como flags tipados hacia la UI.
	ErrLLMInvalidCredential = errors.New("credencial del proveedor LLM inválida")
	ErrLLMRateLimited       = errors.New("cuota del proveedor LLM agotada")
)
