package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OpCodeNotFound marca un OpResult fallido porque la entidad no existe;
// la capa HTTP lo traduce a 404 en lugar de 500.
const OpCodeNotFound = "NOT_FOUND"

// OpResult resultado estructurado de una mutación que la vista debe poder
// reportar (tareas, eventos, planillas, auth). Success=false lleva el mensaje.
type OpResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

// OK devuelve un resultado exitoso.
func OK() OpResult {
	return OpResult{Success: true}
}

// Fail devuelve un resultado fallido con mensaje.
func Fail(msg string) OpResult {
	return OpResult{Success: false, Error: msg}
}

// FailNotFound devuelve un resultado fallido por entidad inexistente.
func FailNotFound(msg string) OpResult {
	return OpResult{Success: false, Error: msg, Code: OpCodeNotFound}
}
