package entity

import "time"

// Columnas fijas del tablero kanban. No son editables por el usuario:
// Task.Status siempre referencia uno de estos ids.
const (
	ColumnBacklog = "backlog"
	ColumnTodo    = "todo"
	ColumnDone    = "done"
)

// Prioridades válidas para Task.
const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
)

// KanbanColumn describe una columna del tablero (conjunto fijo, ver Columns).
type KanbanColumn struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Color string `json:"color"`
	Order int    `json:"order"`
}

// Columns devuelve el conjunto fijo de columnas del tablero, en orden.
func Columns() []KanbanColumn {
	return []KanbanColumn{
		{ID: ColumnBacklog, Title: "Backlog", Color: "#94a3b8", Order: 0},
		{ID: ColumnTodo, Title: "Em andamento", Color: "#3b82f6", Order: 1},
		{ID: ColumnDone, Title: "Concluído", Color: "#22c55e", Order: 2},
	}
}

// ValidColumn indica si id corresponde a una columna del tablero.
func ValidColumn(id string) bool {
	return id == ColumnBacklog || id == ColumnTodo || id == ColumnDone
}

// NormalizeTaskStatus sanea el status leído del store remoto: si no referencia
// una columna conocida, la tarea cae en backlog.
func NormalizeTaskStatus(raw string) string {
	if ValidColumn(raw) {
		return raw
	}
	return ColumnBacklog
}

// NormalizePriority devuelve una prioridad válida; desconocidas caen en MEDIUM.
func NormalizePriority(raw string) string {
	switch raw {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return raw
	default:
		return PriorityMedium
	}
}

// Task representa una tarea del tablero kanban de un usuario.
type Task struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Status      string // id de columna (backlog, todo, done)
	Priority    string // LOW, MEDIUM, HIGH
	DueDate     *time.Time
	CreatedAt   time.Time
}
