package dto

import (
	"time"

	"github.com/jhoicas/gtmpro-api/internal/domain/entity"
)

// TaskRequest entrada para crear o actualizar una tarea.
// DueDate vacío significa tarea sin fecha (sin evento derivado en el calendario).
type TaskRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Status      string `json:"status"`
	Priority    string `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	DueDate     string `json:"due_date" validate:"omitempty,dateformat"`
}

// MoveTaskRequest entrada para mover una tarea de columna (drag del kanban).
type MoveTaskRequest struct {
	Status string `json:"status" validate:"required,oneof=backlog todo done"`
}

// TaskResponse salida de una tarea.
type TaskResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	DueDate     string    `json:"due_date,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewTaskResponse mapea la entidad a su DTO de salida.
func NewTaskResponse(t *entity.Task) TaskResponse {
	due := ""
	if t.DueDate != nil {
		due = t.DueDate.Format("2006-01-02")
	}
	return TaskResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		DueDate:     due,
		CreatedAt:   t.CreatedAt,
	}
}

// NewTaskList mapea una colección de tareas.
func NewTaskList(list []*entity.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(list))
	for _, t := range list {
		out = append(out, NewTaskResponse(t))
	}
	return out
}
