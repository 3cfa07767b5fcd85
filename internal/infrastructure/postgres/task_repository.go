package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/gtmpro-api/internal/domain/entity"
	"github.com/jhoicas/gtmpro-api/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

// TaskRepo implementación del puerto TaskRepository sobre PostgreSQL.
type TaskRepo struct {
	pool *pgxpool.Pool
}

// NewTaskRepository construye el adaptador de persistencia para tareas.
func NewTaskRepository(pool *pgxpool.Pool) *TaskRepo {
	return &TaskRepo{pool: pool}
}

// List lista las tareas del usuario, más recientes primero.
// Status y prioridad se normalizan en la lectura.
func (r *TaskRepo) List(ctx context.Context, userID string) ([]*entity.Task, error) {
	query := `
		SELECT id, user_id, title, description, status, priority, due_date, created_at
		FROM tasks WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var list []*entity.Task
	for rows.Next() {
		var t entity.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Status, &t.Priority, &t.DueDate, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		t.Status = entity.NormalizeTaskStatus(t.Status)
		t.Priority = entity.NormalizePriority(t.Priority)
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Upsert inserta o actualiza una tarea del usuario.
func (r *TaskRepo) Upsert(ctx context.Context, userID string, t *entity.Task) error {
	query := `
		INSERT INTO tasks (id, user_id, title, description, status, priority, due_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE
		SET title = EXCLUDED.title, description = EXCLUDED.description, status = EXCLUDED.status,
		    priority = EXCLUDED.priority, due_date = EXCLUDED.due_date
		WHERE tasks.user_id = $2`
	_, err := r.pool.Exec(ctx, query,
		t.ID, userID, t.Title, t.Description, t.Status, t.Priority, t.DueDate, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert task: %w", err)
	}
	return nil
}

// UpdateStatus persiste solo el cambio de columna de una tarea (drag del kanban).
func (r *TaskRepo) UpdateStatus(ctx context.Context, userID, id, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE tasks SET status = $3 WHERE id = $1 AND user_id = $2`, id, userID, status)
	if err != nil {
		return fmt.Errorf("update task status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update task status: tarea %s no encontrada", id)
	}
	return nil
}

// Delete elimina una tarea del usuario.
func (r *TaskRepo) Delete(ctx context.Context, userID, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
