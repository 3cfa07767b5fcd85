package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/gtmpro-api/internal/domain/entity"
	"github.com/jhoicas/gtmpro-api/internal/domain/repository"
)

var _ repository.EventRepository = (*EventRepo)(nil)

// EventRepo implementación del puerto EventRepository sobre PostgreSQL.
type EventRepo struct {
	pool *pgxpool.Pool
}

// NewEventRepository construye el adaptador de persistencia para eventos.
func NewEventRepository(pool *pgxpool.Pool) *EventRepo {
	return &EventRepo{pool: pool}
}

const eventColumns = `id, title, description, event_date, event_time, location, type, task_id, created_by, created_at`

func scanEvent(row pgx.Row) (*entity.CommercialEvent, error) {
	var e entity.CommercialEvent
	var taskID *string
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Time, &e.Location, &e.Type, &taskID, &e.CreatedBy, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	if taskID != nil {
		e.TaskID = *taskID
	}
	return &e, nil
}

// List lista todos los eventos del calendario, por fecha ascendente.
func (r *EventRepo) List(ctx context.Context) ([]*entity.CommercialEvent, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+eventColumns+` FROM events ORDER BY event_date ASC, event_time ASC`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var list []*entity.CommercialEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// GetByTaskID busca el evento derivado de una tarea; (nil, nil) si no existe.
func (r *EventRepo) GetByTaskID(ctx context.Context, taskID string) (*entity.CommercialEvent, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE task_id = $1 LIMIT 1`, taskID)
	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event by task: %w", err)
	}
	return e, nil
}

// Upsert inserta o actualiza un evento.
func (r *EventRepo) Upsert(ctx context.Context, e *entity.CommercialEvent) error {
	var taskID *string
	if e.TaskID != "" {
		taskID = &e.TaskID
	}
	query := `
		INSERT INTO events (id, title, description, event_date, event_time, location, type, task_id, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE
		SET title = EXCLUDED.title, description = EXCLUDED.description, event_date = EXCLUDED.event_date,
		    event_time = EXCLUDED.event_time, location = EXCLUDED.location, type = EXCLUDED.type,
		    task_id = EXCLUDED.task_id`
	_, err := r.pool.Exec(ctx, query,
		e.ID, e.Title, e.Description, e.Date, e.Time, e.Location, e.Type, taskID, e.CreatedBy, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert event: %w", err)
	}
	return nil
}

// Delete elimina un evento por id.
func (r *EventRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// DeleteByTaskID elimina el evento derivado de una tarea, si existe.
func (r *EventRepo) DeleteByTaskID(ctx context.Context, taskID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM events WHERE task_id = $1`, taskID)
	if err != nil {
		return fmt.Errorf("delete event by task: %w", err)
	}
	return nil
}
