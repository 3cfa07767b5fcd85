package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/gtmpro-api/internal/domain/entity"
	"github.com/jhoicas/gtmpro-api/internal/domain/repository"
)

var _ repository.SheetRepository = (*SheetRepo)(nil)

// SheetRepo implementación del puerto SheetRepository sobre PostgreSQL.
type SheetRepo struct {
	pool *pgxpool.Pool
}

// NewSheetRepository construye el adaptador de persistencia para planillas vinculadas.
func NewSheetRepository(pool *pgxpool.Pool) *SheetRepo {
	return &SheetRepo{pool: pool}
}

// List lista las planillas del usuario, más recientes primero.
func (r *SheetRepo) List(ctx context.Context, userID string) ([]*entity.LinkedSheet, error) {
	query := `
		SELECT id, user_id, title, url, category, description, created_at
		FROM sheets WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list sheets: %w", err)
	}
	defer rows.Close()

	var list []*entity.LinkedSheet
	for rows.Next() {
		var s entity.LinkedSheet
		if err := rows.Scan(&s.ID, &s.UserID, &s.Title, &s.URL, &s.Category, &s.Description, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sheet: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Upsert inserta o actualiza una planilla del usuario.
func (r *SheetRepo) Upsert(ctx context.Context, userID string, s *entity.LinkedSheet) error {
	query := `
		INSERT INTO sheets (id, user_id, title, url, category, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE
		SET title = EXCLUDED.title, url = EXCLUDED.url, category = EXCLUDED.category,
		    description = EXCLUDED.description
		WHERE sheets.user_id = $2`
	_, err := r.pool.Exec(ctx, query, s.ID, userID, s.Title, s.URL, s.Category, s.Description, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert sheet: %w", err)
	}
	return nil
}

// Delete elimina una planilla del usuario.
func (r *SheetRepo) Delete(ctx context.Context, userID, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM sheets WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete sheet: %w", err)
	}
	return nil
}
