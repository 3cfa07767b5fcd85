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

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL.
type InventoryRepo struct {
	pool *pgxpool.Pool
}

// NewInventoryRepository construye el adaptador de persistencia para el stock.
func NewInventoryRepository(pool *pgxpool.Pool) *InventoryRepo {
	return &InventoryRepo{pool: pool}
}

// List lista los ítems del stock, ordenados por nombre.
func (r *InventoryRepo) List(ctx context.Context) ([]*entity.InventoryItem, error) {
	query := `
		SELECT id, name, category, quantity, min_quantity, updated_at
		FROM inventory_items ORDER BY name ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryItem
	for rows.Next() {
		var i entity.InventoryItem
		if err := rows.Scan(&i.ID, &i.Name, &i.Category, &i.Quantity, &i.MinQuantity, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// GetByID obtiene un ítem por id; (nil, nil) si no existe.
func (r *InventoryRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	query := `
		SELECT id, name, category, quantity, min_quantity, updated_at
		FROM inventory_items WHERE id = $1`
	var i entity.InventoryItem
	err := r.pool.QueryRow(ctx, query, id).Scan(&i.ID, &i.Name, &i.Category, &i.Quantity, &i.MinQuantity, &i.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return &i, nil
}

// Upsert inserta o actualiza un ítem del stock.
func (r *InventoryRepo) Upsert(ctx context.Context, i *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, name, category, quantity, min_quantity, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, category = EXCLUDED.category, quantity = EXCLUDED.quantity,
		    min_quantity = EXCLUDED.min_quantity, updated_at = EXCLUDED.updated_at`
	_, err := r.pool.Exec(ctx, query, i.ID, i.Name, i.Category, i.Quantity, i.MinQuantity, i.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert inventory item: %w", err)
	}
	return nil
}

// Delete elimina un ítem del stock.
func (r *InventoryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	return nil
}
