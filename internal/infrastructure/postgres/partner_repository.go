package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/gtmpro-api/internal/domain/entity"
	"github.com/jhoicas/gtmpro-api/internal/domain/repository"
)

var _ repository.PartnerRepository = (*PartnerRepo)(nil)

// PartnerRepo implementación del puerto PartnerRepository sobre PostgreSQL.
// Los contactos viven embebidos en una columna JSONB y se reemplazan por
// completo en cada escritura del partner.
type PartnerRepo struct {
	pool *pgxpool.Pool
}

// NewPartnerRepository construye el adaptador de persistencia para partners.
func NewPartnerRepository(pool *pgxpool.Pool) *PartnerRepo {
	return &PartnerRepo{pool: pool}
}

// List lista los partners del usuario, más recientes primero.
// El status se normaliza en la lectura: valores desconocidos caen en PROSPECT.
func (r *PartnerRepo) List(ctx context.Context, userID string) ([]*entity.Partner, error) {
	query := `
		SELECT id, user_id, name, target_ies, status, contacts, created_at, updated_at
		FROM partners WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	defer rows.Close()

	var list []*entity.Partner
	for rows.Next() {
		var p entity.Partner
		var rawContacts []byte
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.TargetIES, &p.Status, &rawContacts, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan partner: %w", err)
		}
		p.Status = entity.NormalizePipelineStatus(p.Status)
		if len(rawContacts) > 0 {
			if err := json.Unmarshal(rawContacts, &p.Contacts); err != nil {
				return nil, fmt.Errorf("decode contacts: %w", err)
			}
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Upsert inserta o actualiza un partner del usuario en una sola sentencia.
// La actualización queda scoped por user_id: un id ajeno no se toca.
func (r *PartnerRepo) Upsert(ctx context.Context, userID string, p *entity.Partner) error {
	contacts, err := json.Marshal(p.Contacts)
	if err != nil {
		return fmt.Errorf("encode contacts: %w", err)
	}
	query := `
		INSERT INTO partners (id, user_id, name, target_ies, status, contacts, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, target_ies = EXCLUDED.target_ies, status = EXCLUDED.status,
		    contacts = EXCLUDED.contacts, updated_at = EXCLUDED.updated_at
		WHERE partners.user_id = $2`
	_, err = r.pool.Exec(ctx, query,
		p.ID, userID, p.Name, p.TargetIES, p.Status, contacts, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert partner: %w", err)
	}
	return nil
}

// Delete elimina un partner del usuario.
func (r *PartnerRepo) Delete(ctx context.Context, userID, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM partners WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete partner: %w", err)
	}
	return nil
}
