package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gtmpro-api/internal/domain/entity"
	"github.com/jhoicas/gtmpro-api/pkg/logger"
)

const testUserID = "u1"

// Crear un partner y listar debe devolver exactamente un registro con los
// campos enviados y un id generado.
func TestPartnerStore_SaveYSnapshot(t *testing.T) {
	repo := newFakePartnerRepo()
	s := NewPartnerStore(repo, logger.Nop())
	ctx := context.Background()

	saved := s.Save(ctx, testUserID, &entity.Partner{
		Name:      "Acme",
		TargetIES: "Campus X",
		Status:    entity.StatusProspect,
		Contacts: []entity.Contact{
			{Name: "Joe", WhatsApp: "5511999999999", Email: "joe@acme.com"},
		},
	})
	require.NotEmpty(t, saved.ID, "el save debe asignar un id")

	list := s.Snapshot()
	require.Len(t, list, 1)
	p := list[0]
	assert.Equal(t, saved.ID, p.ID)
	assert.Equal(t, testUserID, p.UserID)
	assert.Equal(t, "Acme", p.Name)
	assert.Equal(t, "Campus X", p.TargetIES)
	assert.Equal(t, entity.StatusProspect, p.Status)
	require.Len(t, p.Contacts, 1)
	assert.Equal(t, "Joe", p.Contacts[0].Name)
	assert.Equal(t, "5511999999999", p.Contacts[0].WhatsApp)
}

// Un status desconocido que venga de la capa de entrada se normaliza antes de
// persistir: la colección nunca contiene valores fuera del enum.
func TestPartnerStore_SaveNormalizaStatus(t *testing.T) {
	repo := newFakePartnerRepo()
	s := NewPartnerStore(repo, logger.Nop())

	s.Save(context.Background(), testUserID, &entity.Partner{Name: "Beta", Status: "qualified"})

	list := s.Snapshot()
	require.Len(t, list, 1)
	assert.Equal(t, entity.StatusProspect, list[0].Status)
}

// Dos refresh seguidos sin mutación intermedia producen la misma colección.
func TestPartnerStore_RefreshIdempotente(t *testing.T) {
	repo := newFakePartnerRepo()
	s := NewPartnerStore(repo, logger.Nop())
	ctx := context.Background()

	s.Save(ctx, testUserID, &entity.Partner{Name: "Acme"})
	s.Save(ctx, testUserID, &entity.Partner{Name: "Beta"})

	s.Refresh(ctx, testUserID)
	first := s.Snapshot()
	s.Refresh(ctx, testUserID)
	second := s.Snapshot()

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].Name, second[i].Name)
		assert.Equal(t, first[i].Status, second[i].Status)
	}
	assert.False(t, s.Loading())
}

// Un error de lectura no se propaga: la colección queda vacía y el flag de
// carga se limpia.
func TestPartnerStore_ErrorDeLecturaDejaColeccionVacia(t *testing.T) {
	repo := newFakePartnerRepo()
	s := NewPartnerStore(repo, logger.Nop())
	ctx := context.Background()

	s.Save(ctx, testUserID, &entity.Partner{Name: "Acme"})
	require.Len(t, s.Snapshot(), 1)

	repo.listErr = errors.New("store remoto caído")
	s.Refresh(ctx, testUserID)

	assert.Empty(t, s.Snapshot())
	assert.False(t, s.Loading())
}

// Refresh sin usuario autenticado es no-op.
func TestPartnerStore_RefreshSinUsuarioNoOp(t *testing.T) {
	repo := newFakePartnerRepo()
	s := NewPartnerStore(repo, logger.Nop())
	ctx := context.Background()

	s.Save(ctx, testUserID, &entity.Partner{Name: "Acme"})
	require.Len(t, s.Snapshot(), 1)

	s.Refresh(ctx, "")
	assert.Len(t, s.Snapshot(), 1, "la colección no debe cambiar")
}

// El scope por usuario aísla las colecciones: lo de otro usuario no aparece.
func TestPartnerStore_ScopePorUsuario(t *testing.T) {
	repo := newFakePartnerRepo()
	s := NewPartnerStore(repo, logger.Nop())
	ctx := context.Background()

	s.Save(ctx, testUserID, &entity.Partner{Name: "Mío"})
	s.Save(ctx, "u2", &entity.Partner{Name: "Ajeno"})

	s.Refresh(ctx, testUserID)
	list := s.Snapshot()
	require.Len(t, list, 1)
	assert.Equal(t, "Mío", list[0].Name)
}
