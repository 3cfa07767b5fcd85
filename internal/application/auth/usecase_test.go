package auth

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/gtmpro-api/internal/application/dto"
	"github.com/jhoicas/gtmpro-api/internal/domain"
	"github.com/jhoicas/gtmpro-api/internal/domain/entity"
)

type fakeUserRepo struct {
	mu   sync.Mutex
	rows map[string]entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{rows: make(map[string]entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.rows {
		if row.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	f.rows[u.ID] = *u
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	u := row
	return &u, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.rows {
		if row.Email == email {
			u := row
			return &u, nil
		}
	}
	return nil, nil
}

func newUseCase(t *testing.T) (*AuthUseCase, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "gtm-pro-test"})
	return uc, repo
}

func seedUser(t *testing.T, repo *fakeUserRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("x"), bcrypt.MinCost)
	require.NoError(t, err)
	repo.rows["u1"] = entity.User{
		ID: "u1", Name: "Ana", Email: "a@b.com",
		PasswordHash: string(hash), Role: entity.RoleUser,
	}
}

// Login con credenciales correctas devuelve sesión con token y usuario.
func TestLogin_OK(t *testing.T) {
	uc, repo := newUseCase(t)
	seedUser(t, repo)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "u1", out.User.ID)
	assert.Equal(t, "Ana", out.User.Name)
	assert.Equal(t, "a@b.com", out.User.Email)
	assert.Equal(t, entity.RoleUser, out.User.Role)
}

// Password incorrecto y email desconocido son indistinguibles: ambos
// ErrUnauthorized, sin sesión.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, repo := newUseCase(t)
	seedUser(t, repo)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "a@b.com", Password: "mala"})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	out, err = uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@b.com", Password: "x"})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Register hashea el password (nunca queda plano), asigna rol USER y se
// comporta como login en éxito.
func TestRegister_OK(t *testing.T) {
	uc, repo := newUseCase(t)

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name: "Bruno", Email: "b@c.com", Password: "segredo1",
	})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleUser, out.User.Role)

	stored, err := repo.FindByEmail(context.Background(), "b@c.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "segredo1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("segredo1")))
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, repo := newUseCase(t)
	seedUser(t, repo)

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name: "Otra", Email: "a@b.com", Password: "segredo1",
	})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// La revalidación de arranque: un id que ya no resuelve devuelve nil y la
// sesión se trata como cerrada.
func TestRevalidate(t *testing.T) {
	uc, repo := newUseCase(t)
	seedUser(t, repo)

	u, err := uc.Revalidate(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Ana", u.Name)

	u, err = uc.Revalidate(context.Background(), "borrado")
	require.NoError(t, err)
	assert.Nil(t, u)
}
