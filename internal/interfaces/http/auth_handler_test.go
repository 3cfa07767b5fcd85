package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/gtmpro-api/internal/application/auth"
	"github.com/jhoicas/gtmpro-api/internal/domain"
	"github.com/jhoicas/gtmpro-api/internal/domain/entity"
	apphttp "github.com/jhoicas/gtmpro-api/internal/interfaces/http"
	"github.com/jhoicas/gtmpro-api/pkg/validator"
)

// userRepoStub repositorio de usuarios en memoria para los tests del handler.
type userRepoStub struct {
	rows map[string]entity.User
}

func (s *userRepoStub) Create(_ context.Context, u *entity.User) error {
	for _, row := range s.rows {
		if row.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	s.rows[u.ID] = *u
	return nil
}

func (s *userRepoStub) FindByID(_ context.Context, id string) (*entity.User, error) {
	row, ok := s.rows[id]
	if !ok {
		return nil, nil
	}
	u := row
	return &u, nil
}

func (s *userRepoStub) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, row := range s.rows {
		if row.Email == email {
			u := row
			return &u, nil
		}
	}
	return nil, nil
}

func buildAuthApp(t *testing.T) *fiber.App {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("x"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &userRepoStub{rows: map[string]entity.User{
		"u1": {ID: "u1", Name: "Ana", Email: "a@b.com", PasswordHash: string(hash), Role: entity.RoleUser},
	}}
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: testIssuer})
	handler := apphttp.NewAuthHandler(uc, nil, validator.New())

	app := fiber.New()
	app.Post("/api/auth/login", handler.Login)
	app.Post("/api/auth/register", handler.Register)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Login con el usuario sembrado {u1, Ana, a@b.com, x} devuelve success:true y
// la sesión con el usuario sin password.
func TestLogin_UsuarioSembrado_OK(t *testing.T) {
	app := buildAuthApp(t)

	resp := postJSON(t, app, "/api/auth/login", fiber.Map{"email": "a@b.com", "password": "x"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		User    struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Success)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "u1", out.User.ID)
	assert.Equal(t, "Ana", out.User.Name)
	assert.Equal(t, "a@b.com", out.User.Email)
	assert.Equal(t, entity.RoleUser, out.User.Role)
}

// Password incorrecto: success:false con el mensaje exacto que la UI muestra,
// y sin sesión.
func TestLogin_PasswordIncorrecto(t *testing.T) {
	app := buildAuthApp(t)

	resp := postJSON(t, app, "/api/auth/login", fiber.Map{"email": "a@b.com", "password": "errada"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var out struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.False(t, out.Success)
	assert.Equal(t, "E-mail ou senha incorretos.", out.Message)
	assert.Empty(t, out.Token)
}

// Registro nuevo se comporta como login; email duplicado devuelve el mensaje
// de conflicto.
func TestRegister_Handler(t *testing.T) {
	app := buildAuthApp(t)

	resp := postJSON(t, app, "/api/auth/register", fiber.Map{
		"name": "Bruno", "email": "b@c.com", "password": "segredo1",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Success)
	assert.NotEmpty(t, out.Token)

	dup := postJSON(t, app, "/api/auth/register", fiber.Map{
		"name": "Outro", "email": "a@b.com", "password": "segredo1",
	})
	defer dup.Body.Close()
	require.Equal(t, http.StatusConflict, dup.StatusCode)

	var dupOut struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(dup.Body).Decode(&dupOut))
	assert.False(t, dupOut.Success)
	assert.Equal(t, "E-mail já cadastrado.", dupOut.Message)
}
