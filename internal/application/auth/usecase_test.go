package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestock/gestock-api/internal/application/auth"
	"github.com/gestock/gestock-api/internal/application/dto"
	"github.com/gestock/gestock-api/internal/domain"
	"github.com/gestock/gestock-api/internal/domain/entity"
)

// fakeUserRepo repo de usuarios en memoria, indexado por email.
type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error           { return nil }
func (r *fakeUserRepo) List(int, int) ([]*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) SearchByName(string, int, int) ([]*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Delete(string) error { return nil }

var testJWT = auth.JWTConfig{Secret: "test-secret-key-for-unit-tests", ExpMinutes: 60, Issuer: "gestock-test"}

func registerUser(t *testing.T, uc *auth.UseCase, email, password string) *dto.UserResponse {
	t.Helper()
	out, err := uc.Register(dto.RegisterRequest{
		FirstName: "Ana",
		LastName:  "García",
		Email:     email,
		Password:  password,
	})
	require.NoError(t, err)
	return out
}

func TestRegister_HasheaPasswordConBcrypt(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, testJWT)

	out := registerUser(t, uc, "ana@example.com", "contraseña-segura")
	assert.Equal(t, entity.RoleEmploye, out.Role, "rol por defecto: employe")

	stored, err := repo.FindByEmail("ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "contraseña-segura", stored.PasswordHash, "nunca se persiste en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("contraseña-segura")))
}

func TestRegister_PasswordCorta_Rechaza(t *testing.T) {
	uc := auth.NewUseCase(newFakeUserRepo(), testJWT)
	_, err := uc.Register(dto.RegisterRequest{Email: "a@b.com", Password: "corta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, testJWT)
	registerUser(t, uc, "ana@example.com", "contraseña-segura")

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@example.com", Password: "otra-contraseña"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// El registro nunca concede el rol admin, ni siquiera pidiéndolo explícito:
// los administradores se promueven vía PUT /users (ruta solo admin).
func TestRegister_NoConcedeRolAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, testJWT)

	out, err := uc.Register(dto.RegisterRequest{
		Email:    "intruso@example.com",
		Password: "contraseña-segura",
		Role:     entity.RoleAdmin,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Nil(t, out)

	stored, err := repo.FindByEmail("intruso@example.com")
	require.NoError(t, err)
	assert.Nil(t, stored, "no se persiste nada")
}

func TestRegister_RolFueraDelConjunto_Rechaza(t *testing.T) {
	uc := auth.NewUseCase(newFakeUserRepo(), testJWT)
	_, err := uc.Register(dto.RegisterRequest{
		Email:    "a@b.com",
		Password: "contraseña-segura",
		Role:     "superuser",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_RolGestionnaire_Permitido(t *testing.T) {
	uc := auth.NewUseCase(newFakeUserRepo(), testJWT)
	out, err := uc.Register(dto.RegisterRequest{
		Email:    "gestora@example.com",
		Password: "contraseña-segura",
		Role:     entity.RoleGestionnaire,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleGestionnaire, out.Role)
}

func TestLogin_CredencialesValidas_RetornaToken(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, testJWT)
	registerUser(t, uc, "ana@example.com", "contraseña-segura")

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "contraseña-segura"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "ana@example.com", out.User.Email)
}

// Email desconocido y contraseña incorrecta devuelven el mismo error:
// la respuesta no debe revelar si la cuenta existe.
func TestLogin_NoRevelaSiElEmailExiste(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, testJWT)
	registerUser(t, uc, "ana@example.com", "contraseña-segura")

	_, errUnknown := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "lo-que-sea"})
	_, errBadPass := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "incorrecta"})

	assert.ErrorIs(t, errUnknown, domain.ErrUnauthorized)
	assert.ErrorIs(t, errBadPass, domain.ErrUnauthorized)
	assert.Equal(t, errUnknown, errBadPass, "mismo error para ambos casos")
}

func TestLogin_UsuarioInactivo_Retorna403(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, testJWT)
	registerUser(t, uc, "ana@example.com", "contraseña-segura")
	repo.byEmail["ana@example.com"].Status = "inactive"

	_, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "contraseña-segura"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
