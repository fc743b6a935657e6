package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestock/gestock-api/internal/application/dto"
	"github.com/gestock/gestock-api/internal/application/usecase"
	"github.com/gestock/gestock-api/internal/domain"
	"github.com/gestock/gestock-api/internal/domain/entity"
)

type memUserRepo struct {
	byID map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(u *entity.User) error {
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(u *entity.User) error {
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *memUserRepo) List(int, int) ([]*entity.User, error)                { return nil, nil }
func (r *memUserRepo) SearchByName(string, int, int) ([]*entity.User, error) { return nil, nil }

func (r *memUserRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

func seedUser(repo *memUserRepo, id, role string) {
	now := time.Now()
	repo.byID[id] = &entity.User{
		ID:        id,
		FirstName: "Ana",
		LastName:  "García",
		Email:     id + "@example.com",
		Role:      role,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestUserUpdate_PromocionAAdmin(t *testing.T) {
	repo := newMemUserRepo()
	seedUser(repo, "u1", entity.RoleEmploye)
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Update("u1", dto.UpdateUserRequest{
		FirstName: "Ana",
		LastName:  "García",
		Email:     "u1@example.com",
		Role:      entity.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)
}

func TestUserUpdate_RolFueraDelConjunto_Rechaza(t *testing.T) {
	repo := newMemUserRepo()
	seedUser(repo, "u1", entity.RoleEmploye)
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Update("u1", dto.UpdateUserRequest{
		Email: "u1@example.com",
		Role:  "superuser",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, entity.RoleEmploye, repo.byID["u1"].Role, "el rol no cambia")
}

func TestUserUpdate_Inexistente_Retorna404(t *testing.T) {
	uc := usecase.NewUserUseCase(newMemUserRepo())
	_, err := uc.Update("no-existe", dto.UpdateUserRequest{Email: "a@b.com"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserDelete_Inexistente_Retorna404(t *testing.T) {
	uc := usecase.NewUserUseCase(newMemUserRepo())
	err := uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
