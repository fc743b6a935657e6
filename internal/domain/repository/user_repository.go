package repository

import "github.com/gestock/gestock-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// FindByEmail devuelve nil si el email no existe.
	FindByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	SearchByName(name string, limit, offset int) ([]*entity.User, error)
	Delete(id string) error
}
