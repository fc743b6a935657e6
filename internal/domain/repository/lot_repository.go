package repository

import (
	"time"

	"github.com/gestock/gestock-api/internal/domain/entity"
)

// LotRepository define el puerto de persistencia para Lot.
type LotRepository interface {
	Create(lot *entity.Lot) error
	GetByID(id string) (*entity.Lot, error)
	Update(lot *entity.Lot) error
	List(limit, offset int) ([]*entity.Lot, error)
	// ListByExpiryDate devuelve los lotes que expiran en o antes de la fecha dada.
	ListByExpiryDate(expiry time.Time, limit, offset int) ([]*entity.Lot, error)
	ListByArticle(articleID string, limit, offset int) ([]*entity.Lot, error)
	Delete(id string) error
}
