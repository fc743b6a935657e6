package repository

import "github.com/gestock/gestock-api/internal/domain/entity"

// ArticleRepository define el puerto de persistencia para Article (DIP).
type ArticleRepository interface {
	Create(article *entity.Article) error
	GetByID(id string) (*entity.Article, error)
	Update(article *entity.Article) error
	List(limit, offset int) ([]*entity.Article, error)
	SearchByName(name string, limit, offset int) ([]*entity.Article, error)
	Delete(id string) error
}
