package repository

import "github.com/gestock/gestock-api/internal/domain/entity"

// ArticleSupplierRepository define el puerto para los vínculos artículo-proveedor.
type ArticleSupplierRepository interface {
	Create(link *entity.ArticleSupplier) error
	GetByID(id string) (*entity.ArticleSupplier, error)
	Update(link *entity.ArticleSupplier) error
	List(limit, offset int) ([]*entity.ArticleSupplier, error)
	// Search filtra por nombre de artículo y/o de proveedor (ambos opcionales).
	Search(articleName, supplierName string, limit, offset int) ([]*entity.ArticleSupplier, error)
	Delete(id string) error
}
