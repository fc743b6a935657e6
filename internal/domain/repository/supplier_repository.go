package repository

import "github.com/gestock/gestock-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	List(limit, offset int) ([]*entity.Supplier, error)
	SearchByName(name string, limit, offset int) ([]*entity.Supplier, error)
	Delete(id string) error
}
