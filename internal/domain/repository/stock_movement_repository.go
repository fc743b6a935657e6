package repository

import "github.com/gestock/gestock-api/internal/domain/entity"

// StockMovementRepository define el puerto para el libro de movimientos.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	Update(movement *entity.StockMovement) error
	List(limit, offset int) ([]*entity.StockMovement, error)
	ListByLot(lotID string, limit, offset int) ([]*entity.StockMovement, error)
	// ListByWarehouse devuelve los movimientos cuyo almacén origen o destino coincide.
	ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.StockMovement, error)
	ListByType(movementType string, limit, offset int) ([]*entity.StockMovement, error)
	Delete(id string) error
}
