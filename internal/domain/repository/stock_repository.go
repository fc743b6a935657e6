package repository

import "github.com/gestock/gestock-api/internal/domain/entity"

// StockRepository define el puerto para las líneas de stock (lote + almacén).
// Las operaciones de bloqueo se usan dentro de transacciones para garantizar
// consistencia con el libro de movimientos.
type StockRepository interface {
	Create(stock *entity.Stock) error
	GetByID(id string) (*entity.Stock, error)
	// GetByLotAndWarehouse devuelve nil si no existe línea para el par.
	GetByLotAndWarehouse(lotID, warehouseID string) (*entity.Stock, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE). Devuelve nil si no existe.
	GetForUpdate(lotID, warehouseID string) (*entity.Stock, error)
	Update(stock *entity.Stock) error
	UpdateQuantity(id string, quantity int64) error
	List(limit, offset int) ([]*entity.Stock, error)
	ListByLot(lotID string, limit, offset int) ([]*entity.Stock, error)
	ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.Stock, error)
	Delete(id string) error
}
