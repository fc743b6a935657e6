package repository

import "github.com/gestock/gestock-api/internal/domain/entity"

// StockAlertRepository define el puerto para las alertas de stock.
type StockAlertRepository interface {
	Create(alert *entity.StockAlert) error
	GetByID(id string) (*entity.StockAlert, error)
	Update(alert *entity.StockAlert) error
	List(limit, offset int) ([]*entity.StockAlert, error)
	ListByStock(stockID string, limit, offset int) ([]*entity.StockAlert, error)
	ListUnresolved(limit, offset int) ([]*entity.StockAlert, error)
	Delete(id string) error
}
