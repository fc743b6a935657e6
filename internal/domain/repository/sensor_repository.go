package repository

import "github.com/gestock/gestock-api/internal/domain/entity"

// SensorRepository define el puerto de persistencia para Sensor.
type SensorRepository interface {
	Create(sensor *entity.Sensor) error
	GetByID(id string) (*entity.Sensor, error)
	Update(sensor *entity.Sensor) error
	List(limit, offset int) ([]*entity.Sensor, error)
	// ListByWarehouseLocation filtra por la localización del almacén del sensor.
	ListByWarehouseLocation(location string, limit, offset int) ([]*entity.Sensor, error)
	Delete(id string) error
}
