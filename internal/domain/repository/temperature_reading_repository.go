package repository

import (
	"time"

	"github.com/gestock/gestock-api/internal/domain/entity"
)

// TemperatureReadingRepository define el puerto para el histórico de mediciones.
type TemperatureReadingRepository interface {
	Create(reading *entity.TemperatureReading) error
	GetByID(id string) (*entity.TemperatureReading, error)
	Update(reading *entity.TemperatureReading) error
	List(limit, offset int) ([]*entity.TemperatureReading, error)
	ListBySensor(sensorID string, limit, offset int) ([]*entity.TemperatureReading, error)
	ListByDateRange(start, end time.Time, limit, offset int) ([]*entity.TemperatureReading, error)
	Delete(id string) error
}
