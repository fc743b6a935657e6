package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestock/gestock-api/internal/application/dto"
	"github.com/gestock/gestock-api/internal/domain"
	"github.com/gestock/gestock-api/internal/domain/entity"
	"github.com/gestock/gestock-api/internal/domain/repository"
)

// TemperatureUseCase casos de uso para el histórico de temperaturas.
type TemperatureUseCase struct {
	repo       repository.TemperatureReadingRepository
	sensorRepo repository.SensorRepository
}

// NewTemperatureUseCase construye el caso de uso.
func NewTemperatureUseCase(repo repository.TemperatureReadingRepository, sensorRepo repository.SensorRepository) *TemperatureUseCase {
	return &TemperatureUseCase{repo: repo, sensorRepo: sensorRepo}
}

// Create registra una medición; el sensor debe existir.
func (uc *TemperatureUseCase) Create(in dto.CreateTemperatureReadingRequest) (*dto.TemperatureReadingResponse, error) {
	if in.SensorID == "" {
		return nil, domain.ErrInvalidInput
	}
	sensor, err := uc.sensorRepo.GetByID(in.SensorID)
	if err != nil {
		return nil, err
	}
	if sensor == nil {
		return nil, domain.ErrNotFound
	}
	measuredAt := in.MeasuredAt
	if measuredAt.IsZero() {
		measuredAt = time.Now()
	}
	reading := &entity.TemperatureReading{
		ID:         uuid.New().String(),
		SensorID:   in.SensorID,
		MeasuredAt: measuredAt,
		Value:      in.Value,
	}
	if err := uc.repo.Create(reading); err != nil {
		return nil, err
	}
	return toReadingResponse(reading), nil
}

// GetByID obtiene una medición por ID.
func (uc *TemperatureUseCase) GetByID(id string) (*dto.TemperatureReadingResponse, error) {
	reading, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if reading == nil {
		return nil, nil
	}
	return toReadingResponse(reading), nil
}

// Update actualiza una medición (registro completo).
func (uc *TemperatureUseCase) Update(id string, in dto.UpdateTemperatureReadingRequest) (*dto.TemperatureReadingResponse, error) {
	if in.ID != "" && in.ID != id {
		return nil, domain.ErrInvalidInput
	}
	reading, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if reading == nil {
		return nil, domain.ErrNotFound
	}
	reading.SensorID = in.SensorID
	reading.MeasuredAt = in.MeasuredAt
	reading.Value = in.Value
	if err := uc.repo.Update(reading); err != nil {
		return nil, err
	}
	return toReadingResponse(reading), nil
}

// List lista mediciones con paginación.
func (uc *TemperatureUseCase) List(limit, offset int) (*dto.TemperatureReadingListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toReadingList(list, limit, offset), nil
}

// ListBySensor lista las mediciones de un sensor.
func (uc *TemperatureUseCase) ListBySensor(sensorID string, limit, offset int) (*dto.TemperatureReadingListResponse, error) {
	list, err := uc.repo.ListBySensor(sensorID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toReadingList(list, limit, offset), nil
}

// ListByDateRange lista mediciones en un rango de fechas.
func (uc *TemperatureUseCase) ListByDateRange(start, end time.Time, limit, offset int) (*dto.TemperatureReadingListResponse, error) {
	if end.Before(start) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListByDateRange(start, end, limit, offset)
	if err != nil {
		return nil, err
	}
	return toReadingList(list, limit, offset), nil
}

// Delete elimina una medición por ID.
func (uc *TemperatureUseCase) Delete(id string) error {
	reading, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if reading == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toReadingResponse(r *entity.TemperatureReading) *dto.TemperatureReadingResponse {
	if r == nil {
		return nil
	}
	return &dto.TemperatureReadingResponse{
		ID:         r.ID,
		SensorID:   r.SensorID,
		MeasuredAt: r.MeasuredAt,
		Value:      r.Value,
	}
}

func toReadingList(list []*entity.TemperatureReading, limit, offset int) *dto.TemperatureReadingListResponse {
	items := make([]dto.TemperatureReadingResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReadingResponse(r))
	}
	return &dto.TemperatureReadingListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}
