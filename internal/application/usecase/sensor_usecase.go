package usecase

import (
	"github.com/google/uuid"

	"github.com/gestock/gestock-api/internal/application/dto"
	"github.com/gestock/gestock-api/internal/domain"
	"github.com/gestock/gestock-api/internal/domain/entity"
	"github.com/gestock/gestock-api/internal/domain/repository"
)

// SensorUseCase casos de uso CRUD para sensores de temperatura.
type SensorUseCase struct {
	repo          repository.SensorRepository
	warehouseRepo repository.WarehouseRepository
}

// NewSensorUseCase construye el caso de uso.
func NewSensorUseCase(repo repository.SensorRepository, warehouseRepo repository.WarehouseRepository) *SensorUseCase {
	return &SensorUseCase{repo: repo, warehouseRepo: warehouseRepo}
}

// Create crea un sensor; el almacén referenciado debe existir.
func (uc *SensorUseCase) Create(in dto.CreateSensorRequest) (*dto.SensorResponse, error) {
	if in.Name == "" || in.Type == "" || in.WarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	sensor := &entity.Sensor{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Type:        in.Type,
		Location:    in.Location,
		WarehouseID: in.WarehouseID,
	}
	if err := uc.repo.Create(sensor); err != nil {
		return nil, err
	}
	return toSensorResponse(sensor), nil
}

// GetByID obtiene un sensor por ID.
func (uc *SensorUseCase) GetByID(id string) (*dto.SensorResponse, error) {
	sensor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sensor == nil {
		return nil, nil
	}
	return toSensorResponse(sensor), nil
}

// Update actualiza un sensor (registro completo).
func (uc *SensorUseCase) Update(id string, in dto.UpdateSensorRequest) (*dto.SensorResponse, error) {
	if in.ID != "" && in.ID != id {
		return nil, domain.ErrInvalidInput
	}
	sensor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sensor == nil {
		return nil, domain.ErrNotFound
	}
	sensor.Name = in.Name
	sensor.Type = in.Type
	sensor.Location = in.Location
	sensor.WarehouseID = in.WarehouseID
	if err := uc.repo.Update(sensor); err != nil {
		return nil, err
	}
	return toSensorResponse(sensor), nil
}

// List lista sensores con paginación.
func (uc *SensorUseCase) List(limit, offset int) (*dto.SensorListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toSensorList(list, limit, offset), nil
}

// ListByWarehouseLocation busca sensores por localización del almacén.
func (uc *SensorUseCase) ListByWarehouseLocation(location string, limit, offset int) (*dto.SensorListResponse, error) {
	list, err := uc.repo.ListByWarehouseLocation(location, limit, offset)
	if err != nil {
		return nil, err
	}
	return toSensorList(list, limit, offset), nil
}

// Delete elimina un sensor por ID.
func (uc *SensorUseCase) Delete(id string) error {
	sensor, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if sensor == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toSensorResponse(s *entity.Sensor) *dto.SensorResponse {
	if s == nil {
		return nil
	}
	return &dto.SensorResponse{
		ID:          s.ID,
		Name:        s.Name,
		Type:        s.Type,
		Location:    s.Location,
		WarehouseID: s.WarehouseID,
	}
}

func toSensorList(list []*entity.Sensor, limit, offset int) *dto.SensorListResponse {
	items := make([]dto.SensorResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSensorResponse(s))
	}
	return &dto.SensorListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}
