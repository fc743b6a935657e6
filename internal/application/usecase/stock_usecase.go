package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestock/gestock-api/internal/application/dto"
	"github.com/gestock/gestock-api/internal/domain"
	"github.com/gestock/gestock-api/internal/domain/entity"
	"github.com/gestock/gestock-api/internal/domain/repository"
)

// StockUseCase casos de uso CRUD para líneas de stock. El aprovisionamiento
// de líneas pasa solo por aquí; los movimientos nunca crean líneas.
type StockUseCase struct {
	repo          repository.StockRepository
	lotRepo       repository.LotRepository
	warehouseRepo repository.WarehouseRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	repo repository.StockRepository,
	lotRepo repository.LotRepository,
	warehouseRepo repository.WarehouseRepository,
) *StockUseCase {
	return &StockUseCase{repo: repo, lotRepo: lotRepo, warehouseRepo: warehouseRepo}
}

// Create aprovisiona una línea de stock para un par (lote, almacén).
// El par debe existir y no tener ya una línea.
func (uc *StockUseCase) Create(in dto.CreateStockRequest) (*dto.StockResponse, error) {
	if in.LotID == "" || in.WarehouseID == "" || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	lot, err := uc.lotRepo.GetByID(in.LotID)
	if err != nil {
		return nil, err
	}
	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if lot == nil || warehouse == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.repo.GetByLotAndWarehouse(in.LotID, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	stock := &entity.Stock{
		ID:          uuid.New().String(),
		LotID:       in.LotID,
		WarehouseID: in.WarehouseID,
		Quantity:    in.Quantity,
		UpdatedAt:   time.Now(),
	}
	if err := uc.repo.Create(stock); err != nil {
		return nil, err
	}
	return toStockResponse(stock), nil
}

// GetByID obtiene una línea de stock por ID.
func (uc *StockUseCase) GetByID(id string) (*dto.StockResponse, error) {
	stock, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, nil
	}
	return toStockResponse(stock), nil
}

// Update actualiza una línea de stock (registro completo).
func (uc *StockUseCase) Update(id string, in dto.UpdateStockRequest) (*dto.StockResponse, error) {
	if in.ID != "" && in.ID != id {
		return nil, domain.ErrInvalidInput
	}
	if in.LotID == "" || in.WarehouseID == "" || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	lot, err := uc.lotRepo.GetByID(in.LotID)
	if err != nil {
		return nil, err
	}
	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if lot == nil || warehouse == nil {
		return nil, domain.ErrNotFound
	}
	stock, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, domain.ErrNotFound
	}
	stock.LotID = in.LotID
	stock.WarehouseID = in.WarehouseID
	stock.Quantity = in.Quantity
	stock.UpdatedAt = time.Now()
	if err := uc.repo.Update(stock); err != nil {
		return nil, err
	}
	return toStockResponse(stock), nil
}

// List lista líneas de stock con paginación.
func (uc *StockUseCase) List(limit, offset int) (*dto.StockListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toStockList(list, limit, offset), nil
}

// ListByLot lista las líneas de stock de un lote.
func (uc *StockUseCase) ListByLot(lotID string, limit, offset int) (*dto.StockListResponse, error) {
	list, err := uc.repo.ListByLot(lotID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toStockList(list, limit, offset), nil
}

// ListByWarehouse lista las líneas de stock de un almacén.
func (uc *StockUseCase) ListByWarehouse(warehouseID string, limit, offset int) (*dto.StockListResponse, error) {
	list, err := uc.repo.ListByWarehouse(warehouseID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toStockList(list, limit, offset), nil
}

// Delete elimina una línea de stock por ID.
func (uc *StockUseCase) Delete(id string) error {
	stock, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if stock == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toStockResponse(s *entity.Stock) *dto.StockResponse {
	if s == nil {
		return nil
	}
	return &dto.StockResponse{
		ID:          s.ID,
		LotID:       s.LotID,
		WarehouseID: s.WarehouseID,
		Quantity:    s.Quantity,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toStockList(list []*entity.Stock, limit, offset int) *dto.StockListResponse {
	items := make([]dto.StockResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStockResponse(s))
	}
	return &dto.StockListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}
