package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestock/gestock-api/internal/application/dto"
	"github.com/gestock/gestock-api/internal/domain"
	"github.com/gestock/gestock-api/internal/domain/entity"
	"github.com/gestock/gestock-api/internal/domain/repository"
)

// AlertUseCase casos de uso para alertas de stock.
type AlertUseCase struct {
	repo      repository.StockAlertRepository
	stockRepo repository.StockRepository
}

// NewAlertUseCase construye el caso de uso.
func NewAlertUseCase(repo repository.StockAlertRepository, stockRepo repository.StockRepository) *AlertUseCase {
	return &AlertUseCase{repo: repo, stockRepo: stockRepo}
}

// Create crea una alerta sobre una línea de stock existente.
func (uc *AlertUseCase) Create(in dto.CreateStockAlertRequest) (*dto.StockAlertResponse, error) {
	if in.StockID == "" || in.Type == "" || in.Message == "" {
		return nil, domain.ErrInvalidInput
	}
	stock, err := uc.stockRepo.GetByID(in.StockID)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, domain.ErrNotFound
	}
	alertDate := in.AlertDate
	if alertDate.IsZero() {
		alertDate = time.Now()
	}
	alert := &entity.StockAlert{
		ID:        uuid.New().String(),
		StockID:   in.StockID,
		Type:      in.Type,
		Message:   in.Message,
		AlertDate: alertDate,
		Resolved:  false,
	}
	if err := uc.repo.Create(alert); err != nil {
		return nil, err
	}
	return toAlertResponse(alert), nil
}

// GetByID obtiene una alerta por ID.
func (uc *AlertUseCase) GetByID(id string) (*dto.StockAlertResponse, error) {
	alert, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, nil
	}
	return toAlertResponse(alert), nil
}

// Update actualiza una alerta (registro completo).
func (uc *AlertUseCase) Update(id string, in dto.UpdateStockAlertRequest) (*dto.StockAlertResponse, error) {
	if in.ID != "" && in.ID != id {
		return nil, domain.ErrInvalidInput
	}
	alert, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, domain.ErrNotFound
	}
	alert.StockID = in.StockID
	alert.Type = in.Type
	alert.Message = in.Message
	alert.AlertDate = in.AlertDate
	alert.Resolved = in.Resolved
	if err := uc.repo.Update(alert); err != nil {
		return nil, err
	}
	return toAlertResponse(alert), nil
}

// Resolve marca una alerta como resuelta.
func (uc *AlertUseCase) Resolve(id string) (*dto.StockAlertResponse, error) {
	alert, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, domain.ErrNotFound
	}
	alert.Resolved = true
	if err := uc.repo.Update(alert); err != nil {
		return nil, err
	}
	return toAlertResponse(alert), nil
}

// List lista alertas con paginación.
func (uc *AlertUseCase) List(limit, offset int) (*dto.StockAlertListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toAlertList(list, limit, offset), nil
}

// ListByStock lista las alertas de una línea de stock.
func (uc *AlertUseCase) ListByStock(stockID string, limit, offset int) (*dto.StockAlertListResponse, error) {
	list, err := uc.repo.ListByStock(stockID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toAlertList(list, limit, offset), nil
}

// ListUnresolved lista las alertas pendientes de resolución.
func (uc *AlertUseCase) ListUnresolved(limit, offset int) (*dto.StockAlertListResponse, error) {
	list, err := uc.repo.ListUnresolved(limit, offset)
	if err != nil {
		return nil, err
	}
	return toAlertList(list, limit, offset), nil
}

// Delete elimina una alerta por ID.
func (uc *AlertUseCase) Delete(id string) error {
	alert, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if alert == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toAlertResponse(a *entity.StockAlert) *dto.StockAlertResponse {
	if a == nil {
		return nil
	}
	return &dto.StockAlertResponse{
		ID:        a.ID,
		StockID:   a.StockID,
		Type:      a.Type,
		Message:   a.Message,
		AlertDate: a.AlertDate,
		Resolved:  a.Resolved,
	}
}

func toAlertList(list []*entity.StockAlert, limit, offset int) *dto.StockAlertListResponse {
	items := make([]dto.StockAlertResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAlertResponse(a))
	}
	return &dto.StockAlertListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}
