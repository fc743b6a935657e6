package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestock/gestock-api/internal/application/dto"
	"github.com/gestock/gestock-api/internal/domain"
	"github.com/gestock/gestock-api/internal/domain/entity"
	"github.com/gestock/gestock-api/internal/domain/repository"
)

// LotUseCase casos de uso CRUD para lotes.
type LotUseCase struct {
	repo         repository.LotRepository
	articleRepo  repository.ArticleRepository
	supplierRepo repository.SupplierRepository
}

// NewLotUseCase construye el caso de uso.
func NewLotUseCase(
	repo repository.LotRepository,
	articleRepo repository.ArticleRepository,
	supplierRepo repository.SupplierRepository,
) *LotUseCase {
	return &LotUseCase{repo: repo, articleRepo: articleRepo, supplierRepo: supplierRepo}
}

// Create crea un nuevo lote; artículo y proveedor deben existir.
func (uc *LotUseCase) Create(in dto.CreateLotRequest) (*dto.LotResponse, error) {
	if in.Number == "" || in.ArticleID == "" || in.SupplierID == "" {
		return nil, domain.ErrInvalidInput
	}
	article, err := uc.articleRepo.GetByID(in.ArticleID)
	if err != nil {
		return nil, err
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if article == nil || supplier == nil {
		return nil, domain.ErrNotFound
	}
	lot := &entity.Lot{
		ID:         uuid.New().String(),
		Number:     in.Number,
		ArticleID:  in.ArticleID,
		SupplierID: in.SupplierID,
		ExpiryDate: in.ExpiryDate,
	}
	if err := uc.repo.Create(lot); err != nil {
		return nil, err
	}
	return toLotResponse(lot), nil
}

// GetByID obtiene un lote por ID.
func (uc *LotUseCase) GetByID(id string) (*dto.LotResponse, error) {
	lot, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, nil
	}
	return toLotResponse(lot), nil
}

// Update actualiza un lote (registro completo).
func (uc *LotUseCase) Update(id string, in dto.UpdateLotRequest) (*dto.LotResponse, error) {
	if in.ID != "" && in.ID != id {
		return nil, domain.ErrInvalidInput
	}
	lot, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, domain.ErrNotFound
	}
	lot.Number = in.Number
	lot.ArticleID = in.ArticleID
	lot.SupplierID = in.SupplierID
	lot.ExpiryDate = in.ExpiryDate
	if err := uc.repo.Update(lot); err != nil {
		return nil, err
	}
	return toLotResponse(lot), nil
}

// List lista lotes con paginación.
func (uc *LotUseCase) List(limit, offset int) (*dto.LotListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toLotList(list, limit, offset), nil
}

// ListByExpiryDate lista lotes que expiran en o antes de la fecha dada.
func (uc *LotUseCase) ListByExpiryDate(expiry time.Time, limit, offset int) (*dto.LotListResponse, error) {
	list, err := uc.repo.ListByExpiryDate(expiry, limit, offset)
	if err != nil {
		return nil, err
	}
	return toLotList(list, limit, offset), nil
}

// ListByArticle lista los lotes de un artículo.
func (uc *LotUseCase) ListByArticle(articleID string, limit, offset int) (*dto.LotListResponse, error) {
	list, err := uc.repo.ListByArticle(articleID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toLotList(list, limit, offset), nil
}

// Delete elimina un lote por ID.
func (uc *LotUseCase) Delete(id string) error {
	lot, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if lot == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toLotResponse(l *entity.Lot) *dto.LotResponse {
	if l == nil {
		return nil
	}
	return &dto.LotResponse{
		ID:         l.ID,
		Number:     l.Number,
		ArticleID:  l.ArticleID,
		SupplierID: l.SupplierID,
		ExpiryDate: l.ExpiryDate,
	}
}

func toLotList(list []*entity.Lot, limit, offset int) *dto.LotListResponse {
	items := make([]dto.LotResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLotResponse(l))
	}
	return &dto.LotListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}
