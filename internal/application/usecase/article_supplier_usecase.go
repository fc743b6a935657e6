package usecase

import (
	"github.com/google/uuid"

	"github.com/gestock/gestock-api/internal/application/dto"
	"github.com/gestock/gestock-api/internal/domain"
	"github.com/gestock/gestock-api/internal/domain/entity"
	"github.com/gestock/gestock-api/internal/domain/repository"
)

// ArticleSupplierUseCase casos de uso para los vínculos artículo-proveedor.
type ArticleSupplierUseCase struct {
	repo         repository.ArticleSupplierRepository
	articleRepo  repository.ArticleRepository
	supplierRepo repository.SupplierRepository
}

// NewArticleSupplierUseCase construye el caso de uso.
func NewArticleSupplierUseCase(
	repo repository.ArticleSupplierRepository,
	articleRepo repository.ArticleRepository,
	supplierRepo repository.SupplierRepository,
) *ArticleSupplierUseCase {
	return &ArticleSupplierUseCase{repo: repo, articleRepo: articleRepo, supplierRepo: supplierRepo}
}

// Create crea un vínculo; artículo y proveedor deben existir.
func (uc *ArticleSupplierUseCase) Create(in dto.CreateArticleSupplierRequest) (*dto.ArticleSupplierResponse, error) {
	if in.ArticleID == "" || in.SupplierID == "" || in.Price.IsNegative() {
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
	link := &entity.ArticleSupplier{
		ID:           uuid.New().String(),
		ArticleID:    in.ArticleID,
		SupplierID:   in.SupplierID,
		Price:        in.Price,
		DeliveryDate: in.DeliveryDate,
	}
	if err := uc.repo.Create(link); err != nil {
		return nil, err
	}
	return toArticleSupplierResponse(link), nil
}

// GetByID obtiene un vínculo por ID.
func (uc *ArticleSupplierUseCase) GetByID(id string) (*dto.ArticleSupplierResponse, error) {
	link, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, nil
	}
	return toArticleSupplierResponse(link), nil
}

// Update actualiza un vínculo (registro completo).
func (uc *ArticleSupplierUseCase) Update(id string, in dto.UpdateArticleSupplierRequest) (*dto.ArticleSupplierResponse, error) {
	if in.ID != "" && in.ID != id {
		return nil, domain.ErrInvalidInput
	}
	link, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, domain.ErrNotFound
	}
	link.ArticleID = in.ArticleID
	link.SupplierID = in.SupplierID
	link.Price = in.Price
	link.DeliveryDate = in.DeliveryDate
	if err := uc.repo.Update(link); err != nil {
		return nil, err
	}
	return toArticleSupplierResponse(link), nil
}

// List lista vínculos con paginación.
func (uc *ArticleSupplierUseCase) List(limit, offset int) (*dto.ArticleSupplierListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toArticleSupplierList(list, limit, offset), nil
}

// Search filtra por nombre de artículo y/o proveedor.
func (uc *ArticleSupplierUseCase) Search(articleName, supplierName string, limit, offset int) (*dto.ArticleSupplierListResponse, error) {
	list, err := uc.repo.Search(articleName, supplierName, limit, offset)
	if err != nil {
		return nil, err
	}
	return toArticleSupplierList(list, limit, offset), nil
}

// Delete elimina un vínculo por ID.
func (uc *ArticleSupplierUseCase) Delete(id string) error {
	link, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if link == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toArticleSupplierResponse(l *entity.ArticleSupplier) *dto.ArticleSupplierResponse {
	if l == nil {
		return nil
	}
	return &dto.ArticleSupplierResponse{
		ID:           l.ID,
		ArticleID:    l.ArticleID,
		SupplierID:   l.SupplierID,
		Price:        l.Price,
		DeliveryDate: l.DeliveryDate,
	}
}

func toArticleSupplierList(list []*entity.ArticleSupplier, limit, offset int) *dto.ArticleSupplierListResponse {
	items := make([]dto.ArticleSupplierResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toArticleSupplierResponse(l))
	}
	return &dto.ArticleSupplierListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}
