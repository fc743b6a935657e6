package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestock/gestock-api/internal/application/dto"
	"github.com/gestock/gestock-api/internal/domain"
	"github.com/gestock/gestock-api/internal/domain/entity"
	"github.com/gestock/gestock-api/internal/domain/repository"
)

// ArticleUseCase casos de uso CRUD para artículos.
type ArticleUseCase struct {
	repo         repository.ArticleRepository
	supplierRepo repository.SupplierRepository
}

// NewArticleUseCase construye el caso de uso.
func NewArticleUseCase(repo repository.ArticleRepository, supplierRepo repository.SupplierRepository) *ArticleUseCase {
	return &ArticleUseCase{repo: repo, supplierRepo: supplierRepo}
}

// Create crea un nuevo artículo. El proveedor referenciado debe existir.
func (uc *ArticleUseCase) Create(in dto.CreateArticleRequest) (*dto.ArticleResponse, error) {
	if in.Codification == "" || in.Designation == "" || in.Code == "" || in.SupplierID == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	article := &entity.Article{
		ID:           uuid.New().String(),
		Codification: in.Codification,
		Designation:  in.Designation,
		Code:         in.Code,
		Barcode:      in.Barcode,
		Unit:         in.Unit,
		SupplierID:   in.SupplierID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(article); err != nil {
		return nil, err
	}
	return toArticleResponse(article), nil
}

// GetByID obtiene un artículo por ID.
func (uc *ArticleUseCase) GetByID(id string) (*dto.ArticleResponse, error) {
	article, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, nil
	}
	return toArticleResponse(article), nil
}

// Update actualiza un artículo (registro completo).
func (uc *ArticleUseCase) Update(id string, in dto.UpdateArticleRequest) (*dto.ArticleResponse, error) {
	if in.ID != "" && in.ID != id {
		return nil, domain.ErrInvalidInput
	}
	article, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	article.Codification = in.Codification
	article.Designation = in.Designation
	article.Code = in.Code
	article.Barcode = in.Barcode
	article.Unit = in.Unit
	article.SupplierID = in.SupplierID
	article.UpdatedAt = time.Now()
	if err := uc.repo.Update(article); err != nil {
		return nil, err
	}
	return toArticleResponse(article), nil
}

// List lista artículos con paginación.
func (uc *ArticleUseCase) List(limit, offset int) (*dto.ArticleListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toArticleList(list, limit, offset), nil
}

// SearchByName busca artículos por designación o codificación.
func (uc *ArticleUseCase) SearchByName(name string, limit, offset int) (*dto.ArticleListResponse, error) {
	list, err := uc.repo.SearchByName(name, limit, offset)
	if err != nil {
		return nil, err
	}
	return toArticleList(list, limit, offset), nil
}

// Delete elimina un artículo por ID.
func (uc *ArticleUseCase) Delete(id string) error {
	article, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if article == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toArticleResponse(a *entity.Article) *dto.ArticleResponse {
	if a == nil {
		return nil
	}
	return &dto.ArticleResponse{
		ID:           a.ID,
		Codification: a.Codification,
		Designation:  a.Designation,
		Code:         a.Code,
		Barcode:      a.Barcode,
		Unit:         a.Unit,
		SupplierID:   a.SupplierID,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func toArticleList(list []*entity.Article, limit, offset int) *dto.ArticleListResponse {
	items := make([]dto.ArticleResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toArticleResponse(a))
	}
	return &dto.ArticleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}
