package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestock/gestock-api/internal/domain"
	"github.com/gestock/gestock-api/internal/domain/entity"
	"github.com/gestock/gestock-api/internal/domain/repository"
)

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

// ArticleRepo implementación del puerto ArticleRepository sobre PostgreSQL (usable con pool o tx).
type ArticleRepo struct {
	q Querier
}

// NewArticleRepository construye el adaptador de persistencia para artículos. Pasar pool o tx (Querier).
func NewArticleRepository(q Querier) *ArticleRepo {
	return &ArticleRepo{q: q}
}

// Create persiste un nuevo artículo.
func (r *ArticleRepo) Create(article *entity.Article) error {
	query := `
		INSERT INTO articles (id, codification, designation, code, barcode, unit, supplier_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		article.ID, article.Codification, article.Designation, article.Code,
		article.Barcode, article.Unit, article.SupplierID, article.CreatedAt, article.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID.
func (r *ArticleRepo) GetByID(id string) (*entity.Article, error) {
	query := `
		SELECT id, codification, designation, code, barcode, unit, supplier_id, created_at, updated_at
		FROM articles WHERE id = $1`
	var a entity.Article
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Codification, &a.Designation, &a.Code, &a.Barcode, &a.Unit,
		&a.SupplierID, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	return &a, nil
}

// Update actualiza un artículo existente.
func (r *ArticleRepo) Update(article *entity.Article) error {
	query := `
		UPDATE articles SET codification = $2, designation = $3, code = $4, barcode = $5, unit = $6, supplier_id = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		article.ID, article.Codification, article.Designation, article.Code,
		article.Barcode, article.Unit, article.SupplierID, article.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update article: %w", err)
	}
	return nil
}

// List lista artículos con paginación.
func (r *ArticleRepo) List(limit, offset int) ([]*entity.Article, error) {
	query := `
		SELECT id, codification, designation, code, barcode, unit, supplier_id, created_at, updated_at
		FROM articles ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()
	return scanArticles(rows)
}

// SearchByName busca artículos por designación o codificación (match parcial, case insensitive).
func (r *ArticleRepo) SearchByName(name string, limit, offset int) ([]*entity.Article, error) {
	query := `
		SELECT id, codification, designation, code, barcode, unit, supplier_id, created_at, updated_at
		FROM articles WHERE designation ILIKE '%' || $1 || '%' OR codification ILIKE '%' || $1 || '%'
		ORDER BY designation LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, name, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}
	defer rows.Close()
	return scanArticles(rows)
}

// Delete elimina un artículo. Falla con ErrConflict si tiene lotes asociados.
func (r *ArticleRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

func scanArticles(rows pgx.Rows) ([]*entity.Article, error) {
	var articles []*entity.Article
	for rows.Next() {
		var a entity.Article
		if err := rows.Scan(
			&a.ID, &a.Codification, &a.Designation, &a.Code, &a.Barcode, &a.Unit,
			&a.SupplierID, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}
	return articles, nil
}
