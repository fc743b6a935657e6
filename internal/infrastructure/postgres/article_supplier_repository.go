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

var _ repository.ArticleSupplierRepository = (*ArticleSupplierRepo)(nil)

// ArticleSupplierRepo implementación del puerto ArticleSupplierRepository sobre PostgreSQL.
type ArticleSupplierRepo struct {
	q Querier
}

// NewArticleSupplierRepository construye el adaptador para vínculos artículo-proveedor. Pasar pool o tx (Querier).
func NewArticleSupplierRepository(q Querier) *ArticleSupplierRepo {
	return &ArticleSupplierRepo{q: q}
}

// Create persiste un nuevo vínculo artículo-proveedor.
func (r *ArticleSupplierRepo) Create(link *entity.ArticleSupplier) error {
	query := `
		INSERT INTO article_suppliers (id, article_id, supplier_id, price, delivery_date)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		link.ID, link.ArticleID, link.SupplierID, link.Price, link.DeliveryDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert article supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un vínculo por ID.
func (r *ArticleSupplierRepo) GetByID(id string) (*entity.ArticleSupplier, error) {
	query := `
		SELECT id, article_id, supplier_id, price, delivery_date
		FROM article_suppliers WHERE id = $1`
	var l entity.ArticleSupplier
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.ArticleID, &l.SupplierID, &l.Price, &l.DeliveryDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get article supplier: %w", err)
	}
	return &l, nil
}

// Update actualiza un vínculo existente.
func (r *ArticleSupplierRepo) Update(link *entity.ArticleSupplier) error {
	query := `
		UPDATE article_suppliers SET article_id = $2, supplier_id = $3, price = $4, delivery_date = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		link.ID, link.ArticleID, link.SupplierID, link.Price, link.DeliveryDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update article supplier: %w", err)
	}
	return nil
}

// List lista vínculos con paginación.
func (r *ArticleSupplierRepo) List(limit, offset int) ([]*entity.ArticleSupplier, error) {
	query := `
		SELECT id, article_id, supplier_id, price, delivery_date
		FROM article_suppliers ORDER BY delivery_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list article suppliers: %w", err)
	}
	defer rows.Close()
	return scanArticleSuppliers(rows)
}

// Search filtra vínculos por nombre de artículo y/o de proveedor (ambos opcionales,
// cadena vacía no filtra).
func (r *ArticleSupplierRepo) Search(articleName, supplierName string, limit, offset int) ([]*entity.ArticleSupplier, error) {
	query := `
		SELECT asu.id, asu.article_id, asu.supplier_id, asu.price, asu.delivery_date
		FROM article_suppliers asu
		JOIN articles a ON a.id = asu.article_id
		JOIN suppliers s ON s.id = asu.supplier_id
		WHERE ($1 = '' OR a.designation ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR s.name ILIKE '%' || $2 || '%')
		ORDER BY asu.delivery_date DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, articleName, supplierName, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search article suppliers: %w", err)
	}
	defer rows.Close()
	return scanArticleSuppliers(rows)
}

// Delete elimina un vínculo artículo-proveedor.
func (r *ArticleSupplierRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM article_suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article supplier: %w", err)
	}
	return nil
}

func scanArticleSuppliers(rows pgx.Rows) ([]*entity.ArticleSupplier, error) {
	var links []*entity.ArticleSupplier
	for rows.Next() {
		var l entity.ArticleSupplier
		if err := rows.Scan(&l.ID, &l.ArticleID, &l.SupplierID, &l.Price, &l.DeliveryDate); err != nil {
			return nil, fmt.Errorf("scan article supplier: %w", err)
		}
		links = append(links, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate article suppliers: %w", err)
	}
	return links, nil
}
