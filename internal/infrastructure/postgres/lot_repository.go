package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/gestock/gestock-api/internal/domain"
	"github.com/gestock/gestock-api/internal/domain/entity"
	"github.com/gestock/gestock-api/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

// LotRepo implementación del puerto LotRepository sobre PostgreSQL (usable con pool o tx).
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador de persistencia para lotes. Pasar pool o tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

// Create persiste un nuevo lote.
func (r *LotRepo) Create(lot *entity.Lot) error {
	query := `
		INSERT INTO lots (id, number, article_id, supplier_id, expiry_date)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		lot.ID, lot.Number, lot.ArticleID, lot.SupplierID, lot.ExpiryDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert lot: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *LotRepo) GetByID(id string) (*entity.Lot, error) {
	query := `
		SELECT id, number, article_id, supplier_id, expiry_date
		FROM lots WHERE id = $1`
	var l entity.Lot
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.Number, &l.ArticleID, &l.SupplierID, &l.ExpiryDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot: %w", err)
	}
	return &l, nil
}

// Update actualiza un lote existente.
func (r *LotRepo) Update(lot *entity.Lot) error {
	query := `
		UPDATE lots SET number = $2, article_id = $3, supplier_id = $4, expiry_date = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		lot.ID, lot.Number, lot.ArticleID, lot.SupplierID, lot.ExpiryDate,
	)
	if err != nil {
		return fmt.Errorf("update lot: %w", err)
	}
	return nil
}

// List lista lotes con paginación.
func (r *LotRepo) List(limit, offset int) ([]*entity.Lot, error) {
	query := `
		SELECT id, number, article_id, supplier_id, expiry_date
		FROM lots ORDER BY expiry_date LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	defer rows.Close()
	return scanLots(rows)
}

// ListByExpiryDate devuelve los lotes que expiran en o antes de la fecha dada.
func (r *LotRepo) ListByExpiryDate(expiry time.Time, limit, offset int) ([]*entity.Lot, error) {
	query := `
		SELECT id, number, article_id, supplier_id, expiry_date
		FROM lots WHERE expiry_date <= $1
		ORDER BY expiry_date LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, expiry, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list lots by expiry: %w", err)
	}
	defer rows.Close()
	return scanLots(rows)
}

// ListByArticle devuelve los lotes de un artículo.
func (r *LotRepo) ListByArticle(articleID string, limit, offset int) ([]*entity.Lot, error) {
	query := `
		SELECT id, number, article_id, supplier_id, expiry_date
		FROM lots WHERE article_id = $1
		ORDER BY expiry_date LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, articleID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list lots by article: %w", err)
	}
	defer rows.Close()
	return scanLots(rows)
}

// Delete elimina un lote. Falla con ErrConflict si tiene stock o movimientos asociados.
func (r *LotRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM lots WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete lot: %w", err)
	}
	return nil
}

func scanLots(rows pgx.Rows) ([]*entity.Lot, error) {
	var lots []*entity.Lot
	for rows.Next() {
		var l entity.Lot
		if err := rows.Scan(&l.ID, &l.Number, &l.ArticleID, &l.SupplierID, &l.ExpiryDate); err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		lots = append(lots, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lots: %w", err)
	}
	return lots, nil
}
