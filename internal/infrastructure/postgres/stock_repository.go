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

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Create persiste una nueva línea de stock. El par (lote, almacén) es único.
func (r *StockRepo) Create(stock *entity.Stock) error {
	query := `
		INSERT INTO stocks (id, lot_id, warehouse_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.LotID, stock.WarehouseID, stock.Quantity, stock.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// GetByID obtiene una línea de stock por ID.
func (r *StockRepo) GetByID(id string) (*entity.Stock, error) {
	query := `
		SELECT id, lot_id, warehouse_id, quantity, updated_at
		FROM stocks WHERE id = $1`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.LotID, &s.WarehouseID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// GetByLotAndWarehouse obtiene la línea de un lote en un almacén. Devuelve nil si no existe.
func (r *StockRepo) GetByLotAndWarehouse(lotID, warehouseID string) (*entity.Stock, error) {
	query := `
		SELECT id, lot_id, warehouse_id, quantity, updated_at
		FROM stocks WHERE lot_id = $1 AND warehouse_id = $2`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, lotID, warehouseID).Scan(
		&s.ID, &s.LotID, &s.WarehouseID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock by lot and warehouse: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene la línea y bloquea la fila (SELECT FOR UPDATE). Devuelve nil si no existe.
func (r *StockRepo) GetForUpdate(lotID, warehouseID string) (*entity.Stock, error) {
	query := `
		SELECT id, lot_id, warehouse_id, quantity, updated_at
		FROM stocks WHERE lot_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, lotID, warehouseID).Scan(
		&s.ID, &s.LotID, &s.WarehouseID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// Update actualiza una línea de stock completa.
func (r *StockRepo) Update(stock *entity.Stock) error {
	query := `
		UPDATE stocks SET lot_id = $2, warehouse_id = $3, quantity = $4, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.LotID, stock.WarehouseID, stock.Quantity,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// UpdateQuantity actualiza solo la cantidad de una línea (usado por el motor de movimientos).
func (r *StockRepo) UpdateQuantity(id string, quantity int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE stocks SET quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update stock quantity: %w", err)
	}
	return nil
}

// List lista líneas de stock con paginación.
func (r *StockRepo) List(limit, offset int) ([]*entity.Stock, error) {
	query := `
		SELECT id, lot_id, warehouse_id, quantity, updated_at
		FROM stocks ORDER BY updated_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stocks: %w", err)
	}
	defer rows.Close()
	return scanStocks(rows)
}

// ListByLot devuelve las líneas de stock de un lote.
func (r *StockRepo) ListByLot(lotID string, limit, offset int) ([]*entity.Stock, error) {
	query := `
		SELECT id, lot_id, warehouse_id, quantity, updated_at
		FROM stocks WHERE lot_id = $1
		ORDER BY warehouse_id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, lotID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stocks by lot: %w", err)
	}
	defer rows.Close()
	return scanStocks(rows)
}

// ListByWarehouse devuelve las líneas de stock de un almacén.
func (r *StockRepo) ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.Stock, error) {
	query := `
		SELECT id, lot_id, warehouse_id, quantity, updated_at
		FROM stocks WHERE warehouse_id = $1
		ORDER BY lot_id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, warehouseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stocks by warehouse: %w", err)
	}
	defer rows.Close()
	return scanStocks(rows)
}

// Delete elimina una línea de stock.
func (r *StockRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stocks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	return nil
}

func scanStocks(rows pgx.Rows) ([]*entity.Stock, error) {
	var stocks []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ID, &s.LotID, &s.WarehouseID, &s.Quantity, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		stocks = append(stocks, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stocks: %w", err)
	}
	return stocks, nil
}
