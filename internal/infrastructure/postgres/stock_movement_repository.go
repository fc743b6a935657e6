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

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del libro de movimientos sobre PostgreSQL (usable con pool o tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador del libro de movimientos. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un nuevo movimiento.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, type, quantity, date, lot_id, source_warehouse_id, destination_warehouse_id, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.Type, movement.Quantity, movement.Date, movement.LotID,
		movement.SourceWarehouseID, movement.DestinationWarehouseID, movement.CreatedAt, movement.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *StockMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	query := `
		SELECT id, type, quantity, date, lot_id, source_warehouse_id, destination_warehouse_id, created_at, created_by
		FROM stock_movements WHERE id = $1`
	var m entity.StockMovement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Type, &m.Quantity, &m.Date, &m.LotID,
		&m.SourceWarehouseID, &m.DestinationWarehouseID, &m.CreatedAt, &m.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// Update reescribe un movimiento existente (misma ID, nuevos datos).
func (r *StockMovementRepo) Update(movement *entity.StockMovement) error {
	query := `
		UPDATE stock_movements SET type = $2, quantity = $3, date = $4, lot_id = $5, source_warehouse_id = $6, destination_warehouse_id = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.Type, movement.Quantity, movement.Date, movement.LotID,
		movement.SourceWarehouseID, movement.DestinationWarehouseID,
	)
	if err != nil {
		return fmt.Errorf("update movement: %w", err)
	}
	return nil
}

// List lista movimientos con paginación (más recientes primero).
func (r *StockMovementRepo) List(limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, type, quantity, date, lot_id, source_warehouse_id, destination_warehouse_id, created_at, created_by
		FROM stock_movements ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// ListByLot devuelve los movimientos de un lote.
func (r *StockMovementRepo) ListByLot(lotID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, type, quantity, date, lot_id, source_warehouse_id, destination_warehouse_id, created_at, created_by
		FROM stock_movements WHERE lot_id = $1
		ORDER BY date DESC, created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, lotID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements by lot: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// ListByWarehouse devuelve los movimientos cuyo almacén origen o destino coincide.
func (r *StockMovementRepo) ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, type, quantity, date, lot_id, source_warehouse_id, destination_warehouse_id, created_at, created_by
		FROM stock_movements
		WHERE source_warehouse_id = $1 OR destination_warehouse_id = $1
		ORDER BY date DESC, created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, warehouseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements by warehouse: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// ListByType devuelve los movimientos de un tipo dado.
func (r *StockMovementRepo) ListByType(movementType string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, type, quantity, date, lot_id, source_warehouse_id, destination_warehouse_id, created_at, created_by
		FROM stock_movements WHERE type = $1
		ORDER BY date DESC, created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, movementType, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements by type: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// Delete elimina un movimiento del libro.
func (r *StockMovementRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	return nil
}

func scanMovements(rows pgx.Rows) ([]*entity.StockMovement, error) {
	var movements []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(
			&m.ID, &m.Type, &m.Quantity, &m.Date, &m.LotID,
			&m.SourceWarehouseID, &m.DestinationWarehouseID, &m.CreatedAt, &m.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		movements = append(movements, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movements: %w", err)
	}
	return movements, nil
}
