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

var _ repository.StockAlertRepository = (*StockAlertRepo)(nil)

// StockAlertRepo implementación del puerto StockAlertRepository sobre PostgreSQL.
type StockAlertRepo struct {
	q Querier
}

// NewStockAlertRepository construye el adaptador de alertas. Pasar pool o tx (Querier).
func NewStockAlertRepository(q Querier) *StockAlertRepo {
	return &StockAlertRepo{q: q}
}

// Create persiste una nueva alerta.
func (r *StockAlertRepo) Create(alert *entity.StockAlert) error {
	query := `
		INSERT INTO stock_alerts (id, stock_id, type, message, alert_date, resolved)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		alert.ID, alert.StockID, alert.Type, alert.Message, alert.AlertDate, alert.Resolved,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

// GetByID obtiene una alerta por ID.
func (r *StockAlertRepo) GetByID(id string) (*entity.StockAlert, error) {
	query := `
		SELECT id, stock_id, type, message, alert_date, resolved
		FROM stock_alerts WHERE id = $1`
	var a entity.StockAlert
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.StockID, &a.Type, &a.Message, &a.AlertDate, &a.Resolved,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alert: %w", err)
	}
	return &a, nil
}

// Update actualiza una alerta existente (incluido el flag de resolución).
func (r *StockAlertRepo) Update(alert *entity.StockAlert) error {
	query := `
		UPDATE stock_alerts SET stock_id = $2, type = $3, message = $4, alert_date = $5, resolved = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		alert.ID, alert.StockID, alert.Type, alert.Message, alert.AlertDate, alert.Resolved,
	)
	if err != nil {
		return fmt.Errorf("update alert: %w", err)
	}
	return nil
}

// List lista alertas con paginación (más recientes primero).
func (r *StockAlertRepo) List(limit, offset int) ([]*entity.StockAlert, error) {
	query := `
		SELECT id, stock_id, type, message, alert_date, resolved
		FROM stock_alerts ORDER BY alert_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()
	return scanAlerts(rows)
}

// ListByStock devuelve las alertas de una línea de stock.
func (r *StockAlertRepo) ListByStock(stockID string, limit, offset int) ([]*entity.StockAlert, error) {
	query := `
		SELECT id, stock_id, type, message, alert_date, resolved
		FROM stock_alerts WHERE stock_id = $1
		ORDER BY alert_date DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, stockID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list alerts by stock: %w", err)
	}
	defer rows.Close()
	return scanAlerts(rows)
}

// ListUnresolved devuelve las alertas pendientes de resolución.
func (r *StockAlertRepo) ListUnresolved(limit, offset int) ([]*entity.StockAlert, error) {
	query := `
		SELECT id, stock_id, type, message, alert_date, resolved
		FROM stock_alerts WHERE resolved = false
		ORDER BY alert_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list unresolved alerts: %w", err)
	}
	defer rows.Close()
	return scanAlerts(rows)
}

// Delete elimina una alerta.
func (r *StockAlertRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_alerts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete alert: %w", err)
	}
	return nil
}

func scanAlerts(rows pgx.Rows) ([]*entity.StockAlert, error) {
	var alerts []*entity.StockAlert
	for rows.Next() {
		var a entity.StockAlert
		if err := rows.Scan(&a.ID, &a.StockID, &a.Type, &a.Message, &a.AlertDate, &a.Resolved); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		alerts = append(alerts, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate alerts: %w", err)
	}
	return alerts, nil
}
