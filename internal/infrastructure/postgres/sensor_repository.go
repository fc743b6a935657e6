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

var _ repository.SensorRepository = (*SensorRepo)(nil)

// SensorRepo implementación del puerto SensorRepository sobre PostgreSQL (usable con pool o tx).
type SensorRepo struct {
	q Querier
}

// NewSensorRepository construye el adaptador de persistencia para sensores. Pasar pool o tx (Querier).
func NewSensorRepository(q Querier) *SensorRepo {
	return &SensorRepo{q: q}
}

// Create persiste un nuevo sensor.
func (r *SensorRepo) Create(sensor *entity.Sensor) error {
	query := `
		INSERT INTO sensors (id, name, type, location, warehouse_id)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		sensor.ID, sensor.Name, sensor.Type, sensor.Location, sensor.WarehouseID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sensor: %w", err)
	}
	return nil
}

// GetByID obtiene un sensor por ID.
func (r *SensorRepo) GetByID(id string) (*entity.Sensor, error) {
	query := `
		SELECT id, name, type, location, warehouse_id
		FROM sensors WHERE id = $1`
	var s entity.Sensor
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.Type, &s.Location, &s.WarehouseID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sensor: %w", err)
	}
	return &s, nil
}

// Update actualiza un sensor existente.
func (r *SensorRepo) Update(sensor *entity.Sensor) error {
	query := `
		UPDATE sensors SET name = $2, type = $3, location = $4, warehouse_id = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		sensor.ID, sensor.Name, sensor.Type, sensor.Location, sensor.WarehouseID,
	)
	if err != nil {
		return fmt.Errorf("update sensor: %w", err)
	}
	return nil
}

// List lista sensores con paginación.
func (r *SensorRepo) List(limit, offset int) ([]*entity.Sensor, error) {
	query := `
		SELECT id, name, type, location, warehouse_id
		FROM sensors ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sensors: %w", err)
	}
	defer rows.Close()
	return scanSensors(rows)
}

// ListByWarehouseLocation filtra sensores por la localización del almacén al que pertenecen.
func (r *SensorRepo) ListByWarehouseLocation(location string, limit, offset int) ([]*entity.Sensor, error) {
	query := `
		SELECT se.id, se.name, se.type, se.location, se.warehouse_id
		FROM sensors se
		JOIN warehouses w ON w.id = se.warehouse_id
		WHERE w.location ILIKE '%' || $1 || '%'
		ORDER BY se.name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, location, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sensors by warehouse location: %w", err)
	}
	defer rows.Close()
	return scanSensors(rows)
}

// Delete elimina un sensor. Sus mediciones caen en cascada.
func (r *SensorRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sensors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sensor: %w", err)
	}
	return nil
}

func scanSensors(rows pgx.Rows) ([]*entity.Sensor, error) {
	var sensors []*entity.Sensor
	for rows.Next() {
		var s entity.Sensor
		if err := rows.Scan(&s.ID, &s.Name, &s.Type, &s.Location, &s.WarehouseID); err != nil {
			return nil, fmt.Errorf("scan sensor: %w", err)
		}
		sensors = append(sensors, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sensors: %w", err)
	}
	return sensors, nil
}
