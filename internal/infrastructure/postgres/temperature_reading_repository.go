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

var _ repository.TemperatureReadingRepository = (*TemperatureReadingRepo)(nil)

// TemperatureReadingRepo implementación del histórico de mediciones sobre PostgreSQL.
type TemperatureReadingRepo struct {
	q Querier
}

// NewTemperatureReadingRepository construye el adaptador del histórico. Pasar pool o tx (Querier).
func NewTemperatureReadingRepository(q Querier) *TemperatureReadingRepo {
	return &TemperatureReadingRepo{q: q}
}

// Create persiste una nueva medición.
func (r *TemperatureReadingRepo) Create(reading *entity.TemperatureReading) error {
	query := `
		INSERT INTO temperature_readings (id, sensor_id, measured_at, value)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		reading.ID, reading.SensorID, reading.MeasuredAt, reading.Value,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert temperature reading: %w", err)
	}
	return nil
}

// GetByID obtiene una medición por ID.
func (r *TemperatureReadingRepo) GetByID(id string) (*entity.TemperatureReading, error) {
	query := `
		SELECT id, sensor_id, measured_at, value
		FROM temperature_readings WHERE id = $1`
	var t entity.TemperatureReading
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.SensorID, &t.MeasuredAt, &t.Value,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get temperature reading: %w", err)
	}
	return &t, nil
}

// Update actualiza una medición existente.
func (r *TemperatureReadingRepo) Update(reading *entity.TemperatureReading) error {
	query := `
		UPDATE temperature_readings SET sensor_id = $2, measured_at = $3, value = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		reading.ID, reading.SensorID, reading.MeasuredAt, reading.Value,
	)
	if err != nil {
		return fmt.Errorf("update temperature reading: %w", err)
	}
	return nil
}

// List lista mediciones con paginación (más recientes primero).
func (r *TemperatureReadingRepo) List(limit, offset int) ([]*entity.TemperatureReading, error) {
	query := `
		SELECT id, sensor_id, measured_at, value
		FROM temperature_readings ORDER BY measured_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list temperature readings: %w", err)
	}
	defer rows.Close()
	return scanReadings(rows)
}

// ListBySensor devuelve las mediciones de un sensor.
func (r *TemperatureReadingRepo) ListBySensor(sensorID string, limit, offset int) ([]*entity.TemperatureReading, error) {
	query := `
		SELECT id, sensor_id, measured_at, value
		FROM temperature_readings WHERE sensor_id = $1
		ORDER BY measured_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, sensorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list temperature readings by sensor: %w", err)
	}
	defer rows.Close()
	return scanReadings(rows)
}

// ListByDateRange devuelve las mediciones dentro de un rango de fechas (inclusive).
func (r *TemperatureReadingRepo) ListByDateRange(start, end time.Time, limit, offset int) ([]*entity.TemperatureReading, error) {
	query := `
		SELECT id, sensor_id, measured_at, value
		FROM temperature_readings WHERE measured_at >= $1 AND measured_at <= $2
		ORDER BY measured_at LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, start, end, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list temperature readings by range: %w", err)
	}
	defer rows.Close()
	return scanReadings(rows)
}

// Delete elimina una medición.
func (r *TemperatureReadingRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM temperature_readings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete temperature reading: %w", err)
	}
	return nil
}

func scanReadings(rows pgx.Rows) ([]*entity.TemperatureReading, error) {
	var readings []*entity.TemperatureReading
	for rows.Next() {
		var t entity.TemperatureReading
		if err := rows.Scan(&t.ID, &t.SensorID, &t.MeasuredAt, &t.Value); err != nil {
			return nil, fmt.Errorf("scan temperature reading: %w", err)
		}
		readings = append(readings, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate temperature readings: %w", err)
	}
	return readings, nil
}
