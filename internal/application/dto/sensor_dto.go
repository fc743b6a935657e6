package dto

import "time"

// CreateSensorRequest entrada para crear un sensor.
type CreateSensorRequest struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Location    string `json:"location"`
	WarehouseID string `json:"warehouse_id"`
}

// UpdateSensorRequest entrada para actualizar un sensor (registro completo).
type UpdateSensorRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Location    string `json:"location"`
	WarehouseID string `json:"warehouse_id"`
}

// SensorResponse salida de un sensor.
type SensorResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Location    string `json:"location"`
	WarehouseID string `json:"warehouse_id"`
}

// SensorListResponse lista paginada de sensores.
type SensorListResponse struct {
	Items []SensorResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// CreateTemperatureReadingRequest entrada para registrar una medición.
type CreateTemperatureReadingRequest struct {
	SensorID   string    `json:"sensor_id"`
	MeasuredAt time.Time `json:"measured_at"`
	Value      float64   `json:"value"`
}

// UpdateTemperatureReadingRequest entrada para actualizar una medición (registro completo).
type UpdateTemperatureReadingRequest struct {
	ID         string    `json:"id"`
	SensorID   string    `json:"sensor_id"`
	MeasuredAt time.Time `json:"measured_at"`
	Value      float64   `json:"value"`
}

// TemperatureReadingResponse salida de una medición.
type TemperatureReadingResponse struct {
	ID         string    `json:"id"`
	SensorID   string    `json:"sensor_id"`
	MeasuredAt time.Time `json:"measured_at"`
	Value      float64   `json:"value"`
}

// TemperatureReadingListResponse lista paginada de mediciones.
type TemperatureReadingListResponse struct {
	Items []TemperatureReadingResponse `json:"items"`
	Page  PageResponse                 `json:"page"`
}
