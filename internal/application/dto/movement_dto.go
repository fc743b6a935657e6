package dto

import "time"

// RegisterMovementRequest entrada para registrar un movimiento de stock.
// IN: destination_warehouse_id; OUT: source_warehouse_id; TRANSFER: ambos.
// Quantity es siempre una magnitud positiva.
type RegisterMovementRequest struct {
	Type                   string     `json:"type"`
	Quantity               int64      `json:"quantity"`
	Date                   *time.Time `json:"date"`
	LotID                  string     `json:"lot_id"`
	SourceWarehouseID      string     `json:"source_warehouse_id"`
	DestinationWarehouseID string     `json:"destination_warehouse_id"`
}

// UpdateMovementRequest entrada para actualizar un movimiento (registro completo).
type UpdateMovementRequest struct {
	ID                     string     `json:"id"`
	Type                   string     `json:"type"`
	Quantity               int64      `json:"quantity"`
	Date                   *time.Time `json:"date"`
	LotID                  string     `json:"lot_id"`
	SourceWarehouseID      string     `json:"source_warehouse_id"`
	DestinationWarehouseID string     `json:"destination_warehouse_id"`
}

// MovementResponse salida de un movimiento de stock.
type MovementResponse struct {
	ID                     string    `json:"id"`
	Type                   string    `json:"type"`
	Quantity               int64     `json:"quantity"`
	Date                   time.Time `json:"date"`
	LotID                  string    `json:"lot_id"`
	SourceWarehouseID      *string   `json:"source_warehouse_id"`
	DestinationWarehouseID *string   `json:"destination_warehouse_id"`
	CreatedAt              time.Time `json:"created_at"`
	CreatedBy              string    `json:"created_by"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
