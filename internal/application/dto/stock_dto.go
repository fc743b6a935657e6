package dto

import "time"

// CreateStockRequest entrada para aprovisionar una línea de stock.
// Las líneas se crean solo por esta vía, nunca implícitamente desde movimientos.
type CreateStockRequest struct {
	LotID       string `json:"lot_id"`
	WarehouseID string `json:"warehouse_id"`
	Quantity    int64  `json:"quantity"`
}

// UpdateStockRequest entrada para actualizar una línea de stock (registro completo).
type UpdateStockRequest struct {
	ID          string `json:"id"`
	LotID       string `json:"lot_id"`
	WarehouseID string `json:"warehouse_id"`
	Quantity    int64  `json:"quantity"`
}

// StockResponse salida de una línea de stock.
type StockResponse struct {
	ID          string    `json:"id"`
	LotID       string    `json:"lot_id"`
	WarehouseID string    `json:"warehouse_id"`
	Quantity    int64     `json:"quantity"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StockListResponse lista paginada de líneas de stock.
type StockListResponse struct {
	Items []StockResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
