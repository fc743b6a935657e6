package dto

import "time"

// CreateStockAlertRequest entrada para crear una alerta de stock.
type CreateStockAlertRequest struct {
	StockID   string    `json:"stock_id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	AlertDate time.Time `json:"alert_date"`
}

// UpdateStockAlertRequest entrada para actualizar una alerta (registro completo).
type UpdateStockAlertRequest struct {
	ID        string    `json:"id"`
	StockID   string    `json:"stock_id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	AlertDate time.Time `json:"alert_date"`
	Resolved  bool      `json:"resolved"`
}

// StockAlertResponse salida de una alerta de stock.
type StockAlertResponse struct {
	ID        string    `json:"id"`
	StockID   string    `json:"stock_id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	AlertDate time.Time `json:"alert_date"`
	Resolved  bool      `json:"resolved"`
}

// StockAlertListResponse lista paginada de alertas.
type StockAlertListResponse struct {
	Items []StockAlertResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
