package dto

import "time"

// CreateLotRequest entrada para crear un lote.
type CreateLotRequest struct {
	Number     string    `json:"number"`
	ArticleID  string    `json:"article_id"`
	SupplierID string    `json:"supplier_id"`
	ExpiryDate time.Time `json:"expiry_date"`
}

// UpdateLotRequest entrada para actualizar un lote (registro completo).
type UpdateLotRequest struct {
	ID         string    `json:"id"`
	Number     string    `json:"number"`
	ArticleID  string    `json:"article_id"`
	SupplierID string    `json:"supplier_id"`
	ExpiryDate time.Time `json:"expiry_date"`
}

// LotResponse salida de un lote.
type LotResponse struct {
	ID         string    `json:"id"`
	Number     string    `json:"number"`
	ArticleID  string    `json:"article_id"`
	SupplierID string    `json:"supplier_id"`
	ExpiryDate time.Time `json:"expiry_date"`
}

// LotListResponse lista paginada de lotes.
type LotListResponse struct {
	Items []LotResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}
