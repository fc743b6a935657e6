package dto

import "time"

// CreateArticleRequest entrada para crear un artículo.
type CreateArticleRequest struct {
	Codification string `json:"codification"`
	Designation  string `json:"designation"`
	Code         string `json:"code"`
	Barcode      string `json:"barcode"`
	Unit         string `json:"unit"`
	SupplierID   string `json:"supplier_id"`
}

// UpdateArticleRequest entrada para actualizar un artículo (registro completo).
// Si ID viene en el cuerpo debe coincidir con el de la ruta.
type UpdateArticleRequest struct {
	ID           string `json:"id"`
	Codification string `json:"codification"`
	Designation  string `json:"designation"`
	Code         string `json:"code"`
	Barcode      string `json:"barcode"`
	Unit         string `json:"unit"`
	SupplierID   string `json:"supplier_id"`
}

// ArticleResponse salida de un artículo.
type ArticleResponse struct {
	ID           string    `json:"id"`
	Codification string    `json:"codification"`
	Designation  string    `json:"designation"`
	Code         string    `json:"code"`
	Barcode      string    `json:"barcode"`
	Unit         string    `json:"unit"`
	SupplierID   string    `json:"supplier_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ArticleListResponse lista paginada de artículos.
type ArticleListResponse struct {
	Items []ArticleResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
