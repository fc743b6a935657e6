package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// UpdateSupplierRequest entrada para actualizar un proveedor (registro completo).
type UpdateSupplierRequest struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SupplierListResponse lista paginada de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CreateArticleSupplierRequest entrada para crear un vínculo artículo-proveedor.
type CreateArticleSupplierRequest struct {
	ArticleID    string          `json:"article_id"`
	SupplierID   string          `json:"supplier_id"`
	Price        decimal.Decimal `json:"price"`
	DeliveryDate time.Time       `json:"delivery_date"`
}

// UpdateArticleSupplierRequest entrada para actualizar un vínculo (registro completo).
type UpdateArticleSupplierRequest struct {
	ID           string          `json:"id"`
	ArticleID    string          `json:"article_id"`
	SupplierID   string          `json:"supplier_id"`
	Price        decimal.Decimal `json:"price"`
	DeliveryDate time.Time       `json:"delivery_date"`
}

// ArticleSupplierResponse salida de un vínculo artículo-proveedor.
type ArticleSupplierResponse struct {
	ID           string          `json:"id"`
	ArticleID    string          `json:"article_id"`
	SupplierID   string          `json:"supplier_id"`
	Price        decimal.Decimal `json:"price"`
	DeliveryDate time.Time       `json:"delivery_date"`
}

// ArticleSupplierListResponse lista paginada de vínculos.
type ArticleSupplierListResponse struct {
	Items []ArticleSupplierResponse `json:"items"`
	Page  PageResponse              `json:"page"`
}
