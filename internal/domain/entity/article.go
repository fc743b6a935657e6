package entity

import "time"

// Article representa un artículo del catálogo, vinculado a su proveedor principal.
type Article struct {
	ID           string
	Codification string
	Designation  string
	Code         string
	Barcode      string
	Unit         string
	SupplierID   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
