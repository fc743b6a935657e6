package entity

import "time"

// Lot representa un lote trazable de un artículo de un proveedor,
// con fecha de expiración.
type Lot struct {
	ID         string
	Number     string
	ArticleID  string
	SupplierID string
	ExpiryDate time.Time
}
