package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ArticleSupplier representa la relación comercial artículo-proveedor:
// precio pactado y fecha de entrega prevista.
type ArticleSupplier struct {
	ID           string
	ArticleID    string
	SupplierID   string
	Price        decimal.Decimal
	DeliveryDate time.Time
}
