package entity

import "time"

// Warehouse representa un almacén donde se guardan líneas de stock.
type Warehouse struct {
	ID        string
	Name      string
	Address   string
	Location  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
