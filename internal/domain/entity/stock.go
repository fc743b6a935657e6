package entity

import "time"

// Stock representa la línea de stock: cantidad disponible de un lote
// en un almacén. Única por par (lote, almacén).
type Stock struct {
	ID          string
	LotID       string
	WarehouseID string
	Quantity    int64
	UpdatedAt   time.Time
}
