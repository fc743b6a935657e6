package entity

import "time"

// StockAlert representa una alerta levantada sobre una línea de stock,
// con estado de resolución independiente del libro de movimientos.
type StockAlert struct {
	ID        string
	StockID   string
	Type      string
	Message   string
	AlertDate time.Time
	Resolved  bool
}
