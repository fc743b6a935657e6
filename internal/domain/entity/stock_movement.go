package entity

import "time"

// Tipos de movimiento de stock (conjunto cerrado).
const (
	MovementTypeIN       = "IN"       // entrada: solo almacén destino
	MovementTypeOUT      = "OUT"      // salida: solo almacén origen
	MovementTypeTRANSFER = "TRANSFER" // traslado: origen y destino distintos
)

// StockMovement representa una entrada del libro de movimientos.
// Quantity es siempre una magnitud positiva; la dirección la determina
// el tipo y el almacén afectado.
type StockMovement struct {
	ID                     string
	Type                   string
	Quantity               int64
	Date                   time.Time
	LotID                  string
	SourceWarehouseID      *string
	DestinationWarehouseID *string
	CreatedAt              time.Time
	CreatedBy              string
}
