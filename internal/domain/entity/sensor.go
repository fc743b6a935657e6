package entity

// Sensor representa un sensor de temperatura instalado en un almacén.
type Sensor struct {
	ID          string
	Name        string
	Type        string
	Location    string
	WarehouseID string
}
