package entity

import "time"

// TemperatureReading representa una medición puntual de un sensor.
type TemperatureReading struct {
	ID         string
	SensorID   string
	MeasuredAt time.Time
	Value      float64
}
