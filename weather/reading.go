package weather

import "fmt"

// Reading is one set of sensor measurements.
type Reading struct {
	// Temperature in degrees Celsius.
	Temperature float64
	// Humidity as relative humidity percentage, 0-100.
	Humidity float64
	// Pressure in hectopascals.
	Pressure float64
}

func (r Reading) String() string {
	return fmt.Sprintf("%.1f°C, %.0f%% humidity, %.1f hPa", r.Temperature, r.Humidity, r.Pressure)
}
