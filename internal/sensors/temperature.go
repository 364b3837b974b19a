package sensors

import "fmt"

// TemperatureType selects the unit temperature readings are reported in.
type TemperatureType int

const (
	Celsius TemperatureType = iota
	Kelvin
	Fahrenheit
)

// ParseTemperatureType maps a unit token to its TemperatureType. Tokens are
// case-sensitive; anything unrecognized is a configuration error.
func ParseTemperatureType(s string) (TemperatureType, error) {
	switch s {
	case "fahrenheit", "f":
		return Fahrenheit, nil
	case "kelvin", "k":
		return Kelvin, nil
	case "celsius", "c":
		return Celsius, nil
	default:
		return Celsius, fmt.Errorf("'%s' is an invalid temperature type, use one of: [kelvin, k, celsius, c, fahrenheit, f]", s)
	}
}

// Convert converts a Celsius reading into t's unit.
func (t TemperatureType) Convert(celsius float64) float64 {
	switch t {
	case Fahrenheit:
		return celsius*9.0/5.0 + 32.0
	case Kelvin:
		return celsius + 273.15
	default:
		return celsius
	}
}

func (t TemperatureType) String() string {
	switch t {
	case Fahrenheit:
		return "fahrenheit"
	case Kelvin:
		return "kelvin"
	default:
		return "celsius"
	}
}
