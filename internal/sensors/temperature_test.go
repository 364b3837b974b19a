package sensors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertCelsiusIdentity(t *testing.T) {
	for _, c := range []float64{-273.15, -40.0, 0.0, 36.6, 99.9, 100.0, 1e6} {
		assert.Equal(t, c, Celsius.Convert(c), "celsius conversion must be the identity")
	}
}

func TestConvertKnownPoints(t *testing.T) {
	tests := []struct {
		unit    TemperatureType
		celsius float64
		want    float64
	}{
		{Kelvin, 100.0, 373.15},
		{Kelvin, 0.0, 273.15},
		{Kelvin, -273.15, 0.0},
		{Fahrenheit, 100.0, 212.0},
		{Fahrenheit, 0.0, 32.0},
		{Fahrenheit, -40.0, -40.0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, tt.unit.Convert(tt.celsius), 1e-9,
			"%v of %v C", tt.unit, tt.celsius)
	}
}

func TestZeroValueIsCelsius(t *testing.T) {
	var unit TemperatureType
	assert.Equal(t, Celsius, unit)
}

func TestParseTemperatureType(t *testing.T) {
	tests := []struct {
		token string
		want  TemperatureType
	}{
		{"fahrenheit", Fahrenheit},
		{"f", Fahrenheit},
		{"kelvin", Kelvin},
		{"k", Kelvin},
		{"celsius", Celsius},
		{"c", Celsius},
	}

	for _, tt := range tests {
		got, err := ParseTemperatureType(tt.token)
		require.NoError(t, err, "token %q", tt.token)
		assert.Equal(t, tt.want, got, "token %q", tt.token)
	}
}

func TestParseTemperatureTypeInvalid(t *testing.T) {
	// Tokens are case-sensitive, so "F" is as invalid as "bogus".
	for _, token := range []string{"bogus", "", "F", "Celsius", "KELVIN", "°C"} {
		_, err := ParseTemperatureType(token)
		require.Error(t, err, "token %q", token)
		assert.Contains(t, err.Error(), "[kelvin, k, celsius, c, fahrenheit, f]",
			"error must enumerate the valid tokens")
	}
}

func TestTemperatureTypeString(t *testing.T) {
	assert.Equal(t, "celsius", Celsius.String())
	assert.Equal(t, "kelvin", Kelvin.String())
	assert.Equal(t, "fahrenheit", Fahrenheit.String())
}
