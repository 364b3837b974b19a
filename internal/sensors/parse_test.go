package sensors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSensorsOutputSingleDevice(t *testing.T) {
	devices := parseSensorsOutput("dev-0\nAdapter: ISA\ntemp1:\n  temp1_input    45.0\n\n")

	require.Len(t, devices, 1)
	dev := devices[0]
	assert.Equal(t, "dev-0", dev.name)
	assert.Equal(t, "ISA", dev.adapter)
	require.Len(t, dev.sensors, 1)
	assert.Equal(t, "temp1", dev.sensors[0].name)
	assert.Equal(t, 45.0, dev.sensors[0].value)
	assert.Equal(t, kindTemperature, dev.sensors[0].kind)
}

func TestParseSensorsOutputRealShape(t *testing.T) {
	raw := "iwlwifi_1-virtual-0\n" +
		"Adapter: Virtual device\n" +
		"temp1:\n" +
		"  temp1_input: 41.000\n" +
		"\n" +
		"nvme-pci-0400\n" +
		"Adapter: PCI adapter\n" +
		"Composite:\n" +
		"  temp1_input: 35.850\n" +
		"  temp1_max: 81.850\n" +
		"  temp1_min: -273.150\n" +
		"\n"

	devices := parseSensorsOutput(raw)

	require.Len(t, devices, 2)
	assert.Equal(t, "iwlwifi_1-virtual-0", devices[0].name)
	assert.Equal(t, "Virtual device", devices[0].adapter)
	require.Len(t, devices[0].sensors, 1)
	assert.Equal(t, "temp1", devices[0].sensors[0].name)
	assert.Equal(t, 41.0, devices[0].sensors[0].value)

	assert.Equal(t, "nvme-pci-0400", devices[1].name)
	require.Len(t, devices[1].sensors, 1)
	assert.Equal(t, "Composite", devices[1].sensors[0].name)
	assert.Equal(t, 35.85, devices[1].sensors[0].value)
}

func TestParseSensorsOutputKinds(t *testing.T) {
	raw := "chip-isa-0000\n" +
		"Adapter: ISA adapter\n" +
		"temp1:\n" +
		"  temp1_input 45.0\n" +
		"fan1:\n" +
		"  fan1_input 1200.0\n" +
		"in0:\n" +
		"  in0_input 1.02\n" +
		"\n"

	devices := parseSensorsOutput(raw)

	require.Len(t, devices, 1)
	require.Len(t, devices[0].sensors, 3)
	assert.Equal(t, kindTemperature, devices[0].sensors[0].kind)
	assert.Equal(t, kindFan, devices[0].sensors[1].kind)
	assert.Equal(t, kindVoltage, devices[0].sensors[2].kind)
}

func TestParseSensorsOutputValueLineWithoutInput(t *testing.T) {
	// A sensor whose following line is not an input line yields no reading,
	// and the line is consumed so the next sensor still parses.
	raw := "dev-0\n" +
		"Adapter: ISA\n" +
		"temp1:\n" +
		"  temp1_max    80.0\n" +
		"temp2:\n" +
		"  temp2_input    50.0\n" +
		"\n"

	devices := parseSensorsOutput(raw)

	require.Len(t, devices, 1)
	require.Len(t, devices[0].sensors, 1)
	assert.Equal(t, "temp2", devices[0].sensors[0].name)
	assert.Equal(t, 50.0, devices[0].sensors[0].value)
}

func TestParseSensorsOutputHeaderWithoutSensors(t *testing.T) {
	devices := parseSensorsOutput("dev-0\nAdapter: ISA\n\n")

	require.Len(t, devices, 1)
	assert.Equal(t, "dev-0", devices[0].name)
	assert.Empty(t, devices[0].sensors)
}

func TestParseSensorsOutputUnparsableValue(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"not a number", "notanumber"},
		{"nan is unusable", "NaN"},
		{"inf is unusable", "+Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := "dev-0\nAdapter: ISA\ntemp1:\n  temp1_input    " + tt.token + "\n\n"
			devices := parseSensorsOutput(raw)

			require.Len(t, devices, 1)
			require.Len(t, devices[0].sensors, 1)
			assert.Equal(t, 0.0, devices[0].sensors[0].value)
		})
	}
}

func TestParseSensorsOutputMalformedTokenCount(t *testing.T) {
	raw := "dev-0\nAdapter: ISA\ntemp1:\n  temp1_input 45.0 extra\n\n"
	devices := parseSensorsOutput(raw)

	require.Len(t, devices, 1)
	assert.Empty(t, devices[0].sensors)
}

func TestParseSensorsOutputMissingAdapter(t *testing.T) {
	devices := parseSensorsOutput("dev-0")

	require.Len(t, devices, 1)
	assert.Equal(t, "dev-0", devices[0].name)
	assert.Equal(t, "", devices[0].adapter)
	assert.Empty(t, devices[0].sensors)
}

func TestParseSensorsOutputSensorNameAtEOF(t *testing.T) {
	devices := parseSensorsOutput("dev-0\nAdapter: ISA\ntemp1:")

	require.Len(t, devices, 1)
	assert.Empty(t, devices[0].sensors)
}

func TestParseSensorsOutputIgnoresChatter(t *testing.T) {
	raw := "some banner text\n" +
		"dev-0\n" +
		"Adapter: ISA\n" +
		"not a sensor line\n" +
		"temp1:\n" +
		"  temp1_input 45.0\n" +
		"\n" +
		"trailing noise without hyphens\n"

	devices := parseSensorsOutput(raw)

	require.Len(t, devices, 1)
	require.Len(t, devices[0].sensors, 1)
	assert.Equal(t, "temp1", devices[0].sensors[0].name)
}

func TestParseSensorsOutputCRLF(t *testing.T) {
	devices := parseSensorsOutput("dev-0\r\nAdapter: ISA\r\ntemp1:\r\n  temp1_input 45.0\r\n\r\n")

	require.Len(t, devices, 1)
	assert.Equal(t, "dev-0", devices[0].name)
	assert.Equal(t, "ISA", devices[0].adapter)
	require.Len(t, devices[0].sensors, 1)
	assert.Equal(t, 45.0, devices[0].sensors[0].value)
}

func TestParseSensorsOutputEmpty(t *testing.T) {
	assert.Empty(t, parseSensorsOutput(""))
	assert.Empty(t, parseSensorsOutput("\n\n\n"))
}

func TestClassifySensorKind(t *testing.T) {
	tests := []struct {
		token string
		want  sensorKind
	}{
		{"temp1_input", kindTemperature},
		{"temp1_input:", kindTemperature},
		{"fan2_input", kindFan},
		{"in0_input", kindVoltage},
		{"curr1_input", kindVoltage},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, classifySensorKind(tt.token), "token %q", tt.token)
	}
}
