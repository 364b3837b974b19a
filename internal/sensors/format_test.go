package sensors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSensorName(t *testing.T) {
	tests := []struct {
		device string
		sensor string
		want   string
	}{
		{"iwlwifi_1-virtual-0", "temp1", "Wifi: temp1"},
		{"nvidia-pci-0300", "temp1", "Gpu: temp1"},
		{"amdgpu-pci-0400", "edge", "Gpu: edge"},
		{"it8620-isa-0a40", "temp2", "MB: temp2"},
		{"k10temp-pci-00c3", "Tctl", "CPU: Tctl"},
		{"kraken3-hid-3-1", "Coolant", "AIO: Coolant"},
		{"nvme-pci-0100", "Composite", "Nvme: Composite"},
		{"acpitz-virtual-0", "temp1", "acpitz: temp1"},
		{"coretemp-isa-0000", "Core 0", "coretemp: Core 0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatSensorName(tt.device, tt.sensor),
			"device %q", tt.device)
	}
}

func TestFormatSensorNameCaseInsensitive(t *testing.T) {
	assert.Equal(t, "Gpu: temp1", formatSensorName("NVIDIA-pci-0300", "temp1"))
	assert.Equal(t, "Nvme: temp1", formatSensorName("NVMe-pci-0100", "temp1"))
}

func TestFormatSensorNameRuleOrder(t *testing.T) {
	// The wifi rule outranks the gpu rule.
	assert.Equal(t, "Wifi: temp1", formatSensorName("wifigpu-0", "temp1"))
}

func TestFormatSensorNameNoHyphen(t *testing.T) {
	assert.Equal(t, "zenpower: temp1", formatSensorName("zenpower", "temp1"))
	assert.Equal(t, ": temp1", formatSensorName("", "temp1"))
}
