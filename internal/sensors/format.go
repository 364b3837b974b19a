package sensors

import "strings"

// nameRule maps a device-name fragment to a short display label.
type nameRule struct {
	fragment string
	label    string
}

// Ordered: the first matching rule wins, so "wifigpu-x" is Wifi, not Gpu.
var nameRules = []nameRule{
	{"wifi", "Wifi"},
	{"gpu", "Gpu"},
	{"nvidia", "Gpu"},
	{"it86", "MB"},
	{"k10", "CPU"},
	{"kraken", "AIO"},
	{"nvme", "Nvme"},
}

// formatSensorName merges a device identifier and a sensor name into a
// display-ready "<label>: <sensor>" string. Devices not covered by a rule
// fall back to the part of the identifier before its first hyphen, or the
// whole identifier when there is none.
func formatSensorName(deviceName, sensorName string) string {
	lower := strings.ToLower(deviceName)
	for _, rule := range nameRules {
		if strings.Contains(lower, rule.fragment) {
			return rule.label + ": " + sensorName
		}
	}
	label, _, _ := strings.Cut(deviceName, "-")
	return label + ": " + sensorName
}
