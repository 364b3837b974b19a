package sensors

import (
	"bufio"
	"math"
	"strconv"
	"strings"
)

// sensorKind classifies a raw sensor reading.
type sensorKind int

const (
	kindTemperature sensorKind = iota
	kindFan
	kindVoltage
)

// sensorReading is one raw (name, value, kind) entry reported under a device.
type sensorReading struct {
	name  string
	value float64
	kind  sensorKind
}

// device groups the readings reported under one chip header line.
type device struct {
	name    string
	adapter string
	sensors []sensorReading
}

// parseSensorsOutput turns the raw output of `sensors -u` into a list of
// devices. The format is loosely specified, so parsing is heuristic:
//
//	<chip header, always contains a hyphenated bus suffix>
//	Adapter: <adapter>
//	<sensor name>:
//	  <sensor>_input: <value>
//	  ... more key/value lines ...
//	<blank line ends the chip>
//
// Anything that does not fit is skipped rather than treated as an error.
func parseSensorsOutput(raw string) []device {
	var devices []device

	sc := bufio.NewScanner(strings.NewReader(raw))
	for sc.Scan() {
		line := sc.Text()

		// Chip identifiers carry a hyphen-separated bus/address suffix,
		// e.g. "iwlwifi_1-virtual-0". Lines without one are noise.
		if !strings.Contains(line, "-") {
			continue
		}

		dev := device{name: line}
		if sc.Scan() {
			dev.adapter = strings.TrimPrefix(sc.Text(), "Adapter: ")
		}

		for sc.Scan() {
			sensorLine := sc.Text()
			trimmed := strings.TrimSpace(sensorLine)
			if trimmed == "" {
				break
			}
			if !strings.HasSuffix(trimmed, ":") {
				continue
			}
			name := strings.TrimSuffix(trimmed, ":")

			// The value line is consumed whether or not it is usable, so a
			// sensor whose first field is e.g. *_max never yields a reading.
			if !sc.Scan() {
				continue
			}
			valueLine := sc.Text()
			if !strings.Contains(valueLine, "input") {
				continue
			}
			fields := strings.Fields(valueLine)
			if len(fields) != 2 {
				continue
			}

			// Unusable numeric tokens are recorded as 0.0 instead of
			// failing the whole parse. Non-finite values count as
			// unusable, readings must stay finite.
			value, err := strconv.ParseFloat(fields[1], 64)
			if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
				value = 0.0
			}

			dev.sensors = append(dev.sensors, sensorReading{
				name:  name,
				value: value,
				kind:  classifySensorKind(fields[0]),
			})
		}

		devices = append(devices, dev)
	}

	return devices
}

// classifySensorKind derives the reading kind from the key token of a value
// line, e.g. "temp1_input" or "fan2_input".
func classifySensorKind(token string) sensorKind {
	switch {
	case strings.Contains(token, "temp"):
		return kindTemperature
	case strings.Contains(token, "fan"):
		return kindFan
	default:
		return kindVoltage
	}
}
