//go:build !lmsensors && windows

package sensors

import (
	"context"

	"github.com/StackExchange/wmi"

	"github.com/CristiGvl/picoTherm/internal/filter"
)

// windowsHarvester reads temperatures from WMI. Default strategy on Windows.
type windowsHarvester struct{}

// newPlatformHarvester creates the native Windows harvester.
func newPlatformHarvester() Harvester {
	return &windowsHarvester{}
}

// Strategy names the acquisition strategy compiled into this binary.
func Strategy() string {
	return "native:windows"
}

// Win32_TemperatureProbe represents WMI temperature probe data.
type Win32_TemperatureProbe struct {
	DeviceID       string
	Name           string
	Description    string
	CurrentReading *uint32
}

// Win32_PerfRawData_Counters_ThermalZoneInformation represents thermal zone data.
type Win32_PerfRawData_Counters_ThermalZoneInformation struct {
	Name        string
	Temperature uint64
}

// Win32_Fan represents WMI fan data.
type Win32_Fan struct {
	DeviceID     string
	Name         string
	DesiredSpeed uint64
}

// Temperatures harvests temperature readings from WMI probes, falling back
// to thermal zones when no probe reports a reading. WMI failures mean "no
// sensors", never an error.
func (h *windowsHarvester) Temperatures(ctx context.Context, unit TemperatureType, f *filter.Filter) ([]TempHarvest, error) {
	harvests := h.probeTemperatures(unit, f)
	if len(harvests) == 0 {
		harvests = h.thermalZoneTemperatures(unit, f)
	}
	return harvests, nil
}

// Fans harvests fan speeds from Win32_Fan. Most boards expose no fan
// instances through WMI, so an empty result is the common case.
func (h *windowsHarvester) Fans(ctx context.Context, f *filter.Filter) ([]FanHarvest, error) {
	var fans []Win32_Fan
	if err := wmi.Query("SELECT DeviceID, Name, DesiredSpeed FROM Win32_Fan", &fans); err != nil {
		return []FanHarvest{}, nil
	}

	harvests := make([]FanHarvest, 0, len(fans))
	for _, fan := range fans {
		name := fan.Name
		if name == "" {
			name = fan.DeviceID
		}
		if !filter.OptionalShouldKeep(f, name) {
			continue
		}
		if fan.DesiredSpeed == 0 {
			continue
		}

		harvests = append(harvests, FanHarvest{
			Name: name,
			RPM:  float64(fan.DesiredSpeed),
		})
	}
	return harvests, nil
}

func (h *windowsHarvester) probeTemperatures(unit TemperatureType, f *filter.Filter) []TempHarvest {
	var probes []Win32_TemperatureProbe
	if err := wmi.Query("SELECT * FROM Win32_TemperatureProbe", &probes); err != nil {
		return []TempHarvest{}
	}

	harvests := make([]TempHarvest, 0, len(probes))
	for _, probe := range probes {
		if probe.CurrentReading == nil {
			continue
		}

		name := probe.Name
		if name == "" {
			name = probe.DeviceID
		}
		if !filter.OptionalShouldKeep(f, name) {
			continue
		}

		// WMI reports tenths of Kelvin.
		celsius := float64(*probe.CurrentReading)/10.0 - 273.15
		if celsius < -50 || celsius > 150 {
			continue
		}

		value := unit.Convert(celsius)
		harvests = append(harvests, TempHarvest{
			Name:        name,
			Temperature: &value,
		})
	}
	return harvests
}

func (h *windowsHarvester) thermalZoneTemperatures(unit TemperatureType, f *filter.Filter) []TempHarvest {
	var zones []Win32_PerfRawData_Counters_ThermalZoneInformation
	if err := wmi.Query("SELECT * FROM Win32_PerfRawData_Counters_ThermalZoneInformation", &zones); err != nil {
		return []TempHarvest{}
	}

	harvests := make([]TempHarvest, 0, len(zones))
	for _, zone := range zones {
		if !filter.OptionalShouldKeep(f, zone.Name) {
			continue
		}

		celsius := float64(zone.Temperature)/10.0 - 273.15
		if celsius < -50 || celsius > 150 {
			continue
		}

		value := unit.Convert(celsius)
		harvests = append(harvests, TempHarvest{
			Name:        zone.Name,
			Temperature: &value,
		})
	}
	return harvests
}
