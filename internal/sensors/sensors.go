package sensors

import (
	"context"

	"github.com/CristiGvl/picoTherm/internal/filter"
)

// Harvester acquires hardware sensor readings through the acquisition
// strategy compiled into this binary.
type Harvester interface {
	// Temperatures returns one harvest per temperature sensor that passes
	// the filter, converted into the requested unit. Missing hardware or a
	// missing reporting tool yields an empty harvest, not an error.
	Temperatures(ctx context.Context, unit TemperatureType, f *filter.Filter) ([]TempHarvest, error)

	// Fans returns one harvest per fan sensor that passes the filter, with
	// the same degradation behavior as Temperatures.
	Fans(ctx context.Context, f *filter.Filter) ([]FanHarvest, error)
}

// NewHarvester creates a harvester for the build-selected strategy.
func NewHarvester() Harvester {
	return newPlatformHarvester()
}

// Collect runs one synchronous temperature acquisition.
func Collect(ctx context.Context, unit TemperatureType, f *filter.Filter) ([]TempHarvest, error) {
	return NewHarvester().Temperatures(ctx, unit, f)
}

// CollectFans runs one synchronous fan acquisition.
func CollectFans(ctx context.Context, f *filter.Filter) ([]FanHarvest, error) {
	return NewHarvester().Fans(ctx, f)
}

// harvestTemperatures keeps the temperature-kind readings whose raw sensor
// name passes the filter, converts them into the requested unit and attaches
// the display name. Device order and sensor order are preserved.
func harvestTemperatures(devices []device, unit TemperatureType, f *filter.Filter) []TempHarvest {
	harvests := make([]TempHarvest, 0, len(devices))
	for _, dev := range devices {
		for _, s := range dev.sensors {
			if s.kind != kindTemperature {
				continue
			}
			if !filter.OptionalShouldKeep(f, s.name) {
				continue
			}
			value := unit.Convert(s.value)
			harvests = append(harvests, TempHarvest{
				Name:        formatSensorName(dev.name, s.name),
				Temperature: &value,
			})
		}
	}
	return harvests
}

// harvestFans is the fan-kind counterpart of harvestTemperatures. Fan speeds
// are unit-free (RPM), so no conversion applies.
func harvestFans(devices []device, f *filter.Filter) []FanHarvest {
	harvests := make([]FanHarvest, 0, len(devices))
	for _, dev := range devices {
		for _, s := range dev.sensors {
			if s.kind != kindFan {
				continue
			}
			if !filter.OptionalShouldKeep(f, s.name) {
				continue
			}
			harvests = append(harvests, FanHarvest{
				Name: formatSensorName(dev.name, s.name),
				RPM:  s.value,
			})
		}
	}
	return harvests
}
