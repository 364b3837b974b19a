//go:build !lmsensors && !windows

package sensors

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/CristiGvl/picoTherm/internal/filter"
)

// nativeHarvester reads sensors through the interfaces the OS itself
// exposes: gopsutil host sensors for temperatures and, where present, the
// hwmon sysfs tree for fans. Default strategy on non-Windows builds.
type nativeHarvester struct {
	hwmonPath string
}

// newPlatformHarvester creates the native harvester for this build.
func newPlatformHarvester() Harvester {
	return &nativeHarvester{hwmonPath: "/sys/class/hwmon"}
}

// Strategy names the acquisition strategy compiled into this binary.
func Strategy() string {
	return "native:" + runtime.GOOS
}

// Temperatures harvests temperature readings via gopsutil.
func (h *nativeHarvester) Temperatures(ctx context.Context, unit TemperatureType, f *filter.Filter) ([]TempHarvest, error) {
	temps, err := host.SensorsTemperaturesWithContext(ctx)
	if err != nil && len(temps) == 0 {
		// Unreadable sensors are routine across hardware, not an error.
		return []TempHarvest{}, nil
	}

	harvests := make([]TempHarvest, 0, len(temps))
	for _, t := range temps {
		if !filter.OptionalShouldKeep(f, t.SensorKey) {
			continue
		}
		if math.IsNaN(t.Temperature) || math.IsInf(t.Temperature, 0) {
			continue
		}
		value := unit.Convert(t.Temperature)
		harvests = append(harvests, TempHarvest{
			Name:        t.SensorKey,
			Temperature: &value,
		})
	}
	return harvests, nil
}

// Fans harvests fan speeds from hwmon fan*_input files. Platforms without a
// hwmon tree simply report no fans.
func (h *nativeHarvester) Fans(ctx context.Context, f *filter.Filter) ([]FanHarvest, error) {
	matches, err := filepath.Glob(filepath.Join(h.hwmonPath, "hwmon*", "fan*_input"))
	if err != nil {
		return []FanHarvest{}, nil
	}

	harvests := make([]FanHarvest, 0, len(matches))
	for _, path := range matches {
		raw, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		rpm, err := strconv.ParseFloat(strings.TrimSpace(string(raw)), 64)
		if err != nil {
			continue
		}

		fanName := strings.TrimSuffix(filepath.Base(path), "_input")
		if !filter.OptionalShouldKeep(f, fanName) {
			continue
		}

		harvests = append(harvests, FanHarvest{
			Name: formatSensorName(hwmonDeviceName(filepath.Dir(path)), fanLabel(path, fanName)),
			RPM:  rpm,
		})
	}
	return harvests, nil
}

// hwmonDeviceName reads the chip name of a hwmon directory, falling back to
// the directory name itself.
func hwmonDeviceName(dir string) string {
	raw, err := os.ReadFile(filepath.Join(dir, "name"))
	if err != nil {
		return filepath.Base(dir)
	}
	return strings.TrimSpace(string(raw))
}

// fanLabel prefers the driver-provided label over the bare input name.
func fanLabel(inputPath, fallback string) string {
	raw, err := os.ReadFile(strings.TrimSuffix(inputPath, "_input") + "_label")
	if err != nil {
		return fallback
	}
	if label := strings.TrimSpace(string(raw)); label != "" {
		return label
	}
	return fallback
}
