//go:build lmsensors

package sensors

import (
	"context"
	"os/exec"
	"runtime"
	"unicode/utf8"

	"github.com/CristiGvl/picoTherm/internal/filter"
)

// lmSensorsHarvester shells out to the lm-sensors `sensors` tool and parses
// its raw output. Built on any platform when the lmsensors tag is set, but
// only meaningful on Unix-like systems.
type lmSensorsHarvester struct {
	bin string
}

// newPlatformHarvester creates the lm-sensors text-tool harvester.
func newPlatformHarvester() Harvester {
	return &lmSensorsHarvester{bin: "sensors"}
}

// Strategy names the acquisition strategy compiled into this binary.
func Strategy() string {
	return "lm-sensors"
}

// Temperatures harvests temperature readings from `sensors -u` output.
func (h *lmSensorsHarvester) Temperatures(ctx context.Context, unit TemperatureType, f *filter.Filter) ([]TempHarvest, error) {
	return harvestTemperatures(h.devices(ctx), unit, f), nil
}

// Fans harvests fan readings from `sensors -u` output.
func (h *lmSensorsHarvester) Fans(ctx context.Context, f *filter.Filter) ([]FanHarvest, error) {
	return harvestFans(h.devices(ctx), f), nil
}

// devices runs the tool and parses its output. A missing tool, a failed run
// or undecodable output all mean "no devices": heterogeneous hardware makes
// those failures routine, so they never surface as errors.
func (h *lmSensorsHarvester) devices(ctx context.Context) []device {
	if runtime.GOOS == "windows" {
		return nil
	}

	out, err := exec.CommandContext(ctx, h.bin, "-u").Output()
	if err != nil {
		return nil
	}
	if !utf8.Valid(out) {
		return nil
	}

	return parseSensorsOutput(string(out))
}
