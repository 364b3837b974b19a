package platform

import (
	"runtime"

	"github.com/CristiGvl/picoTherm/internal/sensors"
)

// Info describes the host and the acquisition strategy compiled into this
// binary. Every build has a strategy; hosts without readable sensors simply
// harvest nothing.
type Info struct {
	OS       string `json:"os"`
	Arch     string `json:"arch"`
	Strategy string `json:"strategy"`
}

// Describe returns the platform description for this process.
func Describe() Info {
	return Info{
		OS:       runtime.GOOS,
		Arch:     runtime.GOARCH,
		Strategy: sensors.Strategy(),
	}
}
