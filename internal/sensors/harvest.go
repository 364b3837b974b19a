package sensors

// TempHarvest is one named temperature observation. Temperature is in the
// unit requested by the caller and is nil when no reading could be obtained.
type TempHarvest struct {
	Name        string   `json:"name" yaml:"name"`
	Temperature *float64 `json:"temperature,omitempty" yaml:"temperature,omitempty"`
}

// FanHarvest is one named fan speed observation.
type FanHarvest struct {
	Name string  `json:"name" yaml:"name"`
	RPM  float64 `json:"rpm" yaml:"rpm"`
}
