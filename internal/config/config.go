package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/CristiGvl/picoTherm/internal/sensors"
)

// Config is the full agent configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Sensors SensorsConfig `mapstructure:"sensors"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Log     LogConfig     `mapstructure:"log"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Bind         string        `mapstructure:"bind" validate:"required"`
	Port         string        `mapstructure:"port" validate:"required"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout" validate:"gt=0"`
}

// Address returns the listen address in host:port form.
func (c ServerConfig) Address() string {
	return c.Bind + ":" + c.Port
}

// SensorsConfig configures harvesting.
type SensorsConfig struct {
	// Unit is the temperature unit token: celsius/c, kelvin/k, fahrenheit/f.
	Unit string `mapstructure:"unit" validate:"required"`
	// Filter holds sensor-name patterns. With FilterIgnores set the list
	// drops matching sensors, otherwise only matching sensors are kept.
	Filter        []string `mapstructure:"filter"`
	FilterIgnores bool     `mapstructure:"filter_ignores"`
	// Timeout bounds one harvest; the core itself never cancels.
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

// TemperatureType parses the configured unit token.
func (c SensorsConfig) TemperatureType() (sensors.TemperatureType, error) {
	return sensors.ParseTemperatureType(c.Unit)
}

// MetricsConfig configures the prometheus exporter endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr" validate:"required_if=Enabled true,omitempty,hostname_port"`
}

// LogConfig configures logging output. An empty Path logs to the console only.
type LogConfig struct {
	Level      string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Path       string `mapstructure:"path"`
	MaxAgeDays int    `mapstructure:"max_age_days" validate:"gte=1"`
}

// NewDefault returns the built-in configuration.
func NewDefault() *Config {
	return &Config{
		Server: ServerConfig{
			Bind:         "0.0.0.0",
			Port:         "8080",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Sensors: SensorsConfig{
			Unit:    "celsius",
			Timeout: 10 * time.Second,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Addr:    "0.0.0.0:9090",
		},
		Log: LogConfig{
			Level:      "info",
			MaxAgeDays: 7,
		},
	}
}

// flagBinds maps config keys to the command line flags that override them.
var flagBinds = map[string]string{
	"server.bind":            "bind",
	"server.port":            "port",
	"sensors.unit":           "unit",
	"sensors.filter":         "filter",
	"sensors.filter_ignores": "filter-ignores",
	"metrics.enabled":        "metrics",
	"metrics.addr":           "metrics-addr",
	"log.level":              "log-level",
	"log.path":               "log-path",
}

// Load builds the configuration from defaults, an optional YAML file, the
// PICOTHERM_* environment and any bound command line flags, then validates
// the result.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	def := NewDefault()
	v.SetDefault("server.bind", def.Server.Bind)
	v.SetDefault("server.port", def.Server.Port)
	v.SetDefault("server.read_timeout", def.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", def.Server.WriteTimeout)
	v.SetDefault("server.idle_timeout", def.Server.IdleTimeout)
	v.SetDefault("sensors.unit", def.Sensors.Unit)
	v.SetDefault("sensors.filter", def.Sensors.Filter)
	v.SetDefault("sensors.filter_ignores", def.Sensors.FilterIgnores)
	v.SetDefault("sensors.timeout", def.Sensors.Timeout)
	v.SetDefault("metrics.enabled", def.Metrics.Enabled)
	v.SetDefault("metrics.addr", def.Metrics.Addr)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.path", def.Log.Path)
	v.SetDefault("log.max_age_days", def.Log.MaxAgeDays)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	v.SetEnvPrefix("PICOTHERM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagBinds {
			fl := flags.Lookup(name)
			if fl == nil {
				continue
			}
			if err := v.BindPFlag(key, fl); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	cfg := &Config{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  cfg,
		TagName: "mapstructure",
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("build config decoder: %w", err)
	}
	if err := decoder.Decode(v.AllSettings()); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks structural constraints and the unit token.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := sensors.ParseTemperatureType(c.Sensors.Unit); err != nil {
		return err
	}
	return nil
}
