package support

import (
	"fmt"
	"os"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	NoExporter        = "none"
	ConsoleExporter   = "console"
	HoneycombExporter = "honeycomb"
	JaegerExporter    = "jaeger"
)

type Config struct {
	Address          string `mapstructure:"COUNTER_ADDRESS"`
	InitialValue     int64  `mapstructure:"COUNTER_INITIAL_VALUE"`
	LogLevel         string `mapstructure:"COUNTER_LOG_LEVEL"`
	TraceExporter    string `mapstructure:"COUNTER_TRACE_EXPORTER"`
	HoneycombTeam    string `mapstructure:"HONEYCOMB_TEAM"`
	HoneycombDataset string `mapstructure:"HONEYCOMB_DATASET"`
	JaegerEndpoint   string `mapstructure:"JAEGER_ENDPOINT"`
}

// Keys lists the environment variables read into Config, in field order.
func Keys() []string {
	t := reflect.TypeOf(Config{})

	keys := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if key := t.Field(i).Tag.Get("mapstructure"); key != "" && key != "-" {
			keys = append(keys, key)
		}
	}

	return keys
}

func DefaultConfig() Config {
	return Config{
		Address:        ":9080",
		LogLevel:       "info",
		TraceExporter:  NoExporter,
		JaegerEndpoint: "http://localhost:14268/api/traces",
	}
}

type InvalidConfigError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func InvalidConfig(field string, reason string) error {
	return &InvalidConfigError{Field: field, Reason: reason}
}

// LoadConfig reads the configuration from the process environment.
func LoadConfig() (Config, error) {
	keys := Keys()
	values := make(map[string]string, len(keys))
	for _, key := range keys {
		if value, ok := os.LookupEnv(key); ok {
			values[key] = value
		}
	}

	return ConfigFrom(values)
}

func ConfigFrom(values map[string]string) (Config, error) {
	config := DefaultConfig()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &config,
	})
	if err != nil {
		return Config{}, err
	}

	if err := decoder.Decode(values); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode configuration")
	}

	if err := config.validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

func (c Config) validate() error {
	if c.Address == "" {
		return InvalidConfig("COUNTER_ADDRESS", "must not be empty")
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return InvalidConfig("COUNTER_LOG_LEVEL", err.Error())
	}

	switch c.TraceExporter {
	case NoExporter, ConsoleExporter, JaegerExporter:
	case HoneycombExporter:
		if c.HoneycombTeam == "" || c.HoneycombDataset == "" {
			return InvalidConfig("COUNTER_TRACE_EXPORTER", "honeycomb requires HONEYCOMB_TEAM and HONEYCOMB_DATASET")
		}
	default:
		return InvalidConfig("COUNTER_TRACE_EXPORTER", fmt.Sprintf("unknown exporter %q", c.TraceExporter))
	}

	return nil
}
