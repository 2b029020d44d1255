// Package config holds the settings of the activations command line tool.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/born-ml/activations/internal/nn"
	"github.com/born-ml/activations/internal/parallel"
	"github.com/born-ml/activations/internal/tensor"
)

// Config is populated from command line flags before a function is applied.
type Config struct {
	Function string
	Axis     int
	KeepDims bool
	DType    string
	Input    string // Path to a JSON file, or "-" for stdin.

	Workers int // 0 uses every CPU, 1 disables parallel kernels.

	LogLevel  string
	LogFormat string
	Metrics   bool
}

// Default returns the configuration used when no flags are given.
func Default() Config {
	return Config{
		Axis:      nn.DefaultAxis,
		DType:     "float64",
		Input:     "-",
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, ok := nn.KindOf(c.Function); !ok {
		return fmt.Errorf("invalid function: %q (must be one of %s)", c.Function, strings.Join(nn.Names(), ", "))
	}
	if _, err := c.DataType(); err != nil {
		return err
	}
	if c.Input == "" {
		return fmt.Errorf("invalid input: empty path (use - for stdin)")
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid workers: %d (must be non-negative)", c.Workers)
	}
	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log_format: %q (must be console or json)", c.LogFormat)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level: %q (must be debug, info, warn or error)", c.LogLevel)
	}
	return nil
}

// DataType returns the parsed element type. Only floating point types are accepted.
func (c *Config) DataType() (tensor.DataType, error) {
	dt, ok := tensor.ParseDataType(c.DType)
	if !ok || (dt != tensor.Float32 && dt != tensor.Float64) {
		return 0, fmt.Errorf("invalid dtype: %q (must be float32 or float64)", c.DType)
	}
	return dt, nil
}

// Parallelism converts Workers into kernel settings.
func (c *Config) Parallelism() parallel.Config {
	cfg := parallel.DefaultConfig()
	switch {
	case c.Workers == 1:
		return parallel.Sequential()
	case c.Workers > 1:
		cfg.Enabled = true
		cfg.NumWorkers = c.Workers
	default:
		cfg.NumWorkers = runtime.NumCPU()
	}
	return cfg
}

// Activation returns the module configuration for the selected function.
func (c *Config) Activation() nn.ActivationConfig {
	return nn.ActivationConfig{Name: c.Function, Axis: c.Axis, KeepDims: c.KeepDims}
}
