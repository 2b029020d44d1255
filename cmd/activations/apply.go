package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/born-ml/activations/internal/backend/cpu"
	"github.com/born-ml/activations/internal/config"
	"github.com/born-ml/activations/internal/logger"
	"github.com/born-ml/activations/internal/metrics"
	"github.com/born-ml/activations/internal/nn"
	"github.com/born-ml/activations/internal/tensor"
)

func newApplyCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply <function>",
		Short: "Apply a function to a nested JSON array",
		Long: `Apply reads a nested JSON array from --input (stdin by default), applies the
named function and writes the result as a nested JSON array to stdout.

Non-finite values are written as the strings "NaN", "Infinity" and "-Infinity".`,
		Example: `  echo '[[1000, 1, 0]]' | activations apply softmax
  activations apply fastvar --axis 0 --keepdims --input data.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Function = args[0]
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runApply(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.Axis, "axis", cfg.Axis, "axis for softmax, logsoftmax and fastvar")
	flags.BoolVar(&cfg.KeepDims, "keepdims", cfg.KeepDims, "keep the reduced axis (fastvar)")
	flags.StringVar(&cfg.DType, "dtype", cfg.DType, "element type (float32, float64)")
	flags.StringVarP(&cfg.Input, "input", "i", cfg.Input, "input JSON file, - for stdin")
	flags.IntVar(&cfg.Workers, "workers", cfg.Workers, "worker goroutines (0 = all CPUs, 1 = sequential)")
	flags.BoolVar(&cfg.Metrics, "metrics", cfg.Metrics, "write Prometheus metrics to stderr")
	return cmd
}

func runApply(cmd *cobra.Command, cfg *config.Config) error {
	raw, err := readInput(cmd.InOrStdin(), cfg.Input)
	if err != nil {
		return err
	}
	values, shape, err := decodeArray(raw)
	if err != nil {
		return err
	}

	dt, err := cfg.DataType()
	if err != nil {
		return err
	}

	var recorder *metrics.Recorder
	if cfg.Metrics {
		recorder = metrics.NewRecorder()
	}

	backend := cpu.NewWithConfig(cfg.Parallelism())
	var out []byte
	switch dt {
	case tensor.Float32:
		out, err = run(backend, cfg, toFloat32(values), shape, recorder)
	default:
		out, err = run(backend, cfg, values, shape, recorder)
	}
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\n", out); err != nil {
		return err
	}
	if recorder != nil {
		return recorder.WriteText(cmd.ErrOrStderr())
	}
	return nil
}

// run evaluates the configured function on values and returns the encoded result.
func run[T tensor.Float](
	backend *cpu.CPUBackend,
	cfg *config.Config,
	values []T,
	shape tensor.Shape,
	recorder *metrics.Recorder,
) ([]byte, error) {
	x, err := tensor.FromSlice(values, shape, backend)
	if err != nil {
		return nil, fmt.Errorf("build input: %w", err)
	}

	act, err := nn.NewActivation[T, *cpu.CPUBackend](cfg.Activation())
	if err != nil {
		return nil, err
	}

	start := time.Now()
	y, err := act.Forward(x)
	elapsed := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", act, err)
	}

	logger.Log.Debug("applied",
		"function", act.String(),
		"input", x.String(),
		"output", y.String(),
		"duration", elapsed,
	)

	if recorder != nil {
		recorder.RecordEvaluation(act.Name(), elapsed)
		metrics.ObserveValues(recorder, act.Name(), y.Data())
	}

	return encodeArray(y.Data(), y.Shape())
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return raw, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return raw, nil
}

func toFloat32(values []float64) []float32 {
	out := make([]float32, len(values))
	for i, v := range values {
		out[i] = float32(v)
	}
	return out
}
