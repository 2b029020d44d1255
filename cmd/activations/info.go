package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	internalcpu "github.com/born-ml/activations/internal/backend/cpu"
	"github.com/born-ml/activations/internal/config"
)

func newInfoCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show backend and CPU feature information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.Workers < 0 {
				return fmt.Errorf("invalid workers: %d (must be non-negative)", cfg.Workers)
			}
			printInfo(cmd.OutOrStdout(), internalcpu.NewWithConfig(cfg.Parallelism()))
			return nil
		},
	}
	cmd.Flags().IntVar(&cfg.Workers, "workers", cfg.Workers, "worker goroutines (0 = all CPUs, 1 = sequential)")
	return cmd
}

func printInfo(w io.Writer, backend *internalcpu.CPUBackend) {
	par := backend.Parallelism()
	fmt.Fprintf(w, "GOOS:     %s\n", runtime.GOOS)
	fmt.Fprintf(w, "GOARCH:   %s\n", runtime.GOARCH)
	fmt.Fprintf(w, "NumCPU:   %d\n", runtime.NumCPU())
	fmt.Fprintf(w, "Backend:  %s (%s)\n", backend.Name(), backend.Device())
	fmt.Fprintf(w, "Parallel: %t (workers=%d, min_chunk=%d)\n", par.Enabled, par.NumWorkers, par.MinChunkSize)

	switch runtime.GOARCH {
	case "amd64":
		fmt.Fprintln(w, "=== golang.org/x/sys/cpu.X86 ===")
		fmt.Fprintf(w, "  HasAVX:     %v\n", cpu.X86.HasAVX)
		fmt.Fprintf(w, "  HasAVX2:    %v\n", cpu.X86.HasAVX2)
		fmt.Fprintf(w, "  HasAVX512F: %v\n", cpu.X86.HasAVX512F)
		fmt.Fprintf(w, "  HasFMA:     %v\n", cpu.X86.HasFMA)
	case "arm64":
		fmt.Fprintln(w, "=== golang.org/x/sys/cpu.ARM64 ===")
		fmt.Fprintf(w, "  HasASIMD:   %v\n", cpu.ARM64.HasASIMD)
		fmt.Fprintf(w, "  HasFP:      %v\n", cpu.ARM64.HasFP)
		fmt.Fprintf(w, "  HasSVE:     %v\n", cpu.ARM64.HasSVE)
	}
}
