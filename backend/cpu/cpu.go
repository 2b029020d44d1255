// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/activations/internal/backend/cpu"
	"github.com/born-ml/activations/internal/parallel"
	"github.com/born-ml/activations/tensor"
)

// Backend represents the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// Parallelism controls how kernels are split across goroutines.
type Parallelism = parallel.Config

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend using every CPU for large inputs.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
func New() *Backend {
	return internalcpu.New()
}

// NewWithParallelism creates a CPU backend with explicit parallelism settings.
func NewWithParallelism(cfg Parallelism) *Backend {
	return internalcpu.NewWithConfig(cfg)
}

// DefaultParallelism returns settings based on the CPU count.
func DefaultParallelism() Parallelism {
	return parallel.DefaultConfig()
}

// Sequential returns settings that never spawn goroutines.
func Sequential() Parallelism {
	return parallel.Sequential()
}
