// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides activation and normalization functions for tensors.
//
// # Overview
//
// Elementwise activations keep the shape of their input:
//   - ReLU:      max(x, 0)
//   - Softplus:  log(1 + exp(x)), stable for large |x|
//   - Sigmoid:   1 / (1 + exp(-x)), stable for large |x|
//   - ELU:       x for x > 0, exp(x) - 1 otherwise
//   - LeakyReLU: x for x >= 0, 0.01 * x otherwise
//
// Axis-wise functions operate along one axis (negative values count from the end):
//   - Softmax and LogSoftmax normalize along the axis and keep the input shape
//   - FastVar computes the variance mean(x²) - mean(x)², removing the axis unless
//     keepDims is set
//
// # Basic Usage
//
//	backend := cpu.New()
//	logits, _ := tensor.FromSlice([]float32{1000, 1, 0}, tensor.Shape{1, 3}, backend)
//
//	probs, err := nn.Softmax(logits, nn.DefaultAxis)
//	if err != nil {
//	    return err
//	}
//
// # Registry
//
// Every function is also available by name with a uniform signature, which is how the
// activations command dispatches:
//
//	fn, err := nn.Lookup[float32, *cpu.Backend]("logsoftmax")
//	y, err := fn(x, -1, false)
//
// # Numerical Notes
//
// Softmax and LogSoftmax subtract the per-slice maximum before exponentiating, so
// logits around 1e3 do not overflow. FastVar is a one-pass formula and cancels badly
// when the mean is large relative to the spread, notably in float32.
//
// # Thread Safety
//
// All functions are pure: they allocate their outputs and never modify inputs.
package nn
