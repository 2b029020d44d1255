// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe tensors with NumPy-style broadcasting.
//
// # Overview
//
// This package provides:
//   - Generic type-safe tensors (Tensor[T, B]) over float32 and float64
//   - NumPy-style broadcasting for binary operations and Where
//   - Axis reductions with negative axis indexing and keepDims
//   - Sentinel errors for shape, broadcast and axis failures
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/activations/backend/cpu"
//	    "github.com/born-ml/activations/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    rowMax, _ := x.MaxDim(-1, true) // shape [2 1]
//	    centered, _ := x.Sub(rowMax)     // shape [2 3]
//	}
//
// # Broadcasting
//
// Shapes are aligned from the trailing dimension; two dimensions are compatible when
// they are equal or one of them is 1. A rank-0 tensor broadcasts against anything:
//
//	a := tensor.Zeros[float32](tensor.Shape{3, 1}, backend) // (3, 1)
//	b := tensor.Ones[float32](tensor.Shape{4}, backend)     // (4,)
//	c, _ := a.Add(b)                                        // (3, 4)
//
// Incompatible shapes return an error wrapping ErrBroadcast.
//
// # Errors
//
// Operations on user-supplied shapes and axes return errors that wrap one of the
// sentinel errors below; match them with errors.Is.
//
// # Memory
//
// Every operation allocates its result. Inputs are never modified, so tensors may be
// shared between goroutines as long as nobody writes to the slice returned by Data.
package tensor
