// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package arrowio exchanges tensors with Apache Arrow.
//
// Example:
//
//	at, err := arrowio.ToArrow(probs, nil)
//	if err != nil {
//	    return err
//	}
//	defer at.Release()
package arrowio

import (
	"github.com/apache/arrow-go/v18/arrow/memory"
	arrowtensor "github.com/apache/arrow-go/v18/arrow/tensor"

	"github.com/born-ml/activations/internal/arrowio"
	"github.com/born-ml/activations/tensor"
)

// Errors returned by FromArrow.
var (
	ErrNotRowMajor     = arrowio.ErrNotRowMajor
	ErrUnsupportedType = arrowio.ErrUnsupportedType
)

// ToArrow copies t into a row-major Arrow tensor. mem may be nil.
// The caller must Release the result.
func ToArrow[T tensor.Float, B tensor.Backend](t *tensor.Tensor[T, B], mem memory.Allocator) (arrowtensor.Interface, error) {
	return arrowio.ToArrow(t, mem)
}

// FromArrow copies a row-major float32 or float64 Arrow tensor into a new tensor.
func FromArrow[T tensor.Float, B tensor.Backend](at arrowtensor.Interface, b B) (*tensor.Tensor[T, B], error) {
	return arrowio.FromArrow[T](at, b)
}
