// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand/v2"

	"github.com/born-ml/activations/internal/tensor"
)

// DType is a constraint for tensor element types: float32, float64 or bool.
type DType = tensor.DType

// Float is a constraint for floating point element types.
type Float = tensor.Float

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Bool    DataType = tensor.Bool
)

// ParseDataType parses "float32", "float64" or "bool".
func ParseDataType(name string) (DataType, bool) {
	return tensor.ParseDataType(name)
}

// Device represents the device where tensor data resides.
type Device = tensor.Device

// CPU is the only supported device.
const CPU Device = tensor.CPU

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
// Shape{} is a rank-0 scalar.
type Shape = tensor.Shape

// RawTensor is the untyped storage handled by backends.
type RawTensor = tensor.RawTensor

// NewRaw allocates a zeroed raw tensor.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// Backend is the interface compute backends implement.
type Backend = tensor.Backend

// Tensor is a generic type-safe tensor.
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// Sentinel errors. Match with errors.Is.
var (
	ErrInvalidShape   = tensor.ErrInvalidShape
	ErrBroadcast      = tensor.ErrBroadcast
	ErrAxisOutOfRange = tensor.ErrAxisOutOfRange
	ErrDataLength     = tensor.ErrDataLength
	ErrDTypeMismatch  = tensor.ErrDTypeMismatch
)

// FromSlice creates a tensor holding a copy of data.
//
// Example:
//
//	x, err := tensor.FromSlice([]float64{-2, 0, 3}, tensor.Shape{3}, backend)
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice(data, shape, b)
}

// Zeros creates a tensor filled with zeros. Panics if the shape is invalid.
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Zeros[T](shape, b)
}

// Ones creates a tensor filled with ones.
func Ones[T Float, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Ones[T](shape, b)
}

// Full creates a tensor filled with value.
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	return tensor.Full(shape, value, b)
}

// Scalar creates a rank-0 tensor.
func Scalar[T DType, B Backend](value T, b B) *Tensor[T, B] {
	return tensor.Scalar(value, b)
}

// Arange creates a 1-D tensor with values [start, end).
func Arange[T Float, B Backend](start, end int, b B) *Tensor[T, B] {
	return tensor.Arange[T](start, end, b)
}

// Randn creates a tensor with standard normal values drawn from rng.
func Randn[T Float, B Backend](shape Shape, rng *rand.Rand, b B) *Tensor[T, B] {
	return tensor.Randn[T](shape, rng, b)
}

// Rand creates a tensor with values drawn uniformly from [low, high).
func Rand[T Float, B Backend](shape Shape, low, high float64, rng *rand.Rand, b B) *Tensor[T, B] {
	return tensor.Rand[T](shape, low, high, rng, b)
}

// Where selects x where condition is true and y elsewhere, broadcasting all three.
func Where[T DType, B Backend](condition *Tensor[bool, B], x, y *Tensor[T, B]) (*Tensor[T, B], error) {
	return tensor.Where(condition, x, y)
}

// BroadcastShapes returns the broadcast shape of a and b and whether either needs expanding.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}
