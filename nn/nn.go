// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/activations/internal/nn"
	"github.com/born-ml/activations/internal/tensor"
)

// DefaultAxis is the last axis.
const DefaultAxis = nn.DefaultAxis

// LeakyReLUSlope is the slope LeakyReLU applies to negative inputs.
const LeakyReLUSlope = nn.LeakyReLUSlope

// ErrUnknownFunction is returned by Lookup and NewActivation for unregistered names.
var ErrUnknownFunction = nn.ErrUnknownFunction

// Elementwise activations

// ReLU applies max(x, 0) element-wise.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float64{-2, 0, 3}, tensor.Shape{3}, backend)
//	y := nn.ReLU(x) // [0, 0, 3]
func ReLU[T tensor.Float, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return nn.ReLU(x)
}

// Softplus applies log(1 + exp(x)) element-wise.
func Softplus[T tensor.Float, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return nn.Softplus(x)
}

// Sigmoid applies 1 / (1 + exp(-x)) element-wise.
func Sigmoid[T tensor.Float, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return nn.Sigmoid(x)
}

// ELU applies x where x > 0 and exp(x) - 1 elsewhere.
func ELU[T tensor.Float, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return nn.ELU(x)
}

// LeakyReLU applies x where x >= 0 and 0.01 * x elsewhere.
func LeakyReLU[T tensor.Float, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return nn.LeakyReLU(x)
}

// Axis-wise functions

// Softmax normalizes exp(x) along axis so that it sums to 1.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float64{1000, 1000, 1000}, tensor.Shape{1, 3}, backend)
//	y, _ := nn.Softmax(x, nn.DefaultAxis) // [[1/3, 1/3, 1/3]]
func Softmax[T tensor.Float, B tensor.Backend](x *tensor.Tensor[T, B], axis int) (*tensor.Tensor[T, B], error) {
	return nn.Softmax(x, axis)
}

// LogSoftmax computes x - logsumexp(x) along axis.
func LogSoftmax[T tensor.Float, B tensor.Backend](x *tensor.Tensor[T, B], axis int) (*tensor.Tensor[T, B], error) {
	return nn.LogSoftmax(x, axis)
}

// FastVar computes mean(x²) - mean(x)² along axis.
func FastVar[T tensor.Float, B tensor.Backend](x *tensor.Tensor[T, B], axis int, keepDims bool) (*tensor.Tensor[T, B], error) {
	return nn.FastVar(x, axis, keepDims)
}

// Registry

// Kind tells whether a function is elementwise or axis-wise.
type Kind = nn.Kind

// Function kinds.
const (
	Elementwise = nn.Elementwise
	AxisWise    = nn.AxisWise
)

// Func is the uniform signature of registered functions.
type Func[T tensor.Float, B tensor.Backend] = nn.Func[T, B]

// Names returns the registered function names.
func Names() []string {
	return nn.Names()
}

// KindOf reports the kind of a registered function.
func KindOf(name string) (Kind, bool) {
	return nn.KindOf(name)
}

// Lookup returns the named function.
func Lookup[T tensor.Float, B tensor.Backend](name string) (Func[T, B], error) {
	return nn.Lookup[T, B](name)
}

// Modules

// ActivationConfig configures an Activation.
type ActivationConfig = nn.ActivationConfig

// Activation applies one registered function with a fixed axis configuration.
type Activation[T tensor.Float, B tensor.Backend] = nn.Activation[T, B]

// NewActivation creates an Activation.
//
// Example:
//
//	act, err := nn.NewActivation[float32, *cpu.Backend](nn.ActivationConfig{
//	    Name: "fastvar",
//	    Axis: 0,
//	    KeepDims: true,
//	})
func NewActivation[T tensor.Float, B tensor.Backend](cfg ActivationConfig) (*Activation[T, B], error) {
	return nn.NewActivation[T, B](cfg)
}
