// Package nn provides stateless activation and normalization functions over tensors.
//
// Every function composes backend primitives (maximum, where, exp, axis reductions,
// log-sum-exp) and returns a newly allocated tensor; inputs are never modified.
package nn

import (
	"github.com/born-ml/activations/internal/tensor"
)

// DefaultAxis is the axis Softmax and LogSoftmax normalize over when callers have
// no better choice: the last one.
const DefaultAxis = -1

// LeakyReLUSlope is the slope LeakyReLU applies to negative inputs.
const LeakyReLUSlope = 0.01

// must unwraps results of operations against a rank-0 operand or a tensor of the
// same shape, which cannot fail to broadcast.
func must[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B], err error) *tensor.Tensor[T, B] {
	if err != nil {
		panic(err)
	}
	return t
}

func zero[T tensor.Float, B tensor.Backend](b B) *tensor.Tensor[T, B] {
	return tensor.Scalar[T](0, b)
}

// ReLU applies the rectified linear unit: max(x, 0).
//
// NaN inputs stay NaN.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float64{-2, 0, 3}, tensor.Shape{3}, backend)
//	y := nn.ReLU(x) // [0, 0, 3]
func ReLU[T tensor.Float, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return must(x.Maximum(zero[T](x.Backend())))
}

// Softplus applies log(1 + exp(x)), computed as logaddexp(x, 0) so that it neither
// overflows for large x nor underflows for very negative x.
func Softplus[T tensor.Float, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return must(x.LogAddExp(zero[T](x.Backend())))
}

// Sigmoid applies the logistic function 1 / (1 + exp(-x)).
//
// Sigmoid squashes values to the range (0, 1); the formulation never evaluates exp of a
// positive argument, so ±1e4 stay finite.
func Sigmoid[T tensor.Float, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return x.Expit()
}

// ELU applies the exponential linear unit: x where x > 0, exp(x) - 1 elsewhere.
// x == 0 takes the exponential branch, which is also 0.
func ELU[T tensor.Float, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	positive := must(x.Greater(zero[T](x.Backend())))
	return must(tensor.Where(positive, x, x.Exp().AddScalar(-1)))
}

// LeakyReLU applies x where x >= 0 and 0.01 * x elsewhere.
func LeakyReLU[T tensor.Float, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	nonNegative := must(x.GreaterEqual(zero[T](x.Backend())))
	return must(tensor.Where(nonNegative, x, x.MulScalar(LeakyReLUSlope)))
}
