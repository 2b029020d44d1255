package nn

import (
	"github.com/born-ml/activations/internal/tensor"
)

// LogSoftmax log-normalizes x along axis: x - logsumexp(x, axis, keepDims=true).
//
// exp(LogSoftmax(x, axis)) sums to 1 along axis. The log-sum-exp is shifted by the
// slice maximum, so large logits do not overflow. Invalid axes return an error wrapping
// tensor.ErrAxisOutOfRange.
func LogSoftmax[T tensor.Float, B tensor.Backend](x *tensor.Tensor[T, B], axis int) (*tensor.Tensor[T, B], error) {
	lse, err := x.LogSumExp(axis, true)
	if err != nil {
		return nil, err
	}
	return x.Sub(lse)
}

// Softmax exponentiates and normalizes x along axis:
//
//	exp(x - max(x, axis)) / sum(exp(x - max(x, axis)), axis)
//
// The reductions keep the axis as size 1 so that they broadcast back over x; the
// result has the shape of x and sums to 1 along axis.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float64{1000, 1000, 1000}, tensor.Shape{1, 3}, backend)
//	y, _ := nn.Softmax(x, -1) // [[1/3, 1/3, 1/3]]
func Softmax[T tensor.Float, B tensor.Backend](x *tensor.Tensor[T, B], axis int) (*tensor.Tensor[T, B], error) {
	maxes, err := x.MaxDim(axis, true)
	if err != nil {
		return nil, err
	}
	shifted, err := x.Sub(maxes)
	if err != nil {
		return nil, err
	}
	unnormalized := shifted.Exp()
	sums, err := unnormalized.SumDim(axis, true)
	if err != nil {
		return nil, err
	}
	return unnormalized.Div(sums)
}

// FastVar computes the variance along axis as mean(x²) - mean(x)².
//
// It takes one pass fewer than the two-pass mean((x - mean(x))²) but loses precision
// to cancellation when |mean| is large relative to the spread. keepDims keeps the
// reduced axis with size 1.
func FastVar[T tensor.Float, B tensor.Backend](x *tensor.Tensor[T, B], axis int, keepDims bool) (*tensor.Tensor[T, B], error) {
	meanOfSquares, err := must(x.Mul(x)).MeanDim(axis, keepDims)
	if err != nil {
		return nil, err
	}
	mean, err := x.MeanDim(axis, keepDims)
	if err != nil {
		return nil, err
	}
	return meanOfSquares.Sub(must(mean.Mul(mean)))
}
