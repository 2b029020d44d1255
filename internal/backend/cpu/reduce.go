package cpu

import (
	"fmt"
	"math"

	"github.com/born-ml/activations/internal/parallel"
	"github.com/born-ml/activations/internal/tensor"
)

// SumDim sums tensor elements along the specified axis.
//
// Parameters:
//   - axis: axis to reduce (supports negative indexing: -1 = last axis)
//   - keepDims: if true, keep the reduced axis with size 1; if false, remove it
//
// Example:
//
//	x := tensor.Zeros[float32](tensor.Shape{2, 3, 4}, backend)
//	y, _ := backend.SumDim(x.Raw(), -1, true)   // shape: [2, 3, 1]
//	z, _ := backend.SumDim(x.Raw(), -1, false)  // shape: [2, 3]
func (cpu *CPUBackend) SumDim(x *tensor.RawTensor, axis int, keepDims bool) (*tensor.RawTensor, error) {
	return cpu.reduce("sumdim", x, axis, keepDims, sumSlice[float32], sumSlice[float64])
}

// MeanDim computes the mean of tensor elements along the specified axis.
func (cpu *CPUBackend) MeanDim(x *tensor.RawTensor, axis int, keepDims bool) (*tensor.RawTensor, error) {
	return cpu.reduce("meandim", x, axis, keepDims, meanSlice[float32], meanSlice[float64])
}

// MaxDim computes the maximum along the specified axis. NaN in a slice propagates.
func (cpu *CPUBackend) MaxDim(x *tensor.RawTensor, axis int, keepDims bool) (*tensor.RawTensor, error) {
	return cpu.reduce("maxdim", x, axis, keepDims, maxSlice[float32], maxSlice[float64])
}

// LogSumExp computes log(sum(exp(x))) along the specified axis.
//
// Each slice is shifted by its maximum before exponentiating and the maximum is added
// back in log space, so large logits never overflow. A non-finite maximum is replaced
// by 0 for the shift, which keeps an all -Inf slice at -Inf instead of NaN.
func (cpu *CPUBackend) LogSumExp(x *tensor.RawTensor, axis int, keepDims bool) (*tensor.RawTensor, error) {
	return cpu.reduce("logsumexp", x, axis, keepDims, logSumExpSlice[float32], logSumExpSlice[float64])
}

// sliceReducer folds the n elements src[base], src[base+stride], ... into one value.
type sliceReducer[T tensor.Float] func(src []T, base, n, stride int) T

func (cpu *CPUBackend) reduce(
	op string,
	x *tensor.RawTensor,
	axis int,
	keepDims bool,
	f32 sliceReducer[float32],
	f64 sliceReducer[float64],
) (*tensor.RawTensor, error) {
	shape := x.Shape()
	dim, err := tensor.NormalizeAxis(axis, len(shape))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result, err := tensor.NewRaw(tensor.ReducedShape(shape, dim, keepDims), x.DType(), cpu.device)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	switch x.DType() {
	case tensor.Float32:
		reduceAxis(cpu.par, x.AsFloat32(), result.AsFloat32(), shape, dim, f32)
	case tensor.Float64:
		reduceAxis(cpu.par, x.AsFloat64(), result.AsFloat64(), shape, dim, f64)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s (only float32/float64 supported)", op, x.DType()))
	}

	return result, nil
}

// reduceAxis applies fn to every slice along axis. The output is laid out as the
// input with the axis collapsed, which is the same for keepDims and not.
// Each output element depends on one slice only, so output ranges are split across workers.
func reduceAxis[T tensor.Float](cfg parallel.Config, src, dst []T, shape tensor.Shape, axis int, fn sliceReducer[T]) {
	outer, n, inner := tensor.SplitAxis(shape, axis)
	if n > 1 {
		cfg.MinChunkSize = max(1, cfg.MinChunkSize/n)
	}
	parallel.ForRange(outer*inner, func(start, end int) {
		for j := start; j < end; j++ {
			o, i := j/inner, j%inner
			dst[j] = fn(src, o*n*inner+i, n, inner)
		}
	}, cfg)
}

func sumSlice[T tensor.Float](src []T, base, n, stride int) T {
	var sum T
	for k := 0; k < n; k++ {
		sum += src[base+k*stride]
	}
	return sum
}

func meanSlice[T tensor.Float](src []T, base, n, stride int) T {
	return sumSlice(src, base, n, stride) / T(n)
}

func maxSlice[T tensor.Float](src []T, base, n, stride int) T {
	m := src[base]
	for k := 1; k < n; k++ {
		m = maximum(m, src[base+k*stride])
	}
	return m
}

func logSumExpSlice[T tensor.Float](src []T, base, n, stride int) T {
	shift := float64(maxSlice(src, base, n, stride))
	if math.IsInf(shift, 0) || math.IsNaN(shift) {
		shift = 0
	}
	var sum float64
	for k := 0; k < n; k++ {
		sum += math.Exp(float64(src[base+k*stride]) - shift)
	}
	return T(math.Log(sum) + shift)
}
