package cpu

import (
	"github.com/born-ml/activations/internal/parallel"
	"github.com/born-ml/activations/internal/tensor"
)

// computeBroadcastStridesForShape computes strides for broadcasting a shape to outShape.
// Returns strides where dimensions of size 1 have stride 0 (for broadcasting).
func computeBroadcastStridesForShape(inShape, outShape tensor.Shape) []int {
	outDim := len(outShape)
	strides := make([]int, outDim)

	// Pad input shape with 1s on the left
	inDim := len(inShape)
	offset := outDim - inDim

	origStrides := inShape.ComputeStrides()

	for i := 0; i < outDim; i++ {
		inIdx := i - offset
		switch {
		case inIdx < 0 || inIdx >= inDim:
			strides[i] = 0
		case inShape[inIdx] == 1:
			strides[i] = 0
		default:
			strides[i] = origStrides[inIdx]
		}
	}

	return strides
}

// computeFlatIndex computes the flat index in the source array for a given output index.
// outStrides: strides of the output shape.
// inStrides: broadcast-adjusted strides of the input shape.
func computeFlatIndex(outIdx int, outStrides, inStrides []int) int {
	flatIdx := 0
	for i := range outStrides {
		coord := outIdx / outStrides[i]
		outIdx %= outStrides[i]
		flatIdx += coord * inStrides[i]
	}
	return flatIdx
}

// broadcastIndexer maps flat output indices to flat input indices for one operand.
type broadcastIndexer struct {
	identity   bool
	outStrides []int
	inStrides  []int
}

func newBroadcastIndexer(inShape, outShape tensor.Shape) broadcastIndexer {
	if inShape.Equal(outShape) {
		return broadcastIndexer{identity: true}
	}
	return broadcastIndexer{
		outStrides: outShape.ComputeStrides(),
		inStrides:  computeBroadcastStridesForShape(inShape, outShape),
	}
}

func (bi broadcastIndexer) index(outIdx int) int {
	if bi.identity {
		return outIdx
	}
	return computeFlatIndex(outIdx, bi.outStrides, bi.inStrides)
}

// binaryKernel applies fn over broadcast operands a and b into dst.
func binaryKernel[T, R any](cfg parallel.Config, dst []R, a, b []T, aShape, bShape, outShape tensor.Shape, fn func(x, y T) R) {
	ai := newBroadcastIndexer(aShape, outShape)
	bi := newBroadcastIndexer(bShape, outShape)
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = fn(a[ai.index(i)], b[bi.index(i)])
		}
	}, cfg)
}

// whereKernel selects x or y per element of the broadcast condition.
func whereKernel[T any](cfg parallel.Config, dst []T, cond []bool, x, y []T, cShape, xShape, yShape, outShape tensor.Shape) {
	ci := newBroadcastIndexer(cShape, outShape)
	xi := newBroadcastIndexer(xShape, outShape)
	yi := newBroadcastIndexer(yShape, outShape)
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			if cond[ci.index(i)] {
				dst[i] = x[xi.index(i)]
			} else {
				dst[i] = y[yi.index(i)]
			}
		}
	}, cfg)
}
