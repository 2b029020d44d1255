// Package arrowio converts tensors to and from Apache Arrow tensors so that inputs
// and outputs can be exchanged with Arrow-based pipelines without copying through JSON.
package arrowio

import (
	"errors"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	arrowtensor "github.com/apache/arrow-go/v18/arrow/tensor"

	"github.com/born-ml/activations/internal/tensor"
)

var (
	// ErrNotRowMajor is returned for Arrow tensors whose strides are not row-major.
	ErrNotRowMajor = errors.New("arrow tensor is not row-major")

	// ErrUnsupportedType is returned for Arrow tensors that are neither float32 nor float64.
	ErrUnsupportedType = errors.New("unsupported arrow tensor type")
)

// ToArrow copies t into a row-major Arrow tensor of the same element type.
// mem may be nil, in which case a Go allocator is used. The caller must Release the result.
func ToArrow[T tensor.Float, B tensor.Backend](t *tensor.Tensor[T, B], mem memory.Allocator) (arrowtensor.Interface, error) {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	shape := make([]int64, t.Rank())
	for i, d := range t.Shape() {
		shape[i] = int64(d)
	}

	switch values := any(t.Data()).(type) {
	case []float64:
		b := array.NewFloat64Builder(mem)
		defer b.Release()
		b.AppendValues(values, nil)
		arr := b.NewFloat64Array()
		defer arr.Release()
		return arrowtensor.NewFloat64(arr.Data(), shape, nil, nil), nil
	case []float32:
		b := array.NewFloat32Builder(mem)
		defer b.Release()
		b.AppendValues(values, nil)
		arr := b.NewFloat32Array()
		defer arr.Release()
		return arrowtensor.NewFloat32(arr.Data(), shape, nil, nil), nil
	default:
		return nil, fmt.Errorf("to arrow: %w: %s", ErrUnsupportedType, t.DType())
	}
}

// FromArrow copies a row-major float32 or float64 Arrow tensor into a new tensor with
// element type T, converting values when the Arrow type differs.
func FromArrow[T tensor.Float, B tensor.Backend](at arrowtensor.Interface, b B) (*tensor.Tensor[T, B], error) {
	if !at.IsRowMajor() {
		return nil, fmt.Errorf("from arrow: %w", ErrNotRowMajor)
	}

	shape := make(tensor.Shape, at.NumDims())
	for i, d := range at.Shape() {
		shape[i] = int(d)
	}

	var data []T
	switch src := at.(type) {
	case *arrowtensor.Float64:
		data = convert[T](src.Float64Values()[:src.Len()])
	case *arrowtensor.Float32:
		data = convert[T](src.Float32Values()[:src.Len()])
	default:
		return nil, fmt.Errorf("from arrow: %w: %s", ErrUnsupportedType, typeName(at.DataType()))
	}

	t, err := tensor.FromSlice(data, shape, b)
	if err != nil {
		return nil, fmt.Errorf("from arrow: %w", err)
	}
	return t, nil
}

func convert[T, S tensor.Float](src []S) []T {
	dst := make([]T, len(src))
	for i, v := range src {
		dst[i] = T(v)
	}
	return dst
}

func typeName(dt arrow.DataType) string {
	if dt == nil {
		return "<nil>"
	}
	return dt.Name()
}
