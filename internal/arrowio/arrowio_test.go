package arrowio

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	arrowtensor "github.com/apache/arrow-go/v18/arrow/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/activations/internal/backend/cpu"
	"github.com/born-ml/activations/internal/nn"
	"github.com/born-ml/activations/internal/tensor"
)

func TestToArrow_Float64(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, cpu.New())
	require.NoError(t, err)

	at, err := ToArrow(x, mem)
	require.NoError(t, err)
	defer at.Release()

	f64, ok := at.(*arrowtensor.Float64)
	require.True(t, ok)
	assert.Equal(t, []int64{2, 3}, f64.Shape())
	assert.Equal(t, []int64{24, 8}, f64.Strides())
	assert.True(t, f64.IsRowMajor())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, f64.Float64Values()[:f64.Len()])
}

func TestRoundTrip_Float32(t *testing.T) {
	backend := cpu.New()
	x, err := tensor.FromSlice([]float32{-1, 0.5, 2, 8}, tensor.Shape{2, 1, 2}, backend)
	require.NoError(t, err)

	at, err := ToArrow(x, nil)
	require.NoError(t, err)
	defer at.Release()

	y, err := FromArrow[float32](at, backend)
	require.NoError(t, err)
	assert.Equal(t, x.Shape(), y.Shape())
	assert.Equal(t, x.Data(), y.Data())
}

func TestFromArrow_ConvertsType(t *testing.T) {
	mem := memory.NewGoAllocator()
	b := array.NewFloat32Builder(mem)
	defer b.Release()
	b.AppendValues([]float32{0.25, -4}, nil)
	arr := b.NewFloat32Array()
	defer arr.Release()

	at := arrowtensor.NewFloat32(arr.Data(), []int64{2}, nil, nil)
	defer at.Release()

	y, err := FromArrow[float64](at, cpu.New())
	require.NoError(t, err)
	assert.Equal(t, tensor.Float64, y.DType())
	assert.Equal(t, []float64{0.25, -4}, y.Data())
}

func TestFromArrow_FeedsActivation(t *testing.T) {
	mem := memory.NewGoAllocator()
	b := array.NewFloat64Builder(mem)
	defer b.Release()
	b.AppendValues([]float64{1000, 1000, 1000}, nil)
	arr := b.NewFloat64Array()
	defer arr.Release()

	at := arrowtensor.NewFloat64(arr.Data(), []int64{1, 3}, nil, nil)
	defer at.Release()

	x, err := FromArrow[float64](at, cpu.New())
	require.NoError(t, err)
	y, err := nn.Softmax(x, -1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, y.Data(), 1e-15)
}

func TestFromArrow_ColumnMajor(t *testing.T) {
	mem := memory.NewGoAllocator()
	b := array.NewFloat64Builder(mem)
	defer b.Release()
	b.AppendValues([]float64{1, 2, 3, 4, 5, 6}, nil)
	arr := b.NewFloat64Array()
	defer arr.Release()

	at := arrowtensor.NewFloat64(arr.Data(), []int64{2, 3}, []int64{8, 16}, nil)
	defer at.Release()

	_, err := FromArrow[float64](at, cpu.New())
	assert.ErrorIs(t, err, ErrNotRowMajor)
}

func TestFromArrow_UnsupportedType(t *testing.T) {
	mem := memory.NewGoAllocator()
	b := array.NewInt32Builder(mem)
	defer b.Release()
	b.AppendValues([]int32{1, 2}, nil)
	arr := b.NewInt32Array()
	defer arr.Release()

	at := arrowtensor.NewInt32(arr.Data(), []int64{2}, nil, nil)
	defer at.Release()

	_, err := FromArrow[float64](at, cpu.New())
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
