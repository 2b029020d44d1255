package tensor

import "fmt"

// Tensor is a typed handle over a RawTensor bound to the backend that computes on it.
//
// T fixes the element type at compile time and B the backend, so operands of a binary
// operation always agree on both. Tensors are values: no method writes into its
// receiver or its arguments.
//
// Example:
//
//	backend := cpu.New()
//	x, _ := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{3}, backend)
//	y := x.Exp()
type Tensor[T DType, B Backend] struct {
	raw     *RawTensor
	backend B
}

// New binds raw to b. The caller guarantees that raw holds elements of type T.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return &Tensor[T, B]{raw: raw, backend: b}
}

// FromSlice copies data into a new tensor of the given shape. len(data) must equal
// the shape's element count, otherwise the error wraps ErrDataLength.
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if n := shape.NumElements(); n != len(data) {
		return nil, fmt.Errorf("%w: shape %v holds %d elements, got %d", ErrDataLength, shape, n, len(data))
	}

	var zero T
	raw, err := NewRaw(shape, inferDataType(zero), b.Device())
	if err != nil {
		return nil, err
	}
	t := New[T, B](raw, b)
	copy(t.Data(), data)
	return t, nil
}

func (t *Tensor[T, B]) Shape() Shape     { return t.raw.Shape() }
func (t *Tensor[T, B]) DType() DataType  { return t.raw.DType() }
func (t *Tensor[T, B]) Device() Device   { return t.raw.Device() }
func (t *Tensor[T, B]) NumElements() int { return t.raw.NumElements() }
func (t *Tensor[T, B]) Rank() int        { return len(t.raw.Shape()) }
func (t *Tensor[T, B]) Raw() *RawTensor  { return t.raw }
func (t *Tensor[T, B]) Backend() B       { return t.backend }

// Data returns the elements in row-major order. The slice aliases the tensor's
// buffer; writing to it changes the tensor.
func (t *Tensor[T, B]) Data() []T {
	var zero T
	return view[T](t.raw, inferDataType(zero))
}

// Item returns the single element of a rank-0 tensor and panics for any other rank.
func (t *Tensor[T, B]) Item() T {
	if t.Rank() != 0 {
		panic(fmt.Sprintf("Item: tensor has shape %v, want a scalar", t.Shape()))
	}
	return t.Data()[0]
}

// At returns the element at the given multi-index. It panics when the number of
// indices differs from the rank or an index is out of range.
func (t *Tensor[T, B]) At(indices ...int) T {
	shape := t.Shape()
	if len(indices) != len(shape) {
		panic(fmt.Sprintf("At: got %d indices for a rank-%d tensor", len(indices), len(shape)))
	}

	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= shape[i] {
			panic(fmt.Sprintf("At: index %d out of range for axis %d of size %d", idx, i, shape[i]))
		}
		offset += idx * t.raw.Strides()[i]
	}
	return t.Data()[offset]
}

func (t *Tensor[T, B]) String() string {
	return fmt.Sprintf("Tensor[%s]%v on %s", t.DType(), t.Shape(), t.Device())
}

// Clone returns a tensor with its own copy of the data on the same backend.
func (t *Tensor[T, B]) Clone() *Tensor[T, B] {
	return New[T, B](t.raw.Clone(), t.backend)
}
