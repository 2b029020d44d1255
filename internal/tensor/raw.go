package tensor

import (
	"fmt"
	"unsafe"
)

// Device identifies where a tensor's buffer lives. Only host memory exists today.
type Device int

// CPU is host memory.
const CPU Device = 0

func (d Device) String() string {
	if d == CPU {
		return "CPU"
	}
	return "Unknown"
}

// RawTensor is the untyped half of a Tensor: a dense row-major buffer tagged with a
// shape, its strides and an element type. Backends read RawTensor inputs and write
// only to tensors they allocated themselves.
type RawTensor struct {
	data    []byte
	shape   Shape
	strides []int
	dtype   DataType
	device  Device
}

// NewRaw allocates a zero-filled buffer for shape. Shapes with a non-positive
// dimension are rejected with ErrInvalidShape.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &RawTensor{
		data:    make([]byte, shape.NumElements()*dtype.Size()),
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
		dtype:   dtype,
		device:  device,
	}, nil
}

func (r *RawTensor) Shape() Shape { return r.shape }
func (r *RawTensor) Strides() []int { return r.strides }
func (r *RawTensor) DType() DataType { return r.dtype }
func (r *RawTensor) Device() Device { return r.device }
func (r *RawTensor) NumElements() int { return r.shape.NumElements() }
func (r *RawTensor) Data() []byte { return r.data }
func (r *RawTensor) AsFloat32() []float32 { return view[float32](r, Float32) }
func (r *RawTensor) AsFloat64() []float64 { return view[float64](r, Float64) }
func (r *RawTensor) AsBool() []bool { return view[bool](r, Bool) }

// view reinterprets the buffer as []E without copying. The returned slice aliases
// the tensor, so writes through it are visible to every holder of r.
func view[E DType](r *RawTensor, want DataType) []E {
	if r.dtype != want {
		panic(fmt.Sprintf("tensor dtype is %s, not %s", r.dtype, want))
	}
	//nolint:gosec // length is bounded by the allocation in NewRaw
	return unsafe.Slice((*E)(unsafe.Pointer(unsafe.SliceData(r.data))), r.NumElements())
}

// Clone returns a RawTensor with its own copy of the buffer.
func (r *RawTensor) Clone() *RawTensor {
	c := *r
	c.data = append([]byte(nil), r.data...)
	c.shape = r.shape.Clone()
	c.strides = append([]int(nil), r.strides...)
	return &c
}
