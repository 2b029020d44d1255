package tensor

import "fmt"

// wrap lifts a fallible backend result back into a typed tensor.
func wrap[T DType, B Backend](raw *RawTensor, err error, b B) (*Tensor[T, B], error) {
	if err != nil {
		return nil, err
	}
	return New[T, B](raw, b), nil
}

// Add performs element-wise addition with broadcasting.
//
// Example:
//
//	a := tensor.Ones[float32](Shape{3, 1}, backend)
//	b := tensor.Ones[float32](Shape{3, 5}, backend)
//	c, err := a.Add(b) // Shape: [3, 5] (broadcasted)
func (t *Tensor[T, B]) Add(other *Tensor[T, B]) (*Tensor[T, B], error) {
	raw, err := t.backend.Add(t.raw, other.raw)
	return wrap[T](raw, err, t.backend)
}

// Sub performs element-wise subtraction with broadcasting.
func (t *Tensor[T, B]) Sub(other *Tensor[T, B]) (*Tensor[T, B], error) {
	raw, err := t.backend.Sub(t.raw, other.raw)
	return wrap[T](raw, err, t.backend)
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor[T, B]) Mul(other *Tensor[T, B]) (*Tensor[T, B], error) {
	raw, err := t.backend.Mul(t.raw, other.raw)
	return wrap[T](raw, err, t.backend)
}

// Div performs element-wise division with broadcasting.
func (t *Tensor[T, B]) Div(other *Tensor[T, B]) (*Tensor[T, B], error) {
	raw, err := t.backend.Div(t.raw, other.raw)
	return wrap[T](raw, err, t.backend)
}

// Maximum returns the element-wise maximum with broadcasting. NaN in either operand
// propagates to the result.
func (t *Tensor[T, B]) Maximum(other *Tensor[T, B]) (*Tensor[T, B], error) {
	raw, err := t.backend.Maximum(t.raw, other.raw)
	return wrap[T](raw, err, t.backend)
}

// LogAddExp computes log(exp(t) + exp(other)) element-wise without overflow.
func (t *Tensor[T, B]) LogAddExp(other *Tensor[T, B]) (*Tensor[T, B], error) {
	raw, err := t.backend.LogAddExp(t.raw, other.raw)
	return wrap[T](raw, err, t.backend)
}

// Greater returns a bool mask of t > other with broadcasting.
func (t *Tensor[T, B]) Greater(other *Tensor[T, B]) (*Tensor[bool, B], error) {
	raw, err := t.backend.Greater(t.raw, other.raw)
	return wrap[bool](raw, err, t.backend)
}

// GreaterEqual returns a bool mask of t >= other with broadcasting.
func (t *Tensor[T, B]) GreaterEqual(other *Tensor[T, B]) (*Tensor[bool, B], error) {
	raw, err := t.backend.GreaterEqual(t.raw, other.raw)
	return wrap[bool](raw, err, t.backend)
}

// Where selects elements from x where condition is true and from y elsewhere.
// All three operands broadcast against each other.
//
// Example:
//
//	mask, _ := x.Greater(tensor.Scalar[float64](0, backend))
//	clipped, _ := tensor.Where(mask, x, tensor.Scalar[float64](0, backend))
func Where[T DType, B Backend](condition *Tensor[bool, B], x, y *Tensor[T, B]) (*Tensor[T, B], error) {
	raw, err := x.backend.Where(condition.raw, x.raw, y.raw)
	return wrap[T](raw, err, x.backend)
}

// Exp computes element-wise exponential.
func (t *Tensor[T, B]) Exp() *Tensor[T, B] {
	return New[T, B](t.backend.Exp(t.raw), t.backend)
}

// Log computes element-wise natural logarithm. Non-positive inputs follow IEEE rules
// (log(0) = -Inf, log(-1) = NaN).
func (t *Tensor[T, B]) Log() *Tensor[T, B] {
	return New[T, B](t.backend.Log(t.raw), t.backend)
}

// Log1p computes log(1 + x) element-wise, accurate for small x.
func (t *Tensor[T, B]) Log1p() *Tensor[T, B] {
	return New[T, B](t.backend.Log1p(t.raw), t.backend)
}

// Abs computes element-wise absolute value.
func (t *Tensor[T, B]) Abs() *Tensor[T, B] {
	return New[T, B](t.backend.Abs(t.raw), t.backend)
}

// Neg negates every element.
func (t *Tensor[T, B]) Neg() *Tensor[T, B] {
	return New[T, B](t.backend.Neg(t.raw), t.backend)
}

// Expit computes the logistic function 1 / (1 + exp(-x)) element-wise.
func (t *Tensor[T, B]) Expit() *Tensor[T, B] {
	return New[T, B](t.backend.Expit(t.raw), t.backend)
}

// AddScalar adds a scalar to every element.
func (t *Tensor[T, B]) AddScalar(scalar float64) *Tensor[T, B] {
	return New[T, B](t.backend.AddScalar(t.raw, scalar), t.backend)
}

// MulScalar multiplies every element by a scalar.
func (t *Tensor[T, B]) MulScalar(scalar float64) *Tensor[T, B] {
	return New[T, B](t.backend.MulScalar(t.raw, scalar), t.backend)
}

// SumDim sums along axis. With keepDims the reduced axis is kept with size 1.
//
// Example:
//
//	x := tensor.Zeros[float32](Shape{2, 3, 4}, backend)
//	y, _ := x.SumDim(-1, true)  // shape: [2, 3, 1]
//	z, _ := x.SumDim(-1, false) // shape: [2, 3]
func (t *Tensor[T, B]) SumDim(axis int, keepDims bool) (*Tensor[T, B], error) {
	raw, err := t.backend.SumDim(t.raw, axis, keepDims)
	return wrap[T](raw, err, t.backend)
}

// MeanDim averages along axis.
func (t *Tensor[T, B]) MeanDim(axis int, keepDims bool) (*Tensor[T, B], error) {
	raw, err := t.backend.MeanDim(t.raw, axis, keepDims)
	return wrap[T](raw, err, t.backend)
}

// MaxDim takes the maximum along axis.
func (t *Tensor[T, B]) MaxDim(axis int, keepDims bool) (*Tensor[T, B], error) {
	raw, err := t.backend.MaxDim(t.raw, axis, keepDims)
	return wrap[T](raw, err, t.backend)
}

// LogSumExp computes log(sum(exp(x))) along axis, shifting by the slice maximum.
func (t *Tensor[T, B]) LogSumExp(axis int, keepDims bool) (*Tensor[T, B], error) {
	raw, err := t.backend.LogSumExp(t.raw, axis, keepDims)
	return wrap[T](raw, err, t.backend)
}

// Reshape returns a copy of the tensor with a new shape holding the same number of
// elements.
//
// Example:
//
//	t := tensor.Arange[float64](0, 12, backend) // Shape: [12]
//	reshaped, _ := t.Reshape(3, 4)             // Shape: [3, 4]
func (t *Tensor[T, B]) Reshape(newShape ...int) (*Tensor[T, B], error) {
	shape := Shape(newShape)
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != t.NumElements() {
		return nil, fmt.Errorf("reshape: %w: %v -> %v", ErrInvalidShape, t.Shape(), shape)
	}
	raw, err := NewRaw(shape, t.DType(), t.Device())
	if err != nil {
		return nil, err
	}
	copy(raw.Data(), t.raw.Data())
	return New[T, B](raw, t.backend), nil
}
