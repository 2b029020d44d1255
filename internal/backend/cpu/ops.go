package cpu

import (
	"fmt"

	"github.com/born-ml/activations/internal/tensor"
)

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return cpu.binaryFloat("add", a, b, add[float32], add[float64])
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return cpu.binaryFloat("sub", a, b, sub[float32], sub[float64])
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return cpu.binaryFloat("mul", a, b, mul[float32], mul[float64])
}

// Div performs element-wise division with broadcasting.
// Division by zero follows IEEE rules.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return cpu.binaryFloat("div", a, b, div[float32], div[float64])
}

// Maximum computes the element-wise maximum with broadcasting.
// If either operand is NaN the result is NaN.
func (cpu *CPUBackend) Maximum(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return cpu.binaryFloat("maximum", a, b, maximum[float32], maximum[float64])
}

// LogAddExp computes log(exp(a) + exp(b)) with broadcasting as
// max(a, b) + log1p(exp(-|a - b|)), which never overflows.
func (cpu *CPUBackend) LogAddExp(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return cpu.binaryFloat("logaddexp", a, b, logAddExp[float32], logAddExp[float64])
}

// prepareBinary validates dtypes and computes the broadcast output shape.
func prepareBinary(op string, a, b *tensor.RawTensor) (tensor.Shape, error) {
	if a.DType() != b.DType() {
		return nil, fmt.Errorf("%s: %w: %s vs %s", op, tensor.ErrDTypeMismatch, a.DType(), b.DType())
	}
	outShape, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return outShape, nil
}

// binaryFloat broadcasts a and b and applies the kernel matching their dtype.
func (cpu *CPUBackend) binaryFloat(
	op string,
	a, b *tensor.RawTensor,
	f32 func(x, y float32) float32,
	f64 func(x, y float64) float64,
) (*tensor.RawTensor, error) {
	outShape, err := prepareBinary(op, a, b)
	if err != nil {
		return nil, err
	}

	result, err := tensor.NewRaw(outShape, a.DType(), cpu.device)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create result tensor: %w", op, err)
	}

	switch a.DType() {
	case tensor.Float32:
		binaryKernel(cpu.par, result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape, f32)
	case tensor.Float64:
		binaryKernel(cpu.par, result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape, f64)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s (only float32/float64 supported)", op, a.DType()))
	}

	return result, nil
}
