package cpu

import (
	"fmt"

	"github.com/born-ml/activations/internal/tensor"
)

// Greater performs element-wise a > b with broadcasting, returning a bool tensor.
func (cpu *CPUBackend) Greater(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return cpu.compare("greater", a, b, greater[float32], greater[float64])
}

// GreaterEqual performs element-wise a >= b with broadcasting, returning a bool tensor.
func (cpu *CPUBackend) GreaterEqual(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return cpu.compare("greater_equal", a, b, greaterEqual[float32], greaterEqual[float64])
}

func (cpu *CPUBackend) compare(
	op string,
	a, b *tensor.RawTensor,
	f32 func(x, y float32) bool,
	f64 func(x, y float64) bool,
) (*tensor.RawTensor, error) {
	outShape, err := prepareBinary(op, a, b)
	if err != nil {
		return nil, err
	}

	result, err := tensor.NewRaw(outShape, tensor.Bool, cpu.device)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create result tensor: %w", op, err)
	}

	switch a.DType() {
	case tensor.Float32:
		binaryKernel(cpu.par, result.AsBool(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape, f32)
	case tensor.Float64:
		binaryKernel(cpu.par, result.AsBool(), a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape, f64)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s (only float32/float64 supported)", op, a.DType()))
	}

	return result, nil
}

// Where selects x where condition is true and y elsewhere.
// condition, x and y broadcast to a common shape; x and y must share a dtype.
func (cpu *CPUBackend) Where(condition, x, y *tensor.RawTensor) (*tensor.RawTensor, error) {
	if condition.DType() != tensor.Bool {
		return nil, fmt.Errorf("where: %w: condition must be bool, got %s", tensor.ErrDTypeMismatch, condition.DType())
	}
	if x.DType() != y.DType() {
		return nil, fmt.Errorf("where: %w: %s vs %s", tensor.ErrDTypeMismatch, x.DType(), y.DType())
	}

	outShape, err := tensor.BroadcastAll(condition.Shape(), x.Shape(), y.Shape())
	if err != nil {
		return nil, fmt.Errorf("where: %w", err)
	}

	result, err := tensor.NewRaw(outShape, x.DType(), cpu.device)
	if err != nil {
		return nil, fmt.Errorf("where: failed to create result tensor: %w", err)
	}

	cond := condition.AsBool()
	switch x.DType() {
	case tensor.Float32:
		whereKernel(cpu.par, result.AsFloat32(), cond, x.AsFloat32(), y.AsFloat32(),
			condition.Shape(), x.Shape(), y.Shape(), outShape)
	case tensor.Float64:
		whereKernel(cpu.par, result.AsFloat64(), cond, x.AsFloat64(), y.AsFloat64(),
			condition.Shape(), x.Shape(), y.Shape(), outShape)
	case tensor.Bool:
		whereKernel(cpu.par, result.AsBool(), cond, x.AsBool(), y.AsBool(),
			condition.Shape(), x.Shape(), y.Shape(), outShape)
	default:
		panic(fmt.Sprintf("where: unsupported dtype %s", x.DType()))
	}

	return result, nil
}
