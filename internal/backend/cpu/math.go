package cpu

import (
	"fmt"
	"math"

	"github.com/born-ml/activations/internal/parallel"
	"github.com/born-ml/activations/internal/tensor"
)

// Exp computes element-wise exponential: exp(x).
func (cpu *CPUBackend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("exp", x, math.Exp)
}

// Log computes element-wise natural logarithm: ln(x).
// log(0) is -Inf and negative inputs give NaN.
func (cpu *CPUBackend) Log(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("log", x, math.Log)
}

// Log1p computes element-wise log(1 + x).
func (cpu *CPUBackend) Log1p(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("log1p", x, math.Log1p)
}

// Abs computes element-wise absolute value.
func (cpu *CPUBackend) Abs(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("abs", x, math.Abs)
}

// Neg computes element-wise negation.
func (cpu *CPUBackend) Neg(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("neg", x, func(v float64) float64 { return -v })
}

// Expit computes the logistic function 1 / (1 + exp(-x)).
//
// Only exp of a non-positive argument is ever evaluated, so the result is finite for
// every finite input and exactly 0.5 at x = 0.
func (cpu *CPUBackend) Expit(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("expit", x, expit)
}

// AddScalar adds scalar to every element.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return cpu.unary("add_scalar", x, func(v float64) float64 { return v + scalar })
}

// MulScalar multiplies every element by scalar.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return cpu.unary("mul_scalar", x, func(v float64) float64 { return v * scalar })
}

// unary applies fn element-wise. float32 inputs are widened to float64 for the
// computation and rounded back.
func (cpu *CPUBackend) unary(op string, x *tensor.RawTensor, fn func(float64) float64) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	switch x.DType() {
	case tensor.Float32:
		src := x.AsFloat32()
		dst := result.AsFloat32()
		parallel.ForRange(len(src), func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = float32(fn(float64(src[i])))
			}
		}, cpu.par)
	case tensor.Float64:
		src := x.AsFloat64()
		dst := result.AsFloat64()
		parallel.ForRange(len(src), func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = fn(src[i])
			}
		}, cpu.par)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s (only float32/float64 supported)", op, x.DType()))
	}

	return result
}

func add[T tensor.Float](x, y T) T { return x + y }
func sub[T tensor.Float](x, y T) T { return x - y }
func mul[T tensor.Float](x, y T) T { return x * y }
func div[T tensor.Float](x, y T) T { return x / y }

func greater[T tensor.Float](x, y T) bool      { return x > y }
func greaterEqual[T tensor.Float](x, y T) bool { return x >= y }

// maximum returns the larger of x and y, propagating NaN.
func maximum[T tensor.Float](x, y T) T {
	switch {
	case math.IsNaN(float64(x)):
		return x
	case math.IsNaN(float64(y)):
		return y
	case x > y:
		return x
	default:
		return y
	}
}

func logAddExp[T tensor.Float](x, y T) T {
	return T(logAddExp64(float64(x), float64(y)))
}

// logAddExp64 returns log(exp(x) + exp(y)).
// Equal arguments short-circuit so that equal infinities do not produce Inf - Inf.
func logAddExp64(x, y float64) float64 {
	if x == y {
		return x + math.Ln2
	}
	return math.Max(x, y) + math.Log1p(math.Exp(-math.Abs(x-y)))
}

func expit(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}
