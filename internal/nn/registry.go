package nn

import (
	"errors"
	"fmt"

	"github.com/born-ml/activations/internal/tensor"
)

// ErrUnknownFunction is returned by Lookup for names not listed by Names.
var ErrUnknownFunction = errors.New("unknown function")

// Kind tells whether a function is applied per element or normalizes along an axis.
type Kind int

// Function kinds.
const (
	Elementwise Kind = iota
	AxisWise
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Elementwise:
		return "elementwise"
	case AxisWise:
		return "axis"
	default:
		return "unknown"
	}
}

// Func is the uniform signature every library function is adapted to.
// Elementwise functions ignore axis and keepDims; Softmax and LogSoftmax ignore keepDims.
type Func[T tensor.Float, B tensor.Backend] func(x *tensor.Tensor[T, B], axis int, keepDims bool) (*tensor.Tensor[T, B], error)

// registry lists function names in a stable order.
var registry = []struct {
	name string
	kind Kind
}{
	{"relu", Elementwise},
	{"softplus", Elementwise},
	{"sigmoid", Elementwise},
	{"elu", Elementwise},
	{"leaky_relu", Elementwise},
	{"logsoftmax", AxisWise},
	{"softmax", AxisWise},
	{"fastvar", AxisWise},
}

// Names returns the registered function names in a stable order.
func Names() []string {
	names := make([]string, len(registry))
	for i, entry := range registry {
		names[i] = entry.name
	}
	return names
}

// KindOf reports the kind of a registered function.
func KindOf(name string) (Kind, bool) {
	for _, entry := range registry {
		if entry.name == name {
			return entry.kind, true
		}
	}
	return 0, false
}

// Lookup returns the named function adapted to the Func signature.
//
// Example:
//
//	fn, err := nn.Lookup[float64, *cpu.CPUBackend]("softmax")
//	y, err := fn(x, -1, false)
func Lookup[T tensor.Float, B tensor.Backend](name string) (Func[T, B], error) {
	switch name {
	case "relu":
		return elementwise(ReLU[T, B]), nil
	case "softplus":
		return elementwise(Softplus[T, B]), nil
	case "sigmoid":
		return elementwise(Sigmoid[T, B]), nil
	case "elu":
		return elementwise(ELU[T, B]), nil
	case "leaky_relu":
		return elementwise(LeakyReLU[T, B]), nil
	case "logsoftmax":
		return normalizer(LogSoftmax[T, B]), nil
	case "softmax":
		return normalizer(Softmax[T, B]), nil
	case "fastvar":
		return FastVar[T, B], nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
	}
}

func elementwise[T tensor.Float, B tensor.Backend](fn func(*tensor.Tensor[T, B]) *tensor.Tensor[T, B]) Func[T, B] {
	return func(x *tensor.Tensor[T, B], _ int, _ bool) (*tensor.Tensor[T, B], error) {
		return fn(x), nil
	}
}

func normalizer[T tensor.Float, B tensor.Backend](
	fn func(*tensor.Tensor[T, B], int) (*tensor.Tensor[T, B], error),
) Func[T, B] {
	return func(x *tensor.Tensor[T, B], axis int, _ bool) (*tensor.Tensor[T, B], error) {
		return fn(x, axis)
	}
}
