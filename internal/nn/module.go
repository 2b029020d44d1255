package nn

import (
	"fmt"

	"github.com/born-ml/activations/internal/tensor"
)

// ActivationConfig configures an Activation module.
type ActivationConfig struct {
	Name     string // Registered function name (see Names)
	Axis     int    // Axis for softmax, logsoftmax and fastvar (negative counts from the end)
	KeepDims bool   // fastvar only: keep the reduced axis with size 1
}

// Activation is a stateless module that applies one library function with a fixed
// axis configuration. It holds no parameters and is safe for concurrent use.
//
// Example:
//
//	softmax, _ := nn.NewActivation[float32, *cpu.CPUBackend](nn.ActivationConfig{
//	    Name: "softmax",
//	    Axis: nn.DefaultAxis,
//	})
//	probs, err := softmax.Forward(logits)
type Activation[T tensor.Float, B tensor.Backend] struct {
	cfg  ActivationConfig
	kind Kind
	fn   Func[T, B]
}

// NewActivation creates an Activation for cfg.Name.
// Unknown names return an error wrapping ErrUnknownFunction.
func NewActivation[T tensor.Float, B tensor.Backend](cfg ActivationConfig) (*Activation[T, B], error) {
	fn, err := Lookup[T, B](cfg.Name)
	if err != nil {
		return nil, err
	}
	kind, _ := KindOf(cfg.Name)
	return &Activation[T, B]{cfg: cfg, kind: kind, fn: fn}, nil
}

// Forward applies the function to input.
func (a *Activation[T, B]) Forward(input *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	return a.fn(input, a.cfg.Axis, a.cfg.KeepDims)
}

// Name returns the registered function name.
func (a *Activation[T, B]) Name() string {
	return a.cfg.Name
}

// Kind reports whether the function is elementwise or axis-wise.
func (a *Activation[T, B]) Kind() Kind {
	return a.kind
}

// String returns a short description such as "softmax(axis=-1)".
func (a *Activation[T, B]) String() string {
	switch {
	case a.kind == Elementwise:
		return a.cfg.Name
	case a.cfg.Name == "fastvar":
		return fmt.Sprintf("%s(axis=%d, keepdims=%t)", a.cfg.Name, a.cfg.Axis, a.cfg.KeepDims)
	default:
		return fmt.Sprintf("%s(axis=%d)", a.cfg.Name, a.cfg.Axis)
	}
}
