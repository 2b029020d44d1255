package tensor

// Backend defines the interface that compute backends implement.
//
// Every operation returns a newly allocated tensor and never writes into its inputs.
// Operations that can fail on shape or axis (broadcasting, reductions) return an error
// wrapping one of the sentinel errors in this package. Unsupported dtypes are
// programmer errors and panic.
//
// Implementations:
//   - CPU: pure Go (internal/backend/cpu)
type Backend interface {
	// Element-wise binary operations with broadcasting.
	Add(a, b *RawTensor) (*RawTensor, error)
	Sub(a, b *RawTensor) (*RawTensor, error)
	Mul(a, b *RawTensor) (*RawTensor, error)
	Div(a, b *RawTensor) (*RawTensor, error)
	Maximum(a, b *RawTensor) (*RawTensor, error)   // NaN-propagating max
	LogAddExp(a, b *RawTensor) (*RawTensor, error) // log(exp(a) + exp(b)), stable

	// Comparisons with broadcasting (bool result).
	Greater(a, b *RawTensor) (*RawTensor, error)      // a > b
	GreaterEqual(a, b *RawTensor) (*RawTensor, error) // a >= b

	// Where selects x where condition is true, else y, broadcasting all three.
	Where(condition, x, y *RawTensor) (*RawTensor, error)

	// Element-wise math.
	Exp(x *RawTensor) *RawTensor
	Log(x *RawTensor) *RawTensor
	Log1p(x *RawTensor) *RawTensor
	Abs(x *RawTensor) *RawTensor
	Neg(x *RawTensor) *RawTensor
	Expit(x *RawTensor) *RawTensor // logistic 1/(1+exp(-x)), stable

	// Scalar operations.
	AddScalar(x *RawTensor, scalar float64) *RawTensor
	MulScalar(x *RawTensor, scalar float64) *RawTensor

	// Reductions along one axis (negative axes count from the end).
	SumDim(x *RawTensor, axis int, keepDims bool) (*RawTensor, error)
	MeanDim(x *RawTensor, axis int, keepDims bool) (*RawTensor, error)
	MaxDim(x *RawTensor, axis int, keepDims bool) (*RawTensor, error)
	LogSumExp(x *RawTensor, axis int, keepDims bool) (*RawTensor, error)

	// Metadata
	Name() string
	Device() Device
}
