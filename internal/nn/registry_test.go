package nn

import (
	"testing"

	"github.com/born-ml/activations/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{
		"relu", "softplus", "sigmoid", "elu", "leaky_relu",
		"logsoftmax", "softmax", "fastvar",
	}, Names())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		want Kind
		ok   bool
	}{
		{"relu", Elementwise, true},
		{"leaky_relu", Elementwise, true},
		{"softmax", AxisWise, true},
		{"fastvar", AxisWise, true},
		{"gelu", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := KindOf(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, kind)
		})
	}

	assert.Equal(t, "elementwise", Elementwise.String())
	assert.Equal(t, "axis", AxisWise.String())
	assert.Equal(t, "unknown", Kind(9).String())
}

func TestLookup_EveryName(t *testing.T) {
	x := fromSlice(t, []float64{-1, 0.5, 2, -3, 1, 0}, 2, 3)

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			fn, err := Lookup[float64, Backend](name)
			require.NoError(t, err)

			y, err := fn(x, -1, false)
			require.NoError(t, err)

			if name != "fastvar" {
				assert.Equal(t, x.Shape(), y.Shape())
			} else {
				assert.Equal(t, tensor.Shape{2}, y.Shape())
			}
		})
	}
}

func TestLookup_MatchesDirectCalls(t *testing.T) {
	x := fromSlice(t, []float64{-1, 0.5, 2, -3, 1, 0}, 2, 3)

	relu, err := Lookup[float64, Backend]("relu")
	require.NoError(t, err)
	y, err := relu(x, 5, true) // axis and keepDims are ignored
	require.NoError(t, err)
	assert.Equal(t, ReLU(x).Data(), y.Data())

	softmax, err := Lookup[float64, Backend]("softmax")
	require.NoError(t, err)
	y, err = softmax(x, 0, true)
	require.NoError(t, err)
	want, err := Softmax(x, 0)
	require.NoError(t, err)
	assert.Equal(t, want.Data(), y.Data())

	fastvar, err := Lookup[float64, Backend]("fastvar")
	require.NoError(t, err)
	y, err = fastvar(x, 0, true)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{1, 3}, y.Shape())
}

func TestLookup_Unknown(t *testing.T) {
	fn, err := Lookup[float32, Backend]("swish")
	assert.Nil(t, fn)
	require.ErrorIs(t, err, ErrUnknownFunction)
	assert.Contains(t, err.Error(), `"swish"`)
}

func TestActivation_Forward(t *testing.T) {
	x := fromSlice(t, []float32{1, 2, 3, 4, 5, 6}, 2, 3)

	act, err := NewActivation[float32, Backend](ActivationConfig{Name: "logsoftmax", Axis: 0})
	require.NoError(t, err)
	assert.Equal(t, "logsoftmax", act.Name())
	assert.Equal(t, AxisWise, act.Kind())

	got, err := act.Forward(x)
	require.NoError(t, err)
	want, err := LogSoftmax(x, 0)
	require.NoError(t, err)
	assert.Equal(t, want.Data(), got.Data())
}

func TestActivation_AxisError(t *testing.T) {
	x := fromSlice(t, []float32{1, 2, 3})

	act, err := NewActivation[float32, Backend](ActivationConfig{Name: "softmax", Axis: 1})
	require.NoError(t, err)

	_, err = act.Forward(x)
	assert.ErrorIs(t, err, tensor.ErrAxisOutOfRange)
}

func TestActivation_String(t *testing.T) {
	tests := []struct {
		cfg  ActivationConfig
		want string
	}{
		{ActivationConfig{Name: "relu", Axis: 3}, "relu"},
		{ActivationConfig{Name: "softmax", Axis: DefaultAxis}, "softmax(axis=-1)"},
		{ActivationConfig{Name: "logsoftmax", Axis: 1}, "logsoftmax(axis=1)"},
		{ActivationConfig{Name: "fastvar", Axis: 0, KeepDims: true}, "fastvar(axis=0, keepdims=true)"},
	}

	for _, tt := range tests {
		act, err := NewActivation[float64, Backend](tt.cfg)
		require.NoError(t, err)
		assert.Equal(t, tt.want, act.String())
	}
}

func TestNewActivation_Unknown(t *testing.T) {
	act, err := NewActivation[float64, Backend](ActivationConfig{Name: "tanh"})
	assert.Nil(t, act)
	assert.ErrorIs(t, err, ErrUnknownFunction)
}
