// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/activations/backend/cpu"
	"github.com/born-ml/activations/nn"
	"github.com/born-ml/activations/tensor"
)

func TestPublicAPI_Errors(t *testing.T) {
	backend := cpu.New()

	a := tensor.Zeros[float64](tensor.Shape{2, 3}, backend)
	b := tensor.Zeros[float64](tensor.Shape{4}, backend)
	_, err := a.Add(b)
	assert.True(t, errors.Is(err, tensor.ErrBroadcast))

	_, err = nn.Softmax(a, 5)
	assert.ErrorIs(t, err, tensor.ErrAxisOutOfRange)

	_, err = tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{2, 2}, backend)
	assert.ErrorIs(t, err, tensor.ErrDataLength)

	_, err = nn.Lookup[float64, *cpu.Backend]("swish")
	assert.ErrorIs(t, err, nn.ErrUnknownFunction)
}

func TestPublicAPI_SequentialBackend(t *testing.T) {
	seq := cpu.NewWithParallelism(cpu.Sequential())
	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{3, 2}, seq)
	require.NoError(t, err)

	act, err := nn.NewActivation[float32, *cpu.Backend](nn.ActivationConfig{Name: "softmax", Axis: 0})
	require.NoError(t, err)
	y, err := act.Forward(x)
	require.NoError(t, err)

	sums, err := y.SumDim(0, false)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float32{1, 1}, sums.Data(), 1e-6)
	assert.Equal(t, nn.AxisWise, act.Kind())
}
