package tensor_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/activations/internal/backend/cpu"
	"github.com/born-ml/activations/internal/tensor"
)

func TestRandn(t *testing.T) {
	backend := cpu.New()
	shape := tensor.Shape{100, 50}

	x := tensor.Randn[float64](shape, rand.New(rand.NewPCG(1, 2)), backend)
	assert.Equal(t, shape, x.Shape())

	data := x.Data()
	var sum float64
	for _, v := range data {
		sum += v
	}
	mean := sum / float64(len(data))

	var sumSq float64
	for _, v := range data {
		sumSq += (v - mean) * (v - mean)
	}
	std := math.Sqrt(sumSq / float64(len(data)))

	// 5000 samples: the standard error of the mean is ~0.014.
	assert.InDelta(t, 0, mean, 0.1)
	assert.InDelta(t, 1, std, 0.1)
}

func TestRandn_OddLengthAndSeed(t *testing.T) {
	backend := cpu.New()

	a := tensor.Randn[float32](tensor.Shape{7}, rand.New(rand.NewPCG(4, 4)), backend)
	b := tensor.Randn[float32](tensor.Shape{7}, rand.New(rand.NewPCG(4, 4)), backend)
	assert.Equal(t, a.Data(), b.Data(), "same seed, same values")

	for _, v := range a.Data() {
		assert.False(t, math.IsNaN(float64(v)) || math.IsInf(float64(v), 0))
	}
}

func TestRand(t *testing.T) {
	backend := cpu.New()
	x := tensor.Rand[float32](tensor.Shape{100, 50}, -2, 3, rand.New(rand.NewPCG(5, 6)), backend)

	data := x.Data()
	allSame := true
	for i, v := range data {
		assert.GreaterOrEqual(t, v, float32(-2), "index %d", i)
		assert.Less(t, v, float32(3), "index %d", i)
		if v != data[0] {
			allSame = false
		}
	}
	assert.False(t, allSame, "Rand should produce different values")
}

func TestArange(t *testing.T) {
	backend := cpu.New()

	x := tensor.Arange[float32](0, 5, backend)
	assert.Equal(t, tensor.Shape{5}, x.Shape())
	assert.Equal(t, []float32{0, 1, 2, 3, 4}, x.Data())

	y := tensor.Arange[float64](-2, 1, backend)
	assert.Equal(t, []float64{-2, -1, 0}, y.Data())

	assert.Panics(t, func() { tensor.Arange[float64](3, 3, backend) })
}

func TestOnesAndFull(t *testing.T) {
	backend := cpu.New()

	ones := tensor.Ones[float64](tensor.Shape{2, 2}, backend)
	assert.Equal(t, []float64{1, 1, 1, 1}, ones.Data())

	mask := tensor.Full(tensor.Shape{3}, true, backend)
	assert.Equal(t, tensor.Bool, mask.DType())
	assert.Equal(t, []bool{true, true, true}, mask.Data())

	assert.Panics(t, func() { tensor.Zeros[float32](tensor.Shape{2, 0}, backend) })
}
