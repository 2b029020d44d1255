package tensor

import (
	"math"
	"math/rand/v2"
)

// Zeros allocates a zero-filled tensor. Invalid shapes panic; use FromSlice or NewRaw
// for an error instead.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float32](tensor.Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var zero T
	raw, err := NewRaw(shape, inferDataType(zero), b.Device())
	if err != nil {
		panic(err)
	}
	return New[T, B](raw, b)
}

// fill allocates a tensor of shape and sets element i to at(i).
func fill[T DType, B Backend](shape Shape, b B, at func(i int) T) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = at(i)
	}
	return t
}

// Full returns a tensor with every element set to value.
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	return fill(shape, b, func(int) T { return value })
}

func Ones[T Float, B Backend](shape Shape, b B) *Tensor[T, B] {
	return Full[T, B](shape, 1, b)
}

// Scalar wraps value in a rank-0 tensor, which broadcasts against any shape.
func Scalar[T DType, B Backend](value T, b B) *Tensor[T, B] {
	return Full[T, B](Shape{}, value, b)
}

// Arange returns the 1-D tensor [start, start+1, ..., end-1]. It panics unless
// end > start.
func Arange[T Float, B Backend](start, end int, b B) *Tensor[T, B] {
	if end <= start {
		panic("Arange: end must be greater than start")
	}
	return fill(Shape{end - start}, b, func(i int) T { return T(start + i) })
}

// Randn draws standard normal values from rng with the Box-Muller transform. Each
// pair of uniforms yields two samples, so the sequence depends only on rng's state.
//
// Example:
//
//	rng := rand.New(rand.NewPCG(1, 2))
//	t := tensor.Randn[float32](tensor.Shape{100, 100}, rng, backend)
func Randn[T Float, B Backend](shape Shape, rng *rand.Rand, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := 0; i < len(data); i += 2 {
		u1 := 1 - rng.Float64() // in (0, 1], so the log is finite
		u2 := rng.Float64()
		r := math.Sqrt(-2 * math.Log(u1))
		sin, cos := math.Sincos(2 * math.Pi * u2)
		data[i] = T(r * cos)
		if i+1 < len(data) {
			data[i+1] = T(r * sin)
		}
	}
	return t
}

// Rand draws values uniformly from [low, high).
func Rand[T Float, B Backend](shape Shape, low, high float64, rng *rand.Rand, b B) *Tensor[T, B] {
	return fill(shape, b, func(int) T { return T(low + (high-low)*rng.Float64()) })
}
