package tensor

import (
	"fmt"
	"slices"
)

// Shape lists the size of each axis, outermost first. The empty Shape is a scalar
// with one element.
type Shape []int

// NumElements is the product of the dimensions.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate rejects shapes with a zero or negative dimension.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: axis %d has size %d", ErrInvalidShape, i, dim)
		}
	}
	return nil
}

func (s Shape) Equal(other Shape) bool { return slices.Equal(s, other) }

// Clone returns a copy that never aliases s, even when s is nil.
func (s Shape) Clone() Shape {
	return append(make(Shape, 0, len(s)), s...)
}

// ComputeStrides returns row-major element strides: the last axis has stride 1 and
// each earlier axis steps over the product of the dimensions after it.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	step := 1
	for i := len(s) - 1; i >= 0; i-- {
		strides[i] = step
		step *= s[i]
	}
	return strides
}

// BroadcastShapes implements NumPy-style broadcasting rules.
//
// Rules:
// 1. Compare shapes element-wise from right to left
// 2. Dimensions are compatible if:
//   - They are equal, OR
//   - One of them is 1
//
// 3. Missing dimensions are treated as 1
//
// Returns the broadcasted shape, a flag indicating if broadcasting is needed, and an
// error wrapping ErrBroadcast if incompatible.
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5), true, nil
//	(1, 5) + (3, 5) → (3, 5), true, nil
//	(3, 5) + (3, 5) → (3, 5), false, nil
//	(3, 4) + (3, 5) → nil, false, ErrBroadcast
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	maxLen := max(len(a), len(b))
	result := make(Shape, maxLen)
	needsBroadcast := len(a) != len(b)

	for i := 0; i < maxLen; i++ {
		aIdx := len(a) - 1 - i
		bIdx := len(b) - 1 - i

		aDim := 1
		if aIdx >= 0 {
			aDim = a[aIdx]
		}

		bDim := 1
		if bIdx >= 0 {
			bDim = b[bIdx]
		}

		switch {
		case aDim == bDim:
			result[maxLen-1-i] = aDim
		case aDim == 1:
			result[maxLen-1-i] = bDim
			needsBroadcast = true
		case bDim == 1:
			result[maxLen-1-i] = aDim
			needsBroadcast = true
		default:
			return nil, false, fmt.Errorf("%w: %v vs %v (dimension %d: %d vs %d)",
				ErrBroadcast, a, b, maxLen-1-i, aDim, bDim)
		}
	}

	return result, needsBroadcast, nil
}

// BroadcastAll folds BroadcastShapes over any number of shapes.
func BroadcastAll(shapes ...Shape) (Shape, error) {
	if len(shapes) == 0 {
		return Shape{}, nil
	}
	out := shapes[0].Clone()
	for _, s := range shapes[1:] {
		var err error
		out, _, err = BroadcastShapes(out, s)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// NormalizeAxis resolves a possibly negative axis against a tensor rank.
//
// Example:
//
//	NormalizeAxis(-1, 3) → 2, nil
//	NormalizeAxis(3, 3)  → 0, ErrAxisOutOfRange
func NormalizeAxis(axis, ndim int) (int, error) {
	normalized := axis
	if normalized < 0 {
		normalized += ndim
	}
	if normalized < 0 || normalized >= ndim {
		return 0, fmt.Errorf("%w: axis %d for %dD tensor", ErrAxisOutOfRange, axis, ndim)
	}
	return normalized, nil
}

// ReducedShape returns the shape left after reducing along a normalized axis.
// With keepDims the axis stays as size 1, otherwise it is removed.
func ReducedShape(s Shape, axis int, keepDims bool) Shape {
	if keepDims {
		out := s.Clone()
		out[axis] = 1
		return out
	}
	out := make(Shape, 0, len(s)-1)
	for i, dim := range s {
		if i != axis {
			out = append(out, dim)
		}
	}
	return out
}

// SplitAxis decomposes a row-major shape around axis into
// (outer, size, inner) so that element (o, k, i) lives at o*size*inner + k*inner + i.
func SplitAxis(s Shape, axis int) (outer, size, inner int) {
	outer, inner = 1, 1
	for i := 0; i < axis; i++ {
		outer *= s[i]
	}
	for i := axis + 1; i < len(s); i++ {
		inner *= s[i]
	}
	return outer, s[axis], inner
}
