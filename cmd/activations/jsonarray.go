package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/goccy/go-json"

	"github.com/born-ml/activations/internal/tensor"
)

var (
	errRagged   = errors.New("ragged array")
	errEmpty    = errors.New("empty array")
	errNotFloat = errors.New("array element is not a number")
)

// Non-finite values have no JSON number form; they travel as these strings.
const (
	jsonNaN    = "NaN"
	jsonInf    = "Infinity"
	jsonNegInf = "-Infinity"
)

// decodeArray parses a nested JSON array (or a bare number) into row-major values
// and the shape implied by the nesting.
func decodeArray(raw []byte) ([]float64, tensor.Shape, error) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, nil, fmt.Errorf("decode input: %w", err)
	}

	shape, err := inferShape(v)
	if err != nil {
		return nil, nil, fmt.Errorf("decode input: %w", err)
	}

	data := make([]float64, 0, shape.NumElements())
	data, err = flatten(v, data)
	if err != nil {
		return nil, nil, fmt.Errorf("decode input: %w", err)
	}
	return data, shape, nil
}

// inferShape follows the first element at every level; flatten checks the rest.
func inferShape(v interface{}) (tensor.Shape, error) {
	shape := tensor.Shape{}
	for {
		list, ok := v.([]interface{})
		if !ok {
			return shape, nil
		}
		if len(list) == 0 {
			return nil, errEmpty
		}
		shape = append(shape, len(list))
		v = list[0]
	}
}

func flatten(v interface{}, dst []float64) ([]float64, error) {
	shape, err := inferShape(v)
	if err != nil {
		return nil, err
	}
	list, ok := v.([]interface{})
	if !ok {
		f, err := toFloat(v)
		if err != nil {
			return nil, err
		}
		return append(dst, f), nil
	}

	for _, item := range list {
		itemShape, err := inferShape(item)
		if err != nil {
			return nil, err
		}
		if !itemShape.Equal(shape[1:]) {
			return nil, fmt.Errorf("%w: expected %v, got %v", errRagged, shape[1:], itemShape)
		}
		if dst, err = flatten(item, dst); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

func toFloat(v interface{}) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case string:
		switch x {
		case jsonNaN:
			return math.NaN(), nil
		case jsonInf:
			return math.Inf(1), nil
		case jsonNegInf:
			return math.Inf(-1), nil
		}
	}
	return 0, fmt.Errorf("%w: %v", errNotFloat, v)
}

// encodeArray renders row-major values with the given shape as nested JSON arrays.
func encodeArray[T tensor.Float](data []T, shape tensor.Shape) ([]byte, error) {
	out, err := json.Marshal(nest(data, shape))
	if err != nil {
		return nil, fmt.Errorf("encode output: %w", err)
	}
	return out, nil
}

func nest[T tensor.Float](data []T, shape tensor.Shape) interface{} {
	if len(shape) == 0 {
		return jsonValue(data[0])
	}
	n := shape[0]
	step := len(data) / n
	list := make([]interface{}, n)
	for i := range list {
		list[i] = nest(data[i*step:(i+1)*step], shape[1:])
	}
	return list
}

func jsonValue[T tensor.Float](v T) interface{} {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return jsonNaN
	case math.IsInf(f, 1):
		return jsonInf
	case math.IsInf(f, -1):
		return jsonNegInf
	default:
		return v
	}
}
