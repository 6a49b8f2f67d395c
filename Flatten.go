package gymspace

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Flatten converts a value of a fundamental space to a flat []float64
// in row-major order. Booleans become 0 or 1 and text becomes its
// bytes. Supported arguments are Arrays and slices of every numeric
// Dtype and of bool, strings, scalars of those types and gonum
// vectors.
func Flatten(x interface{}) ([]float64, error) {
	switch v := x.(type) {
	case mat.Vector:
		return append([]float64(nil), vectorData(v)...), nil
	case string:
		return flattenSlice([]byte(v)), nil
	case bool:
		return flattenBools([]bool{v}), nil
	case []bool:
		return flattenBools(v), nil
	case Array[bool]:
		return flattenBools(v.data), nil
	}

	if out, ok := flattenAs[int](x); ok {
		return out, nil
	} else if out, ok := flattenAs[int8](x); ok {
		return out, nil
	} else if out, ok := flattenAs[int16](x); ok {
		return out, nil
	} else if out, ok := flattenAs[int32](x); ok {
		return out, nil
	} else if out, ok := flattenAs[int64](x); ok {
		return out, nil
	} else if out, ok := flattenAs[uint](x); ok {
		return out, nil
	} else if out, ok := flattenAs[uint8](x); ok {
		return out, nil
	} else if out, ok := flattenAs[uint16](x); ok {
		return out, nil
	} else if out, ok := flattenAs[uint32](x); ok {
		return out, nil
	} else if out, ok := flattenAs[uint64](x); ok {
		return out, nil
	} else if out, ok := flattenAs[float32](x); ok {
		return out, nil
	} else if out, ok := flattenAs[float64](x); ok {
		return out, nil
	}
	return nil, fmt.Errorf("flatten: cannot flatten value of type %T", x)
}

// flattenAs flattens x if it is an E, a []E or an Array[E]
func flattenAs[E Number](x interface{}) ([]float64, bool) {
	switch v := x.(type) {
	case E:
		return []float64{float64(v)}, true
	case []E:
		return flattenSlice(v), true
	case Array[E]:
		return flattenSlice(v.data), true
	default:
		return nil, false
	}
}

func flattenSlice[E Number](data []E) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v)
	}
	return out
}

func flattenBools(data []bool) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		if v {
			out[i] = 1
		}
	}
	return out
}

// ToVecDense flattens x, as in Flatten, into a new *mat.VecDense
func ToVecDense(x interface{}) (*mat.VecDense, error) {
	data, err := Flatten(x)
	if err != nil {
		return nil, fmt.Errorf("toVecDense: %w", err)
	}
	if len(data) == 0 {
		return &mat.VecDense{}, nil
	}
	return mat.NewVecDense(len(data), data), nil
}
