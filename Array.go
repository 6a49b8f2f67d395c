package gymspace

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Array is a dense, row-major multi-dimensional value. It is the
// representation in which spaces accept and produce values, so that a
// value can be marshalled to another runtime without losing its shape
// or element type.
type Array[E any] struct {
	shape Shape
	data  []E
}

// NewArray returns an Array with the given shape that uses data as its
// backing storage. The length of data must equal the number of
// elements in the shape.
func NewArray[E any](data []E, shape Shape) (Array[E], error) {
	if err := shape.validate("newArray"); err != nil {
		return Array[E]{}, err
	}
	if len(data) != shape.NumElements() {
		return Array[E]{}, fmt.Errorf("newArray: data of length %v cannot "+
			"have shape %v", len(data), shape)
	}
	return Array[E]{shape: shape.Clone(), data: data}, nil
}

// Vector returns a one-dimensional Array backed by data
func Vector[E any](data ...E) Array[E] {
	return Array[E]{shape: Shape{len(data)}, data: data}
}

// Scalar returns a rank-0 Array holding v
func Scalar[E any](v E) Array[E] {
	return Array[E]{shape: Shape{}, data: []E{v}}
}

// Filled returns an Array of the given shape with every element set
// to v. The shape is assumed to be valid.
func Filled[E any](v E, shape Shape) Array[E] {
	data := make([]E, shape.NumElements())
	for i := range data {
		data[i] = v
	}
	return Array[E]{shape: shape.Clone(), data: data}
}

// Shape returns the shape of the Array
func (a Array[E]) Shape() Shape {
	return a.shape
}

// Data returns the flat, row-major backing slice of the Array
func (a Array[E]) Data() []E {
	return a.data
}

// Len returns the number of elements in the Array
func (a Array[E]) Len() int {
	return len(a.data)
}

// At returns the element at the given multi-dimensional index. It
// panics if the index is out of range.
func (a Array[E]) At(idx ...int) E {
	if len(idx) != len(a.shape) {
		panic(fmt.Sprintf("at: index of rank %v for array of rank %v",
			len(idx), len(a.shape)))
	}
	flat := 0
	for axis, i := range idx {
		if i < 0 || i >= a.shape[axis] {
			panic(fmt.Sprintf("at: index %v out of range for axis %v with "+
				"extent %v", i, axis, a.shape[axis]))
		}
		flat = flat*a.shape[axis] + i
	}
	return a.data[flat]
}

// Clone returns a deep copy of the Array
func (a Array[E]) Clone() Array[E] {
	data := make([]E, len(a.data))
	copy(data, a.data)
	return Array[E]{shape: a.shape.Clone(), data: data}
}

func (a Array[E]) String() string {
	return fmt.Sprintf("Array%v%v", a.shape, a.data)
}

// Equal returns whether a and b have the same shape and elements
func Equal[E comparable](a, b Array[E]) bool {
	if !a.shape.Equal(b.shape) || len(a.data) != len(b.data) {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}

// asArray converts the argument of a Contains call into an Array of
// the given shape. Flat slices are accepted when their length matches
// the number of elements in the shape. Float64 spaces also accept a
// *mat.VecDense.
func asArray[E any](x interface{}, shape Shape) (Array[E], bool) {
	var a Array[E]
	switch v := x.(type) {
	case Array[E]:
		a = v
	case *Array[E]:
		if v == nil {
			return a, false
		}
		a = *v
	case []E:
		if len(v) != shape.NumElements() {
			return a, false
		}
		return Array[E]{shape: shape, data: v}, true
	case mat.Vector:
		data, ok := interface{}(vectorData(v)).([]E)
		if !ok || len(data) != shape.NumElements() {
			return a, false
		}
		return Array[E]{shape: shape, data: data}, true
	default:
		return a, false
	}
	if !a.shape.Equal(shape) || len(a.data) != shape.NumElements() {
		return a, false
	}
	return a, true
}

// vectorData returns the elements of a gonum vector
func vectorData(v mat.Vector) []float64 {
	if v == nil {
		return nil
	}
	if vec, ok := v.(*mat.VecDense); ok {
		if vec == nil || vec.IsEmpty() {
			return nil
		}
		if raw := vec.RawVector(); raw.Inc == 1 {
			return raw.Data[:vec.Len()]
		}
	}
	data := make([]float64, v.Len())
	for i := range data {
		data[i] = v.AtVec(i)
	}
	return data
}
