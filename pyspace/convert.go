//go:build python

package pyspace

import (
	"fmt"

	python "github.com/DataDog/go-python3"
	"github.com/samuelfneumann/gymspace"
)

// F64SliceFromIter converts a Python iterable to a []float64. Borrows
// python.PyObject reference.
//
// Note: this is used to convert NumPy vectors to []float64. Since the
// NumPy C API is not supported by go-python3, each item is converted
// through Python's float protocol.
func F64SliceFromIter(obj *python.PyObject) ([]float64, error) {
	seq := obj.GetIter()
	if seq == nil {
		printPythonError()
		return nil, fmt.Errorf("f64SliceFromIter: object is not iterable")
	}
	defer seq.DecRef()
	next := seq.GetAttrString("__next__")
	defer next.DecRef()

	data := make([]float64, obj.Length())
	for i := range data {
		item := next.CallObject(nil)
		if item == nil {
			return nil, fmt.Errorf("f64SliceFromIter: nil item at index %v", i)
		}

		data[i] = python.PyFloat_AsDouble(item)
		item.DecRef()
		if python.PyErr_Occurred() != nil {
			printPythonError()
			return nil, fmt.Errorf("f64SliceFromIter: item at index %v is "+
				"not a float", i)
		}
	}

	return data, nil
}

// I64SliceFromIter converts a Python iterable of integers, such as a
// NumPy integer vector, to a []int64. Borrows python.PyObject
// reference.
func I64SliceFromIter(obj *python.PyObject) ([]int64, error) {
	seq := obj.GetIter()
	if seq == nil {
		printPythonError()
		return nil, fmt.Errorf("i64SliceFromIter: object is not iterable")
	}
	defer seq.DecRef()
	next := seq.GetAttrString("__next__")
	defer next.DecRef()

	data := make([]int64, obj.Length())
	for i := range data {
		item := next.CallObject(nil)
		if item == nil {
			return nil, fmt.Errorf("i64SliceFromIter: nil item at index %v", i)
		}

		data[i] = int64(python.PyLong_AsLong(item))
		item.DecRef()
		if python.PyErr_Occurred() != nil {
			printPythonError()
			return nil, fmt.Errorf("i64SliceFromIter: item at index %v is "+
				"not an int", i)
		}
	}

	return data, nil
}

// IntSliceFromIter converts a Python iterable to a []int. Borrows
// python.PyObject reference.
func IntSliceFromIter(obj *python.PyObject) ([]int, error) {
	data, err := I64SliceFromIter(obj)
	if err != nil {
		return nil, fmt.Errorf("intSliceFromIter: %w", err)
	}
	ints := make([]int, len(data))
	for i, v := range data {
		ints[i] = int(v)
	}
	return ints, nil
}

// ToPython converts a value sampled from a gymspace space into a
// Python object: strings become str, scalars become int or float and
// Arrays become nested lists of their shape. Integer and boolean
// elements become Python ints. Creates a new python.PyObject
// reference.
func ToPython(x interface{}) (*python.PyObject, error) {
	switch v := x.(type) {
	case string:
		return python.PyUnicode_FromString(v), nil
	case int64:
		return python.PyLong_FromGoInt64(v), nil
	case float64:
		return python.PyFloat_FromDouble(v), nil
	}

	data, err := gymspace.Flatten(x)
	if err != nil {
		return nil, fmt.Errorf("toPython: %w", err)
	}
	shape, integral := describe(x, len(data))
	list, _, err := nestedList(data, shape, integral)
	if err != nil {
		return nil, fmt.Errorf("toPython: %w", err)
	}
	return list, nil
}

// describe returns the shape of x and whether its elements are
// integral
func describe(x interface{}, n int) (gymspace.Shape, bool) {
	type shaped interface{ Shape() gymspace.Shape }
	shape := gymspace.Shape{n}
	if s, ok := x.(shaped); ok {
		shape = s.Shape()
	}
	switch x.(type) {
	case gymspace.Array[float64], gymspace.Array[float32], []float64, []float32:
		return shape, false
	default:
		return shape, true
	}
}

// nestedList builds a Python list of the given shape from the front of
// data, returning the number of elements consumed
func nestedList(data []float64, shape gymspace.Shape,
	integral bool) (*python.PyObject, int, error) {
	if len(shape) == 0 {
		if integral {
			return python.PyLong_FromGoInt64(int64(data[0])), 1, nil
		}
		return python.PyFloat_FromDouble(data[0]), 1, nil
	}

	list := python.PyList_New(shape[0])
	used := 0
	for i := 0; i < shape[0]; i++ {
		item, n, err := nestedList(data[used:], shape[1:], integral)
		if err != nil {
			list.DecRef()
			return nil, 0, err
		}
		used += n
		if python.PyList_SetItem(list, i, item) != 0 {
			printPythonError()
			item.DecRef()
			list.DecRef()
			return nil, 0, fmt.Errorf("could not set Python list item")
		}
	}
	return list, used, nil
}

// FromPython converts a Python value, such as an observation, into a
// value of the given space. Borrows the python.PyObject reference.
func FromPython(obj *python.PyObject, space gymspace.Space) (interface{},
	error) {
	if obj == nil {
		return nil, fmt.Errorf("fromPython: nil object")
	}

	switch s := space.(type) {
	case *gymspace.DiscreteSpace[int64]:
		v := int64(python.PyLong_AsLong(obj))
		if python.PyErr_Occurred() != nil {
			printPythonError()
			return nil, fmt.Errorf("fromPython: value is not an int")
		}
		return v, nil

	case *gymspace.TextSpace:
		if !python.PyUnicode_Check(obj) {
			return nil, fmt.Errorf("fromPython: value is not a str")
		}
		return python.PyUnicode_AsUTF8(obj), nil

	case *gymspace.BoxSpace[float64]:
		return arrayFromPython(obj, s.Shape(), F64SliceFromIter)

	case *gymspace.BoxSpace[int64]:
		return arrayFromPython(obj, s.Shape(), I64SliceFromIter)

	case *gymspace.MultiDiscreteSpace[int64]:
		return arrayFromPython(obj, s.Shape(), I64SliceFromIter)

	case *gymspace.MultiBinarySpace:
		ints, err := arrayFromPython(obj, s.Shape(), I64SliceFromIter)
		if err != nil {
			return nil, err
		}
		data := make([]bool, ints.Len())
		for i, v := range ints.Data() {
			data[i] = v != 0
		}
		return gymspace.NewArray(data, s.Shape())

	default:
		return nil, fmt.Errorf("fromPython: space %v not yet implemented",
			space)
	}
}

// arrayFromPython flattens a NumPy array and converts it to an Array
// of the given shape
func arrayFromPython[E any](obj *python.PyObject, shape gymspace.Shape,
	conv func(*python.PyObject) ([]E, error)) (gymspace.Array[E], error) {
	flat := obj.CallMethodArgs("flatten")
	if flat == nil {
		printPythonError()
		return gymspace.Array[E]{}, fmt.Errorf("arrayFromPython: value is " +
			"not a NumPy array")
	}
	defer flat.DecRef()

	data, err := conv(flat)
	if err != nil {
		return gymspace.Array[E]{}, fmt.Errorf("arrayFromPython: %w", err)
	}
	return gymspace.NewArray(data, shape)
}
