//go:build python

// Package pyspace converts the spaces of Python's Gymnasium package
// into gymspace spaces, and gymspace values back into Python objects.
//
// The package is only built with the python build tag. Before
// building, ensure python-3.7.pc is in a directory pointed to by
// PKG_CONFIG_PATH. On Ubuntu:
// export PKG_CONFIG_PATH="$PKG_CONFIG_PATH":/usr/local/lib/pkgconfig
package pyspace

import (
	"fmt"
	"os"
	"strings"

	python "github.com/DataDog/go-python3"
	"github.com/samuelfneumann/gymspace"
)

// Python modules
var (
	gymnasium *python.PyObject
	numpy     *python.PyObject
)

// Python space types
var (
	spaces             *python.PyObject
	boxSpace           *python.PyObject
	discreteSpace      *python.PyObject
	multiBinarySpace   *python.PyObject
	multiDiscreteSpace *python.PyObject
	textSpace          *python.PyObject
)

// Initialized indicates whether Init has been called successfully
var Initialized bool = false

// Init starts the Python interpreter, if needed, and imports
// gymnasium, gymnasium.spaces and numpy. It must be called before any
// other function in the package.
func Init() error {
	if Initialized {
		return nil
	}
	if !python.Py_IsInitialized() {
		python.Py_Initialize()
	}

	gymnasium = python.PyImport_ImportModule("gymnasium")
	if gymnasium == nil {
		printPythonError()
		return fmt.Errorf("init: could not import gymnasium")
	}
	numpy = python.PyImport_ImportModule("numpy")
	if numpy == nil {
		printPythonError()
		return fmt.Errorf("init: could not import numpy")
	}
	spaces = python.PyImport_ImportModule("gymnasium.spaces")
	if spaces == nil {
		printPythonError()
		return fmt.Errorf("init: could not import gymnasium.spaces")
	}

	var err error
	if boxSpace, err = spaceType("Box"); err != nil {
		return err
	}
	if discreteSpace, err = spaceType("Discrete"); err != nil {
		return err
	}
	if multiBinarySpace, err = spaceType("MultiBinary"); err != nil {
		return err
	}
	if multiDiscreteSpace, err = spaceType("MultiDiscrete"); err != nil {
		return err
	}
	if textSpace, err = spaceType("Text"); err != nil {
		return err
	}

	Initialized = true
	return nil
}

func spaceType(name string) (*python.PyObject, error) {
	t := spaces.GetAttrString(name)
	if t == nil {
		printPythonError()
		return nil, fmt.Errorf("init: could not get Python %v space type",
			name)
	}
	return t, nil
}

// Close closes any open environments and releases the Python modules.
// The interpreter is left running for other users.
func Close() {
	if !Initialized {
		return
	}
	for env := range openEnvironments {
		env.Close()
	}
	for _, obj := range []*python.PyObject{boxSpace, discreteSpace,
		multiBinarySpace, multiDiscreteSpace, textSpace, spaces, numpy,
		gymnasium} {
		obj.DecRef()
	}
	Initialized = false
}

// FromPythonSpace converts a Python gymnasium space to a Go
// equivalent. Box spaces become *gymspace.BoxSpace[float64] or
// *gymspace.BoxSpace[int64] depending on their dtype, Discrete and
// MultiDiscrete spaces use int64 elements. Borrows the
// python.PyObject reference.
func FromPythonSpace(space *python.PyObject,
	opts ...gymspace.Option) (gymspace.Space, error) {
	if !Initialized {
		return nil, fmt.Errorf("fromPythonSpace: package not initialized")
	}
	if space == nil {
		return nil, fmt.Errorf("fromPythonSpace: nil space")
	}

	spaceType := space.Type()
	defer spaceType.DecRef()

	var value gymspace.Space
	var err error
	switch spaceType {
	case boxSpace:
		value, err = newBox(space, opts)

	case discreteSpace:
		value, err = newDiscrete(space, opts)

	case multiBinarySpace:
		value, err = newMultiBinary(space, opts)

	case multiDiscreteSpace:
		value, err = newMultiDiscrete(space, opts)

	case textSpace:
		value, err = newText(space, opts)

	default:
		return nil, fmt.Errorf("fromPythonSpace: space %v not yet "+
			"implemented", PyString(spaceType))
	}
	if err != nil {
		return nil, fmt.Errorf("fromPythonSpace: could not convert space: %w",
			err)
	}
	return value, nil
}

func newBox(space *python.PyObject, opts []gymspace.Option) (gymspace.Space,
	error) {
	shape, err := shapeOf(space)
	if err != nil {
		return nil, fmt.Errorf("newBox: %w", err)
	}

	dtype := space.GetAttrString("dtype")
	if dtype == nil {
		return nil, fmt.Errorf("newBox: space has no dtype")
	}
	defer dtype.DecRef()

	low, err := flatAttr(space, "low")
	if err != nil {
		return nil, fmt.Errorf("newBox: could not compute lower bound: %w", err)
	}
	defer low.DecRef()
	high, err := flatAttr(space, "high")
	if err != nil {
		return nil, fmt.Errorf("newBox: could not compute upper bound: %w", err)
	}
	defer high.DecRef()

	if strings.HasPrefix(PyString(dtype), "float") {
		return boxOf(F64SliceFromIter, low, high, shape, opts)
	}
	return boxOf(I64SliceFromIter, low, high, shape, opts)
}

func boxOf[E gymspace.Number](conv func(*python.PyObject) ([]E, error),
	low, high *python.PyObject, shape gymspace.Shape,
	opts []gymspace.Option) (gymspace.Space, error) {
	lowData, err := conv(low)
	if err != nil {
		return nil, err
	}
	highData, err := conv(high)
	if err != nil {
		return nil, err
	}
	lowArr, err := gymspace.NewArray(lowData, shape)
	if err != nil {
		return nil, err
	}
	highArr, err := gymspace.NewArray(highData, shape)
	if err != nil {
		return nil, err
	}
	box, err := gymspace.NewBoxIndependent(lowArr, highArr, opts...)
	if err != nil {
		return nil, err
	}
	return box.Box(), nil
}

func newDiscrete(space *python.PyObject, opts []gymspace.Option) (gymspace.Space,
	error) {
	n, err := intAttr(space, "n")
	if err != nil {
		return nil, fmt.Errorf("newDiscrete: %w", err)
	}
	start, err := intAttr(space, "start")
	if err != nil {
		return nil, fmt.Errorf("newDiscrete: %w", err)
	}
	return gymspace.NewDiscrete(int(n), start, opts...)
}

func newMultiBinary(space *python.PyObject,
	opts []gymspace.Option) (gymspace.Space, error) {
	shape, err := shapeOf(space)
	if err != nil {
		return nil, fmt.Errorf("newMultiBinary: %w", err)
	}
	return gymspace.NewMultiBinary(shape, opts...)
}

func newMultiDiscrete(space *python.PyObject,
	opts []gymspace.Option) (gymspace.Space, error) {
	shape, err := shapeOf(space)
	if err != nil {
		return nil, fmt.Errorf("newMultiDiscrete: %w", err)
	}

	nvec, err := flatAttr(space, "nvec")
	if err != nil {
		return nil, fmt.Errorf("newMultiDiscrete: %w", err)
	}
	defer nvec.DecRef()
	start, err := flatAttr(space, "start")
	if err != nil {
		return nil, fmt.Errorf("newMultiDiscrete: %w", err)
	}
	defer start.DecRef()

	nData, err := I64SliceFromIter(nvec)
	if err != nil {
		return nil, fmt.Errorf("newMultiDiscrete: %w", err)
	}
	startData, err := I64SliceFromIter(start)
	if err != nil {
		return nil, fmt.Errorf("newMultiDiscrete: %w", err)
	}
	nArr, err := gymspace.NewArray(nData, shape)
	if err != nil {
		return nil, fmt.Errorf("newMultiDiscrete: %w", err)
	}
	startArr, err := gymspace.NewArray(startData, shape)
	if err != nil {
		return nil, fmt.Errorf("newMultiDiscrete: %w", err)
	}
	return gymspace.NewMultiDiscrete(nArr, startArr, opts...)
}

func newText(space *python.PyObject, opts []gymspace.Option) (gymspace.Space,
	error) {
	minLen, err := intAttr(space, "min_length")
	if err != nil {
		return nil, fmt.Errorf("newText: %w", err)
	}
	maxLen, err := intAttr(space, "max_length")
	if err != nil {
		return nil, fmt.Errorf("newText: %w", err)
	}
	return gymspace.NewText(int(minLen), int(maxLen), opts...)
}

// shapeOf returns the shape attribute of a Python space
func shapeOf(space *python.PyObject) (gymspace.Shape, error) {
	shape := space.GetAttrString("shape")
	if shape == nil {
		return nil, fmt.Errorf("space %v has no shape", PyString(space))
	}
	defer shape.DecRef()

	extents, err := IntSliceFromIter(shape)
	if err != nil {
		return nil, fmt.Errorf("could not decode shape: %w", err)
	}
	return gymspace.Shape(extents), nil
}

// flatAttr returns the NumPy array attribute name of obj flattened to
// one dimension. Creates a new python.PyObject reference.
func flatAttr(obj *python.PyObject, name string) (*python.PyObject, error) {
	attr := obj.GetAttrString(name)
	if attr == nil {
		return nil, fmt.Errorf("no attribute %v", name)
	}
	defer attr.DecRef()

	flat := attr.CallMethodArgs("flatten")
	if flat == nil {
		printPythonError()
		return nil, fmt.Errorf("could not flatten attribute %v", name)
	}
	return flat, nil
}

// intAttr returns the integer attribute name of obj
func intAttr(obj *python.PyObject, name string) (int64, error) {
	attr := obj.GetAttrString(name)
	if attr == nil {
		return 0, fmt.Errorf("no attribute %v", name)
	}
	defer attr.DecRef()

	value := python.PyLong_AsLong(attr)
	if python.PyErr_Occurred() != nil {
		printPythonError()
		return 0, fmt.Errorf("attribute %v is not an int", name)
	}
	return int64(value), nil
}

// printPythonError prints and clears the current Python error, if any
func printPythonError() {
	if python.PyErr_Occurred() != nil {
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "========== Python Error ==========")
		python.PyErr_Print()
		fmt.Fprintln(os.Stderr, "==================================")
		fmt.Fprintln(os.Stderr)
	}
}

// PyString returns str(obj)
func PyString(obj *python.PyObject) string {
	str := obj.Str()
	if str == nil {
		return "<nil>"
	}
	defer str.DecRef()
	return python.PyUnicode_AsUTF8(str)
}
