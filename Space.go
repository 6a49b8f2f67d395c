// Package gymspace implements the fundamental spaces of Gymnasium in
// Go. A space describes the legal values of an action or observation
// and offers two operations on them: membership testing and uniform
// random sampling with a reproducible seed.
//
// Spaces validate their bounds when constructed. Once a space exists,
// Contains and Sample never fail.
package gymspace

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Space describes a space of actions, observations, etc. It is the Go
// equivalent of gymnasium.spaces.Space. All fundamental spaces and the
// BoxSpace union implement Space, so heterogeneous spaces can be held
// in a []Space.
type Space interface {
	// Shape returns the shape of values in the space
	Shape() Shape

	// Dtype returns the element type of values in the space
	Dtype() Dtype

	// Seed seeds the sampler for the space
	Seed(uint64)

	// Contains returns whether x is in the space. Values of the wrong
	// Go type or shape are not in the space.
	Contains(x interface{}) bool

	// SampleValue takes a sample from within the spaces bounds
	SampleValue() interface{}
}

// TypedSpace is a Space whose values have the static type T
type TypedSpace[T any] interface {
	Space

	// Sample takes a sample from within the spaces bounds
	Sample() T

	// ContainsValue returns whether v is in the space
	ContainsValue(v T) bool
}

// Number is the set of element types usable in a BoxSpace
type Number interface {
	constraints.Integer | constraints.Float
}

// Dtype is the element type of a space
type Dtype int

const (
	Invalid Dtype = iota
	Bool
	Int
	Int8
	Int16
	Int32
	Int64
	Uint
	Uint8
	Uint16
	Uint32
	Uint64
	Uintptr
	Float32
	Float64
)

var dtypeNames = [...]string{
	Invalid: "invalid",
	Bool:    "bool",
	Int:     "int",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint:    "uint",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Uintptr: "uintptr",
	Float32: "float32",
	Float64: "float64",
}

func (d Dtype) String() string {
	if d < 0 || int(d) >= len(dtypeNames) {
		return "Dtype(" + strconv.Itoa(int(d)) + ")"
	}
	return dtypeNames[d]
}

// IsFloat returns whether the Dtype is a floating point type
func (d Dtype) IsFloat() bool {
	return d == Float32 || d == Float64
}

// IsInteger returns whether the Dtype is a signed or unsigned integer
func (d Dtype) IsInteger() bool {
	return d >= Int && d <= Uintptr
}

// DtypeOf returns the Dtype of the element type E. Named types are
// resolved to their underlying kind.
func DtypeOf[E any]() Dtype {
	t := reflect.TypeOf((*E)(nil)).Elem()
	switch t.Kind() {
	case reflect.Bool:
		return Bool
	case reflect.Int:
		return Int
	case reflect.Int8:
		return Int8
	case reflect.Int16:
		return Int16
	case reflect.Int32:
		return Int32
	case reflect.Int64:
		return Int64
	case reflect.Uint:
		return Uint
	case reflect.Uint8:
		return Uint8
	case reflect.Uint16:
		return Uint16
	case reflect.Uint32:
		return Uint32
	case reflect.Uint64:
		return Uint64
	case reflect.Uintptr:
		return Uintptr
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	default:
		return Invalid
	}
}

// Shape is the per-axis extents of values in a space. A Shape of
// length zero describes a scalar.
type Shape []int

// Dynamic is the extent reported for an axis whose length varies
// between values, such as the characters of a TextSpace.
const Dynamic = -1

// NumElements returns the number of elements of a value with shape s
func (s Shape) NumElements() int {
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

// Equal returns whether two shapes have the same extents
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of s
func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	copy(c, s)
	return c
}

func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		if d == Dynamic {
			parts[i] = "?"
		} else {
			parts[i] = strconv.Itoa(d)
		}
	}
	if len(s) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// validate ensures each extent is non-negative
func (s Shape) validate(op string) error {
	for i, d := range s {
		if d < 0 {
			return newSpaceError(op, i, fmt.Sprintf("shape extents must be "+
				"non-negative (shape: %v)", []int(s)))
		}
	}
	return nil
}
