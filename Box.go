package gymspace

import "fmt"

// BoxVariant identifies which representation of bounds a BoxSpace
// holds
type BoxVariant int

const (
	// Identical boxes share one scalar bound pair across all elements
	Identical BoxVariant = iota

	// Independent boxes have a bound pair per element
	Independent
)

func (v BoxVariant) String() string {
	if v == Identical {
		return "Identical"
	}
	return "Independent"
}

// BoxSpace represents a box in R^n, or in the integers, as the
// Cartesian product of n closed intervals. It is a tagged union over
// BoxSpaceIdentical and BoxSpaceIndependent: exactly one of the two is
// set, and every method dispatches to it.
//
// A BoxSpace is created with the Box method of either variant.
type BoxSpace[E Number] struct {
	identical   *BoxSpaceIdentical[E]
	independent *BoxSpaceIndependent[E]
}

// BoxBound is a lower or upper bound of a BoxSpace. It holds either a
// scalar, for Identical boxes, or an Array, for Independent boxes.
type BoxBound[E Number] struct {
	variant BoxVariant
	scalar  E
	array   Array[E]
}

// Variant returns which kind of bound b holds
func (b BoxBound[E]) Variant() BoxVariant {
	return b.variant
}

// Scalar returns the bound shared by all elements, if b is Identical
func (b BoxBound[E]) Scalar() (E, bool) {
	return b.scalar, b.variant == Identical
}

// Array returns the per-element bounds, if b is Independent
func (b BoxBound[E]) Array() (Array[E], bool) {
	return b.array, b.variant == Independent
}

// At returns the bound of the element at flat index i
func (b BoxBound[E]) At(i int) E {
	if b.variant == Identical {
		return b.scalar
	}
	return b.array.data[i]
}

// Variant returns which representation the box holds
func (b *BoxSpace[E]) Variant() BoxVariant {
	if b.identical != nil {
		return Identical
	}
	return Independent
}

// Identical returns the underlying BoxSpaceIdentical, if any
func (b *BoxSpace[E]) Identical() (*BoxSpaceIdentical[E], bool) {
	return b.identical, b.identical != nil
}

// Independent returns the underlying BoxSpaceIndependent, if any
func (b *BoxSpace[E]) Independent() (*BoxSpaceIndependent[E], bool) {
	return b.independent, b.independent != nil
}

// Low returns the lower bounds of the space
func (b *BoxSpace[E]) Low() BoxBound[E] {
	if b.identical != nil {
		return BoxBound[E]{variant: Identical, scalar: b.identical.Low()}
	}
	return BoxBound[E]{variant: Independent, array: b.independent.Low()}
}

// High returns the upper bounds of the space
func (b *BoxSpace[E]) High() BoxBound[E] {
	if b.identical != nil {
		return BoxBound[E]{variant: Identical, scalar: b.identical.High()}
	}
	return BoxBound[E]{variant: Independent, array: b.independent.High()}
}

// BoundedBelow returns whether each element is bounded below
func (b *BoxSpace[E]) BoundedBelow() []bool {
	if b.identical != nil {
		return fill(b.identical.BoundedBelow(), b.identical.Shape().NumElements())
	}
	return b.independent.BoundedBelow()
}

// BoundedAbove returns whether each element is bounded above
func (b *BoxSpace[E]) BoundedAbove() []bool {
	if b.identical != nil {
		return fill(b.identical.BoundedAbove(), b.identical.Shape().NumElements())
	}
	return b.independent.BoundedAbove()
}

// IsBounded returns whether every element is bounded on both sides
func (b *BoxSpace[E]) IsBounded() bool {
	below, above := b.BoundedBelow(), b.BoundedAbove()
	for i := range below {
		if !below[i] || !above[i] {
			return false
		}
	}
	return true
}

// Shape returns the shape of values in the space
func (b *BoxSpace[E]) Shape() Shape {
	if b.identical != nil {
		return b.identical.Shape()
	}
	return b.independent.Shape()
}

// Dtype returns the element type of the space
func (b *BoxSpace[E]) Dtype() Dtype {
	return DtypeOf[E]()
}

// Seed seeds the sampler for the space
func (b *BoxSpace[E]) Seed(seed uint64) {
	if b.identical != nil {
		b.identical.Seed(seed)
		return
	}
	b.independent.Seed(seed)
}

// Sample takes a sample from within the spaces bounds
func (b *BoxSpace[E]) Sample() Array[E] {
	if b.identical != nil {
		return b.identical.Sample()
	}
	return b.independent.Sample()
}

// SampleValue returns Sample() as an interface{}
func (b *BoxSpace[E]) SampleValue() interface{} {
	return b.Sample()
}

// ContainsValue returns whether x is in the space
func (b *BoxSpace[E]) ContainsValue(x Array[E]) bool {
	if b.identical != nil {
		return b.identical.ContainsValue(x)
	}
	return b.independent.ContainsValue(x)
}

// Contains returns whether x is in the space
func (b *BoxSpace[E]) Contains(x interface{}) bool {
	if b.identical != nil {
		return b.identical.Contains(x)
	}
	return b.independent.Contains(x)
}

// Clip returns a copy of x with each element clamped to its bounds
func (b *BoxSpace[E]) Clip(x Array[E]) Array[E] {
	if b.identical != nil {
		return b.identical.Clip(x)
	}
	return b.independent.Clip(x)
}

// Clone returns a copy of the space that shares its sampler
func (b *BoxSpace[E]) Clone() *BoxSpace[E] {
	if b.identical != nil {
		return b.identical.Clone().Box()
	}
	return b.independent.Clone().Box()
}

// CloneSeeded returns a copy of the space with its own sampler seeded
// with seed
func (b *BoxSpace[E]) CloneSeeded(seed uint64) *BoxSpace[E] {
	if b.identical != nil {
		return b.identical.CloneSeeded(seed).Box()
	}
	return b.independent.CloneSeeded(seed).Box()
}

func (b *BoxSpace[E]) String() string {
	if b.identical != nil {
		return fmt.Sprintf("Box::%v", b.identical)
	}
	return fmt.Sprintf("Box::%v", b.independent)
}

func fill(v bool, n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = v
	}
	return out
}
