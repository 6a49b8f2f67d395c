package gymspace

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// BoxSpaceIdentical is a box in which every element of a value shares
// the same closed interval [low, high]. Float bounds may be infinite,
// in which case the box is unbounded on that side.
type BoxSpaceIdentical[E Number] struct {
	rng       *Rng
	sampler   elementSampler[E]
	shape     Shape
	low, high E
}

// NewBoxIdentical returns a new BoxSpaceIdentical of the given shape
// whose elements all lie in [low, high]. It fails if low > high or if
// either bound is NaN.
func NewBoxIdentical[E Number](low, high E, shape Shape,
	opts ...Option) (*BoxSpaceIdentical[E], error) {
	if err := shape.validate("newBoxIdentical"); err != nil {
		return nil, err
	}
	if low != low || high != high {
		return nil, newSpaceError("newBoxIdentical", -1, fmt.Sprintf("bounds "+
			"cannot be NaN (low: %v, high: %v)", low, high))
	}
	if low > high {
		return nil, newSpaceError("newBoxIdentical", -1, fmt.Sprintf("the "+
			"lower bound cannot be greater than the upper bound (low: %v > "+
			"high: %v)", low, high))
	}

	rng := newRngFromOptions(resolve(opts))
	return &BoxSpaceIdentical[E]{
		rng:     rng,
		sampler: newElementSampler(low, high, rng.Source()),
		shape:   shape.Clone(),
		low:     low,
		high:    high,
	}, nil
}

// Low returns the lower bound shared by all elements
func (b *BoxSpaceIdentical[E]) Low() E {
	return b.low
}

// High returns the upper bound shared by all elements
func (b *BoxSpaceIdentical[E]) High() E {
	return b.high
}

// BoundedBelow returns whether the space is bounded below
func (b *BoxSpaceIdentical[E]) BoundedBelow() bool {
	return boundedBelow(float64(b.low))
}

// BoundedAbove returns whether the space is bounded above
func (b *BoxSpaceIdentical[E]) BoundedAbove() bool {
	return boundedAbove(float64(b.high))
}

// Shape returns the shape of values in the space
func (b *BoxSpaceIdentical[E]) Shape() Shape {
	return b.shape
}

// Dtype returns the element type of the space
func (b *BoxSpaceIdentical[E]) Dtype() Dtype {
	return DtypeOf[E]()
}

// Seed seeds the sampler for the space
func (b *BoxSpaceIdentical[E]) Seed(seed uint64) {
	b.rng.Seed(seed)
}

// Sample takes a sample from within the spaces bounds. Each element
// is drawn independently.
func (b *BoxSpaceIdentical[E]) Sample() Array[E] {
	data := make([]E, b.shape.NumElements())
	b.rng.Do(func(rnd *rand.Rand) {
		for i := range data {
			data[i] = b.sampler(rnd)
		}
	})
	return Array[E]{shape: b.shape.Clone(), data: data}
}

// SampleValue returns Sample() as an interface{}
func (b *BoxSpaceIdentical[E]) SampleValue() interface{} {
	return b.Sample()
}

// ContainsValue returns whether x has the shape of the space and every
// element lies in [low, high]
func (b *BoxSpaceIdentical[E]) ContainsValue(x Array[E]) bool {
	if !x.shape.Equal(b.shape) || len(x.data) != b.shape.NumElements() {
		return false
	}
	for _, v := range x.data {
		if !(b.low <= v && v <= b.high) {
			return false
		}
	}
	return true
}

// Contains returns whether x is in the space. The argument x may be an
// Array[E], a []E with as many elements as the space or, for float64
// spaces, a *mat.VecDense.
func (b *BoxSpaceIdentical[E]) Contains(x interface{}) bool {
	a, ok := asArray[E](x, b.shape)
	return ok && b.ContainsValue(a)
}

// Clip returns a copy of x with each element clamped to [low, high]
func (b *BoxSpaceIdentical[E]) Clip(x Array[E]) Array[E] {
	out := x.Clone()
	for i, v := range out.data {
		if v < b.low {
			out.data[i] = b.low
		} else if v > b.high {
			out.data[i] = b.high
		}
	}
	return out
}

// Box returns the space as a BoxSpace
func (b *BoxSpaceIdentical[E]) Box() *BoxSpace[E] {
	return &BoxSpace[E]{identical: b}
}

// Clone returns a copy of the space that shares its sampler
func (b *BoxSpaceIdentical[E]) Clone() *BoxSpaceIdentical[E] {
	return b.withRng(b.rng)
}

// CloneSeeded returns a copy of the space with its own sampler seeded
// with seed
func (b *BoxSpaceIdentical[E]) CloneSeeded(seed uint64) *BoxSpaceIdentical[E] {
	return b.withRng(NewRng(seed))
}

func (b *BoxSpaceIdentical[E]) withRng(rng *Rng) *BoxSpaceIdentical[E] {
	return &BoxSpaceIdentical[E]{
		rng:     rng,
		sampler: newElementSampler(b.low, b.high, rng.Source()),
		shape:   b.shape.Clone(),
		low:     b.low,
		high:    b.high,
	}
}

func (b *BoxSpaceIdentical[E]) String() string {
	return fmt.Sprintf("BoxIdentical(shape: %v, low: %v, high: %v, dtype: %v)",
		b.shape, b.low, b.high, b.Dtype())
}
