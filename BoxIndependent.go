package gymspace

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distmv"
)

// BoxSpaceIndependent represents a (possibly unbounded) box in which
// each element has its own closed interval [low[i], high[i]]. For
// float elements the interval may be (-∞, b], [a, ∞) or (-∞, ∞).
type BoxSpaceIndependent[E Number] struct {
	rng *Rng

	// Per-element samplers, or a single multivariate uniform when the
	// box is float-valued and bounded everywhere
	samplers []elementSampler[E]
	uniform  *distmv.Uniform

	low, high                  Array[E]
	boundedBelow, boundedAbove []bool
}

// NewBoxIndependent returns a new BoxSpaceIndependent with the given
// per-element bounds. The bounds are copied. It fails if low and high
// differ in shape, if any bound is NaN, or at the first index where
// low[i] > high[i].
func NewBoxIndependent[E Number](low, high Array[E],
	opts ...Option) (*BoxSpaceIndependent[E], error) {
	if !low.shape.Equal(high.shape) || low.Len() != high.Len() {
		return nil, newSpaceError("newBoxIndependent", -1, fmt.Sprintf("low "+
			"and high must have the same shape (low: %v, high: %v)",
			low.shape, high.shape))
	}
	if err := low.shape.validate("newBoxIndependent"); err != nil {
		return nil, err
	}
	if low.Len() != low.shape.NumElements() {
		return nil, newSpaceError("newBoxIndependent", -1, fmt.Sprintf("bounds "+
			"of length %v cannot have shape %v", low.Len(), low.shape))
	}
	for i := range low.data {
		l, h := low.data[i], high.data[i]
		if l != l || h != h {
			return nil, newSpaceError("newBoxIndependent", i, fmt.Sprintf(
				"bounds cannot be NaN (low: %v, high: %v)", l, h))
		}
		if l > h {
			return nil, newSpaceError("newBoxIndependent", i, fmt.Sprintf(
				"the lower bound cannot be greater than the upper bound "+
					"(low: %v > high: %v)", l, h))
		}
	}

	b := &BoxSpaceIndependent[E]{
		low:          low.Clone(),
		high:         high.Clone(),
		boundedBelow: make([]bool, low.Len()),
		boundedAbove: make([]bool, low.Len()),
	}
	for i := range b.boundedBelow {
		b.boundedBelow[i] = boundedBelow(float64(low.data[i]))
		b.boundedAbove[i] = boundedAbove(float64(high.data[i]))
	}
	b.setRng(newRngFromOptions(resolve(opts)))

	return b, nil
}

// setRng installs rng and rebuilds every distribution on its source
func (b *BoxSpaceIndependent[E]) setRng(rng *Rng) {
	b.rng = rng
	b.samplers = nil
	b.uniform = nil

	if DtypeOf[E]().IsFloat() && b.low.Len() > 0 && b.finite() {
		bounds := make([]r1.Interval, b.low.Len())
		for i := range bounds {
			bounds[i] = r1.Interval{
				Min: float64(b.low.data[i]),
				Max: float64(b.high.data[i]),
			}
		}
		b.uniform = distmv.NewUniform(bounds, rng.Source())
		return
	}

	b.samplers = make([]elementSampler[E], b.low.Len())
	for i := range b.samplers {
		b.samplers[i] = newElementSampler(b.low.data[i], b.high.data[i],
			rng.Source())
	}
}

// finite returns whether every element is bounded on both sides with
// an interval whose width is representable
func (b *BoxSpaceIndependent[E]) finite() bool {
	for i := range b.low.data {
		if !b.boundedBelow[i] || !b.boundedAbove[i] {
			return false
		}
		if math.IsInf(float64(b.high.data[i])-float64(b.low.data[i]), 0) {
			return false
		}
	}
	return true
}

// Low returns the lower bounds of the space. The returned Array must
// not be modified.
func (b *BoxSpaceIndependent[E]) Low() Array[E] {
	return b.low
}

// High returns the upper bounds of the space. The returned Array must
// not be modified.
func (b *BoxSpaceIndependent[E]) High() Array[E] {
	return b.high
}

// BoundedAbove returns whether each element is bounded above
func (b *BoxSpaceIndependent[E]) BoundedAbove() []bool {
	return b.boundedAbove
}

// BoundedBelow returns whether each element is bounded below
func (b *BoxSpaceIndependent[E]) BoundedBelow() []bool {
	return b.boundedBelow
}

// Shape returns the shape of values in the space
func (b *BoxSpaceIndependent[E]) Shape() Shape {
	return b.low.shape
}

// Dtype returns the element type of the space
func (b *BoxSpaceIndependent[E]) Dtype() Dtype {
	return DtypeOf[E]()
}

// Seed seeds the sampler for the space
func (b *BoxSpaceIndependent[E]) Seed(seed uint64) {
	b.rng.Seed(seed)
}

// Sample takes a sample from within the spaces bounds, drawing each
// element from its own distribution
func (b *BoxSpaceIndependent[E]) Sample() Array[E] {
	data := make([]E, b.low.Len())
	b.rng.Do(func(rnd *rand.Rand) {
		if b.uniform != nil {
			sample := b.uniform.Rand(nil)
			for i := range data {
				data[i] = E(clamp(sample[i], float64(b.low.data[i]),
					float64(b.high.data[i])))
			}
			return
		}
		for i, sampler := range b.samplers {
			data[i] = sampler(rnd)
		}
	})
	return Array[E]{shape: b.low.shape.Clone(), data: data}
}

// SampleValue returns Sample() as an interface{}
func (b *BoxSpaceIndependent[E]) SampleValue() interface{} {
	return b.Sample()
}

// ContainsValue returns whether x has the shape of the space and
// low[i] <= x[i] <= high[i] for every element
func (b *BoxSpaceIndependent[E]) ContainsValue(x Array[E]) bool {
	if !x.shape.Equal(b.low.shape) || x.Len() != b.low.Len() {
		return false
	}
	for i, v := range x.data {
		if !(b.low.data[i] <= v && v <= b.high.data[i]) {
			return false
		}
	}
	return true
}

// Contains returns whether x is in the space. The argument x may be an
// Array[E], a []E with as many elements as the space or, for float64
// spaces, a *mat.VecDense.
func (b *BoxSpaceIndependent[E]) Contains(x interface{}) bool {
	a, ok := asArray[E](x, b.low.shape)
	return ok && b.ContainsValue(a)
}

// Clip returns a copy of x with each element clamped to its bounds.
// x must have the shape of the space.
func (b *BoxSpaceIndependent[E]) Clip(x Array[E]) Array[E] {
	out := x.Clone()
	for i, v := range out.data {
		if v < b.low.data[i] {
			out.data[i] = b.low.data[i]
		} else if v > b.high.data[i] {
			out.data[i] = b.high.data[i]
		}
	}
	return out
}

// Box returns the space as a BoxSpace
func (b *BoxSpaceIndependent[E]) Box() *BoxSpace[E] {
	return &BoxSpace[E]{independent: b}
}

// Clone returns a copy of the space that shares its sampler. Bounds
// are copied and distributions rebuilt.
func (b *BoxSpaceIndependent[E]) Clone() *BoxSpaceIndependent[E] {
	return b.withRng(b.rng)
}

// CloneSeeded returns a copy of the space with its own sampler seeded
// with seed
func (b *BoxSpaceIndependent[E]) CloneSeeded(seed uint64) *BoxSpaceIndependent[E] {
	return b.withRng(NewRng(seed))
}

func (b *BoxSpaceIndependent[E]) withRng(rng *Rng) *BoxSpaceIndependent[E] {
	c := &BoxSpaceIndependent[E]{
		low:          b.low.Clone(),
		high:         b.high.Clone(),
		boundedBelow: append([]bool(nil), b.boundedBelow...),
		boundedAbove: append([]bool(nil), b.boundedAbove...),
	}
	c.setRng(rng)
	return c
}

func (b *BoxSpaceIndependent[E]) String() string {
	return fmt.Sprintf("BoxIndependent(shape: %v, low: %v, high: %v, "+
		"dtype: %v)", b.low.shape, b.low.data, b.high.data, b.Dtype())
}
