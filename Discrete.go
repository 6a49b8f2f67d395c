package gymspace

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
)

// DiscreteSpace represents a space of n consecutive integers:
// (start, start+1, ..., start+n-1). The upper bound End() = start+n is
// exclusive, unlike the bounds of a BoxSpace.
type DiscreteSpace[E constraints.Integer] struct {
	rng   *Rng
	n     int
	start E
	end   E
}

// NewDiscrete returns a new DiscreteSpace with n elements starting at
// start. It fails if n < 1 or if start+n overflows E.
func NewDiscrete[E constraints.Integer](n int, start E,
	opts ...Option) (*DiscreteSpace[E], error) {
	if n < 1 {
		return nil, newSpaceError("newDiscrete", -1, fmt.Sprintf("the space "+
			"must have at least one element (n: %v)", n))
	}
	if overflows(start, uint64(n)) {
		_, hi := intLimits[E]()
		return nil, newSpaceError("newDiscrete", -1, fmt.Sprintf("the space "+
			"overflows the maximum value of the data type (start: %v + n: %v "+
			"> MAX: %v)", start, n, hi))
	}

	return &DiscreteSpace[E]{
		rng:   newRngFromOptions(resolve(opts)),
		n:     n,
		start: start,
		end:   E(uint64(start) + uint64(n)),
	}, nil
}

// N returns the number of elements in the space
func (d *DiscreteSpace[E]) N() int {
	return d.n
}

// Start returns the smallest element of the space
func (d *DiscreteSpace[E]) Start() E {
	return d.start
}

// End returns the exclusive upper bound of the space
func (d *DiscreteSpace[E]) End() E {
	return d.end
}

// Shape returns the rank-0 shape of a discrete value
func (d *DiscreteSpace[E]) Shape() Shape {
	return Shape{}
}

// Dtype returns the element type of the space
func (d *DiscreteSpace[E]) Dtype() Dtype {
	return DtypeOf[E]()
}

// Seed seeds the sampler for the space
func (d *DiscreteSpace[E]) Seed(seed uint64) {
	d.rng.Seed(seed)
}

// Sample takes a sample from within the spaces bounds
func (d *DiscreteSpace[E]) Sample() E {
	var v E
	d.rng.Do(func(rnd *rand.Rand) {
		v = uniformInt(rnd, d.start, d.end-1)
	})
	return v
}

// SampleValue returns Sample() as an interface{}
func (d *DiscreteSpace[E]) SampleValue() interface{} {
	return d.Sample()
}

// ContainsValue returns whether v is in the space
func (d *DiscreteSpace[E]) ContainsValue(v E) bool {
	return v >= d.start && v < d.end
}

// Contains returns whether x is in the space. The argument x may be an
// E, or an Array[E] or []E holding a single element.
func (d *DiscreteSpace[E]) Contains(x interface{}) bool {
	switch v := x.(type) {
	case E:
		return d.ContainsValue(v)
	case []E:
		return len(v) == 1 && d.ContainsValue(v[0])
	case Array[E]:
		return v.Len() == 1 && len(v.Shape()) <= 1 &&
			d.ContainsValue(v.Data()[0])
	default:
		return false
	}
}

// Clone returns a copy of the space that shares its sampler
func (d *DiscreteSpace[E]) Clone() *DiscreteSpace[E] {
	c := *d
	return &c
}

// CloneSeeded returns a copy of the space with its own sampler seeded
// with seed
func (d *DiscreteSpace[E]) CloneSeeded(seed uint64) *DiscreteSpace[E] {
	c := d.Clone()
	c.rng = NewRng(seed)
	return c
}

func (d *DiscreteSpace[E]) String() string {
	return fmt.Sprintf("Discrete(n: %v, start: %v, end: %v, dtype: %v)",
		d.n, d.start, d.end, d.Dtype())
}
