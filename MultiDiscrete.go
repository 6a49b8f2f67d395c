package gymspace

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
)

// MultiDiscreteSpace is the Cartesian product of DiscreteSpaces laid
// out in a shape: element i takes values in [start[i], start[i]+n[i]).
// It is typically used for game controllers or keyboards where each
// key is its own discrete action.
type MultiDiscreteSpace[E constraints.Integer] struct {
	rng           *Rng
	n, start, end Array[E]
}

// NewMultiDiscrete returns a new MultiDiscreteSpace with n[i] values
// starting at start[i] for each element i. The arrays are copied. It
// fails if n and start differ in shape, if any n[i] < 1, or if any
// start[i]+n[i] overflows E.
func NewMultiDiscrete[E constraints.Integer](n, start Array[E],
	opts ...Option) (*MultiDiscreteSpace[E], error) {
	if !n.shape.Equal(start.shape) || n.Len() != start.Len() {
		return nil, newSpaceError("newMultiDiscrete", -1, fmt.Sprintf("n and "+
			"start must have the same shape (n: %v, start: %v)", n.shape,
			start.shape))
	}
	if err := n.shape.validate("newMultiDiscrete"); err != nil {
		return nil, err
	}
	if n.Len() != n.shape.NumElements() {
		return nil, newSpaceError("newMultiDiscrete", -1, fmt.Sprintf("n of "+
			"length %v cannot have shape %v", n.Len(), n.shape))
	}

	_, hi := intLimits[E]()
	end := make([]E, n.Len())
	for i := range n.data {
		if n.data[i] < 1 {
			return nil, newSpaceError("newMultiDiscrete", i, fmt.Sprintf(
				"each element must have at least one value (n: %v)",
				n.data[i]))
		}
		if overflows(start.data[i], uint64(n.data[i])) {
			return nil, newSpaceError("newMultiDiscrete", i, fmt.Sprintf(
				"the space overflows the maximum value of the data type "+
					"(start: %v + n: %v > MAX: %v)", start.data[i], n.data[i],
				hi))
		}
		end[i] = start.data[i] + n.data[i]
	}

	return &MultiDiscreteSpace[E]{
		rng:   newRngFromOptions(resolve(opts)),
		n:     n.Clone(),
		start: start.Clone(),
		end:   Array[E]{shape: n.shape.Clone(), data: end},
	}, nil
}

// N returns the number of values of each element. The returned Array
// must not be modified.
func (m *MultiDiscreteSpace[E]) N() Array[E] {
	return m.n
}

// Start returns the smallest value of each element. The returned
// Array must not be modified.
func (m *MultiDiscreteSpace[E]) Start() Array[E] {
	return m.start
}

// End returns the exclusive upper bound of each element. The returned
// Array must not be modified.
func (m *MultiDiscreteSpace[E]) End() Array[E] {
	return m.end
}

// Shape returns the shape of values in the space
func (m *MultiDiscreteSpace[E]) Shape() Shape {
	return m.n.shape
}

// Dtype returns the element type of the space
func (m *MultiDiscreteSpace[E]) Dtype() Dtype {
	return DtypeOf[E]()
}

// Seed seeds the sampler for the space
func (m *MultiDiscreteSpace[E]) Seed(seed uint64) {
	m.rng.Seed(seed)
}

// Sample takes a sample from within the spaces bounds, drawing each
// element independently
func (m *MultiDiscreteSpace[E]) Sample() Array[E] {
	data := make([]E, m.n.Len())
	m.rng.Do(func(rnd *rand.Rand) {
		for i := range data {
			data[i] = uniformInt(rnd, m.start.data[i], m.end.data[i]-1)
		}
	})
	return Array[E]{shape: m.n.shape.Clone(), data: data}
}

// SampleValue returns Sample() as an interface{}
func (m *MultiDiscreteSpace[E]) SampleValue() interface{} {
	return m.Sample()
}

// ContainsValue returns whether x has the shape of the space and
// start[i] <= x[i] < end[i] for every element
func (m *MultiDiscreteSpace[E]) ContainsValue(x Array[E]) bool {
	if !x.shape.Equal(m.n.shape) || x.Len() != m.n.Len() {
		return false
	}
	for i, v := range x.data {
		if v < m.start.data[i] || v >= m.end.data[i] {
			return false
		}
	}
	return true
}

// Contains returns whether x is in the space. The argument x may be an
// Array[E] or a []E with as many elements as the space.
func (m *MultiDiscreteSpace[E]) Contains(x interface{}) bool {
	a, ok := asArray[E](x, m.n.shape)
	return ok && m.ContainsValue(a)
}

// Clone returns a copy of the space that shares its sampler
func (m *MultiDiscreteSpace[E]) Clone() *MultiDiscreteSpace[E] {
	return &MultiDiscreteSpace[E]{
		rng:   m.rng,
		n:     m.n.Clone(),
		start: m.start.Clone(),
		end:   m.end.Clone(),
	}
}

// CloneSeeded returns a copy of the space with its own sampler seeded
// with seed
func (m *MultiDiscreteSpace[E]) CloneSeeded(seed uint64) *MultiDiscreteSpace[E] {
	c := m.Clone()
	c.rng = NewRng(seed)
	return c
}

func (m *MultiDiscreteSpace[E]) String() string {
	return fmt.Sprintf("MultiDiscrete(shape: %v, n: %v, start: %v, dtype: %v)",
		m.n.shape, m.n.data, m.start.data, m.Dtype())
}
