package gymspace

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// MultiBinarySpace is a fixed-shape array of binary values. Any
// combination of booleans of the declared shape is in the space.
type MultiBinarySpace struct {
	rng   *Rng
	coin  distuv.Bernoulli
	shape Shape
}

// NewMultiBinary returns a new MultiBinarySpace with the given shape.
// It only fails if an extent of the shape is negative.
func NewMultiBinary(shape Shape, opts ...Option) (*MultiBinarySpace, error) {
	if err := shape.validate("newMultiBinary"); err != nil {
		return nil, err
	}
	return newMultiBinary(shape.Clone(), newRngFromOptions(resolve(opts))), nil
}

func newMultiBinary(shape Shape, rng *Rng) *MultiBinarySpace {
	return &MultiBinarySpace{
		rng:   rng,
		coin:  distuv.Bernoulli{P: 0.5, Src: rng.Source()},
		shape: shape,
	}
}

// Shape returns the shape of values in the space
func (m *MultiBinarySpace) Shape() Shape {
	return m.shape
}

// Dtype returns Bool
func (m *MultiBinarySpace) Dtype() Dtype {
	return Bool
}

// Seed seeds the sampler for the space
func (m *MultiBinarySpace) Seed(seed uint64) {
	m.rng.Seed(seed)
}

// Sample flips a fair coin for each element
func (m *MultiBinarySpace) Sample() Array[bool] {
	data := make([]bool, m.shape.NumElements())
	m.rng.Do(func(*rand.Rand) {
		for i := range data {
			data[i] = m.coin.Rand() == 1
		}
	})
	return Array[bool]{shape: m.shape.Clone(), data: data}
}

// SampleValue returns Sample() as an interface{}
func (m *MultiBinarySpace) SampleValue() interface{} {
	return m.Sample()
}

// ContainsValue returns whether x has the shape of the space
func (m *MultiBinarySpace) ContainsValue(x Array[bool]) bool {
	return x.shape.Equal(m.shape) && x.Len() == m.shape.NumElements()
}

// Contains returns whether x is in the space. The argument x may be an
// Array[bool] or a []bool with as many elements as the space.
func (m *MultiBinarySpace) Contains(x interface{}) bool {
	a, ok := asArray[bool](x, m.shape)
	return ok && m.ContainsValue(a)
}

// Clone returns a copy of the space that shares its sampler
func (m *MultiBinarySpace) Clone() *MultiBinarySpace {
	return newMultiBinary(m.shape.Clone(), m.rng)
}

// CloneSeeded returns a copy of the space with its own sampler seeded
// with seed
func (m *MultiBinarySpace) CloneSeeded(seed uint64) *MultiBinarySpace {
	return newMultiBinary(m.shape.Clone(), NewRng(seed))
}

func (m *MultiBinarySpace) String() string {
	return fmt.Sprintf("MultiBinary(shape: %v)", m.shape)
}
