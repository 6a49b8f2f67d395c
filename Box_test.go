package gymspace_test

import (
	"errors"
	"math"
	"testing"

	"github.com/samuelfneumann/gymspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestBoxIdenticalContains(t *testing.T) {
	b, err := gymspace.NewBoxIdentical(-1.0, 1.0, gymspace.Shape{3})
	require.NoError(t, err)

	assert.True(t, b.Contains(gymspace.Vector(-1.0, 0, 1.0)), "bounds are inclusive")
	assert.True(t, b.Contains([]float64{0.5, -0.5, 0}))
	assert.True(t, b.Contains(mat.NewVecDense(3, []float64{0, 0, 0})))
	assert.False(t, b.Contains(gymspace.Vector(-1.0, 0, 1.0001)))
	assert.False(t, b.Contains(gymspace.Vector(-1.5, 0, 0)))
	assert.False(t, b.Contains(gymspace.Vector(0.0, 0)), "wrong shape")
	assert.False(t, b.Contains(gymspace.Filled(0.0, gymspace.Shape{3, 1})),
		"wrong shape")
	assert.False(t, b.Contains(gymspace.Vector[float32](0, 0, 0)),
		"wrong element type")
	assert.False(t, b.Contains(gymspace.Vector(0.0, math.NaN(), 0)))

	assert.Equal(t, -1.0, b.Low())
	assert.Equal(t, 1.0, b.High())
	assert.True(t, b.BoundedBelow())
	assert.True(t, b.BoundedAbove())
	assert.Equal(t, gymspace.Float64, b.Dtype())
}

func TestBoxIdenticalInvalid(t *testing.T) {
	_, err := gymspace.NewBoxIdentical(1.0, -1.0, gymspace.Shape{2})
	assert.ErrorIs(t, err, gymspace.ErrInvalidSpace)

	_, err = gymspace.NewBoxIdentical(math.NaN(), 1.0, gymspace.Shape{2})
	assert.ErrorIs(t, err, gymspace.ErrInvalidSpace)

	_, err = gymspace.NewBoxIdentical[int](0, 1, gymspace.Shape{2, -1})
	require.ErrorIs(t, err, gymspace.ErrInvalidSpace)
	var spaceErr *gymspace.SpaceError
	require.True(t, errors.As(err, &spaceErr))
	assert.Equal(t, 1, spaceErr.Index)
}

func TestBoxIdenticalDegenerate(t *testing.T) {
	b, err := gymspace.NewBoxIdentical[int32](4, 4, gymspace.Shape{2, 2})
	require.NoError(t, err)
	assert.True(t, gymspace.Equal(gymspace.Filled[int32](4, gymspace.Shape{2, 2}),
		b.Sample()))

	f, err := gymspace.NewBoxIdentical(0.25, 0.25, gymspace.Shape{3})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 0.25, 0.25}, f.Sample().Data())

	empty, err := gymspace.NewBoxIdentical(0.0, 1.0, gymspace.Shape{0})
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Sample().Len())
	assert.True(t, empty.Contains([]float64{}))
}

func TestBoxIdenticalFullIntegerRange(t *testing.T) {
	b, err := gymspace.NewBoxIdentical[int64](math.MinInt64, math.MaxInt64,
		gymspace.Shape{8}, gymspace.WithSeed(3))
	require.NoError(t, err)
	checkSamples(t, b, 1000)

	u, err := gymspace.NewBoxIdentical[uint8](0, math.MaxUint8,
		gymspace.Shape{16}, gymspace.WithSeed(3))
	require.NoError(t, err)
	checkSamples(t, u, 1000)
}

func TestBoxIndependentContains(t *testing.T) {
	b, err := gymspace.NewBoxIndependent(gymspace.Vector[uint8](0, 10),
		gymspace.Vector[uint8](5, 20))
	require.NoError(t, err)

	assert.True(t, b.Contains(gymspace.Vector[uint8](5, 10)))
	assert.True(t, b.Contains([]uint8{0, 20}))
	assert.False(t, b.Contains(gymspace.Vector[uint8](6, 10)))
	assert.False(t, b.Contains(gymspace.Vector[uint8](0, 9)))
	assert.False(t, b.Contains(gymspace.Vector[uint8](0, 21)))

	f, err := gymspace.NewBoxIndependent(gymspace.Vector[float32](-1, 0),
		gymspace.Vector[float32](1, 0.5))
	require.NoError(t, err)
	assert.True(t, f.Contains(gymspace.Vector[float32](-1, 0.5)))
	assert.False(t, f.Contains(gymspace.Vector[float32](0, 0.6)))
	assert.False(t, f.Contains(gymspace.Vector(0.0, 0.1)), "wrong element type")
}

func TestBoxIndependentInvalid(t *testing.T) {
	_, err := gymspace.NewBoxIndependent(gymspace.Vector(0.0, 5, 0),
		gymspace.Vector(1.0, 4, 1))
	require.ErrorIs(t, err, gymspace.ErrInvalidSpace)
	var spaceErr *gymspace.SpaceError
	require.True(t, errors.As(err, &spaceErr))
	assert.Equal(t, "newBoxIndependent", spaceErr.Op)
	assert.Equal(t, 1, spaceErr.Index)
	assert.Contains(t, err.Error(), "(at index 1)")

	_, err = gymspace.NewBoxIndependent(gymspace.Vector(0.0, 0),
		gymspace.Vector(1.0, math.NaN()))
	require.True(t, errors.As(err, &spaceErr))
	assert.Equal(t, 1, spaceErr.Index)

	_, err = gymspace.NewBoxIndependent(gymspace.Vector(0.0, 0),
		gymspace.Vector(1.0, 1, 1))
	require.True(t, errors.As(err, &spaceErr))
	assert.Equal(t, -1, spaceErr.Index)
}

func TestBoxIndependentBoundsCopied(t *testing.T) {
	low, high := gymspace.Vector(0.0, 0), gymspace.Vector(1.0, 1)
	b, err := gymspace.NewBoxIndependent(low, high)
	require.NoError(t, err)

	low.Data()[0] = 5
	high.Data()[1] = -5
	assert.Equal(t, []float64{0, 0}, b.Low().Data())
	assert.Equal(t, []float64{1, 1}, b.High().Data())
}

func TestBoxUnbounded(t *testing.T) {
	inf := math.Inf(1)

	tests := []struct {
		name      string
		low, high float64
		check     func(float64) bool
	}{
		{"Unbounded", -inf, inf, func(v float64) bool {
			return !math.IsInf(v, 0) && !math.IsNaN(v)
		}},
		{"BoundedBelow", 2, inf, func(v float64) bool {
			return v >= 2 && !math.IsInf(v, 0)
		}},
		{"BoundedAbove", -inf, -2, func(v float64) bool {
			return v <= -2 && !math.IsInf(v, 0)
		}},
		{"Huge", -math.MaxFloat64, math.MaxFloat64, func(v float64) bool {
			return !math.IsInf(v, 0) && !math.IsNaN(v)
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			identical, err := gymspace.NewBoxIdentical(test.low, test.high,
				gymspace.Shape{4}, gymspace.WithSeed(9))
			require.NoError(t, err)
			independent, err := gymspace.NewBoxIndependent(
				gymspace.Filled(test.low, gymspace.Shape{2, 2}),
				gymspace.Filled(test.high, gymspace.Shape{2, 2}),
				gymspace.WithSeed(9))
			require.NoError(t, err)

			for _, b := range []*gymspace.BoxSpace[float64]{identical.Box(),
				independent.Box()} {
				assert.Equal(t, !math.IsInf(test.low, -1), b.BoundedBelow()[0])
				assert.Equal(t, !math.IsInf(test.high, 1), b.BoundedAbove()[0])
				for i := 0; i < 1000; i++ {
					x := b.Sample()
					require.True(t, b.ContainsValue(x))
					for _, v := range x.Data() {
						require.True(t, test.check(v), "bad sample %v", v)
					}
				}
			}
		})
	}
}

func TestBoxIndependentMixedBounds(t *testing.T) {
	inf := math.Inf(1)
	b, err := gymspace.NewBoxIndependent(gymspace.Vector(-inf, 0, -1, -inf),
		gymspace.Vector(inf, inf, 1, 3), gymspace.WithSeed(1))
	require.NoError(t, err)

	assert.Equal(t, []bool{false, true, true, false}, b.BoundedBelow())
	assert.Equal(t, []bool{false, false, true, true}, b.BoundedAbove())
	assert.False(t, b.Box().IsBounded())
	checkSamples(t, b, 10000)
}

func TestBoxUnion(t *testing.T) {
	identical, err := gymspace.NewBoxIdentical(-1.0, 1.0, gymspace.Shape{3})
	require.NoError(t, err)
	independent, err := gymspace.NewBoxIndependent(gymspace.Vector(0.0, 1, 2),
		gymspace.Vector(1.0, 2, 3))
	require.NoError(t, err)

	b := identical.Box()
	assert.Equal(t, gymspace.Identical, b.Variant())
	low, ok := b.Low().Scalar()
	assert.True(t, ok)
	assert.Equal(t, -1.0, low)
	_, ok = b.Low().Array()
	assert.False(t, ok)
	assert.Equal(t, 1.0, b.High().At(2))
	_, ok = b.Independent()
	assert.False(t, ok)
	inner, ok := b.Identical()
	assert.True(t, ok)
	assert.Same(t, identical, inner)
	assert.Equal(t, []bool{true, true, true}, b.BoundedBelow())
	assert.True(t, b.IsBounded())

	b = independent.Box()
	assert.Equal(t, gymspace.Independent, b.Variant())
	_, ok = b.High().Scalar()
	assert.False(t, ok)
	high, ok := b.High().Array()
	assert.True(t, ok)
	assert.Equal(t, []float64{1, 2, 3}, high.Data())
	assert.Equal(t, 1.0, b.Low().At(1))
	assert.Equal(t, gymspace.Shape{3}, b.Shape())
	assert.Equal(t, "Independent", b.Variant().String())

	assert.True(t, b.Contains(gymspace.Vector(0.5, 1.5, 2.5)))
	assert.False(t, b.Contains(gymspace.Vector(0.5, 1.5, 3.5)))
}

func TestBoxClip(t *testing.T) {
	identical, err := gymspace.NewBoxIdentical(-1.0, 1.0, gymspace.Shape{3})
	require.NoError(t, err)
	x := gymspace.Vector(-2.0, 0.5, 7)
	assert.Equal(t, []float64{-1, 0.5, 1}, identical.Clip(x).Data())
	assert.Equal(t, []float64{-2, 0.5, 7}, x.Data(), "input must not change")

	independent, err := gymspace.NewBoxIndependent(gymspace.Vector(0, 10),
		gymspace.Vector(5, 20))
	require.NoError(t, err)
	assert.Equal(t, []int{5, 10}, independent.Box().Clip(gymspace.Vector(6, 3)).Data())
}

func TestBoxString(t *testing.T) {
	b, err := gymspace.NewBoxIdentical(-1.0, 1.0, gymspace.Shape{2})
	require.NoError(t, err)
	assert.Equal(t, "Box::BoxIdentical(shape: (2,), low: -1, high: 1, "+
		"dtype: float64)", b.Box().String())
}
