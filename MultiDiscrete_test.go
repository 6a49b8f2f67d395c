package gymspace_test

import (
	"errors"
	"testing"

	"github.com/samuelfneumann/gymspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiDiscreteContains(t *testing.T) {
	m, err := gymspace.NewMultiDiscrete(gymspace.Vector(3, 4, 5),
		gymspace.Vector(0, 0, 0))
	require.NoError(t, err)

	assert.True(t, m.Contains(gymspace.Vector(0, 0, 0)))
	assert.True(t, m.Contains(gymspace.Vector(2, 3, 4)))
	assert.True(t, m.Contains([]int{1, 1, 1}))
	assert.False(t, m.Contains(gymspace.Vector(3, 0, 0)))
	assert.False(t, m.Contains(gymspace.Vector(0, -1, 0)))
	assert.False(t, m.Contains(gymspace.Vector(0, 0)))
	assert.False(t, m.Contains(gymspace.Vector[int64](0, 0, 0)))

	assert.Equal(t, []int{3, 4, 5}, m.End().Data())
	assert.Equal(t, gymspace.Shape{3}, m.Shape())
	assert.Equal(t, gymspace.Int, m.Dtype())
}

func TestMultiDiscreteStart(t *testing.T) {
	n := mustArray(t, []int8{3, 3, 1, 2}, gymspace.Shape{2, 2})
	start := mustArray(t, []int8{-5, 10, 0, 125}, gymspace.Shape{2, 2})
	m, err := gymspace.NewMultiDiscrete(n, start, gymspace.WithSeed(4))
	require.NoError(t, err)

	assert.Equal(t, []int8{-2, 13, 1, 127}, m.End().Data())
	for i := 0; i < 1000; i++ {
		x := m.Sample()
		require.True(t, m.ContainsValue(x))
		assert.Equal(t, int8(0), x.At(1, 0))
	}
}

func TestMultiDiscreteInvalid(t *testing.T) {
	var spaceErr *gymspace.SpaceError

	_, err := gymspace.NewMultiDiscrete(gymspace.Vector[uint8](1, 2),
		gymspace.Vector[uint8](0, 254))
	require.ErrorIs(t, err, gymspace.ErrInvalidSpace)
	require.True(t, errors.As(err, &spaceErr))
	assert.Equal(t, 1, spaceErr.Index)

	_, err = gymspace.NewMultiDiscrete(gymspace.Vector(2, 0, 2),
		gymspace.Vector(0, 0, 0))
	require.True(t, errors.As(err, &spaceErr))
	assert.Equal(t, 1, spaceErr.Index)

	_, err = gymspace.NewMultiDiscrete(gymspace.Vector(2, 2, -1),
		gymspace.Vector(0, 0, 0))
	require.True(t, errors.As(err, &spaceErr))
	assert.Equal(t, 2, spaceErr.Index)

	_, err = gymspace.NewMultiDiscrete(gymspace.Vector(2, 2),
		gymspace.Vector(0, 0, 0))
	require.True(t, errors.As(err, &spaceErr))
	assert.Equal(t, -1, spaceErr.Index)
}

func TestMultiDiscreteArgumentsCopied(t *testing.T) {
	n, start := gymspace.Vector(2, 2), gymspace.Vector(0, 0)
	m, err := gymspace.NewMultiDiscrete(n, start)
	require.NoError(t, err)

	n.Data()[0] = 100
	start.Data()[0] = -100
	assert.False(t, m.Contains(gymspace.Vector(50, 0)))
	assert.False(t, m.Contains(gymspace.Vector(-50, 0)))
}
