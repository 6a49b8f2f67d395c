package wrappers_test

import (
	"testing"

	"github.com/samuelfneumann/gymspace"
	"github.com/samuelfneumann/gymspace/wrappers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFlattenObservation(t *testing.T) {
	env, err := wrappers.NewFlattenObservation(newPointEnv())
	require.NoError(t, err)

	assert.Equal(t, gymspace.Shape{4}, env.ObservationSpace().Shape())

	// Reset the environment
	obs, err := env.Reset()
	require.NoError(t, err)
	assert.True(t, env.ObservationSpace().Contains(obs))

	// Take an environmental step
	result, err := env.Step(gymspace.Vector(0.5, -0.5))
	require.NoError(t, err)
	flat, ok := result.Observation.(gymspace.Array[float64])
	require.True(t, ok)
	assert.Equal(t, []float64{0.5, -0.5, 0, 0}, flat.Data())
	assert.True(t, env.ObservationSpace().Contains(flat))

	// Test the observation flattening function
	x, err := env.(*wrappers.FlattenObservation).Observation([]float64{
		0.1,
		0.1,
	})
	require.NoError(t, err)
	assert.Equal(t, gymspace.Shape{2}, x.Shape())

	_, err = env.(*wrappers.FlattenObservation).Observation(struct{}{})
	assert.Error(t, err)
}
