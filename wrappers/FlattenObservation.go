package wrappers

import (
	"fmt"

	"github.com/samuelfneumann/gymspace"
)

// FlattenObservation wraps a gymspace.Environment and flattens the
// observations into one-dimensional float64 Arrays.
//
// The observation space of the wrapped environment must be a float64
// BoxSpace. The observation space of the wrapper is the same box with
// its bounds flattened.
//
// https://github.com/Farama-Foundation/Gymnasium/blob/main/gymnasium/wrappers/transform_observation.py
type FlattenObservation struct {
	gymspace.Environment
	observationSpace *gymspace.BoxSpace[float64]
}

// NewFlattenObservation returns a new gymspace.Environment that
// flattens state observations
func NewFlattenObservation(env gymspace.Environment) (gymspace.Environment,
	error) {
	box, ok := floatBox(env.ObservationSpace())
	if !ok {
		return nil, fmt.Errorf("newFlattenObservation: observation space %v "+
			"is not a float64 BoxSpace", env.ObservationSpace())
	}

	flat := gymspace.Shape{box.Shape().NumElements()}
	var obsSpace *gymspace.BoxSpace[float64]
	if low, ok := box.Low().Scalar(); ok {
		high, _ := box.High().Scalar()
		space, err := gymspace.NewBoxIdentical(low, high, flat)
		if err != nil {
			return nil, fmt.Errorf("newFlattenObservation: could not "+
				"create observation space: %w", err)
		}
		obsSpace = space.Box()
	} else {
		lowArr, _ := box.Low().Array()
		highArr, _ := box.High().Array()
		space, err := gymspace.NewBoxIndependent(
			gymspace.Vector(lowArr.Data()...),
			gymspace.Vector(highArr.Data()...),
		)
		if err != nil {
			return nil, fmt.Errorf("newFlattenObservation: could not "+
				"create observation space: %w", err)
		}
		obsSpace = space.Box()
	}

	return &FlattenObservation{
		Environment:      env,
		observationSpace: obsSpace,
	}, nil
}

// ObservationSpace returns the flattened observation space
func (f *FlattenObservation) ObservationSpace() gymspace.Space {
	return f.observationSpace
}

// Observation returns a flattened version of some observation x.
// The argument x must be a valid argument to gymspace.Flatten.
func (f *FlattenObservation) Observation(x interface{}) (gymspace.Array[float64],
	error) {
	data, err := gymspace.Flatten(x)
	if err != nil {
		return gymspace.Array[float64]{}, fmt.Errorf("observation: %w", err)
	}
	return gymspace.Vector(data...), nil
}

// Reset resets the wrapped environment and flattens the starting
// observation
func (f *FlattenObservation) Reset() (interface{}, error) {
	obs, err := f.Environment.Reset()
	if err != nil {
		return nil, err
	}
	return f.Observation(obs)
}

// Step steps the wrapped environment and flattens the observation
func (f *FlattenObservation) Step(action interface{}) (gymspace.StepResult,
	error) {
	result, err := f.Environment.Step(action)
	if err != nil {
		return result, err
	}
	obs, err := f.Observation(result.Observation)
	if err != nil {
		return result, fmt.Errorf("step: %w", err)
	}
	result.Observation = obs
	return result, nil
}

func (f *FlattenObservation) Name() string {
	return fmt.Sprintf("FlattenObservation(%v)", f.Environment.Name())
}
