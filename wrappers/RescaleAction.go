package wrappers

import (
	"fmt"

	"github.com/samuelfneumann/gymspace"
)

// RescaleAction wraps a gymspace.Environment and rescales the
// continuous action space of the environment to a range [a, b]. The
// action space of the wrapped environment must be a bounded float64
// BoxSpace.
//
// https://github.com/Farama-Foundation/Gymnasium/blob/main/gymnasium/wrappers/transform_action.py
type RescaleAction struct {
	gymspace.Environment
	a, b        float64
	bounds      *gymspace.BoxSpace[float64]
	actionSpace *gymspace.BoxSpace[float64]
}

// NewRescaleAction returns a new gymspace.Environment that rescales
// the actions taken in env from [a, b] to the bounds of the action
// space of env.
func NewRescaleAction(env gymspace.Environment, a, b float64) (gymspace.Environment,
	error) {
	bounds, ok := floatBox(env.ActionSpace())
	if !ok {
		return nil, fmt.Errorf("newRescaleAction: action space %v is not a "+
			"float64 BoxSpace", env.ActionSpace())
	}
	if !bounds.IsBounded() {
		return nil, fmt.Errorf("newRescaleAction: action space %v must be "+
			"bounded", bounds)
	}
	if !(a < b) {
		return nil, fmt.Errorf("newRescaleAction: a must be less than b "+
			"(a: %v, b: %v)", a, b)
	}

	actionSpace, err := gymspace.NewBoxIdentical(a, b, bounds.Shape())
	if err != nil {
		return nil, fmt.Errorf("newRescaleAction: could not create action "+
			"space: %w", err)
	}

	return &RescaleAction{
		Environment: env,
		a:           a,
		b:           b,
		bounds:      bounds,
		actionSpace: actionSpace.Box(),
	}, nil
}

// ActionSpace returns the action space [a, b] of the wrapper
func (r *RescaleAction) ActionSpace() gymspace.Space {
	return r.actionSpace
}

// Action rescales the argument action from [a, b] to the legal bounds
// of the wrapped environment
func (r *RescaleAction) Action(action interface{}) (gymspace.Array[float64],
	error) {
	x, err := toFloatArray(action, r.bounds.Shape())
	if err != nil {
		return gymspace.Array[float64]{}, fmt.Errorf("action: %w", err)
	}
	if !r.actionSpace.ContainsValue(x) {
		return gymspace.Array[float64]{}, fmt.Errorf("action: %v not in "+
			"[%v, %v]", x.Data(), r.a, r.b)
	}

	low, high := r.bounds.Low(), r.bounds.High()
	scaled := make([]float64, x.Len())
	for i, v := range x.Data() {
		l, h := low.At(i), high.At(i)
		scaled[i] = l + (h-l)*((v-r.a)/(r.b-r.a))
	}
	out, err := gymspace.NewArray(scaled, x.Shape())
	if err != nil {
		return gymspace.Array[float64]{}, fmt.Errorf("action: %w", err)
	}
	return r.bounds.Clip(out), nil
}

// Step rescales the action and steps the wrapped environment
func (r *RescaleAction) Step(action interface{}) (gymspace.StepResult,
	error) {
	scaled, err := r.Action(action)
	if err != nil {
		return gymspace.StepResult{}, fmt.Errorf("step: %w", err)
	}
	return r.Environment.Step(scaled)
}

func (r *RescaleAction) Name() string {
	return fmt.Sprintf("RescaleAction([%v, %v])(%v)", r.a, r.b,
		r.Environment.Name())
}
