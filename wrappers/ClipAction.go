package wrappers

import (
	"fmt"
	"math"

	"github.com/samuelfneumann/gymspace"
)

// ClipAction wraps a gymspace.Environment and clips the continuous
// action within the valid bounds. The action space of the wrapped
// environment must be a float64 BoxSpace. Since any action is clipped,
// the action space of the ClipAction is unbounded.
//
// https://github.com/Farama-Foundation/Gymnasium/blob/main/gymnasium/wrappers/transform_action.py
type ClipAction struct {
	gymspace.Environment
	bounds      *gymspace.BoxSpace[float64]
	actionSpace *gymspace.BoxSpace[float64]
}

// NewClipAction returns a new gymspace.Environment that clips the
// actions taken in env.
func NewClipAction(env gymspace.Environment) (gymspace.Environment, error) {
	bounds, ok := floatBox(env.ActionSpace())
	if !ok {
		return nil, fmt.Errorf("newClipAction: action space %v is not a "+
			"float64 BoxSpace", env.ActionSpace())
	}

	unbounded, err := gymspace.NewBoxIdentical(math.Inf(-1), math.Inf(1),
		bounds.Shape())
	if err != nil {
		return nil, fmt.Errorf("newClipAction: could not create action "+
			"space: %w", err)
	}

	return &ClipAction{
		Environment: env,
		bounds:      bounds,
		actionSpace: unbounded.Box(),
	}, nil
}

// ActionSpace returns the unbounded action space of the wrapper
func (c *ClipAction) ActionSpace() gymspace.Space {
	return c.actionSpace
}

// Action clips action to the bounds of the wrapped action space
func (c *ClipAction) Action(action interface{}) (gymspace.Array[float64],
	error) {
	a, err := toFloatArray(action, c.bounds.Shape())
	if err != nil {
		return gymspace.Array[float64]{}, fmt.Errorf("action: %w", err)
	}
	return c.bounds.Clip(a), nil
}

// Step clips the action and steps the wrapped environment
func (c *ClipAction) Step(action interface{}) (gymspace.StepResult, error) {
	clipped, err := c.Action(action)
	if err != nil {
		return gymspace.StepResult{}, fmt.Errorf("step: %w", err)
	}
	return c.Environment.Step(clipped)
}

func (c *ClipAction) Name() string {
	return fmt.Sprintf("ClipAction(%v)", c.Environment.Name())
}
