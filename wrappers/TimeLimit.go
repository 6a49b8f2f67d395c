package wrappers

import (
	"fmt"

	"github.com/samuelfneumann/gymspace"
)

// TimeLimit wraps a gymspace.Environment and provides for it a limit
// on the time steps of each episode. Once the limit is reached the
// step is reported as truncated.
//
// https://github.com/Farama-Foundation/Gymnasium/blob/main/gymnasium/wrappers/common.py
type TimeLimit struct {
	gymspace.Environment

	maxEpisodeSteps int
	elapsedSteps    int
}

// NewTimeLimit creates a new TimeLimit wrapper on a gymspace
// Environment.
func NewTimeLimit(env gymspace.Environment,
	maxEpisodeSteps int) (gymspace.Environment, error) {
	if maxEpisodeSteps <= 0 {
		return nil, fmt.Errorf("newTimeLimit: maxEpisodeSteps must be positive")
	}
	return &TimeLimit{
		Environment:     env,
		maxEpisodeSteps: maxEpisodeSteps,
	}, nil
}

// Reset resets the wrapped environment and the step counter
func (t *TimeLimit) Reset() (interface{}, error) {
	t.elapsedSteps = 0
	return t.Environment.Reset()
}

// Step steps the wrapped environment and truncates the episode once
// the time limit is reached
func (t *TimeLimit) Step(action interface{}) (gymspace.StepResult, error) {
	result, err := t.Environment.Step(action)
	if err != nil {
		return result, err
	}
	t.elapsedSteps++
	if t.elapsedSteps >= t.maxEpisodeSteps {
		result.Truncated = true
	}
	return result, nil
}

// ElapsedSteps returns the number of steps taken since the last Reset
func (t *TimeLimit) ElapsedSteps() int {
	return t.elapsedSteps
}

// MaxEpisodeSteps returns the time limit
func (t *TimeLimit) MaxEpisodeSteps() int {
	return t.maxEpisodeSteps
}

func (t *TimeLimit) Name() string {
	return fmt.Sprintf("TimeLimit(steps: %v)(%v)", t.maxEpisodeSteps,
		t.Environment.Name())
}
