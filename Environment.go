package gymspace

import "fmt"

// Environment describes a Gymnasium environment whose actions and
// observations are described by spaces. Implementations may be native
// Go or proxies into another runtime.
type Environment interface {
	// Name gets the name of the environment
	Name() string

	// ActionSpace returns the action space
	ActionSpace() Space

	// ObservationSpace returns the observation space
	ObservationSpace() Space

	// Seed seeds the environment
	Seed(seed uint64)

	// Reset resets the environment and returns the starting
	// observation
	Reset() (interface{}, error)

	// Step takes one environmental step given some action and returns
	// the outcome of the step
	Step(action interface{}) (StepResult, error)

	// Close performs cleanup of environment resources. It should be
	// called once the environment is no longer needed.
	Close() error
}

// Info holds auxiliary diagnostic information returned by Step
type Info map[string]interface{}

// StepResult is the outcome of one environmental step
type StepResult struct {
	Observation interface{}
	Reward      float64

	// Terminated is set when the episode reached a terminal state of
	// the underlying MDP
	Terminated bool

	// Truncated is set when the episode was cut short, e.g. by a time
	// limit
	Truncated bool

	Info Info
}

// Done returns whether the episode is over
func (s StepResult) Done() bool {
	return s.Terminated || s.Truncated
}

// CheckAction returns an error if action is not in the action space of
// env. Environments call it at the top of Step.
func CheckAction(env Environment, action interface{}) error {
	if space := env.ActionSpace(); space != nil && !space.Contains(action) {
		return fmt.Errorf("checkAction: action %v not in action space %v of "+
			"environment %v", action, space, env.Name())
	}
	return nil
}

// CheckObservation returns an error if obs is not in the observation
// space of env
func CheckObservation(env Environment, obs interface{}) error {
	if space := env.ObservationSpace(); space != nil && !space.Contains(obs) {
		return fmt.Errorf("checkObservation: observation %v not in "+
			"observation space %v of environment %v", obs, space, env.Name())
	}
	return nil
}
