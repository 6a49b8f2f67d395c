package wrappers_test

import (
	"fmt"

	"github.com/samuelfneumann/gymspace"
)

// pointEnv moves a point by the action, which must lie in [-1, 1]^2.
// Observations are 2x2 boxes in [-10, 10]. The episode terminates
// after terminateAfter steps, if positive.
type pointEnv struct {
	actionSpace      *gymspace.BoxSpace[float64]
	observationSpace *gymspace.BoxSpace[float64]

	pos            [2]float64
	steps          int
	terminateAfter int
	actions        []gymspace.Array[float64]
	closed         bool
}

func newPointEnv() *pointEnv {
	act, err := gymspace.NewBoxIdentical(-1.0, 1.0, gymspace.Shape{2},
		gymspace.WithSeed(1))
	if err != nil {
		panic(err)
	}
	obs, err := gymspace.NewBoxIndependent(
		mustArray([]float64{-10, -10, -1, -1}, gymspace.Shape{2, 2}),
		mustArray([]float64{10, 10, 1, 1}, gymspace.Shape{2, 2}),
		gymspace.WithSeed(2),
	)
	if err != nil {
		panic(err)
	}
	return &pointEnv{actionSpace: act.Box(), observationSpace: obs.Box()}
}

func mustArray(data []float64, shape gymspace.Shape) gymspace.Array[float64] {
	a, err := gymspace.NewArray(data, shape)
	if err != nil {
		panic(err)
	}
	return a
}

func (p *pointEnv) Name() string { return "Point-v0" }
func (p *pointEnv) ActionSpace() gymspace.Space { return p.actionSpace }
func (p *pointEnv) ObservationSpace() gymspace.Space { return p.observationSpace }
func (p *pointEnv) Seed(seed uint64) {}

func (p *pointEnv) observation() gymspace.Array[float64] {
	return mustArray([]float64{p.pos[0], p.pos[1], 0, 0}, gymspace.Shape{2, 2})
}

func (p *pointEnv) Reset() (interface{}, error) {
	p.pos = [2]float64{}
	p.steps = 0
	return p.observation(), nil
}

func (p *pointEnv) Step(action interface{}) (gymspace.StepResult, error) {
	if err := gymspace.CheckAction(p, action); err != nil {
		return gymspace.StepResult{}, err
	}
	a, ok := action.(gymspace.Array[float64])
	if !ok {
		return gymspace.StepResult{}, fmt.Errorf("step: unexpected action "+
			"type %T", action)
	}
	p.actions = append(p.actions, a)
	p.pos[0] += a.Data()[0]
	p.pos[1] += a.Data()[1]
	p.steps++

	return gymspace.StepResult{
		Observation: p.observation(),
		Reward:      -1,
		Terminated:  p.terminateAfter > 0 && p.steps >= p.terminateAfter,
	}, nil
}

func (p *pointEnv) Close() error {
	p.closed = true
	return nil
}
