//go:build python

package pyspace

import (
	"fmt"

	python "github.com/DataDog/go-python3"
	"github.com/samuelfneumann/gymspace"
)

// Set of open environments
var openEnvironments = make(map[*GymEnv]struct{})

// GymEnv wraps a Python Gymnasium environment and implements
// gymspace.Environment on top of it. Actions are checked against the
// Go action space before they are sent to Python.
type GymEnv struct {
	env     *python.PyObject
	envName string

	// seed is passed to the next call of reset, as Gymnasium
	// environments are seeded on reset
	seed   uint64
	seeded bool

	actionSpace      gymspace.Space
	observationSpace gymspace.Space
}

// Make returns a new environment with the given name. It is equivalent
// to gymnasium.make(envName) in Python. The options configure the Go
// action and observation spaces.
func Make(envName string, opts ...gymspace.Option) (*GymEnv, error) {
	if !Initialized {
		return nil, fmt.Errorf("make: package not initialized")
	}

	makeEnv := gymnasium.GetAttrString("make")
	if makeEnv == nil || !python.PyCallable_Check(makeEnv) {
		printPythonError()
		return nil, fmt.Errorf("make: could not get gymnasium.make")
	}
	defer makeEnv.DecRef()

	args := python.PyTuple_New(1)
	defer args.DecRef()
	python.PyTuple_SetItem(args, 0, python.PyUnicode_FromString(envName))

	env := makeEnv.CallObject(args)
	if env == nil {
		printPythonError()
		return nil, fmt.Errorf("make: could not make environment %v", envName)
	}

	actionSpace, err := spaceAttr(env, "action_space", opts)
	if err != nil {
		env.DecRef()
		return nil, fmt.Errorf("make: could not create action space: %w", err)
	}
	observationSpace, err := spaceAttr(env, "observation_space", opts)
	if err != nil {
		env.DecRef()
		return nil, fmt.Errorf("make: could not create observation space: %w",
			err)
	}

	gymEnv := &GymEnv{
		env:              env,
		envName:          envName,
		actionSpace:      actionSpace,
		observationSpace: observationSpace,
	}
	openEnvironments[gymEnv] = struct{}{}
	return gymEnv, nil
}

func spaceAttr(env *python.PyObject, name string,
	opts []gymspace.Option) (gymspace.Space, error) {
	space := env.GetAttrString(name)
	if space == nil {
		printPythonError()
		return nil, fmt.Errorf("environment has no %v", name)
	}
	defer space.DecRef()
	return FromPythonSpace(space, opts...)
}

// Env gets the Python Gymnasium environment
func (g *GymEnv) Env() *python.PyObject {
	return g.env
}

// Name gets the name of the environment
func (g *GymEnv) Name() string {
	return g.envName
}

// ActionSpace returns the action space as a Go data structure
func (g *GymEnv) ActionSpace() gymspace.Space {
	return g.actionSpace
}

// ObservationSpace returns the observation space as a Go data structure
func (g *GymEnv) ObservationSpace() gymspace.Space {
	return g.observationSpace
}

// Seed seeds the Go spaces of the environment and the Python
// environment on its next reset
func (g *GymEnv) Seed(seed uint64) {
	g.seed, g.seeded = seed, true
	g.actionSpace.Seed(seed)
	g.observationSpace.Seed(seed)
}

// Reset resets the environment and returns the starting observation.
// It is equivalent to calling env.reset() in Python.
func (g *GymEnv) Reset() (interface{}, error) {
	resetFunc := g.env.GetAttrString("reset")
	defer resetFunc.DecRef()

	args := python.PyTuple_New(0)
	defer args.DecRef()
	kwargs := python.PyDict_New()
	defer kwargs.DecRef()
	if g.seeded {
		seed := python.PyLong_FromGoUint64(g.seed)
		python.PyDict_SetItemString(kwargs, "seed", seed)
		seed.DecRef()
		g.seeded = false
	}

	retVal := resetFunc.Call(args, kwargs)
	if retVal == nil {
		printPythonError()
		return nil, fmt.Errorf("reset: could not reset environment %v",
			g.envName)
	}
	defer retVal.DecRef()

	obs, err := FromPython(python.PyTuple_GetItem(retVal, 0),
		g.observationSpace)
	if err != nil {
		return nil, fmt.Errorf("reset: could not decode observation: %w", err)
	}
	return obs, nil
}

// Step takes one environmental step given some action and returns the
// outcome of the step. It is equivalent to calling env.step(action) in
// Python.
func (g *GymEnv) Step(action interface{}) (gymspace.StepResult, error) {
	if err := gymspace.CheckAction(g, action); err != nil {
		return gymspace.StepResult{}, fmt.Errorf("step: %w", err)
	}

	pyAction, err := toAction(action)
	if err != nil {
		return gymspace.StepResult{}, fmt.Errorf("step: could not convert "+
			"action: %w", err)
	}

	stepFunc := g.env.GetAttrString("step")
	defer stepFunc.DecRef()

	args := python.PyTuple_New(1)
	defer args.DecRef()
	python.PyTuple_SetItem(args, 0, pyAction)

	retVal := stepFunc.CallObject(args)
	if retVal == nil {
		printPythonError()
		return gymspace.StepResult{}, fmt.Errorf("step: could not step in " +
			"gymnasium environment")
	}
	defer retVal.DecRef()

	obs, err := FromPython(python.PyTuple_GetItem(retVal, 0),
		g.observationSpace)
	if err != nil {
		return gymspace.StepResult{}, fmt.Errorf("step: could not decode "+
			"observation: %w", err)
	}

	return gymspace.StepResult{
		Observation: obs,
		Reward:      python.PyFloat_AsDouble(python.PyTuple_GetItem(retVal, 1)),
		Terminated:  python.PyTuple_GetItem(retVal, 2) == python.Py_True,
		Truncated:   python.PyTuple_GetItem(retVal, 3) == python.Py_True,
		Info:        gymspace.Info{"info": PyString(python.PyTuple_GetItem(retVal, 4))},
	}, nil
}

// toAction converts an action to Python. Array actions become NumPy
// arrays. Creates a new python.PyObject reference.
func toAction(action interface{}) (*python.PyObject, error) {
	obj, err := ToPython(action)
	if err != nil {
		return nil, err
	}
	if !python.PyList_Check(obj) {
		return obj, nil
	}
	defer obj.DecRef()

	arr := numpy.CallMethodArgs("asarray", obj)
	if arr == nil {
		printPythonError()
		return nil, fmt.Errorf("could not convert list to NumPy array")
	}
	return arr, nil
}

// Close performs cleanup of environment resources. It should be
// called once the environment is no longer needed.
func (g *GymEnv) Close() error {
	if _, ok := openEnvironments[g]; !ok {
		return nil
	}
	delete(openEnvironments, g)

	closeFunc := g.env.GetAttrString("close")
	if closeFunc != nil {
		if ret := closeFunc.CallObject(nil); ret != nil {
			ret.DecRef()
		}
		closeFunc.DecRef()
	}
	g.env.DecRef()

	if python.PyErr_Occurred() != nil {
		printPythonError()
		return fmt.Errorf("close: could not close environment %v", g.envName)
	}
	return nil
}
