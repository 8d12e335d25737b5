// Package random implements an agent that selects actions uniformly
// at random.
//
// The random agent holds no model and learns nothing. It is the
// simplest concrete agent and serves as a baseline and as a reference
// for implementing the agent.Agent interface.
package random

import (
	"os"

	"golang.org/x/exp/rand"
	"gorgonia.org/tensor"

	"github.com/samuelfneumann/godeeprl/agent"
	"github.com/samuelfneumann/godeeprl/spaces"
)

// Config represents a configuration for the random agent
type Config struct {
	Seed uint64
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	return nil
}

// Random selects among the available actions uniformly at random
type Random struct {
	*agent.Base
	config Config
	rng    *rand.Rand
}

// New creates a new Random agent acting on the argument action space
func New(obsSpace, actionSpace spaces.Space, config Config) (*Random,
	error) {
	base, err := agent.NewBase(obsSpace, actionSpace)
	if err != nil {
		return nil, err
	}

	source := rand.NewSource(config.Seed)
	return &Random{
		Base:   base,
		config: config,
		rng:    rand.New(source),
	}, nil
}

// ChooseAction selects an action uniformly at random, ignoring the
// state
func (r *Random) ChooseAction(state *tensor.Dense) (int, string, error) {
	return r.rng.Intn(r.NumActions()), "uniform", nil
}

// Start begins a new episode at a state
func (r *Random) Start(state *tensor.Dense) (int, map[string]string,
	error) {
	return r.act(state)
}

// Step observes one transition and chooses an action
func (r *Random) Step(reward float64, nextState *tensor.Dense) (int,
	map[string]string, error) {
	return r.act(nextState)
}

// End observes the last reward and state of the episode
func (r *Random) End(reward float64, nextState *tensor.Dense) error {
	return nil
}

// Save is a no-op since the random agent has no model
func (r *Random) Save(filename string) error {
	return nil
}

// SaveParameterSettings persists the agent's configuration to a file
func (r *Random) SaveParameterSettings(filename string) error {
	data, err := agent.MarshalParameterSettings(r.config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}

// SetAsBestModel is a no-op since the random agent has no model
func (r *Random) SetAsBestModel() error {
	return nil
}

func (r *Random) act(state *tensor.Dense) (int, map[string]string, error) {
	s, err := r.Preprocess(state)
	if err != nil {
		return 0, nil, err
	}

	action, debug, err := r.ChooseAction(s)
	if err != nil {
		return 0, nil, err
	}
	return action, map[string]string{"policy": debug}, nil
}
