// Package agent defines the interface between learning agents,
// simulated environments, and a neural network backend.
//
// An Agent is built from two halves. The episodic half (Start, Step,
// End) and the persistence hooks (Save, SaveParameterSettings,
// SetAsBestModel) are supplied by each concrete agent, since they
// depend on the learning algorithm and model representation. The
// observation half is supplied by Base, which every concrete agent
// embeds: it classifies the environment's observation space and
// normalizes raw observations into fixed-shape tensors that a network
// can consume.
package agent

import (
	"gorgonia.org/tensor"
)

// Policy chooses actions from preprocessed states.
//
// Policies never mutate their agent: choosing an action for a state
// must leave the agent ready to continue its episode as if the choice
// had not happened.
type Policy interface {
	// ChooseAction returns the action selected for a preprocessed
	// state, along with a debug string describing the choice
	ChooseAction(state *tensor.Dense) (action int, debug string, err error)
}

// Agent determines the implementation details of an agent or algorithm
//
// Start, Step, and End mirror the lifecycle of an episode: Start
// begins an episode at a state, Step observes one transition and
// chooses the next action, and End records the final reward and state.
// Start and Step return the chosen action along with a map of debug
// information.
type Agent interface {
	Policy

	// Start begins a new episode at a state
	Start(state *tensor.Dense) (action int, debug map[string]string,
		err error)

	// Step observes the reward and state of one transition and chooses
	// the next action
	Step(reward float64, nextState *tensor.Dense) (action int,
		debug map[string]string, err error)

	// End observes the last reward and state of the episode, which
	// then terminates
	End(reward float64, nextState *tensor.Dense) error

	// Save persists the agent's model to a file
	Save(filename string) error

	// SaveParameterSettings persists the agent's parameter settings to
	// a file
	SaveParameterSettings(filename string) error

	// SetAsBestModel records the current model as the best seen so far
	SetAsBestModel() error

	// Preprocess normalizes a raw observation for network consumption.
	// Provided by the embedded Base.
	Preprocess(*tensor.Dense) (*tensor.Dense, error)

	// EnterEvaluation and ExitEvaluation run before and after an
	// evaluation pass. Base provides no-op implementations.
	EnterEvaluation()
	ExitEvaluation()
}

// Evaluate chooses an action for a raw observation without updating
// the agent's status
func Evaluate(a Agent, obs *tensor.Dense) (int, error) {
	state, err := a.Preprocess(obs)
	if err != nil {
		return 0, &AgentError{Op: "evaluate", Err: err}
	}

	action, _, err := a.ChooseAction(state)
	if err != nil {
		return 0, &AgentError{Op: "evaluate", Err: err}
	}
	return action, nil
}
