package agent

import "errors"

// AgentError implements errors arising from constructing or
// configuring an agent
type AgentError struct {
	Op  string
	Err error
}

// Error satisifes the error interface
func (e *AgentError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

var errInvalidActionSpace = errors.New("action space is not a finite " +
	"discrete set")

var errInvalidObservationSpace = errors.New("unsupported observation space")

// IsInvalidActionSpace returns whether or not an error reports that an
// agent was constructed with an action space that is not a finite
// discrete set. Such errors are configuration errors and are never
// retried.
func IsInvalidActionSpace(err error) bool {
	if agentErr, ok := err.(*AgentError); ok {
		err = agentErr.Err
	}
	return err == errInvalidActionSpace
}

// IsInvalidObservationSpace returns whether or not an error reports
// that an observation space is unsupported, either at construction or
// when requesting discretization of a non-continuous space.
func IsInvalidObservationSpace(err error) bool {
	if agentErr, ok := err.(*AgentError); ok {
		err = agentErr.Err
	}
	return err == errInvalidObservationSpace
}
