package agent

import (
	"fmt"

	"gorgonia.org/tensor"

	"github.com/samuelfneumann/godeeprl/discretize"
	"github.com/samuelfneumann/godeeprl/preprocessing"
	"github.com/samuelfneumann/godeeprl/spaces"
)

// Base classifies an environment's observation space and normalizes
// raw observations into fixed-shape tensors. Concrete agents embed a
// *Base and supply the episodic and persistence halves of the Agent
// interface on top of it.
//
// Observations are assumed to be in one of three forms:
//
//  1. discrete, taking values from 0 to n-1;
//  2. continuous but discretizable, where the raw observation is
//     converted to an internal index from 0 to n-1;
//  3. raw, such as images from Atari games.
//
// Discrete spaces are form 1. Box, MultiBinary, and MultiDiscrete
// spaces are form 2 or 3. Tuple spaces mix the forms and are not
// supported.
//
// In forms 1 and 2 the network input is the one-hot encoding of the
// observation index, so the input shape is (n). In form 3 the input
// shape is the native shape of the space, e.g. (channel, width,
// height) for an image.
type Base struct {
	numActions int

	// discreteObservation is true for forms 1 and 2, where the state
	// is represented by a single index
	discreteObservation bool

	// numStates is set for discrete observation spaces only and is
	// otherwise invalid
	numStates int

	inputShape []int

	// discretizer is non-nil for form 2 only, to indicate that raw
	// observations need conversion to an index
	discretizer *discretize.BoxDiscretizer

	preprocessor preprocessing.Preprocessor
}

// NewBase validates an environment's action and observation spaces and
// derives the observation classification and network input shape.
//
// The action space must be a finite discrete set and the observation
// space must be Discrete, MultiBinary, Box, or MultiDiscrete. Any
// other configuration is a non-recoverable error, detectable with
// IsInvalidActionSpace or IsInvalidObservationSpace.
func NewBase(obsSpace, actionSpace spaces.Space) (*Base, error) {
	if actionSpace.Type != spaces.Discrete {
		return nil, &AgentError{
			Op:  fmt.Sprintf("newBase: %v action space", actionSpace),
			Err: errInvalidActionSpace,
		}
	}

	b := &Base{numActions: actionSpace.N}

	switch obsSpace.Type {
	case spaces.Discrete:
		b.discreteObservation = true
		b.numStates = obsSpace.N
		b.inputShape = []int{obsSpace.N}

	case spaces.MultiBinary:
		b.inputShape = []int{obsSpace.N}

	case spaces.Box, spaces.MultiDiscrete:
		b.inputShape = make([]int, len(obsSpace.Shape))
		copy(b.inputShape, obsSpace.Shape)

	default:
		return nil, &AgentError{
			Op:  fmt.Sprintf("newBase: %v observation space", obsSpace),
			Err: errInvalidObservationSpace,
		}
	}

	return b, nil
}

// NumActions returns the cardinality of the agent's action space
func (b *Base) NumActions() int {
	return b.numActions
}

// ObservationIsDiscrete returns whether observations are represented
// by a single index, either natively or through a discretizer
func (b *Base) ObservationIsDiscrete() bool {
	return b.discreteObservation
}

// NumStates returns the cardinality of the observation space. It
// panics if the observation space is not discrete.
func (b *Base) NumStates() int {
	if !b.discreteObservation {
		panic("numStates: observation space is not discrete")
	}
	return b.numStates
}

// InputShape returns the shape of tensors produced by Preprocess
func (b *Base) InputShape() []int {
	return b.inputShape
}

// DiscretizeObservationSpace replaces the agent's continuous
// observation handling with a discretized one. The space must be the
// Box space the agent observes; resolution gives the number of buckets
// per dimension, either uniform or one value per dimension.
//
// On success the observation classification becomes discrete, the
// state cardinality becomes the discretizer's state count n, and the
// input shape becomes (n). Requesting discretization of a
// non-continuous space is an invalid-observation-space error and
// leaves the agent unchanged.
func (b *Base) DiscretizeObservationSpace(space spaces.Space,
	resolution ...int) error {
	if space.Type != spaces.Box {
		return &AgentError{
			Op:  fmt.Sprintf("discretizeObservationSpace: %v space", space),
			Err: errInvalidObservationSpace,
		}
	}

	discretizer, err := discretize.New(space, resolution...)
	if err != nil {
		return &AgentError{Op: "discretizeObservationSpace", Err: err}
	}

	b.discretizer = discretizer
	b.discreteObservation = true
	b.numStates = discretizer.NumStates()
	b.inputShape = []int{b.numStates}
	return nil
}

// SetPreprocessor attaches an external preprocessor, which runs on
// every observation after one-hot encoding but before numeric type
// normalization. The input shape becomes the preprocessor's output
// shape.
func (b *Base) SetPreprocessor(p preprocessing.Preprocessor) {
	b.preprocessor = p
	b.inputShape = p.Shape()
}

// Preprocess normalizes a raw observation into the input to a neural
// network.
//
// When the observation is an index of the state space, or is mapped to
// one by a discretizer, it is converted to a one-hot encoding. In
// other cases the observation passes through, roughly.
//
// The backend supports only integer, float32, and float64 values, so
// appropriate type conversion is performed as well. The result always
// has shape InputShape().
func (b *Base) Preprocess(obs *tensor.Dense) (*tensor.Dense, error) {
	o := obs
	if b.discreteObservation {
		var index int
		var err error
		if b.discretizer != nil {
			index, err = b.discretizer.Discretize(o)
		} else {
			index, err = scalarIndex(o)
		}
		if err != nil {
			return nil, &AgentError{Op: "preprocess", Err: err}
		}

		o, err = indexToVector(index, b.numStates)
		if err != nil {
			return nil, &AgentError{Op: "preprocess", Err: err}
		}
	}

	if b.preprocessor != nil {
		var err error
		o, err = b.preprocessor.Preprocess(o)
		if err != nil {
			return nil, &AgentError{Op: "preprocess", Err: err}
		}
	}

	switch o.Dtype() {
	case tensor.Uint8:
		// This usually happens for image input
		o = uint8ToInt(o)

	case tensor.Float64:
		// Not strictly necessary, but backend layers are float32
		o = float64ToFloat32(o)
	}
	return o, nil
}

// EnterEvaluation runs setup before evaluation. The default is a no-op.
func (b *Base) EnterEvaluation() {}

// ExitEvaluation runs tear-down after evaluation. The default is a
// no-op.
func (b *Base) ExitEvaluation() {}

// indexToVector one-hot encodes an index into a vector of the given
// dimension
func indexToVector(index, dimension int) (*tensor.Dense, error) {
	if index < 0 || index >= dimension {
		return nil, fmt.Errorf("cannot one-hot encode index %d in a "+
			"space of %d states", index, dimension)
	}

	backing := make([]float64, dimension)
	backing[index] = 1.0
	return tensor.New(tensor.WithShape(dimension),
		tensor.WithBacking(backing)), nil
}

// scalarIndex interprets a single-element observation as the index of
// the state space
func scalarIndex(obs *tensor.Dense) (int, error) {
	switch data := obs.Data().(type) {
	case []float64:
		if len(data) == 1 {
			return int(data[0]), nil
		}

	case float64:
		return int(data), nil

	case []float32:
		if len(data) == 1 {
			return int(data[0]), nil
		}

	case float32:
		return int(data), nil

	case []int:
		if len(data) == 1 {
			return data[0], nil
		}

	case int:
		return data, nil
	}
	return 0, fmt.Errorf("discrete observation must be a single index, "+
		"got %v of shape %v", obs.Dtype(), obs.Shape())
}

// uint8ToInt casts a uint8 tensor to the backend's generic integer
// type
func uint8ToInt(t *tensor.Dense) *tensor.Dense {
	data, ok := t.Data().([]uint8)
	if !ok {
		data = []uint8{t.Data().(uint8)}
	}
	backing := make([]int, len(data))
	for i, v := range data {
		backing[i] = int(v)
	}
	return tensor.New(tensor.WithShape(t.Shape()...),
		tensor.WithBacking(backing))
}

// float64ToFloat32 casts a float64 tensor to float32
func float64ToFloat32(t *tensor.Dense) *tensor.Dense {
	data, ok := t.Data().([]float64)
	if !ok {
		data = []float64{t.Data().(float64)}
	}
	backing := make([]float32, len(data))
	for i, v := range data {
		backing[i] = float32(v)
	}
	return tensor.New(tensor.WithShape(t.Shape()...),
		tensor.WithBacking(backing))
}
