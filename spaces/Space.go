// Package spaces describes the action and observation spaces of
// simulated environments.
//
// A Space is a descriptor only. It holds the type, cardinality, shape,
// and bounds of the values an environment produces or consumes, but
// never the values themselves. Agents branch on the Type tag to decide
// how observations are normalized before being fed to a neural network.
package spaces

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/godeeprl/utils/intutils"
)

// Type tags a Space with the kind of values it describes
type Type int

const (
	// Discrete describes a finite set of indices {0, 1, ..., n-1}
	Discrete Type = iota

	// MultiBinary describes a fixed-length vector of bits
	MultiBinary

	// Box describes a bounded region of a continuous vector space
	Box

	// MultiDiscrete describes a vector of indices, each with its own
	// cardinality
	MultiDiscrete

	// Tuple describes a composite of subspaces
	Tuple
)

func (t Type) String() string {
	switch t {
	case Discrete:
		return "Discrete"
	case MultiBinary:
		return "MultiBinary"
	case Box:
		return "Box"
	case MultiDiscrete:
		return "MultiDiscrete"
	case Tuple:
		return "Tuple"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Space implements an environment space specification, which tells the
// type, cardinality, shape, and bounds of actions or observations in an
// environment. A Space is immutable once constructed.
type Space struct {
	Type Type

	// N is the cardinality of a Discrete space and the number of bits
	// of a MultiBinary space
	N int

	// Nvec holds the per-dimension cardinalities of a MultiDiscrete
	// space
	Nvec []int

	// Shape is the native shape of values drawn from the space
	Shape []int

	// LowerBound and UpperBound bound the values of a Box space
	// elementwise
	LowerBound mat.Vector
	UpperBound mat.Vector

	// Subspaces holds the components of a Tuple space
	Subspaces []Space
}

// NewDiscrete constructs the space of scalar indices {0, 1, ..., n-1}
func NewDiscrete(n int) Space {
	if n <= 0 {
		panic(fmt.Sprintf("newDiscrete: cardinality must be positive, "+
			"got %d", n))
	}
	return Space{Type: Discrete, N: n, Shape: []int{1}}
}

// NewMultiBinary constructs the space of n-bit vectors
func NewMultiBinary(n int) Space {
	if n <= 0 {
		panic(fmt.Sprintf("newMultiBinary: bit count must be positive, "+
			"got %d", n))
	}
	return Space{Type: MultiBinary, N: n, Shape: []int{n}}
}

// NewBox constructs a bounded continuous space. The shape argument
// outlines the native shape of values drawn from the space, and the
// bounds bound each element of such a value. The number of elements
// described by shape must match the bound lengths.
func NewBox(lowerBound, upperBound mat.Vector, shape []int) Space {
	if lowerBound.Len() != upperBound.Len() {
		panic(fmt.Sprintf("newBox: lower bound length %v must match upper "+
			"bound length %v", lowerBound.Len(), upperBound.Len()))
	}
	if intutils.Prod(shape...) != lowerBound.Len() {
		panic(fmt.Sprintf("newBox: shape %v describes %v elements but "+
			"bounds have length %v", shape, intutils.Prod(shape...),
			lowerBound.Len()))
	}
	return Space{
		Type:       Box,
		Shape:      shape,
		LowerBound: lowerBound,
		UpperBound: upperBound,
	}
}

// NewMultiDiscrete constructs a space of index vectors, where dimension
// i takes values in {0, 1, ..., nvec[i]-1}
func NewMultiDiscrete(nvec []int) Space {
	if len(nvec) == 0 {
		panic("newMultiDiscrete: cannot construct space with no dimensions")
	}
	for i, n := range nvec {
		if n <= 0 {
			panic(fmt.Sprintf("newMultiDiscrete: cardinality of dimension "+
				"%d must be positive, got %d", i, n))
		}
	}
	return Space{Type: MultiDiscrete, Nvec: nvec, Shape: []int{len(nvec)}}
}

// NewTuple constructs a composite space from subspaces. Composite
// spaces can describe environments but are not supported as agent
// observation or action spaces.
func NewTuple(subspaces ...Space) Space {
	return Space{Type: Tuple, Subspaces: subspaces}
}

func (s Space) String() string {
	switch s.Type {
	case Discrete, MultiBinary:
		return fmt.Sprintf("%v(%d)", s.Type, s.N)
	case MultiDiscrete:
		return fmt.Sprintf("%v(%v)", s.Type, s.Nvec)
	case Box:
		return fmt.Sprintf("%v%v", s.Type, s.Shape)
	case Tuple:
		return fmt.Sprintf("%v(%d subspaces)", s.Type, len(s.Subspaces))
	}
	return s.Type.String()
}
