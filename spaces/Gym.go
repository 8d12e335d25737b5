package spaces

import (
	"fmt"

	"github.com/samuelfneumann/gogym"
)

// FromGym converts a GoGym space descriptor into a Space. Only GoGym's
// DiscreteSpace and BoxSpace can be converted; any other space type
// results in an error.
func FromGym(space gogym.Space) (Space, error) {
	switch space.(type) {
	case *gogym.DiscreteSpace:
		// GoGym enumerates discrete values from 0 to High
		high := space.High()[0]
		return NewDiscrete(int(high.AtVec(0)) + 1), nil

	case *gogym.BoxSpace:
		low := space.Low()[0]
		high := space.High()[0]
		return NewBox(low, high, []int{low.Len()}), nil

	default:
		return Space{}, fmt.Errorf("fromGym: cannot convert GoGym space "+
			"of type %T", space)
	}
}
