// Package discretize converts observations from bounded continuous
// spaces into finite index spaces.
package discretize

import (
	"fmt"
	"math"

	"gorgonia.org/tensor"

	"github.com/samuelfneumann/godeeprl/spaces"
	"github.com/samuelfneumann/godeeprl/utils/floatutils"
	"github.com/samuelfneumann/godeeprl/utils/intutils"
)

// BoxDiscretizer buckets each dimension of a bounded continuous space
// into a fixed number of bins and maps a continuous observation to the
// index of the bucket it falls in. Bucket indices are combined across
// dimensions in mixed radix, so the total number of states is the
// product of the per-dimension resolutions. Values outside the space
// bounds are clipped into the outermost buckets.
type BoxDiscretizer struct {
	resolutions []int
	lowerBound  []float64
	binLengths  []float64
	numStates   int
}

// New creates a BoxDiscretizer for a Box-typed space. The resolution
// argument gives the number of buckets along each dimension: pass a
// single value to use the same resolution for every dimension, or one
// value per dimension.
func New(space spaces.Space, resolution ...int) (*BoxDiscretizer, error) {
	if space.Type != spaces.Box {
		return nil, fmt.Errorf("new: cannot discretize %v space, only Box "+
			"spaces can be discretized", space.Type)
	}

	dims := space.LowerBound.Len()
	resolutions := make([]int, dims)
	switch len(resolution) {
	case 1:
		for i := range resolutions {
			resolutions[i] = resolution[0]
		}

	case dims:
		copy(resolutions, resolution)

	default:
		return nil, fmt.Errorf("new: expected 1 or %d resolutions, got %d",
			dims, len(resolution))
	}

	lowerBound := make([]float64, dims)
	binLengths := make([]float64, dims)
	for i := 0; i < dims; i++ {
		if resolutions[i] <= 0 {
			return nil, fmt.Errorf("new: resolution of dimension %d must "+
				"be positive, got %d", i, resolutions[i])
		}

		length := space.UpperBound.AtVec(i) - space.LowerBound.AtVec(i)
		if length <= 0 {
			return nil, fmt.Errorf("new: dimension %d has empty range "+
				"[%v, %v]", i, space.LowerBound.AtVec(i),
				space.UpperBound.AtVec(i))
		}

		lowerBound[i] = space.LowerBound.AtVec(i)
		binLengths[i] = length / float64(resolutions[i])
	}

	return &BoxDiscretizer{
		resolutions: resolutions,
		lowerBound:  lowerBound,
		binLengths:  binLengths,
		numStates:   intutils.Prod(resolutions...),
	}, nil
}

// NumStates returns the number of distinct indices the discretizer can
// produce
func (b *BoxDiscretizer) NumStates() int {
	return b.numStates
}

// Discretize maps a continuous observation to its bucket index in
// [0, NumStates()-1]. The observation must have one element per
// discretized dimension.
func (b *BoxDiscretizer) Discretize(obs *tensor.Dense) (int, error) {
	values, err := floatData(obs)
	if err != nil {
		return 0, fmt.Errorf("discretize: %v", err)
	}
	if len(values) != len(b.resolutions) {
		return 0, fmt.Errorf("discretize: expected observation of length "+
			"%d, got %d", len(b.resolutions), len(values))
	}

	index := 0
	for i, value := range values {
		bin := math.Floor((value - b.lowerBound[i]) / b.binLengths[i])
		bin = floatutils.Clip(bin, 0.0, float64(b.resolutions[i]-1))

		index = index*b.resolutions[i] + int(bin)
	}
	return index, nil
}

// floatData returns the elements of a tensor as float64, accepting any
// floating point dtype
func floatData(t *tensor.Dense) ([]float64, error) {
	switch data := t.Data().(type) {
	case []float64:
		return data, nil

	case float64:
		return []float64{data}, nil

	case []float32:
		values := make([]float64, len(data))
		for i, v := range data {
			values[i] = float64(v)
		}
		return values, nil

	case float32:
		return []float64{float64(data)}, nil
	}
	return nil, fmt.Errorf("cannot bucket values of type %v", t.Dtype())
}
