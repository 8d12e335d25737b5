package preprocessing

import (
	"fmt"

	"gorgonia.org/tensor"

	"github.com/samuelfneumann/godeeprl/utils/intutils"
)

// History stacks the most recent observations of an episode into a
// single input, so that an agent can condition on short-term dynamics
// (e.g. velocities in image observations). Until length observations
// have been seen, the history is padded at the front with zero frames.
//
// All observations given to a History must share the frame shape and
// dtype it was constructed for.
type History struct {
	frameShape []int
	frameSize  int
	length     int
	frames     []*tensor.Dense
}

// NewHistory creates a History that stacks the last length observations
// of shape frameShape
func NewHistory(frameShape []int, length int) (*History, error) {
	if length <= 0 {
		return nil, fmt.Errorf("newHistory: length must be positive, "+
			"got %d", length)
	}
	if len(frameShape) == 0 {
		return nil, fmt.Errorf("newHistory: cannot stack scalar frames")
	}

	return &History{
		frameShape: frameShape,
		frameSize:  intutils.Prod(frameShape...),
		length:     length,
		frames:     make([]*tensor.Dense, 0, length),
	}, nil
}

// Shape returns the shape of stacked observations
func (h *History) Shape() []int {
	return append([]int{h.length}, h.frameShape...)
}

// Reset drops all recorded observations. Call between episodes.
func (h *History) Reset() {
	h.frames = h.frames[:0]
}

// Preprocess records an observation and returns the stack of the last
// length observations, oldest first
func (h *History) Preprocess(obs *tensor.Dense) (*tensor.Dense, error) {
	if !obs.Shape().Eq(tensor.Shape(h.frameShape)) {
		return nil, fmt.Errorf("preprocess: expected observation of shape "+
			"%v, got %v", h.frameShape, obs.Shape())
	}

	h.frames = append(h.frames, obs.Clone().(*tensor.Dense))
	if len(h.frames) > h.length {
		h.frames = h.frames[1:]
	}

	// Offset of the oldest recorded frame, leaving room for zero
	// padding at the front
	pad := h.length - len(h.frames)

	switch h.frames[0].Data().(type) {
	case []float64, float64:
		backing := make([]float64, h.length*h.frameSize)
		for k, frame := range h.frames {
			data, err := frameData[float64](frame)
			if err != nil {
				return nil, fmt.Errorf("preprocess: %v", err)
			}
			copy(backing[(pad+k)*h.frameSize:], data)
		}
		return tensor.New(tensor.WithShape(h.Shape()...),
			tensor.WithBacking(backing)), nil

	case []float32, float32:
		backing := make([]float32, h.length*h.frameSize)
		for k, frame := range h.frames {
			data, err := frameData[float32](frame)
			if err != nil {
				return nil, fmt.Errorf("preprocess: %v", err)
			}
			copy(backing[(pad+k)*h.frameSize:], data)
		}
		return tensor.New(tensor.WithShape(h.Shape()...),
			tensor.WithBacking(backing)), nil

	case []uint8, uint8:
		backing := make([]uint8, h.length*h.frameSize)
		for k, frame := range h.frames {
			data, err := frameData[uint8](frame)
			if err != nil {
				return nil, fmt.Errorf("preprocess: %v", err)
			}
			copy(backing[(pad+k)*h.frameSize:], data)
		}
		return tensor.New(tensor.WithShape(h.Shape()...),
			tensor.WithBacking(backing)), nil

	case []int, int:
		backing := make([]int, h.length*h.frameSize)
		for k, frame := range h.frames {
			data, err := frameData[int](frame)
			if err != nil {
				return nil, fmt.Errorf("preprocess: %v", err)
			}
			copy(backing[(pad+k)*h.frameSize:], data)
		}
		return tensor.New(tensor.WithShape(h.Shape()...),
			tensor.WithBacking(backing)), nil
	}
	return nil, fmt.Errorf("preprocess: cannot stack observations of "+
		"type %v", h.frames[0].Dtype())
}

// frameData returns the elements of a recorded frame as a slice of its
// element type
func frameData[T float64 | float32 | uint8 | int](frame *tensor.Dense) ([]T,
	error) {
	if data, ok := frame.Data().([]T); ok {
		return data, nil
	}
	if data, ok := frame.Data().(T); ok {
		return []T{data}, nil
	}
	return nil, fmt.Errorf("observation dtype changed mid-episode to %v",
		frame.Dtype())
}
