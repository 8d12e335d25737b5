package spaces

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestConstructorsTagSpaces(t *testing.T) {
	if s := NewDiscrete(4); s.Type != Discrete || s.N != 4 {
		t.Errorf("unexpected Discrete space: %v", s)
	}

	if s := NewMultiBinary(8); s.Type != MultiBinary || s.N != 8 ||
		s.Shape[0] != 8 {
		t.Errorf("unexpected MultiBinary space: %v", s)
	}

	s := NewMultiDiscrete([]int{2, 3})
	if s.Type != MultiDiscrete || len(s.Nvec) != 2 || s.Shape[0] != 2 {
		t.Errorf("unexpected MultiDiscrete space: %v", s)
	}

	low := mat.NewVecDense(6, nil)
	high := mat.NewVecDense(6, []float64{1, 1, 1, 1, 1, 1})
	box := NewBox(low, high, []int{2, 3})
	if box.Type != Box || box.Shape[0] != 2 || box.Shape[1] != 3 {
		t.Errorf("unexpected Box space: %v", box)
	}

	tuple := NewTuple(NewDiscrete(2), box)
	if tuple.Type != Tuple || len(tuple.Subspaces) != 2 {
		t.Errorf("unexpected Tuple space: %v", tuple)
	}
}

func TestNewBoxPanicsOnMismatchedBounds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for mismatched bound lengths")
		}
	}()

	low := mat.NewVecDense(2, nil)
	high := mat.NewVecDense(3, nil)
	NewBox(low, high, []int{2})
}

func TestNewBoxPanicsOnInconsistentShape(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for shape inconsistent with bounds")
		}
	}()

	low := mat.NewVecDense(4, nil)
	high := mat.NewVecDense(4, nil)
	NewBox(low, high, []int{3})
}
