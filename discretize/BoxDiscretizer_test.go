package discretize

import (
	"testing"

	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"

	"github.com/samuelfneumann/godeeprl/spaces"
)

func testSpace() spaces.Space {
	low := mat.NewVecDense(2, []float64{0, -1})
	high := mat.NewVecDense(2, []float64{1, 1})
	return spaces.NewBox(low, high, []int{2})
}

func TestNewRejectsNonBoxSpaces(t *testing.T) {
	if _, err := New(spaces.NewDiscrete(5), 10); err == nil {
		t.Error("expected error for Discrete space")
	}
	if _, err := New(spaces.NewMultiBinary(5), 10); err == nil {
		t.Error("expected error for MultiBinary space")
	}
}

func TestNewRejectsBadResolutions(t *testing.T) {
	if _, err := New(testSpace(), 2, 3, 4); err == nil {
		t.Error("expected error for mismatched resolution count")
	}
	if _, err := New(testSpace(), 0); err == nil {
		t.Error("expected error for non-positive resolution")
	}
}

func TestNumStates(t *testing.T) {
	uniform, err := New(testSpace(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if uniform.NumStates() != 100 {
		t.Errorf("expected 100 states, got %d", uniform.NumStates())
	}

	perDim, err := New(testSpace(), 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if perDim.NumStates() != 6 {
		t.Errorf("expected 6 states, got %d", perDim.NumStates())
	}
}

func TestDiscretize(t *testing.T) {
	// Space bounds are [0, 1] x [-1, 1] with a 2x3 grid, so dimension
	// one has buckets of width 0.5 and dimension two of width 2/3
	d, err := New(testSpace(), 2, 3)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		obs  []float64
		want int
	}{
		{"origin", []float64{0, -1}, 0},
		{"midFirstDim", []float64{0.75, -1}, 3},
		{"midSecondDim", []float64{0, 0}, 1},
		{"lastBucket", []float64{0.9, 0.9}, 5},
		{"upperBoundsClipIntoLastBucket", []float64{1, 1}, 5},
		{"valuesBelowRangeClip", []float64{-10, -10}, 0},
		{"valuesAboveRangeClip", []float64{10, 10}, 5},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			obs := tensor.New(tensor.WithShape(2),
				tensor.WithBacking(test.obs))

			got, err := d.Discretize(obs)
			if err != nil {
				t.Fatal(err)
			}
			if got != test.want {
				t.Errorf("expected index %d, got %d", test.want, got)
			}
		})
	}
}

func TestDiscretizeRejectsWrongLengths(t *testing.T) {
	d, err := New(testSpace(), 4)
	if err != nil {
		t.Fatal(err)
	}

	obs := tensor.New(tensor.WithShape(3),
		tensor.WithBacking([]float64{0, 0, 0}))
	if _, err := d.Discretize(obs); err == nil {
		t.Error("expected error for observation of wrong length")
	}
}

func TestDiscretizeAcceptsFloat32(t *testing.T) {
	d, err := New(testSpace(), 2, 3)
	if err != nil {
		t.Fatal(err)
	}

	obs := tensor.New(tensor.WithShape(2),
		tensor.WithBacking([]float32{0.9, 0.9}))
	got, err := d.Discretize(obs)
	if err != nil {
		t.Fatal(err)
	}
	if got != 5 {
		t.Errorf("expected index 5, got %d", got)
	}
}
