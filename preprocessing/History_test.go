package preprocessing

import (
	"testing"

	"gorgonia.org/tensor"
)

func frame(values ...float64) *tensor.Dense {
	return tensor.New(tensor.WithShape(len(values)),
		tensor.WithBacking(values))
}

func TestNewHistoryRejectsBadArguments(t *testing.T) {
	if _, err := NewHistory([]int{2}, 0); err == nil {
		t.Error("expected error for non-positive length")
	}
	if _, err := NewHistory(nil, 4); err == nil {
		t.Error("expected error for scalar frames")
	}
}

func TestHistoryShape(t *testing.T) {
	h, err := NewHistory([]int{3, 2}, 4)
	if err != nil {
		t.Fatal(err)
	}

	want := []int{4, 3, 2}
	got := h.Shape()
	if len(got) != len(want) {
		t.Fatalf("expected shape %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected shape %v, got %v", want, got)
		}
	}
}

func TestHistoryPadsWithZeroFrames(t *testing.T) {
	h, err := NewHistory([]int{2}, 3)
	if err != nil {
		t.Fatal(err)
	}

	out, err := h.Preprocess(frame(1, 2))
	if err != nil {
		t.Fatal(err)
	}

	data := out.Data().([]float64)
	want := []float64{0, 0, 0, 0, 1, 2}
	for i, v := range want {
		if data[i] != v {
			t.Errorf("expected %v at position %d, got %v", v, i, data[i])
		}
	}
}

func TestHistoryRollsOldestFrameOut(t *testing.T) {
	h, err := NewHistory([]int{2}, 2)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := h.Preprocess(frame(1, 1)); err != nil {
		t.Fatal(err)
	}
	if _, err := h.Preprocess(frame(2, 2)); err != nil {
		t.Fatal(err)
	}
	out, err := h.Preprocess(frame(3, 3))
	if err != nil {
		t.Fatal(err)
	}

	data := out.Data().([]float64)
	want := []float64{2, 2, 3, 3}
	for i, v := range want {
		if data[i] != v {
			t.Errorf("expected %v at position %d, got %v", v, i, data[i])
		}
	}
}

func TestHistoryResetClearsFrames(t *testing.T) {
	h, err := NewHistory([]int{1}, 2)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := h.Preprocess(frame(5)); err != nil {
		t.Fatal(err)
	}
	h.Reset()

	out, err := h.Preprocess(frame(7))
	if err != nil {
		t.Fatal(err)
	}

	data := out.Data().([]float64)
	want := []float64{0, 7}
	for i, v := range want {
		if data[i] != v {
			t.Errorf("expected %v at position %d, got %v", v, i, data[i])
		}
	}
}

func TestHistoryRejectsWrongFrameShapes(t *testing.T) {
	h, err := NewHistory([]int{2}, 2)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := h.Preprocess(frame(1, 2, 3)); err == nil {
		t.Error("expected error for frame of wrong shape")
	}
}

func TestHistoryStacksUint8Frames(t *testing.T) {
	h, err := NewHistory([]int{2}, 2)
	if err != nil {
		t.Fatal(err)
	}

	obs := tensor.New(tensor.WithShape(2),
		tensor.WithBacking([]uint8{10, 20}))
	out, err := h.Preprocess(obs)
	if err != nil {
		t.Fatal(err)
	}

	if out.Dtype() != tensor.Uint8 {
		t.Fatalf("expected uint8 output, got %v", out.Dtype())
	}
	data := out.Data().([]uint8)
	want := []uint8{0, 0, 10, 20}
	for i, v := range want {
		if data[i] != v {
			t.Errorf("expected %v at position %d, got %v", v, i, data[i])
		}
	}
}
