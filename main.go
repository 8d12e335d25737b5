package main

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"

	"github.com/samuelfneumann/godeeprl/agent"
	"github.com/samuelfneumann/godeeprl/agent/random"
	"github.com/samuelfneumann/godeeprl/spaces"
)

func main() {
	var seed uint64 = 192382

	// Observation space of the mountain car environment
	low := mat.NewVecDense(2, []float64{-1.2, -0.07})
	high := mat.NewVecDense(2, []float64{0.6, 0.07})
	obsSpace := spaces.NewBox(low, high, []int{2})

	r, err := random.New(obsSpace, spaces.NewDiscrete(3),
		random.Config{Seed: seed})
	if err != nil {
		panic(err)
	}

	if err := r.DiscretizeObservationSpace(obsSpace, 10); err != nil {
		panic(err)
	}

	obs := tensor.New(tensor.WithShape(2),
		tensor.WithBacking([]float64{-0.5, 0.0}))

	state, err := r.Preprocess(obs)
	if err != nil {
		panic(err)
	}
	fmt.Println("Network input shape:", state.Shape())

	action, err := agent.Evaluate(r, obs)
	if err != nil {
		panic(err)
	}
	fmt.Println("Chosen action:", action)
}
