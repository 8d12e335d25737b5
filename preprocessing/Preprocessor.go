// Package preprocessing provides observation preprocessors, which run
// between an environment and the input of an agent's network.
package preprocessing

import (
	"gorgonia.org/tensor"
)

// Preprocessor transforms observations before they reach an agent's
// network. Preprocessors may be stateful across the steps of an
// episode.
type Preprocessor interface {
	// Preprocess transforms a single observation
	Preprocess(*tensor.Dense) (*tensor.Dense, error)

	// Shape returns the shape of preprocessed observations
	Shape() []int

	// Reset clears any state held between episodes
	Reset()
}
