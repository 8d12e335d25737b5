// Package intutils provides utilities for working with ints
package intutils

// Prod calculates and returns the product of a list of integers
func Prod(ints ...int) int {
	prod := 1
	for _, val := range ints {
		prod *= val
	}
	return prod
}
