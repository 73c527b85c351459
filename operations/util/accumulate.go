package util

import (
	"github.com/go-sif/lazyframe"
)

// Accumulate reduces a Collection to a Scalar, using a user-provided Accumulator
func Accumulate(acc lazyframe.Accumulator) lazyframe.Operation {
	return func(c lazyframe.Collection) (lazyframe.Collection, error) {
		return lazyframe.Accumulate(c, acc)
	}
}
