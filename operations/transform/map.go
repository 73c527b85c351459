package transform

import (
	"github.com/go-sif/lazyframe"
	"github.com/go-sif/lazyframe/graph"
)

// Map applies fn to every partition of a Collection, which is passed to fn
// before args. The kind of the result is inferred from fn's result.
func Map(fn graph.Func, args []interface{}, opts ...lazyframe.MapOption) lazyframe.Operation {
	return func(c lazyframe.Collection) (lazyframe.Collection, error) {
		return lazyframe.MapPartitions(fn, append([]interface{}{c}, args...), opts...)
	}
}
