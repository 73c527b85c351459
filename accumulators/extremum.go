package accumulators

import (
	"github.com/go-sif/lazyframe"
	"github.com/go-sif/lazyframe/partition"
)

// Minimum returns a new Extremum Accumulator which finds the smallest value of the named column
func Minimum(colName string) lazyframe.Accumulator {
	return Extremum{colName: colName, op: partition.ReduceMin}
}

// Maximum returns a new Extremum Accumulator which finds the largest value of the named column
func Maximum(colName string) lazyframe.Accumulator {
	return Extremum{colName: colName, op: partition.ReduceMax}
}

// Extremum finds the smallest or largest value, ignoring NaN. The result is nil
// when there are no values.
type Extremum struct {
	colName string
	op      partition.ReduceOp
}

// Name identifies this Accumulator
func (a Extremum) Name() string {
	return a.op.String()
}

// Chunk finds the extremum of a single partition
func (a Extremum) Chunk(part interface{}) (interface{}, error) {
	col, err := selectColumn(part, a.colName)
	if err != nil {
		return nil, err
	}
	return partition.Reduce(a.op, col)
}

// Aggregate finds the extremum of the per-partition extrema
func (a Extremum) Aggregate(chunks []interface{}) (interface{}, error) {
	return partition.Combine(a.op, chunks)
}
