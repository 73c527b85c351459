package accumulators

import (
	"github.com/go-sif/lazyframe"
	"github.com/go-sif/lazyframe/partition"
)

// Adder returns a new Sum Accumulator over the named column, or over the
// values of a Series when colName is empty
func Adder(colName string) lazyframe.Accumulator {
	return Sum{colName: colName}
}

// Sum sums values. Integer columns sum to an int64, float columns to a float64.
type Sum struct {
	colName string
}

// Name identifies this Accumulator
func (a Sum) Name() string {
	return "sum"
}

// Chunk sums the values of a single partition
func (a Sum) Chunk(part interface{}) (interface{}, error) {
	col, err := selectColumn(part, a.colName)
	if err != nil {
		return nil, err
	}
	return partition.Reduce(partition.ReduceSum, col)
}

// Aggregate sums the per-partition sums
func (a Sum) Aggregate(chunks []interface{}) (interface{}, error) {
	return partition.Combine(partition.ReduceSum, chunks)
}
