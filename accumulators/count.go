package accumulators

import (
	"fmt"

	"github.com/go-sif/lazyframe"
	"github.com/go-sif/lazyframe/partition"
)

// Counter returns a new Count Accumulator
func Counter() lazyframe.Accumulator {
	return Count{}
}

// Count counts rows
type Count struct{}

// Name identifies this Accumulator
func (a Count) Name() string {
	return "count"
}

// Chunk counts the rows of a single partition
func (a Count) Chunk(part interface{}) (interface{}, error) {
	p, ok := part.(partition.Partition)
	if !ok {
		return nil, fmt.Errorf("cannot count rows of %T", part)
	}
	return int64(p.Len()), nil
}

// Aggregate sums the per-partition counts
func (a Count) Aggregate(chunks []interface{}) (interface{}, error) {
	return partition.Combine(partition.ReduceSum, chunks)
}
