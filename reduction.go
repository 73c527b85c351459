package lazyframe

import (
	"fmt"
	"math"

	"github.com/go-sif/lazyframe/errors"
	"github.com/go-sif/lazyframe/graph"
	"github.com/go-sif/lazyframe/internal/util"
	"github.com/go-sif/lazyframe/partition"
)

// reducer is the Accumulator behind the built-in reductions
type reducer struct {
	op partition.ReduceOp
}

func (r reducer) Name() string {
	return r.op.String()
}

func (r reducer) Chunk(part interface{}) (interface{}, error) {
	return partition.Reduce(r.op, part)
}

func (r reducer) Aggregate(chunks []interface{}) (interface{}, error) {
	op := r.op
	if op == partition.ReduceCount {
		// counts are summed
		op = partition.ReduceSum
	}
	return partition.Combine(op, chunks)
}

// accumulatorTask binds an Accumulator into task functions
type accumulatorTask struct {
	acc Accumulator
}

func (t accumulatorTask) chunk(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return t.acc.Chunk(args[0])
}

func (t accumulatorTask) aggregate(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	chunks, _ := args[0].([]interface{})
	return t.acc.Aggregate(chunks)
}

// mean divides a sum by a count
type mean struct{}

func (m mean) Name() string {
	return "mean"
}

func (m mean) Chunk(part interface{}) (interface{}, error) {
	sum, err := partition.Reduce(partition.ReduceSum, part)
	if err != nil {
		return nil, err
	}
	count, err := partition.Reduce(partition.ReduceCount, part)
	if err != nil {
		return nil, err
	}
	return []interface{}{sum, count}, nil
}

func (m mean) Aggregate(chunks []interface{}) (interface{}, error) {
	sums := make([]interface{}, len(chunks))
	counts := make([]interface{}, len(chunks))
	for i, c := range chunks {
		pair := c.([]interface{})
		sums[i], counts[i] = pair[0], pair[1]
	}
	sum, err := partition.Combine(partition.ReduceSum, sums)
	if err != nil {
		return nil, err
	}
	count, err := partition.Combine(partition.ReduceSum, counts)
	if err != nil {
		return nil, err
	}
	n := float64(count.(int64))
	if n == 0 {
		return math.NaN(), nil
	}
	switch ts := sum.(type) {
	case int64:
		return float64(ts) / n, nil
	case float64:
		return ts / n, nil
	}
	return nil, fmt.Errorf("cannot average a sum of %T", sum)
}

// Accumulate reduces this Series to a Scalar using acc
func (s *Series) Accumulate(acc Accumulator) (*Scalar, error) {
	return Accumulate(s.self, acc)
}

// Accumulate reduces this DataFrame to a Scalar using acc
func (df *DataFrame) Accumulate(acc Accumulator) (*Scalar, error) {
	return Accumulate(df, acc)
}

// Sum returns the total of all values
func (s *Series) Sum() (*Scalar, error) {
	return s.Accumulate(reducer{partition.ReduceSum})
}

// Count returns the number of values
func (s *Series) Count() (*Scalar, error) {
	return s.Accumulate(reducer{partition.ReduceCount})
}

// Min returns the smallest value, ignoring NaN
func (s *Series) Min() (*Scalar, error) {
	return s.Accumulate(reducer{partition.ReduceMin})
}

// Max returns the largest value, ignoring NaN
func (s *Series) Max() (*Scalar, error) {
	return s.Accumulate(reducer{partition.ReduceMax})
}

// Mean returns the average of all values, ignoring NaN in the sum. The mean of no values is NaN.
func (s *Series) Mean() (*Scalar, error) {
	return s.Accumulate(mean{})
}

// Accumulate reduces a partitioned Collection to a Scalar. acc.Chunk is applied to
// every partition, then acc.Aggregate to the list of chunks.
func Accumulate(c Collection, acc Accumulator) (*Scalar, error) {
	if c.Kind() == KindScalar {
		return nil, errors.InvalidOperandsError{Reason: "Accumulate requires a partitioned Collection"}
	}
	meta, err := emulateAccumulator(acc, c.Meta())
	if err != nil {
		return nil, err
	}
	name := acc.Name() + "-" + graph.Tokenize(c, acc)
	chunkName := name + "-chunk"
	t := accumulatorTask{acc}
	nodes := make(map[graph.Key]interface{}, c.NPartitions()+1)
	chunkKeys := make([]interface{}, c.NPartitions())
	for i, k := range c.Keys() {
		ck := graph.Key{Name: chunkName, Index: i}
		nodes[ck] = graph.NewTask(t.chunk, k)
		chunkKeys[i] = ck
	}
	nodes[graph.Key{Name: name, Index: 0}] = graph.NewTask(t.aggregate, chunkKeys)
	return NewScalar(graph.Merge(c.Graph(), graph.New(nodes)), name, meta)
}

// emulateAccumulator infers the meta of a reduction by running it over a single non-empty proxy partition
func emulateAccumulator(acc Accumulator, meta interface{}) (interface{}, error) {
	proxy := meta
	if p, ok := meta.(partition.Partition); ok {
		proxy = p.NonEmpty()
	}
	fn := util.SafePartitionFunc(acc.Name(), func(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
		chunk, err := acc.Chunk(args[0])
		if err != nil {
			return nil, err
		}
		return acc.Aggregate([]interface{}{chunk})
	})
	res, err := fn([]interface{}{proxy}, nil)
	if err != nil {
		return nil, errors.EmulationError{FuncName: acc.Name(), Err: err}
	}
	if partition.IsPartition(res) {
		return nil, errors.EmulationError{FuncName: acc.Name(), Err: errors.ConstructionError{Expected: "Scalar", Got: metaKind(res)}}
	}
	return res, nil
}
