package lazyframe

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-sif/lazyframe/config"
	"github.com/go-sif/lazyframe/errors"
	"github.com/go-sif/lazyframe/graph"
	"github.com/go-sif/lazyframe/partition"
	"github.com/go-sif/lazyframe/scheduler"
)

type computeOptions struct {
	scheduler *scheduler.Scheduler
}

// ComputeOption configures the execution of a Collection's graph
type ComputeOption func(*computeOptions)

// WithScheduler executes graphs on s instead of the default Scheduler
func WithScheduler(s *scheduler.Scheduler) ComputeOption {
	return func(o *computeOptions) {
		o.scheduler = s
	}
}

var (
	defaultSchedulerOnce sync.Once
	defaultScheduler     *scheduler.Scheduler
	defaultSchedulerErr  error
)

func getDefaultScheduler() (*scheduler.Scheduler, error) {
	defaultSchedulerOnce.Do(func() {
		defaultScheduler, defaultSchedulerErr = scheduler.New(config.Default())
	})
	return defaultScheduler, defaultSchedulerErr
}

func resolveScheduler(opts []ComputeOption) (*scheduler.Scheduler, error) {
	o := &computeOptions{}
	for _, opt := range opts {
		opt(o)
	}
	if o.scheduler != nil {
		return o.scheduler, nil
	}
	return getDefaultScheduler()
}

// computeKeys optimizes and executes c's graph for a subset of its keys
func computeKeys(ctx context.Context, c Collection, keys []graph.Key, opts []ComputeOption) ([]interface{}, error) {
	s, err := resolveScheduler(opts)
	if err != nil {
		return nil, err
	}
	g := scheduler.Optimize(c.Graph(), keys, s.Config().FuseLinearChains)
	return s.Get(ctx, g, keys)
}

// Compute materializes a Collection. Partitioned Collections are concatenated, in
// partition order, into a single partition; Scalars yield their value.
func Compute(ctx context.Context, c Collection, opts ...ComputeOption) (interface{}, error) {
	results, err := computeKeys(ctx, c, c.Keys(), opts)
	if err != nil {
		return nil, err
	}
	return finalize(c, results)
}

func finalize(c Collection, results []interface{}) (interface{}, error) {
	if c.Kind() == KindScalar {
		return results[0], nil
	}
	parts := make([]partition.Partition, len(results))
	for i, r := range results {
		p, ok := r.(partition.Partition)
		if !ok {
			return nil, fmt.Errorf("partition %d of %s computed to %T, not a partition", i, c.Name(), r)
		}
		parts[i] = p
	}
	return partition.Concat(parts)
}

// getPartition selects the i-th partition of a partitioned Collection as a new
// single-partition Collection of the same kind
func getPartition(c Collection, i int) (Collection, error) {
	if i < 0 || i >= c.NPartitions() {
		return nil, errors.InvalidOperandsError{Reason: fmt.Sprintf("partition %d is out of range for %d partitions", i, c.NPartitions())}
	}
	name := "get-partition-" + graph.Tokenize(c, i)
	nodes := map[graph.Key]interface{}{
		{Name: name, Index: 0}: graph.Key{Name: c.Name(), Index: i},
	}
	divisions := c.Divisions()[i : i+2]
	return New(graph.Merge(c.Graph(), graph.New(nodes)), name, c.Meta(), divisions)
}

// head computes the first partition of c and returns at most its first n rows
func head(ctx context.Context, c Collection, n int, opts ...ComputeOption) (partition.Partition, error) {
	results, err := computeKeys(ctx, c, []graph.Key{{Name: c.Name(), Index: 0}}, opts)
	if err != nil {
		return nil, err
	}
	p, ok := results[0].(partition.Partition)
	if !ok {
		return nil, fmt.Errorf("partition 0 of %s computed to %T, not a partition", c.Name(), results[0])
	}
	if n > p.Len() {
		n = p.Len()
	}
	if n < 0 {
		n = 0
	}
	return p.Slice(0, n), nil
}
