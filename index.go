package lazyframe

import (
	"context"

	"github.com/go-sif/lazyframe/errors"
	"github.com/go-sif/lazyframe/graph"
	"github.com/go-sif/lazyframe/partition"
)

// Index is a lazy, partitioned set of row labels. It supports everything a Series
// does, except further index access.
type Index struct {
	Series
}

// NewIndex is a factory for Indexes. meta must be a *partition.Index.
func NewIndex(g *graph.Graph, name string, meta interface{}, divisions Divisions) (*Index, error) {
	if _, ok := meta.(*partition.Index); !ok {
		return nil, errors.ConstructionError{Expected: "Index", Got: metaKind(meta)}
	}
	b, err := newBase(g, name, meta, divisions)
	if err != nil {
		return nil, err
	}
	idx := &Index{Series{base: b}}
	idx.self = idx
	return idx, nil
}

// Kind returns KindIndex
func (idx *Index) Kind() Kind {
	return KindIndex
}

// Index always fails, since an Index has no index of its own
func (idx *Index) Index() (*Index, error) {
	return nil, errors.UnsupportedIndexingError{Key: "index"}
}

// GetPartition returns a single-partition Index holding the i-th partition of this one
func (idx *Index) GetPartition(i int) (*Index, error) {
	c, err := getPartition(idx, i)
	if err != nil {
		return nil, err
	}
	return c.(*Index), nil
}

// Compute materializes this Index, concatenating its partitions in order
func (idx *Index) Compute(ctx context.Context, opts ...ComputeOption) (*partition.Index, error) {
	res, err := Compute(ctx, idx, opts...)
	if err != nil {
		return nil, err
	}
	return asPartition[*partition.Index](res)
}

// Head materializes the first n labels of the first partition of this Index
func (idx *Index) Head(ctx context.Context, n int, opts ...ComputeOption) (*partition.Index, error) {
	res, err := head(ctx, idx, n, opts...)
	if err != nil {
		return nil, err
	}
	return asPartition[*partition.Index](res)
}

func partitionIndex(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return partition.IndexOf(args[0].(partition.Partition))
}

// indexOf builds the lazy Index of a partitioned Collection
func indexOf(c Collection) (*Index, error) {
	meta, err := partition.IndexOf(c.Meta().(partition.Partition))
	if err != nil {
		return nil, err
	}
	name := c.Name() + "-index"
	nodes := make(map[graph.Key]interface{}, c.NPartitions())
	for i, k := range c.Keys() {
		nodes[graph.Key{Name: name, Index: i}] = graph.NewTask(partitionIndex, k)
	}
	return NewIndex(graph.Merge(c.Graph(), graph.New(nodes)), name, meta, c.Divisions())
}
