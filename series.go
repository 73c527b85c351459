package lazyframe

import (
	"context"
	"fmt"

	"github.com/go-sif/lazyframe/errors"
	"github.com/go-sif/lazyframe/graph"
	"github.com/go-sif/lazyframe/partition"
	"github.com/go-sif/lazyframe/types"
)

// vectorMeta is implemented by the metas of Series and Indexes
type vectorMeta interface {
	partition.Partition
	Name() string
	DType() types.ColumnType
}

// Series is a lazy, partitioned column of values
type Series struct {
	base
	// self is the outermost variant embedding this Series, so that shared
	// methods pass an Index to operations as an Index
	self Collection
}

// NewSeries is a factory for Series. meta must be a *partition.Series.
func NewSeries(g *graph.Graph, name string, meta interface{}, divisions Divisions) (*Series, error) {
	if _, ok := meta.(*partition.Series); !ok {
		return nil, errors.ConstructionError{Expected: "Series", Got: metaKind(meta)}
	}
	b, err := newBase(g, name, meta, divisions)
	if err != nil {
		return nil, err
	}
	s := &Series{base: b}
	s.self = s
	return s, nil
}

// Kind returns KindSeries
func (s *Series) Kind() Kind {
	return KindSeries
}

// String returns a short description of this Series
func (s *Series) String() string {
	return s.describe(s.self.Kind())
}

// ColumnName returns the name of the column held by this Series
func (s *Series) ColumnName() string {
	return s.meta.(vectorMeta).Name()
}

// Dtype returns the ColumnType of values in this Series
func (s *Series) Dtype() types.ColumnType {
	return s.meta.(vectorMeta).DType()
}

// Index returns the lazy Index of this Series
func (s *Series) Index() (*Index, error) {
	return indexOf(s.self)
}

// MapPartitions applies fn to every partition of this Series. The Series is prepended to args.
func (s *Series) MapPartitions(fn graph.Func, args []interface{}, opts ...MapOption) (Collection, error) {
	return MapPartitions(fn, append([]interface{}{s.self}, args...), opts...)
}

// To applies a chain of Operations to this Series
func (s *Series) To(ops ...Operation) (Collection, error) {
	return To(s.self, ops...)
}

// GetPartition returns a single-partition Series holding the i-th partition of this one
func (s *Series) GetPartition(i int) (*Series, error) {
	c, err := getPartition(s, i)
	if err != nil {
		return nil, err
	}
	return c.(*Series), nil
}

// Compute materializes this Series, concatenating its partitions in order
func (s *Series) Compute(ctx context.Context, opts ...ComputeOption) (*partition.Series, error) {
	res, err := Compute(ctx, s, opts...)
	if err != nil {
		return nil, err
	}
	return asPartition[*partition.Series](res)
}

// Head materializes the first n rows of the first partition of this Series
func (s *Series) Head(ctx context.Context, n int, opts ...ComputeOption) (*partition.Series, error) {
	res, err := head(ctx, s, n, opts...)
	if err != nil {
		return nil, err
	}
	return asPartition[*partition.Series](res)
}

func asPartition[T partition.Partition](res interface{}) (T, error) {
	p, ok := res.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("expected a computed %T, got %T", zero, res)
	}
	return p, nil
}
