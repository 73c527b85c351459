package lazyframe

import (
	"context"

	"github.com/go-sif/lazyframe/errors"
	"github.com/go-sif/lazyframe/graph"
	"github.com/go-sif/lazyframe/partition"
)

// Scalar is a lazy single value, such as the result of a reduction. Its graph
// holds exactly one result key, (name, 0).
type Scalar struct {
	base
}

// NewScalar is a factory for Scalars. meta must not be a partition.
func NewScalar(g *graph.Graph, name string, meta interface{}) (*Scalar, error) {
	if partition.IsPartition(meta) {
		return nil, errors.ConstructionError{Expected: "Scalar", Got: metaKind(meta)}
	}
	b, err := newBase(g, name, meta, UnknownDivisions(1))
	if err != nil {
		return nil, err
	}
	return &Scalar{base: b}, nil
}

// Kind returns KindScalar
func (s *Scalar) Kind() Kind {
	return KindScalar
}

// String returns a short description of this Scalar
func (s *Scalar) String() string {
	return s.describe(KindScalar)
}

// Compute materializes this Scalar
func (s *Scalar) Compute(ctx context.Context, opts ...ComputeOption) (interface{}, error) {
	return Compute(ctx, s, opts...)
}
