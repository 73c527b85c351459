package lazyframe

import (
	"fmt"

	"github.com/go-sif/lazyframe/errors"
	"github.com/go-sif/lazyframe/graph"
	"github.com/go-sif/lazyframe/partition"
)

// Kind identifies the concrete variant of a Collection
type Kind int

const (
	// KindScalar is the Kind of a Scalar, e.g. the result of a reduction
	KindScalar Kind = iota
	// KindIndex is the Kind of an Index
	KindIndex
	// KindSeries is the Kind of a Series
	KindSeries
	// KindDataFrame is the Kind of a DataFrame
	KindDataFrame
)

// String returns a textual representation of this Kind
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "Scalar"
	case KindIndex:
		return "Index"
	case KindSeries:
		return "Series"
	case KindDataFrame:
		return "DataFrame"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// A Collection is a lazy, partitioned value: a task graph, the name of the graph keys
// holding its partitions, a meta describing every partition, and its Divisions.
// The set of Collections is closed: every Collection is a *Scalar, *Index, *Series or *DataFrame.
type Collection interface {
	Kind() Kind           // Kind returns the concrete variant of this Collection
	Graph() *graph.Graph  // Graph returns the task graph which computes this Collection
	Name() string         // Name returns the key prefix of this Collection's partitions
	Meta() interface{}    // Meta returns the zero-row proxy (or scalar meta) of this Collection
	Divisions() Divisions // Divisions returns the partition boundaries of this Collection
	NPartitions() int     // NPartitions returns the number of partitions in this Collection
	Keys() []graph.Key    // Keys returns the graph keys of this Collection's partitions, in order
	Token() string        // Token returns the identity of this Collection for content hashing
	String() string       // String returns a short description of this Collection
	isCollection()
}

// base holds the state shared by every Collection variant
type base struct {
	g         *graph.Graph
	name      string
	meta      interface{}
	divisions Divisions
}

// Graph returns the task graph which computes this Collection
func (b *base) Graph() *graph.Graph {
	return b.g
}

// Name returns the key prefix of this Collection's partitions
func (b *base) Name() string {
	return b.name
}

// Meta returns the zero-row proxy (or scalar meta) of this Collection
func (b *base) Meta() interface{} {
	return b.meta
}

// Divisions returns a copy of the partition boundaries of this Collection
func (b *base) Divisions() Divisions {
	return b.divisions.clone()
}

// NPartitions returns the number of partitions in this Collection
func (b *base) NPartitions() int {
	return b.divisions.NPartitions()
}

// Keys returns the graph keys of this Collection's partitions, in order
func (b *base) Keys() []graph.Key {
	keys := make([]graph.Key, b.NPartitions())
	for i := range keys {
		keys[i] = graph.Key{Name: b.name, Index: i}
	}
	return keys
}

// Token identifies a Collection by name alone, so that hashing never walks its graph
func (b *base) Token() string {
	return b.name
}

func (b *base) describe(k Kind) string {
	return fmt.Sprintf("<lazyframe.%s | %d tasks | %d npartitions>", k, b.g.Len(), b.NPartitions())
}

func (b *base) isCollection() {}

func newBase(g *graph.Graph, name string, meta interface{}, divisions Divisions) (base, error) {
	if len(divisions) < 2 {
		return base{}, errors.ConstructionError{
			Expected: "at least 2 divisions",
			Got:      fmt.Sprintf("%d divisions", len(divisions)),
		}
	}
	return base{g: g, name: name, meta: partition.MakeMeta(meta), divisions: divisions.clone()}, nil
}

// New creates the Collection variant implied by the shape of meta: a Table meta yields a
// *DataFrame, a Series meta a *Series, an Index meta an *Index, and anything else a *Scalar.
// Scalars ignore divisions.
func New(g *graph.Graph, name string, meta interface{}, divisions Divisions) (Collection, error) {
	switch meta.(type) {
	case *partition.Table:
		return NewDataFrame(g, name, meta, divisions)
	case *partition.Series:
		return NewSeries(g, name, meta, divisions)
	case *partition.Index:
		return NewIndex(g, name, meta, divisions)
	}
	return NewScalar(g, name, meta)
}

// metaKind describes the runtime shape of a meta, for ConstructionErrors
func metaKind(meta interface{}) string {
	if p, ok := meta.(partition.Partition); ok {
		return p.Kind().String()
	}
	return fmt.Sprintf("%T", meta)
}
