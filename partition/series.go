package partition

import (
	"fmt"

	"github.com/go-sif/lazyframe/graph"
	"github.com/go-sif/lazyframe/types"
)

// Series is a single named column of values, labelled by an Index
type Series struct {
	name   string
	values Array
	index  *Index
}

// NewSeries is a factory for Series. A nil index is replaced by a RangeIndex.
func NewSeries(name string, values Array, index *Index) (*Series, error) {
	if index == nil {
		index = RangeIndex(values.Len())
	}
	if index.Len() != values.Len() {
		return nil, fmt.Errorf("Series %s has %d values but its index has %d labels", name, values.Len(), index.Len())
	}
	return &Series{name: name, values: values, index: index}, nil
}

// Name returns the name of this Series
func (s *Series) Name() string {
	return s.name
}

// Values returns the values in this Series
func (s *Series) Values() Array {
	return s.values
}

// DType returns the ColumnType of values in this Series
func (s *Series) DType() types.ColumnType {
	return s.values.DType()
}

// Index returns the Index of this Series
func (s *Series) Index() *Index {
	return s.index
}

// Kind returns KindSeries
func (s *Series) Kind() Kind {
	return KindSeries
}

// Len returns the number of values in this Series
func (s *Series) Len() int {
	return s.values.Len()
}

// Empty returns a zero-row Series with the same name, dtype and index dtype
func (s *Series) Empty() Partition {
	return s.Slice(0, 0)
}

// NonEmpty returns a one-row Series with the same name, dtype and index dtype
func (s *Series) NonEmpty() Partition {
	return &Series{
		name:   s.name,
		values: placeholderArray(s.values.DType(), 1),
		index:  s.index.NonEmpty().(*Index),
	}
}

// Slice returns the rows in [start, stop)
func (s *Series) Slice(start int, stop int) Partition {
	return &Series{
		name:   s.name,
		values: s.values.Slice(start, stop),
		index:  s.index.Slice(start, stop).(*Index),
	}
}

// Take returns the rows at the given positions, in order
func (s *Series) Take(idx []int) Partition {
	return &Series{
		name:   s.name,
		values: s.values.Take(idx),
		index:  s.index.Take(idx).(*Index),
	}
}

// Rename returns a copy of this Series with a new name
func (s *Series) Rename(name string) *Series {
	return &Series{name: name, values: s.values, index: s.index}
}

// Token returns a deterministic content hash of this Series
func (s *Series) Token() string {
	return graph.Tokenize("series", s.name, s.DType().Name(), tokenValue(s.values), s.index)
}

func (s *Series) vector() Array {
	return s.values
}

func (s *Series) withValues(name string, values Array) Partition {
	return &Series{name: name, values: values, index: s.index}
}
