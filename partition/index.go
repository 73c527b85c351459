package partition

import (
	"github.com/go-sif/lazyframe/graph"
	"github.com/go-sif/lazyframe/types"
)

// Index holds the row labels of a Partition
type Index struct {
	name   string
	values Array
}

// NewIndex is a factory for Indexes
func NewIndex(name string, values Array) *Index {
	return &Index{name: name, values: values}
}

// RangeIndex creates an unnamed int64 Index labelled 0..n-1
func RangeIndex(n int) *Index {
	values := make(Int64Array, n)
	for i := range values {
		values[i] = int64(i)
	}
	return &Index{values: values}
}

// Name returns the name of this Index
func (i *Index) Name() string {
	return i.name
}

// Values returns the labels in this Index
func (i *Index) Values() Array {
	return i.values
}

// DType returns the ColumnType of the labels in this Index
func (i *Index) DType() types.ColumnType {
	return i.values.DType()
}

// Kind returns KindIndex
func (i *Index) Kind() Kind {
	return KindIndex
}

// Len returns the number of labels in this Index
func (i *Index) Len() int {
	return i.values.Len()
}

// Empty returns a zero-row Index with the same name and dtype
func (i *Index) Empty() Partition {
	return i.Slice(0, 0)
}

// NonEmpty returns a one-row Index with the same name and dtype
func (i *Index) NonEmpty() Partition {
	return &Index{name: i.name, values: placeholderArray(i.values.DType(), 1)}
}

// Slice returns the labels in [start, stop)
func (i *Index) Slice(start int, stop int) Partition {
	return &Index{name: i.name, values: i.values.Slice(start, stop)}
}

// Take returns the labels at the given positions, in order
func (i *Index) Take(idx []int) Partition {
	return &Index{name: i.name, values: i.values.Take(idx)}
}

// Rename returns a copy of this Index with a new name
func (i *Index) Rename(name string) *Index {
	return &Index{name: name, values: i.values}
}

// Token returns a deterministic content hash of this Index
func (i *Index) Token() string {
	return graph.Tokenize("index", i.name, i.DType().Name(), tokenValue(i.values))
}

func (i *Index) vector() Array {
	return i.values
}

func (i *Index) withValues(name string, values Array) Partition {
	return &Index{name: name, values: values}
}
