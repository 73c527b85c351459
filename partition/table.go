package partition

import (
	"fmt"

	"github.com/go-sif/lazyframe/graph"
	"github.com/go-sif/lazyframe/schema"
	"github.com/go-sif/lazyframe/types"
	multierror "github.com/hashicorp/go-multierror"
)

// Table is a set of named, ordered columns sharing a single Index
type Table struct {
	names   []string
	columns []Array
	index   *Index
}

// NewTable is a factory for Tables. A nil index is replaced by a RangeIndex.
// Every column must be uniquely named and as long as the index.
func NewTable(names []string, columns []Array, index *Index) (*Table, error) {
	if len(names) != len(columns) {
		return nil, fmt.Errorf("Table has %d column names but %d columns", len(names), len(columns))
	}
	if index == nil {
		n := 0
		if len(columns) > 0 {
			n = columns[0].Len()
		}
		index = RangeIndex(n)
	}
	var errs *multierror.Error
	seen := make(map[string]bool, len(names))
	for i, name := range names {
		if seen[name] {
			errs = multierror.Append(errs, fmt.Errorf("duplicate column name %s", name))
		}
		seen[name] = true
		if columns[i].Len() != index.Len() {
			errs = multierror.Append(errs, fmt.Errorf("column %s has %d values but the index has %d labels", name, columns[i].Len(), index.Len()))
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return &Table{
		names:   append([]string(nil), names...),
		columns: append([]Array(nil), columns...),
		index:   index,
	}, nil
}

// Columns returns the column names of this Table, in order
func (t *Table) Columns() []string {
	return append([]string(nil), t.names...)
}

// Dtypes returns the column types of this Table, in order
func (t *Table) Dtypes() []types.ColumnType {
	res := make([]types.ColumnType, len(t.columns))
	for i, c := range t.columns {
		res[i] = c.DType()
	}
	return res
}

// Schema returns the column names and types of this Table
func (t *Table) Schema() types.Schema {
	s := schema.CreateSchema()
	for i, name := range t.names {
		// names are unique by construction
		s.CreateColumn(name, t.columns[i].DType())
	}
	return s
}

// NumColumns returns the number of columns in this Table
func (t *Table) NumColumns() int {
	return len(t.names)
}

// HasColumn returns true iff this Table contains a column with the given name
func (t *Table) HasColumn(name string) bool {
	return t.columnIndex(name) >= 0
}

func (t *Table) columnIndex(name string) int {
	for i, n := range t.names {
		if n == name {
			return i
		}
	}
	return -1
}

// Index returns the Index of this Table
func (t *Table) Index() *Index {
	return t.index
}

// Column returns the column with the given name as a Series sharing this Table's Index
func (t *Table) Column(name string) (*Series, error) {
	i := t.columnIndex(name)
	if i < 0 {
		return nil, fmt.Errorf("Table does not contain column with name %s", name)
	}
	return &Series{name: name, values: t.columns[i], index: t.index}, nil
}

// Select returns a Table containing only the named columns, in the given order
func (t *Table) Select(names ...string) (*Table, error) {
	columns := make([]Array, len(names))
	for j, name := range names {
		i := t.columnIndex(name)
		if i < 0 {
			return nil, fmt.Errorf("Table does not contain column with name %s", name)
		}
		columns[j] = t.columns[i]
	}
	return NewTable(names, columns, t.index)
}

// Rename returns a copy of this Table with a column renamed, keeping its position
func (t *Table) Rename(oldName string, newName string) (*Table, error) {
	s, err := t.Schema().RenameColumn(oldName, newName)
	if err != nil {
		return nil, err
	}
	return &Table{names: s.ColumnNames(), columns: t.columns, index: t.index}, nil
}

// Drop returns a copy of this Table without the named columns
func (t *Table) Drop(names ...string) (*Table, error) {
	s := t.Schema()
	for _, name := range names {
		var removed bool
		if s, removed = s.RemoveColumn(name); !removed {
			return nil, fmt.Errorf("Table does not contain column with name %s", name)
		}
	}
	remaining := s.ColumnNames()
	columns := make([]Array, len(remaining))
	for j, name := range remaining {
		columns[j] = t.columns[t.columnIndex(name)]
	}
	return &Table{names: remaining, columns: columns, index: t.index}, nil
}

// Assign returns a copy of this Table with a column added or replaced. The
// value may be a Series of the same length, or a scalar which is broadcast.
func (t *Table) Assign(name string, value interface{}) (*Table, error) {
	var values Array
	switch v := value.(type) {
	case *Series:
		if v.Len() != t.Len() {
			return nil, fmt.Errorf("cannot assign Series of length %d to Table of length %d", v.Len(), t.Len())
		}
		values = v.values
	case Array:
		if v.Len() != t.Len() {
			return nil, fmt.Errorf("cannot assign Array of length %d to Table of length %d", v.Len(), t.Len())
		}
		values = v
	default:
		var err error
		if values, err = repeat(value, t.Len()); err != nil {
			return nil, err
		}
	}
	names := t.Columns()
	columns := append([]Array(nil), t.columns...)
	if i := t.columnIndex(name); i >= 0 {
		columns[i] = values
	} else {
		names = append(names, name)
		columns = append(columns, values)
	}
	return &Table{names: names, columns: columns, index: t.index}, nil
}

// Kind returns KindTable
func (t *Table) Kind() Kind {
	return KindTable
}

// Len returns the number of rows in this Table
func (t *Table) Len() int {
	return t.index.Len()
}

// Empty returns a zero-row Table with the same columns, dtypes and index dtype
func (t *Table) Empty() Partition {
	return t.Slice(0, 0)
}

// NonEmpty returns a one-row Table with the same columns, dtypes and index dtype
func (t *Table) NonEmpty() Partition {
	columns := make([]Array, len(t.columns))
	for i, c := range t.columns {
		columns[i] = placeholderArray(c.DType(), 1)
	}
	return &Table{names: t.names, columns: columns, index: t.index.NonEmpty().(*Index)}
}

// Slice returns the rows in [start, stop)
func (t *Table) Slice(start int, stop int) Partition {
	columns := make([]Array, len(t.columns))
	for i, c := range t.columns {
		columns[i] = c.Slice(start, stop)
	}
	return &Table{names: t.names, columns: columns, index: t.index.Slice(start, stop).(*Index)}
}

// Take returns the rows at the given positions, in order
func (t *Table) Take(idx []int) Partition {
	columns := make([]Array, len(t.columns))
	for i, c := range t.columns {
		columns[i] = c.Take(idx)
	}
	return &Table{names: t.names, columns: columns, index: t.index.Take(idx).(*Index)}
}

// Token returns a deterministic content hash of this Table
func (t *Table) Token() string {
	parts := make([]interface{}, 0, 2*len(t.columns)+2)
	parts = append(parts, "table", t.index)
	for i, c := range t.columns {
		parts = append(parts, t.names[i], c.DType().Name(), tokenValue(c))
	}
	return graph.Tokenize(parts...)
}

// Filter keeps the rows of a Table, Series or Index for which a boolean mask is true.
// The mask may be a Series, Index or BoolArray of the same length.
func Filter(p Partition, mask interface{}) (Partition, error) {
	var values Array
	switch m := mask.(type) {
	case vector:
		values = m.vector()
	case Array:
		values = m
	default:
		return nil, fmt.Errorf("cannot filter with a mask of type %T", mask)
	}
	bools, ok := values.(BoolArray)
	if !ok {
		return nil, fmt.Errorf("filter mask must be boolean, not %s", values.DType().Name())
	}
	if bools.Len() != p.Len() {
		return nil, fmt.Errorf("filter mask has length %d, but the partition has %d rows", bools.Len(), p.Len())
	}
	idx := make([]int, 0, len(bools))
	for i, keep := range bools {
		if keep {
			idx = append(idx, i)
		}
	}
	return p.Take(idx), nil
}
