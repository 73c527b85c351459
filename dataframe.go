package lazyframe

import (
	"context"

	"github.com/go-sif/lazyframe/errors"
	"github.com/go-sif/lazyframe/graph"
	"github.com/go-sif/lazyframe/partition"
	"github.com/go-sif/lazyframe/types"
)

// DataFrame is a lazy, partitioned table of named columns sharing an index
type DataFrame struct {
	base
}

// NewDataFrame is a factory for DataFrames. meta must be a *partition.Table.
func NewDataFrame(g *graph.Graph, name string, meta interface{}, divisions Divisions) (*DataFrame, error) {
	if _, ok := meta.(*partition.Table); !ok {
		return nil, errors.ConstructionError{Expected: "DataFrame", Got: metaKind(meta)}
	}
	b, err := newBase(g, name, meta, divisions)
	if err != nil {
		return nil, err
	}
	return &DataFrame{base: b}, nil
}

// Kind returns KindDataFrame
func (df *DataFrame) Kind() Kind {
	return KindDataFrame
}

// String returns a short description of this DataFrame
func (df *DataFrame) String() string {
	return df.describe(KindDataFrame)
}

func (df *DataFrame) table() *partition.Table {
	return df.meta.(*partition.Table)
}

// Columns returns the column names of this DataFrame, in order
func (df *DataFrame) Columns() []string {
	return df.table().Columns()
}

// Dtypes returns the column types of this DataFrame, in order
func (df *DataFrame) Dtypes() []types.ColumnType {
	return df.table().Dtypes()
}

// Schema returns the column names and types of this DataFrame
func (df *DataFrame) Schema() types.Schema {
	return df.table().Schema()
}

func getitem(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return args[0].(*partition.Table).Column(args[1].(string))
}

// Get projects a single existing column, by name, into a Series. Any other kind of
// key fails with an UnsupportedIndexingError.
func (df *DataFrame) Get(key interface{}) (*Series, error) {
	colName, ok := key.(string)
	if !ok || !df.table().HasColumn(colName) {
		return nil, errors.UnsupportedIndexingError{Key: key}
	}
	meta, err := df.table().Column(colName)
	if err != nil {
		return nil, err
	}
	name := "getitem-" + graph.Tokenize(df, key)
	nodes := make(map[graph.Key]interface{}, df.NPartitions())
	for i, k := range df.Keys() {
		nodes[graph.Key{Name: name, Index: i}] = graph.NewTask(getitem, k, colName)
	}
	return NewSeries(graph.Merge(df.g, graph.New(nodes)), name, meta, df.divisions)
}

// Column is a shortcut for Get with a column name
func (df *DataFrame) Column(colName string) (*Series, error) {
	return df.Get(colName)
}

// Index returns the lazy Index of this DataFrame
func (df *DataFrame) Index() (*Index, error) {
	return indexOf(df)
}

// MapPartitions applies fn to every partition of this DataFrame. The DataFrame is prepended to args.
func (df *DataFrame) MapPartitions(fn graph.Func, args []interface{}, opts ...MapOption) (Collection, error) {
	return MapPartitions(fn, append([]interface{}{df}, args...), opts...)
}

// To applies a chain of Operations to this DataFrame
func (df *DataFrame) To(ops ...Operation) (Collection, error) {
	return To(df, ops...)
}

func renameColumn(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return args[0].(*partition.Table).Rename(args[1].(string), args[2].(string))
}

// Rename renames a column, keeping its position
func (df *DataFrame) Rename(oldName string, newName string) (*DataFrame, error) {
	return asDataFrame(df.MapPartitions(renameColumn, []interface{}{oldName, newName}, WithToken("rename")))
}

func dropColumns(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return args[0].(*partition.Table).Drop(args[1].([]string)...)
}

// Drop removes columns
func (df *DataFrame) Drop(colNames ...string) (*DataFrame, error) {
	return asDataFrame(df.MapPartitions(dropColumns, []interface{}{colNames}, WithToken("drop")))
}

func assignColumn(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return args[0].(*partition.Table).Assign(args[1].(string), args[2])
}

// Assign adds or replaces a column. value may be a Series aligned with this
// DataFrame, a Scalar, or a literal which is broadcast to every row.
func (df *DataFrame) Assign(colName string, value interface{}) (*DataFrame, error) {
	return asDataFrame(df.MapPartitions(assignColumn, []interface{}{colName, value}, WithToken("assign")))
}

func filterRows(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return partition.Filter(args[0].(partition.Partition), args[1])
}

// Filter keeps the rows for which a boolean Series, aligned with this DataFrame, is true.
// Divisions are unchanged, since the remaining rows keep their order.
func (df *DataFrame) Filter(mask *Series) (*DataFrame, error) {
	return asDataFrame(df.MapPartitions(filterRows, []interface{}{mask}, WithToken("filter")))
}

// Binary applies a binary Operator with this DataFrame as the left operand
func (df *DataFrame) Binary(op Operator, other interface{}) (Collection, error) {
	return applyBinary(op, df, other)
}

// RBinary applies a binary Operator with this DataFrame as the right operand
func (df *DataFrame) RBinary(op Operator, other interface{}) (Collection, error) {
	return applyBinary(op, other, df)
}

// Unary applies a unary Operator to this DataFrame
func (df *DataFrame) Unary(op Operator) (Collection, error) {
	return applyUnary(op, df)
}

// GetPartition returns a single-partition DataFrame holding the i-th partition of this one
func (df *DataFrame) GetPartition(i int) (*DataFrame, error) {
	return asDataFrame(getPartition(df, i))
}

// Compute materializes this DataFrame, concatenating its partitions in order
func (df *DataFrame) Compute(ctx context.Context, opts ...ComputeOption) (*partition.Table, error) {
	res, err := Compute(ctx, df, opts...)
	if err != nil {
		return nil, err
	}
	return asPartition[*partition.Table](res)
}

// Head materializes the first n rows of the first partition of this DataFrame
func (df *DataFrame) Head(ctx context.Context, n int, opts ...ComputeOption) (*partition.Table, error) {
	res, err := head(ctx, df, n, opts...)
	if err != nil {
		return nil, err
	}
	return asPartition[*partition.Table](res)
}

func asDataFrame(c Collection, err error) (*DataFrame, error) {
	if err != nil {
		return nil, err
	}
	df, ok := c.(*DataFrame)
	if !ok {
		return nil, errors.ConstructionError{Expected: "DataFrame", Got: c.Kind().String()}
	}
	return df, nil
}
