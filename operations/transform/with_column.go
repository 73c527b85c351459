package transform

import (
	"github.com/go-sif/lazyframe"
)

// ColumnFactory derives the values of a new column from a DataFrame
type ColumnFactory func(df *lazyframe.DataFrame) (interface{}, error)

// WithColumn adds (or replaces) a column of a DataFrame. The value may be a
// Series aligned with the DataFrame, a Scalar, or a literal broadcast to every row.
func WithColumn(colName string, value interface{}) lazyframe.Operation {
	return func(c lazyframe.Collection) (lazyframe.Collection, error) {
		df, err := asDataFrame(c, "with_column")
		if err != nil {
			return nil, err
		}
		return df.Assign(colName, value)
	}
}

// WithDerivedColumn adds (or replaces) a column of a DataFrame whose values are
// computed from the DataFrame itself, e.g. from one of its other columns
func WithDerivedColumn(colName string, fn ColumnFactory) lazyframe.Operation {
	return func(c lazyframe.Collection) (lazyframe.Collection, error) {
		df, err := asDataFrame(c, "with_column")
		if err != nil {
			return nil, err
		}
		value, err := fn(df)
		if err != nil {
			return nil, err
		}
		return df.Assign(colName, value)
	}
}
