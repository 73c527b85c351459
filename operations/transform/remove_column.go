package transform

import (
	"github.com/go-sif/lazyframe"
)

// RemoveColumn removes existing columns from a DataFrame
func RemoveColumn(colNames ...string) lazyframe.Operation {
	return func(c lazyframe.Collection) (lazyframe.Collection, error) {
		df, err := asDataFrame(c, "remove_column")
		if err != nil {
			return nil, err
		}
		return df.Drop(colNames...)
	}
}
