package transform

import (
	"github.com/go-sif/lazyframe"
)

// RenameColumn renames an existing column of a DataFrame, keeping its position
func RenameColumn(oldName string, newName string) lazyframe.Operation {
	return func(c lazyframe.Collection) (lazyframe.Collection, error) {
		df, err := asDataFrame(c, "rename_column")
		if err != nil {
			return nil, err
		}
		return df.Rename(oldName, newName)
	}
}
