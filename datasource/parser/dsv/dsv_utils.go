package dsv

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-sif/lazyframe/types"
)

// parseValue parses a single field according to its column type
func parseValue(colVal string, colType types.ColumnType) (interface{}, error) {
	switch t := colType.(type) {
	case *types.BoolColumnType:
		return strconv.ParseBool(colVal)
	case *types.Int64ColumnType:
		return strconv.ParseInt(colVal, 10, 64)
	case *types.Float64ColumnType:
		return strconv.ParseFloat(colVal, 64)
	case *types.VarStringColumnType, *types.CategoricalColumnType:
		return colVal, nil
	case *types.TimeColumnType:
		tval, err := time.Parse(t.Layout(), colVal)
		if err != nil {
			return nil, fmt.Errorf("could not be parsed as datetime with format %s. Was: %s", t.Layout(), colVal)
		}
		return tval, nil
	}
	return nil, fmt.Errorf("DSV parsing does not support column type %T", colType)
}
