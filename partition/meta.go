package partition

import (
	"time"

	"github.com/go-sif/lazyframe/types"
)

// placeholderTime is the value used for datetime columns of NonEmpty proxies
var placeholderTime = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// placeholderArray creates an Array of n placeholder values of a given dtype
func placeholderArray(dtype types.ColumnType, n int) Array {
	switch t := dtype.(type) {
	case *types.Int64ColumnType:
		res := make(Int64Array, n)
		for i := range res {
			res[i] = 1
		}
		return res
	case *types.Float64ColumnType:
		res := make(Float64Array, n)
		for i := range res {
			res[i] = 1.0
		}
		return res
	case *types.BoolColumnType:
		res := make(BoolArray, n)
		for i := range res {
			res[i] = true
		}
		return res
	case *types.TimeColumnType:
		res := make([]time.Time, n)
		for i := range res {
			res[i] = placeholderTime
		}
		return &TimeArray{Values: res, Type: t}
	case *types.CategoricalColumnType:
		codes := make([]int32, n)
		if len(t.Categories) == 0 {
			for i := range codes {
				codes[i] = -1
			}
		}
		return &CategoricalArray{Codes: codes, Type: t}
	default:
		res := make(StringArray, n)
		for i := range res {
			res[i] = "foo"
		}
		return res
	}
}
