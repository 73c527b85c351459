package transform

import (
	"fmt"

	"github.com/go-sif/lazyframe"
)

// FilterOperation builds a boolean mask over the rows of a DataFrame
type FilterOperation func(df *lazyframe.DataFrame) (lazyframe.Collection, error)

// Filter keeps the rows of a DataFrame for which the mask built by fn is true
func Filter(fn FilterOperation) lazyframe.Operation {
	return func(c lazyframe.Collection) (lazyframe.Collection, error) {
		df, err := asDataFrame(c, "filter")
		if err != nil {
			return nil, err
		}
		mask, err := fn(df)
		if err != nil {
			return nil, err
		}
		s, ok := mask.(*lazyframe.Series)
		if !ok {
			return nil, fmt.Errorf("filter mask must be a Series, not a %s", mask.Kind())
		}
		return df.Filter(s)
	}
}
