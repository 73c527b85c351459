package transform

import (
	"fmt"

	"github.com/go-sif/lazyframe"
)

func asDataFrame(c lazyframe.Collection, op string) (*lazyframe.DataFrame, error) {
	df, ok := c.(*lazyframe.DataFrame)
	if !ok {
		return nil, fmt.Errorf("%s requires a DataFrame, not a %s", op, c.Kind())
	}
	return df, nil
}
