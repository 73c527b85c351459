package partition

import (
	"fmt"

	"github.com/go-sif/lazyframe/types"
)

func categoricalValues(x interface{}) (vector, *CategoricalArray, error) {
	v, ok := x.(vector)
	if !ok {
		return nil, nil, fmt.Errorf("categorical properties require a Series or Index, not %T", x)
	}
	ca, ok := v.vector().(*CategoricalArray)
	if !ok {
		return nil, nil, fmt.Errorf("categorical properties require categorical values, not %s", v.vector().DType().Name())
	}
	return v, ca, nil
}

// CategoryCodes returns the integer codes of a categorical Series or Index
func CategoryCodes(x interface{}) (interface{}, error) {
	v, ca, err := categoricalValues(x)
	if err != nil {
		return nil, err
	}
	res := make(Int64Array, len(ca.Codes))
	for i, c := range ca.Codes {
		res[i] = int64(c)
	}
	return v.withValues(v.Name(), res), nil
}

// SetOrdered returns a copy of a categorical Series or Index whose categories are (or are not) ordered
func SetOrdered(x interface{}, ordered bool) (interface{}, error) {
	v, ca, err := categoricalValues(x)
	if err != nil {
		return nil, err
	}
	dtype := &types.CategoricalColumnType{Categories: ca.Type.Categories, Ordered: ordered}
	return v.withValues(v.Name(), &CategoricalArray{Codes: ca.Codes, Type: dtype}), nil
}

// AddCategories returns a copy of a categorical Series or Index with new categories
// appended. Existing codes are unchanged.
func AddCategories(x interface{}, categories []string) (interface{}, error) {
	v, ca, err := categoricalValues(x)
	if err != nil {
		return nil, err
	}
	combined := append([]string(nil), ca.Type.Categories...)
	for _, c := range categories {
		if ca.Type.Code(c) >= 0 {
			return nil, fmt.Errorf("new categories must not include old categories: %q", c)
		}
		for _, o := range combined[len(ca.Type.Categories):] {
			if o == c {
				return nil, fmt.Errorf("new categories must be unique: %q", c)
			}
		}
		combined = append(combined, c)
	}
	dtype := &types.CategoricalColumnType{Categories: combined, Ordered: ca.Type.Ordered}
	return v.withValues(v.Name(), &CategoricalArray{Codes: ca.Codes, Type: dtype}), nil
}
