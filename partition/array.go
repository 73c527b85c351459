package partition

import (
	"fmt"
	"time"

	"github.com/go-sif/lazyframe/types"
)

// Array is a typed, immutable column of values
type Array interface {
	DType() types.ColumnType         // DType returns the ColumnType of values in this Array
	Len() int                        // Len returns the number of values in this Array
	Value(i int) interface{}         // Value returns the i-th value, boxed
	Slice(start int, stop int) Array // Slice returns the values in [start, stop)
	Take(idx []int) Array            // Take returns the values at the given positions, in order
}

// Int64Array is an Array of int64 values
type Int64Array []int64

// DType returns the ColumnType of values in this Array
func (a Int64Array) DType() types.ColumnType { return &types.Int64ColumnType{} }

// Len returns the number of values in this Array
func (a Int64Array) Len() int { return len(a) }

// Value returns the i-th value, boxed
func (a Int64Array) Value(i int) interface{} { return a[i] }

// Slice returns the values in [start, stop)
func (a Int64Array) Slice(start int, stop int) Array { return a[start:stop:stop] }

// Take returns the values at the given positions, in order
func (a Int64Array) Take(idx []int) Array {
	res := make(Int64Array, len(idx))
	for i, j := range idx {
		res[i] = a[j]
	}
	return res
}

// Float64Array is an Array of float64 values
type Float64Array []float64

// DType returns the ColumnType of values in this Array
func (a Float64Array) DType() types.ColumnType { return &types.Float64ColumnType{} }

// Len returns the number of values in this Array
func (a Float64Array) Len() int { return len(a) }

// Value returns the i-th value, boxed
func (a Float64Array) Value(i int) interface{} { return a[i] }

// Slice returns the values in [start, stop)
func (a Float64Array) Slice(start int, stop int) Array { return a[start:stop:stop] }

// Take returns the values at the given positions, in order
func (a Float64Array) Take(idx []int) Array {
	res := make(Float64Array, len(idx))
	for i, j := range idx {
		res[i] = a[j]
	}
	return res
}

// BoolArray is an Array of bool values
type BoolArray []bool

// DType returns the ColumnType of values in this Array
func (a BoolArray) DType() types.ColumnType { return &types.BoolColumnType{} }

// Len returns the number of values in this Array
func (a BoolArray) Len() int { return len(a) }

// Value returns the i-th value, boxed
func (a BoolArray) Value(i int) interface{} { return a[i] }

// Slice returns the values in [start, stop)
func (a BoolArray) Slice(start int, stop int) Array { return a[start:stop:stop] }

// Take returns the values at the given positions, in order
func (a BoolArray) Take(idx []int) Array {
	res := make(BoolArray, len(idx))
	for i, j := range idx {
		res[i] = a[j]
	}
	return res
}

// StringArray is an Array of string values
type StringArray []string

// DType returns the ColumnType of values in this Array
func (a StringArray) DType() types.ColumnType { return &types.VarStringColumnType{} }

// Len returns the number of values in this Array
func (a StringArray) Len() int { return len(a) }

// Value returns the i-th value, boxed
func (a StringArray) Value(i int) interface{} { return a[i] }

// Slice returns the values in [start, stop)
func (a StringArray) Slice(start int, stop int) Array { return a[start:stop:stop] }

// Take returns the values at the given positions, in order
func (a StringArray) Take(idx []int) Array {
	res := make(StringArray, len(idx))
	for i, j := range idx {
		res[i] = a[j]
	}
	return res
}

// TimeArray is an Array of time.Time values, sharing a TimeColumnType
type TimeArray struct {
	Values []time.Time
	Type   *types.TimeColumnType
}

// NewTimeArray is a factory for TimeArrays using the default layout
func NewTimeArray(values ...time.Time) *TimeArray {
	return &TimeArray{Values: values, Type: &types.TimeColumnType{}}
}

// DType returns the ColumnType of values in this Array
func (a *TimeArray) DType() types.ColumnType { return a.Type }

// Len returns the number of values in this Array
func (a *TimeArray) Len() int { return len(a.Values) }

// Value returns the i-th value, boxed
func (a *TimeArray) Value(i int) interface{} { return a.Values[i] }

// Slice returns the values in [start, stop)
func (a *TimeArray) Slice(start int, stop int) Array {
	return &TimeArray{Values: a.Values[start:stop:stop], Type: a.Type}
}

// Take returns the values at the given positions, in order
func (a *TimeArray) Take(idx []int) Array {
	res := make([]time.Time, len(idx))
	for i, j := range idx {
		res[i] = a.Values[j]
	}
	return &TimeArray{Values: res, Type: a.Type}
}

// CategoricalArray is an Array of category labels, stored as codes into the
// categories of its CategoricalColumnType. A code of -1 denotes a missing label.
type CategoricalArray struct {
	Codes []int32
	Type  *types.CategoricalColumnType
}

// NewCategoricalArray encodes labels against a fixed set of categories
func NewCategoricalArray(labels []string, categories []string, ordered bool) (*CategoricalArray, error) {
	dtype := &types.CategoricalColumnType{Categories: categories, Ordered: ordered}
	codes := make([]int32, len(labels))
	for i, l := range labels {
		codes[i] = dtype.Code(l)
		if codes[i] < 0 {
			return nil, fmt.Errorf("%q is not one of the categories %v", l, categories)
		}
	}
	return &CategoricalArray{Codes: codes, Type: dtype}, nil
}

// DType returns the ColumnType of values in this Array
func (a *CategoricalArray) DType() types.ColumnType { return a.Type }

// Len returns the number of values in this Array
func (a *CategoricalArray) Len() int { return len(a.Codes) }

// Value returns the i-th label, boxed
func (a *CategoricalArray) Value(i int) interface{} { return a.Label(i) }

// Label returns the i-th label, or "" if it is missing
func (a *CategoricalArray) Label(i int) string {
	c := a.Codes[i]
	if c < 0 {
		return ""
	}
	return a.Type.Categories[c]
}

// Slice returns the values in [start, stop)
func (a *CategoricalArray) Slice(start int, stop int) Array {
	return &CategoricalArray{Codes: a.Codes[start:stop:stop], Type: a.Type}
}

// Take returns the values at the given positions, in order
func (a *CategoricalArray) Take(idx []int) Array {
	res := make([]int32, len(idx))
	for i, j := range idx {
		res[i] = a.Codes[j]
	}
	return &CategoricalArray{Codes: res, Type: a.Type}
}

// NewArray builds an Array of the given dtype from boxed values. Integer values
// of any width are accepted for int64 columns, and numbers of any kind for float64 columns.
func NewArray(dtype types.ColumnType, values []interface{}) (Array, error) {
	switch t := dtype.(type) {
	case *types.Int64ColumnType:
		res := make(Int64Array, len(values))
		for i, v := range values {
			iv, ok := toInt64(v)
			if !ok {
				return nil, fmt.Errorf("value %#v is not an integer", v)
			}
			res[i] = iv
		}
		return res, nil
	case *types.Float64ColumnType:
		res := make(Float64Array, len(values))
		for i, v := range values {
			fv, ok := toFloat64(v)
			if !ok {
				return nil, fmt.Errorf("value %#v is not a number", v)
			}
			res[i] = fv
		}
		return res, nil
	case *types.BoolColumnType:
		res := make(BoolArray, len(values))
		for i, v := range values {
			bv, ok := v.(bool)
			if !ok {
				return nil, fmt.Errorf("value %#v is not a boolean", v)
			}
			res[i] = bv
		}
		return res, nil
	case *types.VarStringColumnType:
		res := make(StringArray, len(values))
		for i, v := range values {
			sv, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("value %#v is not a string", v)
			}
			res[i] = sv
		}
		return res, nil
	case *types.TimeColumnType:
		res := make([]time.Time, len(values))
		for i, v := range values {
			tv, ok := v.(time.Time)
			if !ok {
				return nil, fmt.Errorf("value %#v is not a time", v)
			}
			res[i] = tv
		}
		return &TimeArray{Values: res, Type: t}, nil
	case *types.CategoricalColumnType:
		res := make([]int32, len(values))
		for i, v := range values {
			sv, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("value %#v is not a category label", v)
			}
			res[i] = t.Code(sv)
			if res[i] < 0 {
				return nil, fmt.Errorf("%q is not one of the categories %v", sv, t.Categories)
			}
		}
		return &CategoricalArray{Codes: res, Type: t}, nil
	}
	return nil, fmt.Errorf("unsupported dtype %T", dtype)
}

// repeat builds an Array of length n holding a single scalar value
func repeat(v interface{}, n int) (Array, error) {
	dtype, err := scalarDType(v)
	if err != nil {
		return nil, err
	}
	values := make([]interface{}, n)
	for i := range values {
		values[i] = v
	}
	return NewArray(dtype, values)
}

// scalarDType infers the dtype of a scalar value
func scalarDType(v interface{}) (types.ColumnType, error) {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint8, uint16, uint32:
		return &types.Int64ColumnType{}, nil
	case float32, float64:
		return &types.Float64ColumnType{}, nil
	case bool:
		return &types.BoolColumnType{}, nil
	case string:
		return &types.VarStringColumnType{}, nil
	case time.Time:
		return &types.TimeColumnType{}, nil
	}
	return nil, fmt.Errorf("unsupported scalar %#v of type %T", v, v)
}

// IsScalar returns true iff v is a value which can be broadcast against a partition
func IsScalar(v interface{}) bool {
	_, err := scalarDType(v)
	return err == nil
}

func toInt64(v interface{}) (int64, bool) {
	switch tv := v.(type) {
	case int:
		return int64(tv), true
	case int8:
		return int64(tv), true
	case int16:
		return int64(tv), true
	case int32:
		return int64(tv), true
	case int64:
		return tv, true
	case uint8:
		return int64(tv), true
	case uint16:
		return int64(tv), true
	case uint32:
		return int64(tv), true
	}
	return 0, false
}

func toFloat64(v interface{}) (float64, bool) {
	if iv, ok := toInt64(v); ok {
		return float64(iv), true
	}
	switch tv := v.(type) {
	case float32:
		return float64(tv), true
	case float64:
		return tv, true
	}
	return 0, false
}

// concatArrays appends Arrays of the same dtype end to end
func concatArrays(arrs []Array) (Array, error) {
	if len(arrs) == 0 {
		return nil, fmt.Errorf("cannot concatenate zero arrays")
	}
	first := arrs[0]
	for _, a := range arrs[1:] {
		if err := types.SameType(first.DType(), a.DType()); err != nil {
			return nil, err
		}
	}
	switch ta := first.(type) {
	case Int64Array:
		res := make(Int64Array, 0, totalLen(arrs))
		for _, a := range arrs {
			res = append(res, a.(Int64Array)...)
		}
		return res, nil
	case Float64Array:
		res := make(Float64Array, 0, totalLen(arrs))
		for _, a := range arrs {
			res = append(res, a.(Float64Array)...)
		}
		return res, nil
	case BoolArray:
		res := make(BoolArray, 0, totalLen(arrs))
		for _, a := range arrs {
			res = append(res, a.(BoolArray)...)
		}
		return res, nil
	case StringArray:
		res := make(StringArray, 0, totalLen(arrs))
		for _, a := range arrs {
			res = append(res, a.(StringArray)...)
		}
		return res, nil
	case *TimeArray:
		res := make([]time.Time, 0, totalLen(arrs))
		for _, a := range arrs {
			res = append(res, a.(*TimeArray).Values...)
		}
		return &TimeArray{Values: res, Type: ta.Type}, nil
	case *CategoricalArray:
		res := make([]int32, 0, totalLen(arrs))
		for _, a := range arrs {
			res = append(res, a.(*CategoricalArray).Codes...)
		}
		return &CategoricalArray{Codes: res, Type: ta.Type}, nil
	}
	return nil, fmt.Errorf("unsupported array type %T", first)
}

func totalLen(arrs []Array) (n int) {
	for _, a := range arrs {
		n += a.Len()
	}
	return
}

// tokenValue returns a representation of an Array suitable for graph.Tokenize
func tokenValue(a Array) interface{} {
	switch ta := a.(type) {
	case Int64Array:
		return []int64(ta)
	case Float64Array:
		return []float64(ta)
	case BoolArray:
		return []bool(ta)
	case StringArray:
		return []string(ta)
	case *TimeArray:
		return []interface{}{ta.Type.Layout(), ta.Values}
	case *CategoricalArray:
		return []interface{}{ta.Type.ToString(nil), ta.Codes}
	}
	return a
}
