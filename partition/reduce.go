package partition

import (
	"fmt"
	"math"
	"time"
)

// ReduceOp enumerates the reductions which collapse a Series or Index to a scalar
type ReduceOp int

const (
	// ReduceSum adds all values
	ReduceSum ReduceOp = iota
	// ReduceCount counts all values
	ReduceCount
	// ReduceMin finds the smallest value
	ReduceMin
	// ReduceMax finds the largest value
	ReduceMax
)

// String returns the name of this ReduceOp
func (op ReduceOp) String() string {
	switch op {
	case ReduceSum:
		return "sum"
	case ReduceCount:
		return "count"
	case ReduceMin:
		return "min"
	case ReduceMax:
		return "max"
	}
	return fmt.Sprintf("ReduceOp(%d)", int(op))
}

// Reduce collapses a Series or Index to a scalar. Min and Max of an empty
// partition are nil, which Combine ignores.
func Reduce(op ReduceOp, x interface{}) (interface{}, error) {
	v, ok := x.(vector)
	if !ok {
		return nil, fmt.Errorf("%s requires a Series or Index, not %T", op, x)
	}
	a := v.vector()
	switch op {
	case ReduceCount:
		return int64(a.Len()), nil
	case ReduceSum:
		if isIntegral(a) {
			var sum int64
			for _, i := range asInt64s(a) {
				sum += i
			}
			return sum, nil
		} else if fa, ok := a.(Float64Array); ok {
			var sum float64
			for _, f := range fa {
				if !math.IsNaN(f) {
					sum += f
				}
			}
			return sum, nil
		}
		return nil, fmt.Errorf("cannot sum dtype %s", a.DType().Name())
	case ReduceMin, ReduceMax:
		switch a.(type) {
		case Int64Array, Float64Array, StringArray, *TimeArray:
		default:
			return nil, fmt.Errorf("cannot compute %s of dtype %s", op, a.DType().Name())
		}
		values := make([]interface{}, 0, a.Len())
		for i := 0; i < a.Len(); i++ {
			if f, ok := a.Value(i).(float64); ok && math.IsNaN(f) {
				continue
			}
			values = append(values, a.Value(i))
		}
		return Combine(op, values)
	}
	return nil, fmt.Errorf("unsupported reduction %s", op)
}

// Combine merges the per-partition results of Reduce into a single scalar
func Combine(op ReduceOp, values []interface{}) (interface{}, error) {
	switch op {
	case ReduceSum, ReduceCount:
		var isum int64
		var fsum float64
		isFloat := false
		for _, v := range values {
			switch tv := v.(type) {
			case int64:
				isum += tv
			case float64:
				fsum += tv
				isFloat = true
			default:
				return nil, fmt.Errorf("cannot %s value %#v", op, v)
			}
		}
		if isFloat {
			return fsum + float64(isum), nil
		}
		return isum, nil
	case ReduceMin, ReduceMax:
		var best interface{}
		for _, v := range values {
			if v == nil {
				continue
			}
			if best == nil {
				best = v
				continue
			}
			c, err := compareScalars(v, best)
			if err != nil {
				return nil, err
			}
			if (op == ReduceMin && c < 0) || (op == ReduceMax && c > 0) {
				best = v
			}
		}
		return best, nil
	}
	return nil, fmt.Errorf("unsupported reduction %s", op)
}

// compareScalars compares two scalars of compatible types
func compareScalars(x interface{}, y interface{}) (int, error) {
	switch tx := x.(type) {
	case int64:
		if ty, ok := y.(int64); ok {
			return compareInts(tx, ty), nil
		}
	case string:
		if ty, ok := y.(string); ok {
			return compareStrings(tx, ty), nil
		}
	case time.Time:
		if ty, ok := y.(time.Time); ok {
			return compareTimes(tx, ty), nil
		}
	}
	fx, xok := toFloat64(x)
	fy, yok := toFloat64(y)
	if xok && yok {
		return compareFloatsTotal(fx, fy), nil
	}
	return 0, fmt.Errorf("cannot compare %#v with %#v", x, y)
}
