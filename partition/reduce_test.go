package partition

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReduce(t *testing.T) {
	ints := series(t, "a", Int64Array{3, 1, 2})
	sum, err := Reduce(ReduceSum, ints)
	require.Nil(t, err)
	require.Equal(t, int64(6), sum)

	count, err := Reduce(ReduceCount, ints)
	require.Nil(t, err)
	require.Equal(t, int64(3), count)

	min, err := Reduce(ReduceMin, ints)
	require.Nil(t, err)
	require.Equal(t, int64(1), min)

	max, err := Reduce(ReduceMax, series(t, "f", Float64Array{1, math.NaN(), 4}))
	require.Nil(t, err)
	require.Equal(t, 4.0, max)

	first := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	min, err = Reduce(ReduceMin, series(t, "t", NewTimeArray(first.Add(time.Hour), first)))
	require.Nil(t, err)
	require.Equal(t, first, min)

	min, err = Reduce(ReduceMin, series(t, "a", Int64Array{}))
	require.Nil(t, err)
	require.Nil(t, min)

	_, err = Reduce(ReduceSum, series(t, "s", StringArray{"a"}))
	require.NotNil(t, err)
	_, err = Reduce(ReduceSum, 5)
	require.NotNil(t, err)
}

func TestCombine(t *testing.T) {
	res, err := Combine(ReduceSum, []interface{}{int64(1), int64(2)})
	require.Nil(t, err)
	require.Equal(t, int64(3), res)

	res, err = Combine(ReduceSum, []interface{}{int64(1), 0.5})
	require.Nil(t, err)
	require.Equal(t, 1.5, res)

	res, err = Combine(ReduceMax, []interface{}{nil, "a", "c", nil, "b"})
	require.Nil(t, err)
	require.Equal(t, "c", res)

	res, err = Combine(ReduceMin, []interface{}{nil})
	require.Nil(t, err)
	require.Nil(t, res)

	_, err = Combine(ReduceMin, []interface{}{"a", int64(1)})
	require.NotNil(t, err)
}
