package lazyframe

import (
	"context"
	goerrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-sif/lazyframe/errors"
	"github.com/go-sif/lazyframe/graph"
	"github.com/go-sif/lazyframe/partition"
)

func addOne(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return partition.Binary(partition.OpAdd, args[0], args[1])
}

func scale(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return partition.Binary(partition.OpMul, args[0], kwargs["factor"])
}

func broken(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return nil, fmt.Errorf("broken")
}

func offsetBy(n int64) graph.Func {
	return func(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
		return partition.Binary(partition.OpAdd, args[0], n)
	}
}

func addAll(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	acc := args[0]
	for _, o := range args[1].([]interface{}) {
		var err error
		if acc, err = partition.Binary(partition.OpAdd, acc, o); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func TestMapPartitionsBuildsOneTaskPerPartition(t *testing.T) {
	x := testColumn(t, testFrame(t), "x")
	res, err := x.MapPartitions(addOne, []interface{}{5})
	require.Nil(t, err)
	require.Equal(t, KindSeries, res.Kind())
	require.Regexp(t, "^addOne-[0-9a-f]{16}$", res.Name())
	require.Equal(t, x.Divisions(), res.Divisions())

	for i, k := range res.Keys() {
		v, ok := res.Graph().Get(k)
		require.True(t, ok)
		task, ok := v.(*graph.Task)
		require.True(t, ok)
		require.Equal(t, fmt.Sprintf("(addOne, ('%s', %d), 5)", x.Name(), i), task.String())
	}
	// the operand's graph is carried along
	for _, k := range x.Keys() {
		require.True(t, res.Graph().Has(k))
	}

	computed, err := res.(*Series).Compute(context.Background(), testScheduler(t))
	require.Nil(t, err)
	require.Equal(t, partition.Int64Array{5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}, computed.Values())
}

func TestMapPartitionsNamesAreDeterministic(t *testing.T) {
	x := testColumn(t, testFrame(t), "x")
	a, err := MapPartitions(addOne, []interface{}{x, 5})
	require.Nil(t, err)
	b, err := MapPartitions(addOne, []interface{}{x, 5})
	require.Nil(t, err)
	require.Equal(t, a.Name(), b.Name())

	c, err := MapPartitions(addOne, []interface{}{x, 6})
	require.Nil(t, err)
	require.NotEqual(t, a.Name(), c.Name())

	d, err := MapPartitions(scale, []interface{}{x}, WithKwargs(map[string]interface{}{"factor": 5}))
	require.Nil(t, err)
	require.NotEqual(t, a.Name(), d.Name())

	e, err := MapPartitions(addOne, []interface{}{x, 5}, WithToken("plus"))
	require.Nil(t, err)
	require.Regexp(t, "^plus-[0-9a-f]{16}$", e.Name())
}

func TestMapPartitionsDistinguishesClosures(t *testing.T) {
	x := testColumn(t, testFrame(t), "x")
	var shifted []*Series
	for _, n := range []int64{1, 100} {
		res, err := x.MapPartitions(offsetBy(n), nil)
		require.Nil(t, err)
		shifted = append(shifted, res.(*Series))
	}
	require.NotEqual(t, shifted[0].Name(), shifted[1].Name())

	diff := computeSeries(t)(shifted[0].Sub(shifted[1]))
	expected := make(partition.Int64Array, 11)
	for i := range expected {
		expected[i] = -99
	}
	require.Equal(t, expected, diff.Values())

	// one closure reused keeps its name
	fn := offsetBy(1)
	a, err := x.MapPartitions(fn, nil)
	require.Nil(t, err)
	b, err := x.MapPartitions(fn, nil)
	require.Nil(t, err)
	require.Equal(t, a.Name(), b.Name())
}

func TestMapPartitionsKwargs(t *testing.T) {
	y := testColumn(t, testFrame(t), "y")
	res, err := y.MapPartitions(scale, nil, WithKwargs(map[string]interface{}{"factor": 2.0}))
	require.Nil(t, err)
	computed, err := res.(*Series).Compute(context.Background(), testScheduler(t))
	require.Nil(t, err)
	require.Equal(t, partition.Float64Array{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, computed.Values())
}

func TestMapPartitionsWithMetaSkipsEmulation(t *testing.T) {
	df := testFrame(t)
	_, err := df.MapPartitions(broken, nil)
	var eerr errors.EmulationError
	require.True(t, goerrors.As(err, &eerr))
	require.Equal(t, "broken", eerr.FuncName)

	meta, err := partition.NewSeries("z", partition.Int64Array{}, partition.RangeIndex(0))
	require.Nil(t, err)
	res, err := df.MapPartitions(broken, nil, WithMeta(meta))
	require.Nil(t, err)
	require.Equal(t, KindSeries, res.Kind())

	_, err = res.(*Series).Compute(context.Background(), testScheduler(t))
	var terr errors.TaskError
	require.True(t, goerrors.As(err, &terr))
}

func TestMapPartitionsRequiresPartitionedOperand(t *testing.T) {
	var ierr errors.InvalidOperandsError
	_, err := MapPartitions(addOne, []interface{}{1, 2})
	require.True(t, goerrors.As(err, &ierr))

	total, err := testColumn(t, testFrame(t), "x").Sum()
	require.Nil(t, err)
	_, err = MapPartitions(addOne, []interface{}{total, 1})
	require.True(t, goerrors.As(err, &ierr))
}

func TestAlign(t *testing.T) {
	sorted := testFrame(t)
	unsorted := testFrame(t, WithSort(false))
	x := testColumn(t, sorted, "x")

	args := []interface{}{sorted, x, 1}
	aligned, err := Align(args)
	require.Nil(t, err)
	require.Equal(t, args, aligned)

	var aerr errors.AlignmentError
	_, err = Align([]interface{}{sorted, unsorted})
	require.True(t, goerrors.As(err, &aerr))
	_, err = Align([]interface{}{unsorted, sorted})
	require.True(t, goerrors.As(err, &aerr))

	_, err = x.Add(testColumn(t, unsorted, "x"))
	require.True(t, goerrors.As(err, &aerr))
}

func TestAlignUnknownDivisionsByLength(t *testing.T) {
	byFour := testFrame(t, WithSort(false))
	byThree := testFrame(t, WithSort(false), WithChunkSize(3))
	require.Equal(t, 3, byFour.NPartitions())
	require.Equal(t, 4, byThree.NPartitions())
	require.False(t, byFour.Divisions().Known())

	var aerr errors.AlignmentError
	_, err := Align([]interface{}{byFour, byThree})
	require.True(t, goerrors.As(err, &aerr))
	_, err = testColumn(t, byFour, "x").Add(testColumn(t, byThree, "x"))
	require.True(t, goerrors.As(err, &aerr))

	_, err = Align([]interface{}{byFour, testFrame(t, WithSort(false))})
	require.Nil(t, err)
}

func TestAlignNestedOperands(t *testing.T) {
	df := testFrame(t)
	x := testColumn(t, df, "x")
	y := testColumn(t, df, "y")
	unsorted := testColumn(t, testFrame(t, WithSort(false)), "y")

	var aerr errors.AlignmentError
	_, err := Align([]interface{}{x, []interface{}{unsorted}})
	require.True(t, goerrors.As(err, &aerr))
	_, err = MapPartitions(addAll, []interface{}{x, []interface{}{unsorted}})
	require.True(t, goerrors.As(err, &aerr))

	res := computeSeries(t)(MapPartitions(addAll, []interface{}{x, []interface{}{x, y}}))
	expected := make(partition.Float64Array, 11)
	for i := range expected {
		expected[i] = 2.5 * float64(i)
	}
	require.Equal(t, expected, res.Values())
}

func TestMapPartitionsWithScalarOperand(t *testing.T) {
	x := testColumn(t, testFrame(t), "x")
	total, err := x.Sum()
	require.Nil(t, err)
	res, err := x.Add(total)
	require.Nil(t, err)
	require.Equal(t, x.Divisions(), res.Divisions())
	computed, err := res.(*Series).Compute(context.Background(), testScheduler(t))
	require.Nil(t, err)
	require.Equal(t, partition.Int64Array{55, 56, 57, 58, 59, 60, 61, 62, 63, 64, 65}, computed.Values())
}
