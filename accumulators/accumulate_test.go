package accumulators

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-sif/lazyframe"
	"github.com/go-sif/lazyframe/operations/util"
	"github.com/go-sif/lazyframe/partition"
	lftest "github.com/go-sif/lazyframe/testing"
)

func createTestAccumulateDataFrame(t *testing.T, numRows int) *lazyframe.DataFrame {
	col1 := make(partition.Int64Array, numRows)
	col2 := make(partition.Float64Array, numRows)
	for i := 0; i < numRows; i++ {
		col1[i] = int64(i)
		col2[i] = float64(i) / 4
	}
	tbl, err := partition.NewTable([]string{"col1", "col2"}, []partition.Array{col1, col2}, partition.RangeIndex(numRows))
	require.Nil(t, err)
	frame, err := lazyframe.FromSource(tbl, lazyframe.WithChunkSize(7))
	require.Nil(t, err)
	return frame.(*lazyframe.DataFrame)
}

func runScalar(t *testing.T) func(c lazyframe.Collection, err error) interface{} {
	return func(c lazyframe.Collection, err error) interface{} {
		require.Nil(t, err)
		res, err := lftest.LocalRun(context.Background(), c, 2)
		require.Nil(t, err)
		return res
	}
}

func TestAccumulate(t *testing.T) {
	numRows := 100
	sum := 0
	for i := 0; i < numRows; i++ {
		sum += i
	}
	frame := createTestAccumulateDataFrame(t, numRows)
	res := runScalar(t)(frame.To(util.Accumulate(Compose(Counter(), Adder("col1")))))
	results, ok := res.([]interface{})
	require.True(t, ok)
	require.Equal(t, int64(numRows), results[0])
	require.Equal(t, int64(sum), results[1])
}

func TestExtrema(t *testing.T) {
	frame := createTestAccumulateDataFrame(t, 50)
	require.Equal(t, int64(0), runScalar(t)(frame.Accumulate(Minimum("col1"))))
	require.Equal(t, 12.25, runScalar(t)(frame.Accumulate(Maximum("col2"))))

	col, err := frame.Column("col2")
	require.Nil(t, err)
	require.Equal(t, 0.0, runScalar(t)(col.Accumulate(Minimum(""))))
}

func TestAverager(t *testing.T) {
	frame := createTestAccumulateDataFrame(t, 10)
	require.Equal(t, 4.5, runScalar(t)(frame.Accumulate(Averager("col1"))))

	empty := Averager("col1")
	res, err := empty.Aggregate(nil)
	require.Nil(t, err)
	require.True(t, math.IsNaN(res.(float64)))
}

func TestAccumulatorNamesAreDistinct(t *testing.T) {
	frame := createTestAccumulateDataFrame(t, 10)
	a, err := frame.Accumulate(Adder("col1"))
	require.Nil(t, err)
	b, err := frame.Accumulate(Adder("col2"))
	require.Nil(t, err)
	c, err := frame.Accumulate(Adder("col1"))
	require.Nil(t, err)
	require.NotEqual(t, a.Name(), b.Name())
	require.Equal(t, a.Name(), c.Name())
	require.Equal(t, "composed-count-sum", Compose(Counter(), Adder("col1")).Name())
}

func TestAccumulateErrors(t *testing.T) {
	frame := createTestAccumulateDataFrame(t, 10)
	_, err := frame.Accumulate(Adder("missing"))
	require.NotNil(t, err)

	col, err := frame.Column("col1")
	require.Nil(t, err)
	_, err = col.Accumulate(Adder("col1"))
	require.NotNil(t, err)

	_, err = Compose(Counter()).Aggregate([]interface{}{int64(1)})
	require.NotNil(t, err)
}
