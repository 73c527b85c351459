package lazyframe

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/go-sif/lazyframe/config"
	"github.com/go-sif/lazyframe/partition"
	"github.com/go-sif/lazyframe/scheduler"
	"github.com/go-sif/lazyframe/types"
)

func testScheduler(t *testing.T) ComputeOption {
	cfg := config.Default()
	cfg.NumWorkers = 3
	s, err := scheduler.New(cfg, scheduler.WithLogger(zerolog.Nop()))
	require.Nil(t, err)
	return WithScheduler(s)
}

// testTable has the index [1,1,2,2,2,3,4,5,5,5,5]
func testTable(t *testing.T) *partition.Table {
	n := 11
	x := make(partition.Int64Array, n)
	y := make(partition.Float64Array, n)
	when := make([]time.Time, n)
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		x[i] = int64(i)
		y[i] = float64(i) / 2
		when[i] = time.Date(2018, time.January, 1+i, i, 0, 0, 0, time.UTC)
		labels[i] = []string{"lo", "mid", "hi"}[i%3]
	}
	cat, err := partition.NewCategoricalArray(labels, []string{"lo", "mid", "hi"}, true)
	require.Nil(t, err)
	tbl, err := partition.NewTable(
		[]string{"x", "y", "when", "level"},
		[]partition.Array{x, y, partition.NewTimeArray(when...), cat},
		partition.NewIndex("key", partition.Int64Array{1, 1, 2, 2, 2, 3, 4, 5, 5, 5, 5}),
	)
	require.Nil(t, err)
	return tbl
}

func testFrame(t *testing.T, opts ...SourceOption) *DataFrame {
	opts = append([]SourceOption{WithChunkSize(4), WithName("frame")}, opts...)
	c, err := FromSource(testTable(t), opts...)
	require.Nil(t, err)
	df, ok := c.(*DataFrame)
	require.True(t, ok)
	return df
}

func testColumn(t *testing.T, df *DataFrame, name string) *Series {
	s, err := df.Column(name)
	require.Nil(t, err)
	return s
}

func testDType(t *testing.T, c Collection) types.ColumnType {
	s, ok := c.(*Series)
	require.True(t, ok, "expected a Series, got a %s", c.Kind())
	return s.Dtype()
}
