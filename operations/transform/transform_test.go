package transform

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-sif/lazyframe"
	"github.com/go-sif/lazyframe/partition"
	lftest "github.com/go-sif/lazyframe/testing"
)

func createTestTransformDataFrame(t *testing.T) *lazyframe.DataFrame {
	tbl, err := partition.NewTable(
		[]string{"a", "b", "c"},
		[]partition.Array{
			partition.Int64Array{1, 2, 3, 4, 5, 6},
			partition.StringArray{"u", "v", "w", "x", "y", "z"},
			partition.Float64Array{0.5, 1.5, 2.5, 3.5, 4.5, 5.5},
		},
		partition.RangeIndex(6),
	)
	require.Nil(t, err)
	frame, err := lazyframe.FromSource(tbl, lazyframe.WithNPartitions(3))
	require.Nil(t, err)
	return frame.(*lazyframe.DataFrame)
}

func runFrame(t *testing.T) func(c lazyframe.Collection, err error) *partition.Table {
	return func(c lazyframe.Collection, err error) *partition.Table {
		require.Nil(t, err)
		require.Equal(t, lazyframe.KindDataFrame, c.Kind())
		res, err := lftest.LocalRun(context.Background(), c, 3)
		require.Nil(t, err)
		return res.(*partition.Table)
	}
}

func doubleValues(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return partition.Binary(partition.OpMul, args[0], 2)
}

func TestChainedOperations(t *testing.T) {
	frame := createTestTransformDataFrame(t)
	res := runFrame(t)(frame.To(
		RenameColumn("a", "n"),
		WithDerivedColumn("twice", func(df *lazyframe.DataFrame) (interface{}, error) {
			n, err := df.Column("n")
			if err != nil {
				return nil, err
			}
			return n.Mul(2)
		}),
		WithColumn("flag", "yes"),
		RemoveColumn("b", "c"),
		Filter(func(df *lazyframe.DataFrame) (lazyframe.Collection, error) {
			n, err := df.Column("n")
			if err != nil {
				return nil, err
			}
			return n.Gt(3)
		}),
	))
	require.Equal(t, []string{"n", "twice", "flag"}, res.Columns())
	twice, err := res.Column("twice")
	require.Nil(t, err)
	require.Equal(t, partition.Int64Array{8, 10, 12}, twice.Values())
	flag, err := res.Column("flag")
	require.Nil(t, err)
	require.Equal(t, partition.StringArray{"yes", "yes", "yes"}, flag.Values())
}

func TestMap(t *testing.T) {
	frame := createTestTransformDataFrame(t)
	res := runFrame(t)(frame.To(RemoveColumn("b"), Map(doubleValues, nil)))
	c, err := res.Column("c")
	require.Nil(t, err)
	require.Equal(t, partition.Float64Array{1, 3, 5, 7, 9, 11}, c.Values())

	col, err := frame.Column("a")
	require.Nil(t, err)
	doubled, err := col.To(Map(doubleValues, nil, lazyframe.WithToken("double")))
	require.Nil(t, err)
	require.Equal(t, lazyframe.KindSeries, doubled.Kind())
	require.Regexp(t, "^double-", doubled.Name())
}

func TestOperationsRequireDataFrames(t *testing.T) {
	frame := createTestTransformDataFrame(t)
	col, err := frame.Column("a")
	require.Nil(t, err)

	_, err = col.To(RenameColumn("a", "b"))
	require.NotNil(t, err)
	_, err = col.To(RemoveColumn("a"))
	require.NotNil(t, err)
	_, err = col.To(WithColumn("z", 1))
	require.NotNil(t, err)

	_, err = frame.To(Filter(func(df *lazyframe.DataFrame) (lazyframe.Collection, error) {
		return df, nil
	}))
	require.NotNil(t, err)
	_, err = frame.To(RemoveColumn("missing"))
	require.NotNil(t, err)
}
