package schema

import (
	"testing"

	"github.com/go-sif/lazyframe/types"
	"github.com/stretchr/testify/require"
)

func TestSchemaEqualityBasic(t *testing.T) {
	schema1 := CreateSchema()
	_, err := schema1.CreateColumn("col1", &types.Int64ColumnType{})
	require.Nil(t, err)
	_, err = schema1.CreateColumn("col2", &types.VarStringColumnType{})
	require.Nil(t, err)
	_, err = schema1.CreateColumn("col3", &types.TimeColumnType{})
	require.Nil(t, err)

	schema2 := CreateSchema()
	_, err = schema2.CreateColumn("col1", &types.Int64ColumnType{})
	require.Nil(t, err)
	_, err = schema2.CreateColumn("col2", &types.VarStringColumnType{})
	require.Nil(t, err)
	_, err = schema2.CreateColumn("col3", &types.TimeColumnType{})
	require.Nil(t, err)

	require.Nil(t, schema1.Equals(schema2))
}

func TestSchemaEqualityDifferentCategories(t *testing.T) {
	schema1 := CreateSchema()
	_, err := schema1.CreateColumn("col1", &types.CategoricalColumnType{Categories: []string{"a", "b"}})
	require.Nil(t, err)

	schema2 := CreateSchema()
	_, err = schema2.CreateColumn("col1", &types.CategoricalColumnType{Categories: []string{"a", "c"}})
	require.Nil(t, err)

	require.NotNil(t, schema1.Equals(schema2))
}

func TestSchemaEqualityOrder(t *testing.T) {
	schema1 := CreateSchema()
	_, err := schema1.CreateColumn("col1", &types.Int64ColumnType{})
	require.Nil(t, err)
	_, err = schema1.CreateColumn("col2", &types.Float64ColumnType{})
	require.Nil(t, err)
	_, err = schema1.CreateColumn("col3", &types.VarStringColumnType{})
	require.Nil(t, err)

	schema2 := CreateSchema()
	_, err = schema2.CreateColumn("col1", &types.Int64ColumnType{})
	require.Nil(t, err)
	_, err = schema2.CreateColumn("col3", &types.VarStringColumnType{})
	require.Nil(t, err)
	_, err = schema2.CreateColumn("col2", &types.Float64ColumnType{})
	require.Nil(t, err)

	require.NotNil(t, schema1.Equals(schema2))
}

func TestSchemaRenameAndRemove(t *testing.T) {
	s := CreateSchema()
	s.CreateColumn("a", &types.Int64ColumnType{})
	s.CreateColumn("b", &types.BoolColumnType{})
	s.CreateColumn("c", &types.Float64ColumnType{})

	_, err := s.RenameColumn("b", "flag")
	require.Nil(t, err)
	require.Equal(t, []string{"a", "flag", "c"}, s.ColumnNames())

	_, err = s.RenameColumn("a", "c")
	require.NotNil(t, err)

	_, removed := s.RemoveColumn("a")
	require.True(t, removed)
	require.Equal(t, []string{"flag", "c"}, s.ColumnNames())
	require.IsType(t, &types.BoolColumnType{}, s.ColumnTypes()[0])

	_, removed = s.RemoveColumn("missing")
	require.False(t, removed)
}

func TestSchemaCloneIsIndependent(t *testing.T) {
	s := CreateSchema()
	s.CreateColumn("a", &types.Int64ColumnType{})
	clone := s.Clone()
	clone.CreateColumn("b", &types.Int64ColumnType{})
	require.Equal(t, 1, s.NumColumns())
	require.Equal(t, 2, clone.NumColumns())
}
