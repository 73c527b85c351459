package jsonl

import (
	"strings"
	"testing"

	"github.com/go-sif/lazyframe/partition"
	"github.com/go-sif/lazyframe/schema"
	"github.com/go-sif/lazyframe/types"
	"github.com/stretchr/testify/require"
)

func TestJSONLDatasourceParser(t *testing.T) {
	schema := schema.CreateSchema()
	schema.CreateColumn("name", &types.VarStringColumnType{})
	schema.CreateColumn("meta.index", &types.Int64ColumnType{})
	schema.CreateColumn("meta.first", &types.VarStringColumnType{})
	schema.CreateColumn("meta.last", &types.VarStringColumnType{})

	parser := CreateParser(&ParserConf{IndexColumn: "meta.index", Comment: '#'})
	data := "# people\n" +
		"{\"name\": \"Sean\", \"meta\": { \"index\": 1, \"first\": \"Sean\", \"last\": \"McIntyre\"}}\n" +
		"{\"name\": \"Chris\", \"meta\": { \"index\": 3, \"first\": \"Chris\", \"last\": \"Dickson\"}}\n"
	tbl, err := parser.Parse(strings.NewReader(data), schema)
	require.Nil(t, err)
	require.Equal(t, 2, tbl.Len())
	require.Equal(t, []string{"name", "meta.first", "meta.last"}, tbl.Columns())
	require.Equal(t, partition.Int64Array{1, 3}, tbl.Index().Values())

	empty, err := parser.Parse(strings.NewReader(""), schema)
	require.Nil(t, err)
	require.Equal(t, 0, empty.Len())
	require.Equal(t, tbl.Columns(), empty.Columns())
}
