package partition

import (
	"strings"
	"testing"
	"time"

	"github.com/go-sif/lazyframe/schema"
	"github.com/go-sif/lazyframe/types"
	"github.com/stretchr/testify/require"
)

const jsonlData = `# people
{"name": "Sean", "meta": { "index": 1, "score": 2.5, "joined": "2020-01-02T00:00:00Z", "team": "red", "active": true}}
{"name": "Chris", "meta": { "index": 3, "score": 1, "joined": "2020-01-03T00:00:00Z", "team": "blue", "active": false}}

{"name": "Phil", "meta": { "index": 2, "score": 0.5, "joined": "2020-01-01T00:00:00Z", "team": "red", "active": true}}
`

func jsonlSchema() types.Schema {
	s := schema.CreateSchema()
	s.CreateColumn("name", &types.VarStringColumnType{})
	s.CreateColumn("meta.index", &types.Int64ColumnType{})
	s.CreateColumn("meta.score", &types.Float64ColumnType{})
	s.CreateColumn("meta.joined", &types.TimeColumnType{})
	s.CreateColumn("meta.team", &types.CategoricalColumnType{Categories: []string{"red", "blue"}})
	s.CreateColumn("meta.active", &types.BoolColumnType{})
	return s
}

func TestReadJSONL(t *testing.T) {
	tbl, err := ReadJSONL(strings.NewReader(jsonlData), jsonlSchema(), &JSONLConf{
		IndexColumn: "meta.index",
		Comment:     '#',
	})
	require.Nil(t, err)
	require.Equal(t, 3, tbl.Len())
	require.Equal(t, []string{"name", "meta.score", "meta.joined", "meta.team", "meta.active"}, tbl.Columns())
	require.Equal(t, "meta.index", tbl.Index().Name())
	require.Equal(t, Int64Array{1, 3, 2}, tbl.Index().Values())

	names, _ := tbl.Column("name")
	require.Equal(t, StringArray{"Sean", "Chris", "Phil"}, names.Values())
	scores, _ := tbl.Column("meta.score")
	require.Equal(t, Float64Array{2.5, 1, 0.5}, scores.Values())
	joined, _ := tbl.Column("meta.joined")
	require.True(t, time.Date(2020, 1, 3, 0, 0, 0, 0, time.UTC).Equal(joined.Values().Value(1).(time.Time)))
	teams, _ := tbl.Column("meta.team")
	require.Equal(t, []int32{0, 1, 0}, teams.Values().(*CategoricalArray).Codes)
	active, _ := tbl.Column("meta.active")
	require.Equal(t, BoolArray{true, false, true}, active.Values())
}

func TestReadJSONLErrors(t *testing.T) {
	_, err := ReadJSONL(strings.NewReader(`{"name": "Sean"}`), jsonlSchema(), nil)
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "line 1")

	_, err = ReadJSONL(strings.NewReader(`{"name": `), jsonlSchema(), nil)
	require.NotNil(t, err)

	_, err = ReadJSONL(strings.NewReader(""), jsonlSchema(), &JSONLConf{IndexColumn: "missing"})
	require.NotNil(t, err)

	s := schema.CreateSchema()
	s.CreateColumn("n", &types.Int64ColumnType{})
	_, err = ReadJSONL(strings.NewReader(`{"n": "1"}`), s, nil)
	require.NotNil(t, err)
}

func TestReadJSONLHeaderLines(t *testing.T) {
	s := schema.CreateSchema()
	s.CreateColumn("n", &types.Int64ColumnType{})
	tbl, err := ReadJSONL(strings.NewReader("header\n{\"n\": 1}\n{\"n\": 2}"), s, &JSONLConf{HeaderLines: 1})
	require.Nil(t, err)
	require.Equal(t, Int64Array{0, 1}, tbl.Index().Values())
	n, _ := tbl.Column("n")
	require.Equal(t, Int64Array{1, 2}, n.Values())
}
