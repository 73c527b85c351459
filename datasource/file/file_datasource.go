package file

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-sif/lazyframe"
	"github.com/go-sif/lazyframe/datasource"
	"github.com/go-sif/lazyframe/graph"
	"github.com/go-sif/lazyframe/types"
)

// DataSource is a set of files containing data which will be manipulated according to a DataFrame
type DataSource struct {
	glob   string
	parser datasource.Parser
	schema types.Schema
}

// CreateDataFrame is a factory for DataFrames backed by files. Files matching glob
// become partitions in lexical order of their paths, with unknown divisions.
func CreateDataFrame(glob string, parser datasource.Parser, schema types.Schema) (*lazyframe.DataFrame, error) {
	source := &DataSource{glob: glob, parser: parser, schema: schema}
	files, err := source.Analyze()
	if err != nil {
		return nil, err
	}
	meta, err := parser.Parse(strings.NewReader(""), schema)
	if err != nil {
		return nil, err
	}
	name := "read-" + parser.Name() + "-" + graph.Tokenize(files, schema.ColumnNames(), dtypeNames(schema))
	nodes := make(map[graph.Key]interface{}, len(files))
	for i, path := range files {
		loader := &PartitionLoader{path: path, source: source}
		nodes[graph.Key{Name: name, Index: i}] = graph.NewTask(loader.Load)
	}
	return lazyframe.NewDataFrame(graph.New(nodes), name, meta, lazyframe.UnknownDivisions(len(files)))
}

// Analyze returns the files matched by this DataSource, sorted by path
func (fs *DataSource) Analyze() ([]string, error) {
	matches, err := filepath.Glob(fs.glob)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("glob %s produced 0 files", fs.glob)
	}
	sort.Strings(matches)
	return matches, nil
}

func dtypeNames(schema types.Schema) []string {
	colTypes := schema.ColumnTypes()
	names := make([]string, len(colTypes))
	for i, t := range colTypes {
		switch tt := t.(type) {
		case *types.CategoricalColumnType:
			names[i] = tt.ToString(nil)
		case *types.TimeColumnType:
			names[i] = tt.Name() + "[" + tt.Layout() + "]"
		default:
			names[i] = t.Name()
		}
	}
	return names
}
