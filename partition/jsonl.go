package partition

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-sif/lazyframe/types"
	"github.com/tidwall/gjson"
)

// JSONLConf configures ReadJSONL
type JSONLConf struct {
	IndexColumn   string // The schema column to use as the Index. Defaults to a RangeIndex.
	HeaderLines   int    // The number of lines to ignore from the beginning of the data. Defaults to 0.
	Comment       rune   // Lines beginning with the comment character are ignored. Defaults to no comment character.
	MaxBufferSize int    // Maximum size in bytes of the buffer used to read lines. Defaults to bufio.MaxScanTokenSize.
}

// ReadJSONL parses JSON Lines data into a Table. Columns are located within each
// line of JSON using their column name, which should be a gjson path. Values within
// the JSON which do not correspond to a Schema column are ignored; a column missing
// from a line is an error.
func ReadJSONL(r io.Reader, schema types.Schema, conf *JSONLConf) (*Table, error) {
	if conf == nil {
		conf = &JSONLConf{}
	}
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	if conf.IndexColumn != "" && !schema.HasColumn(conf.IndexColumn) {
		return nil, fmt.Errorf("index column %s is not in the schema", conf.IndexColumn)
	}
	colNames := schema.ColumnNames()
	colTypes := schema.ColumnTypes()
	values := make([][]interface{}, len(colNames))

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), conf.MaxBufferSize)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if lineNum <= conf.HeaderLines {
			continue
		}
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || (conf.Comment != 0 && strings.HasPrefix(line, string(conf.Comment))) {
			continue
		}
		if !gjson.Valid(line) {
			return nil, fmt.Errorf("line %d is not valid JSON", lineNum)
		}
		row := gjson.Parse(line)
		for i, colName := range colNames {
			val, err := parseJSONValue(row.Get(colName), colName, colTypes[i])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			values[i] = append(values[i], val)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	var index *Index
	names := make([]string, 0, len(colNames))
	columns := make([]Array, 0, len(colNames))
	for i, colName := range colNames {
		arr, err := NewArray(colTypes[i], values[i])
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", colName, err)
		}
		if colName == conf.IndexColumn {
			index = NewIndex(colName, arr)
			continue
		}
		names = append(names, colName)
		columns = append(columns, arr)
	}
	if index == nil {
		n := 0
		if len(values) > 0 {
			n = len(values[0])
		}
		index = RangeIndex(n)
	}
	return NewTable(names, columns, index)
}

// parseJSONValue converts a located gjson value into a value of the column's dtype
func parseJSONValue(val gjson.Result, colName string, colType types.ColumnType) (interface{}, error) {
	if !val.Exists() || val.Type == gjson.Null {
		return nil, fmt.Errorf("column %s is missing", colName)
	}
	switch t := colType.(type) {
	case *types.BoolColumnType:
		if val.Type != gjson.True && val.Type != gjson.False {
			return nil, fmt.Errorf("column %s was not a boolean. Was: %s", colName, val.Raw)
		}
		return val.Bool(), nil
	case *types.Int64ColumnType:
		if val.Type != gjson.Number {
			return nil, fmt.Errorf("column %s was not a number. Was: %s", colName, val.Raw)
		}
		return val.Int(), nil
	case *types.Float64ColumnType:
		if val.Type != gjson.Number {
			return nil, fmt.Errorf("column %s was not a number. Was: %s", colName, val.Raw)
		}
		return val.Float(), nil
	case *types.VarStringColumnType, *types.CategoricalColumnType:
		if val.Type != gjson.String {
			return nil, fmt.Errorf("column %s was not a string. Was: %s", colName, val.Raw)
		}
		return val.String(), nil
	case *types.TimeColumnType:
		if val.Type != gjson.String {
			return nil, fmt.Errorf("column %s was not a string. Was: %s", colName, val.Raw)
		}
		tval, err := time.Parse(t.Layout(), val.String())
		if err != nil {
			return nil, fmt.Errorf("column %s could not be parsed as datetime with format %s. Was: %s", colName, t.Layout(), val.Raw)
		}
		return tval, nil
	}
	return nil, fmt.Errorf("JSONL parsing does not support column type %T", colType)
}
