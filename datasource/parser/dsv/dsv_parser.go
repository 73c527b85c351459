package dsv

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/go-sif/lazyframe/partition"
	"github.com/go-sif/lazyframe/types"
)

// ParserConf configures a DSV Parser
type ParserConf struct {
	IndexColumn string // The column to use as the Index. Defaults to a RangeIndex.
	HeaderLines int    // The number of lines to ignore from the beginning of each file. Defaults to 0.
	Delimiter   rune   // The delimiter separating columns in the file. Defaults to ,
	Comment     rune   // Lines beginning with the comment character are ignored. Cannot be equal to the Delimiter. Defaults to no comment character.
}

// Parser produces partitions from DSV data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new DSV Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf == nil {
		conf = &ParserConf{}
	}
	if conf.Delimiter == 0 {
		conf.Delimiter = ','
	}
	return &Parser{conf: conf}
}

// Name returns "dsv"
func (p *Parser) Name() string {
	return "dsv"
}

// Parse parses DSV data to produce a Table. Every record must hold one field per schema column.
func (p *Parser) Parse(r io.Reader, schema types.Schema) (*partition.Table, error) {
	if p.conf.IndexColumn != "" && !schema.HasColumn(p.conf.IndexColumn) {
		return nil, fmt.Errorf("index column %s is not in the schema", p.conf.IndexColumn)
	}
	// start parsing by creating a reader
	reader := csv.NewReader(r)
	reader.Comma = p.conf.Delimiter
	reader.Comment = p.conf.Comment
	reader.FieldsPerRecord = schema.NumColumns()
	reader.ReuseRecord = true

	// ignore header lines, if configured to do so
	for i := 0; i < p.conf.HeaderLines; i++ {
		_, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
	}

	colNames := schema.ColumnNames()
	colTypes := schema.ColumnTypes()
	values := make([][]interface{}, len(colNames))
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		line, _ := reader.FieldPos(0)
		for i, field := range record {
			val, err := parseValue(field, colTypes[i])
			if err != nil {
				return nil, fmt.Errorf("line %d, column %s: %w", line, colNames[i], err)
			}
			values[i] = append(values[i], val)
		}
	}

	var index *partition.Index
	names := make([]string, 0, len(colNames))
	columns := make([]partition.Array, 0, len(colNames))
	for i, colName := range colNames {
		arr, err := partition.NewArray(colTypes[i], values[i])
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", colName, err)
		}
		if colName == p.conf.IndexColumn {
			index = partition.NewIndex(colName, arr)
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
		index = partition.RangeIndex(n)
	}
	return partition.NewTable(names, columns, index)
}
