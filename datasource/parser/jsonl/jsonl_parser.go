package jsonl

import (
	"io"

	"github.com/go-sif/lazyframe/partition"
	"github.com/go-sif/lazyframe/types"
)

// ParserConf configures a JSONL Parser
type ParserConf struct {
	IndexColumn   string // The column to use as the Index. Defaults to a RangeIndex.
	HeaderLines   int    // The number of lines to ignore from the beginning of each file. Defaults to 0.
	Comment       rune   // Lines beginning with the comment character are ignored. Defaults to no comment character.
	MaxBufferSize int    // The maximum length of a single line, in bytes. Defaults to bufio.MaxScanTokenSize.
}

// Parser produces partitions from JSONL data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new JSONL Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf == nil {
		conf = &ParserConf{}
	}
	return &Parser{conf: conf}
}

// Name returns "jsonl"
func (p *Parser) Name() string {
	return "jsonl"
}

// Parse parses JSONL data to produce a Table
func (p *Parser) Parse(r io.Reader, schema types.Schema) (*partition.Table, error) {
	return partition.ReadJSONL(r, schema, &partition.JSONLConf{
		IndexColumn:   p.conf.IndexColumn,
		HeaderLines:   p.conf.HeaderLines,
		Comment:       p.conf.Comment,
		MaxBufferSize: p.conf.MaxBufferSize,
	})
}
