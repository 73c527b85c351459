package datasource

import (
	"io"

	"github.com/go-sif/lazyframe/partition"
	"github.com/go-sif/lazyframe/types"
)

// A Parser converts raw data into a Table partition with a particular Schema.
// Parsing empty input must produce an empty Table with that Schema.
type Parser interface {
	Name() string // Name identifies the format parsed by this Parser
	Parse(r io.Reader, schema types.Schema) (*partition.Table, error)
}
