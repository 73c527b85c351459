package file

import (
	"fmt"
	"os"

	"github.com/go-sif/lazyframe/logging"
)

// PartitionLoader is capable of loading a partition of data from a file
type PartitionLoader struct {
	path   string
	source *DataSource
}

// String returns a string representation of this PartitionLoader
func (pl *PartitionLoader) String() string {
	return fmt.Sprintf("File loader filename: %s", pl.path)
}

// Load parses the file into a Table. It is a graph task, and ignores its arguments.
func (pl *PartitionLoader) Load(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	f, err := os.Open(pl.path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			log := logging.Default()
			log.Warn().Err(err).Str("path", pl.path).Msg("Couldn't close file")
		}
	}()
	tbl, err := pl.source.parser.Parse(f, pl.source.schema)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", pl.path, err)
	}
	return tbl, nil
}
