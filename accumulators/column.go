package accumulators

import (
	"fmt"

	"github.com/go-sif/lazyframe/partition"
)

// selectColumn returns the named column of a Table partition. Series and
// Indexes are returned unchanged when colName is empty.
func selectColumn(part interface{}, colName string) (interface{}, error) {
	if colName == "" {
		return part, nil
	}
	t, ok := part.(*partition.Table)
	if !ok {
		return nil, fmt.Errorf("column %s can only be selected from a Table, not %T", colName, part)
	}
	return t.Column(colName)
}
