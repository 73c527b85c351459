package graph

import (
	"fmt"
	"sort"
)

// Key identifies a single node within a Graph: the name of the operation which
// produced it, and the index of the partition it represents.
type Key struct {
	Name  string
	Index int
}

// String returns a textual representation of this Key
func (k Key) String() string {
	return fmt.Sprintf("('%s', %d)", k.Name, k.Index)
}

// Less orders Keys by name, then by partition index
func (k Key) Less(o Key) bool {
	if k.Name != o.Name {
		return k.Name < o.Name
	}
	return k.Index < o.Index
}

// SortKeys sorts a slice of Keys in place, by name and then partition index
func SortKeys(keys []Key) {
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Less(keys[j])
	})
}
