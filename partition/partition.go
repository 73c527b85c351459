package partition

import "fmt"

// Kind identifies the shape of a Partition
type Kind int

const (
	// KindTable is the Kind of a Table: named columns sharing an Index
	KindTable Kind = iota
	// KindSeries is the Kind of a Series: a single named column with an Index
	KindSeries
	// KindIndex is the Kind of an Index: row labels without further data
	KindIndex
)

// String returns a textual representation of this Kind
func (k Kind) String() string {
	switch k {
	case KindTable:
		return "Table"
	case KindSeries:
		return "Series"
	case KindIndex:
		return "Index"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// A Partition is an in-memory columnar object holding a contiguous run of rows
// from a larger logical collection.
type Partition interface {
	Kind() Kind                          // Kind returns the shape of this Partition
	Len() int                            // Len returns the number of rows in this Partition
	Empty() Partition                    // Empty returns a zero-row Partition with the same schema
	NonEmpty() Partition                 // NonEmpty returns a one-row Partition with the same schema, holding placeholder values
	Slice(start int, stop int) Partition // Slice returns the rows in [start, stop)
	Take(idx []int) Partition            // Take returns the rows at the given positions, in order
	Token() string                       // Token returns a deterministic content hash of this Partition
}

// MakeMeta returns the zero-row proxy of a Partition. Any other value is a
// scalar meta and is returned unchanged.
func MakeMeta(x interface{}) interface{} {
	if p, ok := x.(Partition); ok {
		return p.Empty()
	}
	return x
}

// IsPartition returns true iff x is a Partition
func IsPartition(x interface{}) (ok bool) {
	_, ok = x.(Partition)
	return
}
