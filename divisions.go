package lazyframe

import (
	"reflect"
	"time"
)

// Divisions are the N+1 boundary index values delimiting N partitions. Partition i holds
// rows with index in [d[i], d[i+1]), and the last partition is closed on both ends. A nil
// element is an unknown boundary, used when no global ordering has been established.
type Divisions []interface{}

// UnknownDivisions creates Divisions for n partitions with no known boundaries
func UnknownDivisions(n int) Divisions {
	return make(Divisions, n+1)
}

// NPartitions returns the number of partitions delimited by these Divisions
func (d Divisions) NPartitions() int {
	return len(d) - 1
}

// Known returns true iff every boundary is known
func (d Divisions) Known() bool {
	for _, v := range d {
		if v == nil {
			return false
		}
	}
	return true
}

// Equal returns true iff both Divisions have the same length and boundaries
func (d Divisions) Equal(o Divisions) bool {
	if len(d) != len(o) {
		return false
	}
	for i := range d {
		if !divisionEqual(d[i], o[i]) {
			return false
		}
	}
	return true
}

func divisionEqual(a interface{}, b interface{}) bool {
	if ta, ok := a.(time.Time); ok {
		tb, ok := b.(time.Time)
		return ok && ta.Equal(tb)
	}
	return reflect.DeepEqual(a, b)
}

func (d Divisions) clone() Divisions {
	return append(Divisions(nil), d...)
}
