package partition

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

func compareInts(x int64, y int64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func compareStrings(x string, y string) int {
	return strings.Compare(x, y)
}

func compareTimes(x time.Time, y time.Time) int {
	switch {
	case x.Before(y):
		return -1
	case x.After(y):
		return 1
	}
	return 0
}

// compareFloatsTotal orders NaN after every other value, and equal to itself
func compareFloatsTotal(x float64, y float64) int {
	xNaN, yNaN := math.IsNaN(x), math.IsNaN(y)
	switch {
	case xNaN && yNaN:
		return 0
	case xNaN:
		return 1
	case yNaN:
		return -1
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// compareAt compares the i-th and j-th values of an Array
func compareAt(a Array, i int, j int) int {
	switch ta := a.(type) {
	case Int64Array:
		return compareInts(ta[i], ta[j])
	case Float64Array:
		return compareFloatsTotal(ta[i], ta[j])
	case BoolArray:
		x, y := 0, 0
		if ta[i] {
			x = 1
		}
		if ta[j] {
			y = 1
		}
		return x - y
	case StringArray:
		return compareStrings(ta[i], ta[j])
	case *TimeArray:
		return compareTimes(ta.Values[i], ta.Values[j])
	case *CategoricalArray:
		return compareInts(int64(ta.Codes[i]), int64(ta.Codes[j]))
	}
	return 0
}

// IndexOf returns the Index labelling the rows of a Partition. An Index labels itself.
func IndexOf(p Partition) (*Index, error) {
	switch tp := p.(type) {
	case *Table:
		return tp.index, nil
	case *Series:
		return tp.index, nil
	case *Index:
		return tp, nil
	}
	return nil, fmt.Errorf("unsupported partition type %T", p)
}

// SortIndex returns a copy of a Partition with its rows stably sorted by index label
func SortIndex(p Partition) (Partition, error) {
	idx, err := IndexOf(p)
	if err != nil {
		return nil, err
	}
	values := idx.values
	perm := make([]int, values.Len())
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool {
		return compareAt(values, perm[i], perm[j]) < 0
	})
	return p.Take(perm), nil
}

// FindSegments returns the start position of every run of equal adjacent values
func FindSegments(values Array) []int {
	n := values.Len()
	if n == 0 {
		return []int{}
	}
	segments := []int{0}
	for i := 1; i < n; i++ {
		if compareAt(values, i-1, i) != 0 {
			segments = append(segments, i)
		}
	}
	return segments
}

// Concat appends Partitions of the same Kind and schema end to end
func Concat(parts []Partition) (Partition, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("cannot concatenate zero partitions")
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	indexes := make([]Array, len(parts))
	for i, p := range parts {
		if p.Kind() != parts[0].Kind() {
			return nil, fmt.Errorf("cannot concatenate a %s with a %s", parts[0].Kind(), p.Kind())
		}
		idx, err := IndexOf(p)
		if err != nil {
			return nil, err
		}
		indexes[i] = idx.values
	}
	index, err := concatArrays(indexes)
	if err != nil {
		return nil, fmt.Errorf("index: %w", err)
	}
	switch first := parts[0].(type) {
	case *Index:
		return &Index{name: first.name, values: index}, nil
	case *Series:
		values := make([]Array, len(parts))
		for i, p := range parts {
			values[i] = p.(*Series).values
		}
		res, err := concatArrays(values)
		if err != nil {
			return nil, err
		}
		return &Series{name: first.name, values: res, index: &Index{name: first.index.name, values: index}}, nil
	case *Table:
		columns := make([]Array, len(first.columns))
		for c, name := range first.names {
			values := make([]Array, len(parts))
			for i, p := range parts {
				t := p.(*Table)
				if len(t.names) != len(first.names) || t.names[c] != name {
					return nil, fmt.Errorf("cannot concatenate Tables with columns %v and %v", first.names, t.names)
				}
				values[i] = t.columns[c]
			}
			res, err := concatArrays(values)
			if err != nil {
				return nil, fmt.Errorf("column %s: %w", name, err)
			}
			columns[c] = res
		}
		return &Table{names: first.names, columns: columns, index: &Index{name: first.index.name, values: index}}, nil
	}
	return nil, fmt.Errorf("unsupported partition type %T", parts[0])
}
