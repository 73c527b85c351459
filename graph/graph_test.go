package graph

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func identity(args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	return args[0], nil
}

func TestGraphIsCopiedOnConstruction(t *testing.T) {
	nodes := map[Key]interface{}{{"x", 0}: 1}
	g := New(nodes)
	nodes[Key{"x", 1}] = 2
	require.Equal(t, 1, g.Len())
	require.False(t, g.Has(Key{"x", 1}))
}

func TestMergeLastWriteWins(t *testing.T) {
	a := New(map[Key]interface{}{{"x", 0}: 1, {"y", 0}: 2})
	b := New(map[Key]interface{}{{"x", 0}: 3})
	merged := Merge(a, nil, b)
	require.Equal(t, 2, merged.Len())
	v, ok := merged.Get(Key{"x", 0})
	require.True(t, ok)
	require.Equal(t, 3, v)
	// inputs are unchanged
	v, _ = a.Get(Key{"x", 0})
	require.Equal(t, 1, v)
}

func TestKeysAreSorted(t *testing.T) {
	g := New(map[Key]interface{}{
		{"b", 0}:  0,
		{"a", 10}: 0,
		{"a", 2}:  0,
	})
	require.Equal(t, []Key{{"a", 2}, {"a", 10}, {"b", 0}}, g.Keys())
}

func TestDependencies(t *testing.T) {
	inner := NewTask(identity, Key{"c", 0})
	g := New(map[Key]interface{}{
		{"a", 0}:     1,
		{"b", 0}:     NewTask(identity, Key{"a", 0}, 5, []interface{}{Key{"a", 0}, Key{"d", 1}}),
		{"c", 0}:     NewTask(identity, inner),
		{"alias", 0}: Key{"a", 0},
	})
	require.Equal(t, []Key{{"a", 0}, {"d", 1}}, g.Dependencies(Key{"b", 0}))
	require.Equal(t, []Key{{"c", 0}}, g.Dependencies(Key{"c", 0}))
	require.Equal(t, []Key{{"a", 0}}, g.Dependencies(Key{"alias", 0}))
	require.Empty(t, g.Dependencies(Key{"a", 0}))
	require.Nil(t, g.Dependencies(Key{"missing", 0}))
}

func TestForEachStopsOnError(t *testing.T) {
	g := New(map[Key]interface{}{{"a", 0}: 1, {"b", 0}: 2})
	visited := 0
	err := g.ForEach(func(k Key, v interface{}) error {
		visited++
		return fmt.Errorf("stop")
	})
	require.NotNil(t, err)
	require.Equal(t, 1, visited)
}

func TestTaskString(t *testing.T) {
	task := NewTask(identity, Key{"x", 0}, 5)
	require.Equal(t, "(identity, ('x', 0), 5)", task.String())
}
