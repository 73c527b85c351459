package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-sif/lazyframe/graph"
)

func chainGraph() *graph.Graph {
	return graph.New(map[graph.Key]interface{}{
		key("x", 0):      1,
		key("a", 0):      graph.NewTask(inc, key("x", 0)),
		key("b", 0):      graph.NewTask(inc, key("a", 0)),
		key("c", 0):      graph.NewTask(inc, key("b", 0)),
		key("unused", 0): graph.NewTask(inc, key("x", 0)),
		key("shared", 0): graph.NewTask(inc, key("x", 0)),
		key("left", 0):   graph.NewTask(inc, key("shared", 0)),
		key("right", 0):  graph.NewTask(inc, key("shared", 0)),
	})
}

func TestCull(t *testing.T) {
	g := Cull(chainGraph(), []graph.Key{key("c", 0)})
	require.Equal(t, []graph.Key{key("a", 0), key("b", 0), key("c", 0), key("x", 0)}, g.Keys())
}

func TestFuseInlinesLinearChains(t *testing.T) {
	keys := []graph.Key{key("c", 0), key("left", 0), key("right", 0)}
	g := Optimize(chainGraph(), keys, true)

	// a and b fold into c; shared has two consumers and stays
	require.False(t, g.Has(key("a", 0)))
	require.False(t, g.Has(key("b", 0)))
	require.False(t, g.Has(key("unused", 0)))
	require.True(t, g.Has(key("shared", 0)))
	require.True(t, g.Has(key("x", 0)))
	require.Equal(t, []graph.Key{key("x", 0)}, g.Dependencies(key("c", 0)))

	s := testScheduler(t, nil)
	fused, err := s.Get(context.Background(), g, keys)
	require.Nil(t, err)
	plain, err := s.Get(context.Background(), chainGraph(), keys)
	require.Nil(t, err)
	require.Equal(t, plain, fused)
	require.Equal(t, []interface{}{4, 3, 3}, fused)
}

func TestFuseNeverInlinesTargets(t *testing.T) {
	keys := []graph.Key{key("b", 0), key("c", 0)}
	g := Optimize(chainGraph(), keys, true)
	require.True(t, g.Has(key("b", 0)))
	require.False(t, g.Has(key("a", 0)))
}

func TestOptimizeWithoutFusion(t *testing.T) {
	g := Optimize(chainGraph(), []graph.Key{key("c", 0)}, false)
	require.Equal(t, 4, g.Len())
}
