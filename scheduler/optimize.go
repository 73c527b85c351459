package scheduler

import (
	"github.com/go-sif/lazyframe/graph"
)

// Optimize prepares a graph for computing keys: it culls every node the keys do
// not depend on and, if fuse is set, inlines linear chains of tasks into their
// only consumer, then culls again.
func Optimize(g *graph.Graph, keys []graph.Key, fuse bool) *graph.Graph {
	culled := Cull(g, keys)
	if !fuse {
		return culled
	}
	return Cull(Fuse(culled, keys), keys)
}

// Cull returns the subgraph of g reachable from keys. Missing keys are ignored.
func Cull(g *graph.Graph, keys []graph.Key) *graph.Graph {
	nodes := make(map[graph.Key]interface{})
	stack := append([]graph.Key(nil), keys...)
	for len(stack) > 0 {
		k := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := nodes[k]; seen {
			continue
		}
		v, ok := g.Get(k)
		if !ok {
			continue
		}
		nodes[k] = v
		stack = append(stack, g.Dependencies(k)...)
	}
	return graph.New(nodes)
}

// Fuse inlines every task which is referenced exactly once, by a single other
// task, into that task. keys are never inlined, nor are literal or alias nodes.
func Fuse(g *graph.Graph, keys []graph.Key) *graph.Graph {
	targets := make(map[graph.Key]bool, len(keys))
	for _, k := range keys {
		targets[k] = true
	}
	nodes := make(map[graph.Key]interface{}, g.Len())
	dependents := make(map[graph.Key]map[graph.Key]bool, g.Len())
	refCounts := make(map[graph.Key]int, g.Len())
	g.ForEach(func(k graph.Key, v interface{}) error {
		nodes[k] = v
		for _, dep := range graph.References(v) {
			refCounts[dep]++
			if dependents[dep] == nil {
				dependents[dep] = make(map[graph.Key]bool)
			}
			dependents[dep][k] = true
		}
		return nil
	})

	for _, k := range g.Keys() {
		task, ok := nodes[k].(*graph.Task)
		if !ok || targets[k] || refCounts[k] != 1 || len(dependents[k]) != 1 {
			continue
		}
		var consumer graph.Key
		for d := range dependents[k] {
			consumer = d
		}
		ctask, ok := nodes[consumer].(*graph.Task)
		if !ok || consumer == k {
			continue
		}
		nodes[consumer] = inline(ctask, k, task).(*graph.Task)
		delete(nodes, k)
		for _, dep := range graph.References(task) {
			delete(dependents[dep], k)
			dependents[dep][consumer] = true
		}
	}
	return graph.New(nodes)
}

// inline replaces references to k within v by sub
func inline(v interface{}, k graph.Key, sub *graph.Task) interface{} {
	switch tv := v.(type) {
	case graph.Key:
		if tv == k {
			return sub
		}
	case *graph.Task:
		args := make([]interface{}, len(tv.Args))
		for i, a := range tv.Args {
			args[i] = inline(a, k, sub)
		}
		return &graph.Task{Fn: tv.Fn, Args: args, Kwargs: tv.Kwargs}
	case []interface{}:
		res := make([]interface{}, len(tv))
		for i, a := range tv {
			res[i] = inline(a, k, sub)
		}
		return res
	}
	return v
}
