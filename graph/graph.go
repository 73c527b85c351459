package graph

// Graph is an immutable mapping from Keys to node values. A node value is either
// a *Task or a literal. Graphs are never modified after construction; Merge
// produces new Graphs.
type Graph struct {
	nodes map[Key]interface{}
}

// New creates a Graph from a mapping of Keys to node values. The mapping is copied.
func New(nodes map[Key]interface{}) *Graph {
	g := &Graph{nodes: make(map[Key]interface{}, len(nodes))}
	for k, v := range nodes {
		g.nodes[k] = v
	}
	return g
}

// Merge produces the union of several Graphs. Callers must ensure that duplicate
// Keys denote equivalent computations; when they collide, the last Graph wins.
// Nil Graphs are skipped.
func Merge(graphs ...*Graph) *Graph {
	size := 0
	for _, g := range graphs {
		if g != nil {
			size += len(g.nodes)
		}
	}
	merged := &Graph{nodes: make(map[Key]interface{}, size)}
	for _, g := range graphs {
		if g == nil {
			continue
		}
		for k, v := range g.nodes {
			merged.nodes[k] = v
		}
	}
	return merged
}

// Get returns the node value for a Key
func (g *Graph) Get(k Key) (v interface{}, ok bool) {
	v, ok = g.nodes[k]
	return
}

// Has returns true iff this Graph contains a node for k
func (g *Graph) Has(k Key) bool {
	_, ok := g.nodes[k]
	return ok
}

// Len returns the number of nodes in this Graph
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Keys returns every Key in this Graph, sorted by name and then partition index
func (g *Graph) Keys() []Key {
	keys := make([]Key, 0, len(g.nodes))
	for k := range g.nodes {
		keys = append(keys, k)
	}
	SortKeys(keys)
	return keys
}

// Dependencies returns the distinct Keys referenced by the node for k, in order of first appearance
func (g *Graph) Dependencies(k Key) []Key {
	v, ok := g.nodes[k]
	if !ok {
		return nil
	}
	refs := References(v)
	seen := make(map[Key]bool, len(refs))
	deps := make([]Key, 0, len(refs))
	for _, r := range refs {
		if !seen[r] {
			seen[r] = true
			deps = append(deps, r)
		}
	}
	return deps
}

// ForEach calls fn for every node of this Graph, in Key order
func (g *Graph) ForEach(fn func(k Key, v interface{}) error) error {
	for _, k := range g.Keys() {
		if err := fn(k, g.nodes[k]); err != nil {
			return err
		}
	}
	return nil
}
