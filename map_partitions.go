package lazyframe

import (
	"github.com/go-sif/lazyframe/errors"
	"github.com/go-sif/lazyframe/graph"
)

type mapOptions struct {
	meta    interface{}
	hasMeta bool
	token   string
	kwargs  map[string]interface{}
}

// MapOption configures MapPartitions
type MapOption func(*mapOptions)

// WithMeta declares the meta of the result, skipping emulation
func WithMeta(meta interface{}) MapOption {
	return func(o *mapOptions) {
		o.meta = meta
		o.hasMeta = true
	}
}

// WithToken names the result's graph keys with token instead of the function's name.
// When a token is given, the function itself does not contribute to the content hash.
func WithToken(token string) MapOption {
	return func(o *mapOptions) {
		o.token = token
	}
}

// WithKwargs passes keyword arguments, unchanged, to every call of the function
func WithKwargs(kwargs map[string]interface{}) MapOption {
	return func(o *mapOptions) {
		o.kwargs = kwargs
	}
}

// MapPartitions applies fn to every partition of its Collection arguments, producing a
// new Collection whose kind is implied by fn's result. Collections among args must be
// aligned, and at least one must be partitioned (not a Scalar). The i-th call of fn
// receives the i-th partition of each partitioned Collection, the only partition of each
// Scalar, and every other argument unchanged. Collections nested in []interface{}
// arguments are substituted the same way. Divisions are inherited from the first
// partitioned Collection, so fn must preserve the order of rows.
//
// Unless WithMeta is given, the meta of the result is inferred by calling fn on the
// metas of its arguments.
func MapPartitions(fn graph.Func, args []interface{}, opts ...MapOption) (Collection, error) {
	o := &mapOptions{}
	for _, opt := range opts {
		opt(o)
	}
	funcName := graph.FuncName(fn)
	tag := o.token
	identity := []interface{}{}
	if tag == "" {
		tag = funcName
		identity = append(identity, fn)
	}
	identity = append(identity, o.meta, args, o.kwargs)
	name := tag + "-" + graph.Tokenize(identity...)

	args, err := Align(args)
	if err != nil {
		return nil, err
	}
	parts := partitioned(args, nil)
	if len(parts) == 0 {
		return nil, errors.InvalidOperandsError{Reason: "MapPartitions requires at least one partitioned Collection argument"}
	}

	meta := o.meta
	if !o.hasMeta {
		if meta, err = emulate(funcName, fn, args, o.kwargs, false); err != nil {
			return nil, err
		}
	}

	first := parts[0]
	nodes := make(map[graph.Key]interface{}, first.NPartitions())
	for i := 0; i < first.NPartitions(); i++ {
		taskArgs := make([]interface{}, len(args))
		for j, a := range args {
			taskArgs[j] = partitionArg(a, i)
		}
		nodes[graph.Key{Name: name, Index: i}] = &graph.Task{Fn: fn, Args: taskArgs, Kwargs: o.kwargs}
	}
	graphs := operandGraphs(args, nil)
	graphs = append(graphs, graph.New(nodes))
	return New(graph.Merge(graphs...), name, meta, first.Divisions())
}

// partitionArg replaces the Collections within a (possibly nested) argument with the
// keys of their i-th partitions. Scalars always contribute their only partition.
func partitionArg(a interface{}, i int) interface{} {
	switch ta := a.(type) {
	case Collection:
		if ta.Kind() == KindScalar {
			return graph.Key{Name: ta.Name(), Index: 0}
		}
		return graph.Key{Name: ta.Name(), Index: i}
	case []interface{}:
		res := make([]interface{}, len(ta))
		for j, e := range ta {
			res[j] = partitionArg(e, i)
		}
		return res
	}
	return a
}

// operandGraphs collects the graphs of every Collection within a (possibly nested) argument list
func operandGraphs(args []interface{}, graphs []*graph.Graph) []*graph.Graph {
	for _, a := range args {
		switch ta := a.(type) {
		case Collection:
			graphs = append(graphs, ta.Graph())
		case []interface{}:
			graphs = operandGraphs(ta, graphs)
		}
	}
	return graphs
}
