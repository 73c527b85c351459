package graph

import (
	"fmt"
	"strings"
)

// Func is a deferred computation. args hold resolved positional arguments and
// kwargs hold literal keyword arguments.
type Func func(args []interface{}, kwargs map[string]interface{}) (interface{}, error)

// Task is a deferred call of Fn. Within Args, a Key refers to another node of the
// Graph, a *Task is an inline sub-call, and a []interface{} is searched recursively
// for both. Kwargs are always passed through as literals.
type Task struct {
	Fn     Func
	Args   []interface{}
	Kwargs map[string]interface{}
}

// NewTask is a factory for Tasks without keyword arguments
func NewTask(fn Func, args ...interface{}) *Task {
	return &Task{Fn: fn, Args: args}
}

// String returns a textual representation of this Task
func (t *Task) String() string {
	var res strings.Builder
	fmt.Fprintf(&res, "(%s", FuncName(t.Fn))
	for _, a := range t.Args {
		fmt.Fprintf(&res, ", %v", a)
	}
	if len(t.Kwargs) > 0 {
		fmt.Fprintf(&res, ", %v", t.Kwargs)
	}
	fmt.Fprint(&res, ")")
	return res.String()
}

// References returns the Keys referenced by a node value, in order of appearance.
// A bare Key node is an alias and references itself.
func References(v interface{}) []Key {
	var refs []Key
	var walk func(v interface{})
	walk = func(v interface{}) {
		switch tv := v.(type) {
		case Key:
			refs = append(refs, tv)
		case *Task:
			for _, a := range tv.Args {
				walk(a)
			}
		case []interface{}:
			for _, a := range tv {
				walk(a)
			}
		}
	}
	walk(v)
	return refs
}
