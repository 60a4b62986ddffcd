// Package nodequery evaluates node filter expressions using Goja (JS runtime).
//
// A filter is a single JavaScript expression compiled once and evaluated
// per node with the variables id, name, type, mentions and degree in
// scope, plus a case-insensitive contains(haystack, needle) helper. The
// result is coerced to a boolean with JS truthiness rules, so "mentions"
// alone already means "mentioned at least once".
package nodequery

import (
	"fmt"
	"strings"

	"github.com/dop251/goja"

	"github.com/tangleview/tangle/pkg/knowledge"
)

// Filter is a compiled node predicate. Not safe for concurrent use; the
// runtime carries per-evaluation globals.
type Filter struct {
	src     string
	program *goja.Program
	runtime *goja.Runtime
}

// Compile parses the expression once so per-node evaluation stays cheap
// enough to run inside the frame loop.
func Compile(src string) (*Filter, error) {
	trimmed := strings.TrimSpace(src)
	if trimmed == "" {
		return nil, fmt.Errorf("empty filter expression")
	}
	program, err := goja.Compile("filter", trimmed, false)
	if err != nil {
		return nil, fmt.Errorf("compile filter: %w", err)
	}

	f := &Filter{src: trimmed, program: program, runtime: goja.New()}

	f.runtime.Set("contains", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 2 {
			return f.runtime.ToValue(false)
		}
		hay := strings.ToLower(call.Arguments[0].String())
		needle := strings.ToLower(call.Arguments[1].String())
		return f.runtime.ToValue(strings.Contains(hay, needle))
	})

	return f, nil
}

// Source returns the expression text the filter was compiled from.
func (f *Filter) Source() string { return f.src }

// Match evaluates the filter against one node. degree is the node's
// incident edge count, supplied by the caller since the filter itself
// has no view of the graph.
func (f *Filter) Match(n knowledge.Node, degree int) (matched bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			matched = false
			err = fmt.Errorf("filter %q: %v", f.src, r)
		}
	}()

	f.runtime.Set("id", n.ID)
	f.runtime.Set("name", n.Name)
	f.runtime.Set("type", n.Type)
	f.runtime.Set("mentions", n.Mentions)
	f.runtime.Set("degree", degree)

	val, err := f.runtime.RunProgram(f.program)
	if err != nil {
		return false, fmt.Errorf("filter %q: %w", f.src, err)
	}
	return val.ToBoolean(), nil
}

// Visible collects the ids of all nodes matching the filter in one pass
// over the index. The first evaluation error aborts the pass.
func (f *Filter) Visible(idx *knowledge.Index) (map[string]bool, error) {
	vis := make(map[string]bool, idx.Len())
	for _, n := range idx.Nodes() {
		ok, err := f.Match(n, idx.Degree(n.ID))
		if err != nil {
			return nil, err
		}
		if ok {
			vis[n.ID] = true
		}
	}
	return vis, nil
}
