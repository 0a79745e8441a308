package node

import (
	"sync/atomic"

	"github.com/quadroom/vscene/value"
)

// Clone deep-copies roots (and every node reachable from them, plus every
// node named in defs) into target, remapping DEF/USE so a USE in the
// source maps to the same shared copy in the target (spec.md §4.F).
//
// This is pass 1 of the two-pass clone-into algorithm: it copies nodes and
// populates the target scope's DEF map. Pass 2 (copying routes, remapping
// their endpoints through the returned map) lives in whichever package
// holds the route graph, so this package never needs to import it.
//
// Reachability and allocation both use an explicit work queue rather than
// recursion, so clone cost is bounded by graph size, not call-stack depth.
func Clone(roots []*Node, defs map[string]*Node, target Scope) ([]*Node, map[*Node]*Node, error) {
	remap := make(map[*Node]*Node)

	// Phase 1: discover every reachable node and allocate its (still
	// empty) clone, so that phase 2 can resolve any node-typed field
	// reference regardless of visit order (forward references, cycles).
	queue := make([]*Node, 0, len(roots)+len(defs))
	queue = append(queue, roots...)
	for _, n := range defs {
		queue = append(queue, n)
	}
	for len(queue) > 0 {
		cur := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if _, ok := remap[cur]; ok {
			continue
		}
		remap[cur] = &Node{
			id:       atomic.AddUint64(&nextID, 1),
			nodeType: cur.nodeType,
			scope:    target,
			fields:   make(map[string]*value.Value, len(cur.fields)),
			explicit: make(map[string]bool, len(cur.explicit)),
		}
		queue = append(queue, cur.ChildNodes()...)
	}

	// Phase 2: populate field storage on every clone, translating
	// SFNode/MFNode payloads through remap.
	for src, dst := range remap {
		for id, v := range src.fields {
			dst.fields[id] = remapValue(v, remap)
		}
		for id, e := range src.explicit {
			dst.explicit[id] = e
		}
		if src.nodeType.Metatype != nil && src.nodeType.Metatype.New != nil {
			dst.behavior = src.nodeType.Metatype.New(dst)
		}
	}

	// Register DEF names in the target scope.
	for name, n := range defs {
		target.AddNode(name, remap[n])
	}

	clonedRoots := make([]*Node, len(roots))
	for i, r := range roots {
		clonedRoots[i] = remap[r]
	}
	return clonedRoots, remap, nil
}

func remapValue(v *value.Value, remap map[*Node]*Node) *value.Value {
	out := v.Clone()
	switch v.Kind() {
	case value.SFNode:
		if ref, ok := v.NodeRef(); ok && ref != nil {
			if src, ok := ref.(*Node); ok {
				out.SetNode(remap[src])
			}
		}
	case value.MFNode:
		n := v.Len()
		items := make([]value.Node, n)
		for i := 0; i < n; i++ {
			ref, _ := v.AtNode(i)
			if src, ok := ref.(*Node); ok && ref != nil {
				items[i] = remap[src]
			}
		}
		out.ReplaceNode(items)
	}
	return out
}
