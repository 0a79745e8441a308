// Package route implements the route graph: wires from an event-producing
// endpoint on one node to an event-consuming endpoint on another, with
// duplicate suppression and O(1) lookup from either endpoint (spec.md
// §3.6, §4.G).
package route

import (
	"fmt"

	"github.com/quadroom/vscene/ifaces"
	"github.com/quadroom/vscene/node"
)

// Route is an ordered 4-tuple: (source node, source event-out id, target
// node, target event-in id).
type Route struct {
	SrcNode *node.Node
	SrcID   string
	DstNode *node.Node
	DstID   string
}

func key(r Route) string {
	return fmt.Sprintf("%p.%s->%p.%s", r.SrcNode, r.SrcID, r.DstNode, r.DstID)
}

// Graph holds every installed route, indexed on both endpoints so removal
// of a node (routes live "on their source node and on the target node
// both", spec.md §4.G) is O(degree), not O(total routes).
type Graph struct {
	byKey map[string]Route
	bySrc map[*node.Node][]string
	byDst map[*node.Node][]string
}

// New returns an empty route graph.
func New() *Graph {
	return &Graph{
		byKey: make(map[string]Route),
		bySrc: make(map[*node.Node][]string),
		byDst: make(map[*node.Node][]string),
	}
}

// Add installs a route from src.srcID to dst.dstID, validating that both
// endpoints exist on their node's interface set and that their value
// kinds agree. Installing the same route twice is a no-op (spec.md §3.6,
// §8).
func (g *Graph) Add(src *node.Node, srcID string, dst *node.Node, dstID string) error {
	srcIface, ok := src.Type().Interfaces.Find(ifaces.EventOut, srcID)
	if !ok {
		return fmt.Errorf("route: %s has no event-out %q", src.Type().LocalID, srcID)
	}
	dstIface, ok := dst.Type().Interfaces.Find(ifaces.EventIn, dstID)
	if !ok {
		return fmt.Errorf("route: %s has no event-in %q", dst.Type().LocalID, dstID)
	}
	if srcIface.Kind != dstIface.Kind {
		return fmt.Errorf("route: kind mismatch: %s (%s) -> %s (%s)", srcID, srcIface.Kind, dstID, dstIface.Kind)
	}

	r := Route{SrcNode: src, SrcID: srcIface.ID, DstNode: dst, DstID: dstIface.ID}
	k := key(r)
	if _, exists := g.byKey[k]; exists {
		return nil
	}
	g.byKey[k] = r
	g.bySrc[src] = append(g.bySrc[src], k)
	g.byDst[dst] = append(g.byDst[dst], k)
	return nil
}

// FromSource returns every route whose source is n.
func (g *Graph) FromSource(n *node.Node) []Route {
	keys := g.bySrc[n]
	out := make([]Route, 0, len(keys))
	for _, k := range keys {
		out = append(out, g.byKey[k])
	}
	return out
}

// ToTarget returns every route whose target is n.
func (g *Graph) ToTarget(n *node.Node) []Route {
	keys := g.byDst[n]
	out := make([]Route, 0, len(keys))
	for _, k := range keys {
		out = append(out, g.byKey[k])
	}
	return out
}

// RemoveNode removes every route referencing n at either end (spec.md
// §4.G, §8: "removing a node removes every route referencing it").
func (g *Graph) RemoveNode(n *node.Node) {
	for _, k := range g.bySrc[n] {
		r := g.byKey[k]
		g.removeFromIndex(g.byDst, r.DstNode, k)
		delete(g.byKey, k)
	}
	for _, k := range g.byDst[n] {
		r := g.byKey[k]
		g.removeFromIndex(g.bySrc, r.SrcNode, k)
		delete(g.byKey, k)
	}
	delete(g.bySrc, n)
	delete(g.byDst, n)
}

func (g *Graph) removeFromIndex(idx map[*node.Node][]string, n *node.Node, k string) {
	list := idx[n]
	for i, kk := range list {
		if kk == k {
			idx[n] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// All returns every installed route, in no particular order.
func (g *Graph) All() []Route {
	out := make([]Route, 0, len(g.byKey))
	for _, r := range g.byKey {
		out = append(out, r)
	}
	return out
}

// Len returns the number of installed routes.
func (g *Graph) Len() int { return len(g.byKey) }
