package builtin

import (
	"github.com/quadroom/vscene/bounds"
	"github.com/quadroom/vscene/ifaces"
	"github.com/quadroom/vscene/node"
	"github.com/quadroom/vscene/value"
)

// GroupMetatype is the grouping node: a list of children and nothing
// else, the simplest node in the graph (spec.md §8 scenario 1).
var GroupMetatype = &node.Metatype{
	TypeID: "urn:vscene:node:Group",
	Supported: mustIfaceSet(
		field(ifaces.ExposedField, value.MFNode, "children"),
		field(ifaces.Field, value.SFVec3f, "bboxCenter"),
		field(ifaces.Field, value.SFVec3f, "bboxSize"),
		field(ifaces.EventIn, value.SFNode, "addChildren"),
		field(ifaces.EventIn, value.SFNode, "removeChildren"),
	),
	New: func(n *node.Node) node.Behavior {
		g := &groupBehavior{n: n}
		g.recomputeBounds()
		return g
	}}

type groupBehavior struct{ n *node.Node }

func (g *groupBehavior) OnSet(id string) {
	switch id {
	case "children", "addChildren", "removeChildren":
		g.recomputeBounds()
	}
}

// Bounds lets a Group containing other Groups or Transforms roll up
// through further ancestors, the same way Shape does for its geometry.
func (g *groupBehavior) Bounds() bounds.Volume {
	return g.n.BVolume()
}

// recomputeBounds folds every Bounder child's volume into a fresh
// bounding sphere enclosing all of them (spec.md §4.F, §4.L). A child
// with no Bounder behavior (a non-shape, non-group node type) simply
// contributes nothing.
func (g *groupBehavior) recomputeBounds() {
	agg := bounds.NewSphere()
	for _, child := range g.n.ChildNodes() {
		bd, ok := child.Behavior().(Bounder)
		if !ok {
			continue
		}
		encloseInto(agg, bd.Bounds())
	}
	g.n.SetBVolume(agg)
}

// encloseInto grows agg to contain v, handling the "maximum" sentinel
// (which makes the whole aggregate unbounded) alongside ordinary
// spheres; a Box-bounded child has no representation here since every
// builtin geometry in this engine reports a Sphere (spec.md §8 scenario
// 1), so Box enclosure is left to a future geometry kind that needs it.
func encloseInto(agg *bounds.Sphere, v bounds.Volume) {
	if v == nil {
		return
	}
	if v.IsMax() {
		agg.SetMax()
		return
	}
	if sp, ok := v.(*bounds.Sphere); ok {
		agg.Enclose(sp)
	}
}

func mustIfaceSet(ifs ...ifaces.Interface) *ifaces.Set {
	set, err := ifaces.NewSet(ifs...)
	if err != nil {
		panic(err) // builtin metatype declarations are a programming error if invalid
	}
	return set
}
