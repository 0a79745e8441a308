package builtin

import (
	"github.com/quadroom/vscene/bounds"
	"github.com/quadroom/vscene/ifaces"
	"github.com/quadroom/vscene/node"
	"github.com/quadroom/vscene/value"
)

// ShapeMetatype pairs a geometry node with an appearance node. Its
// bounding volume is whatever its geometry reports (spec.md §8 scenario
// 1: "The Shape's bounding sphere has radius √3").
var ShapeMetatype = &node.Metatype{
	TypeID: "urn:vscene:node:Shape",
	Supported: mustIfaceSet(
		field(ifaces.ExposedField, value.SFNode, "geometry"),
		field(ifaces.ExposedField, value.SFNode, "appearance"),
	),
	New: func(n *node.Node) node.Behavior { return &shapeBehavior{n: n} }}

type shapeBehavior struct{ n *node.Node }

func (s *shapeBehavior) OnSet(id string) {
	if id != "geometry" {
		return
	}
	v := get(s.n, "geometry")
	if v == nil {
		return
	}
	ref, ok := v.NodeRef()
	if !ok || ref == nil {
		return
	}
	geomNode, ok := ref.(*node.Node)
	if !ok {
		return
	}
	if bd, ok := geomNode.Behavior().(Bounder); ok {
		s.n.SetBVolume(bd.Bounds())
	}
}

// Bounds lets Shape itself act as a Bounder for a containing Group or
// Transform's own bvolume rollup.
func (s *shapeBehavior) Bounds() bounds.Volume {
	return s.n.BVolume()
}
