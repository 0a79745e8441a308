package builtin

import (
	"math"

	"github.com/quadroom/vscene/bounds"
	"github.com/quadroom/vscene/ifaces"
	"github.com/quadroom/vscene/math32"
	"github.com/quadroom/vscene/node"
	"github.com/quadroom/vscene/value"
)

// BoxMetatype is the axis-aligned box primitive (spec.md §8 scenario 1:
// Box{size 2 2 2} under a Shape yields a bounding sphere of radius √3).
var BoxMetatype = &node.Metatype{
	TypeID: "urn:vscene:node:Box",
	Supported: mustIfaceSet(
		field(ifaces.Field, value.SFVec3f, "size"),
	),
	New: func(n *node.Node) node.Behavior {
		b := &boxBehavior{n: n}
		b.recompute()
		return b
	}}

type boxBehavior struct {
	n      *node.Node
	bounds bounds.Sphere
}

func (b *boxBehavior) OnSet(id string) {
	if id == "size" {
		b.recompute()
	}
}

func (b *boxBehavior) Bounds() bounds.Volume { return &b.bounds }

func (b *boxBehavior) recompute() {
	size, ok := get(b.n, "size").Vec3f()
	if !ok || !b.n.FieldExplicit("size") {
		size = math32.Vector3{X: 2, Y: 2, Z: 2}
	}
	// A box's minimal bounding sphere is centered on the box and reaches
	// exactly to its corners; the incremental ExtendPoint machinery (built
	// for arbitrary point clouds) would only produce an over-approximation
	// here, so this computes the exact half-diagonal directly.
	hx, hy, hz := size.X/2, size.Y/2, size.Z/2
	radius := float32(math.Sqrt(float64(hx*hx + hy*hy + hz*hz)))
	b.bounds = bounds.Sphere{Center: math32.Vector3{}, Radius: radius}
}
