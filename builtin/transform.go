package builtin

import (
	"github.com/quadroom/vscene/bounds"
	"github.com/quadroom/vscene/ifaces"
	"github.com/quadroom/vscene/math32"
	"github.com/quadroom/vscene/node"
	"github.com/quadroom/vscene/value"
)

// TransformMetatype is the grouping node that additionally carries an
// affine transform applied to its children (spec.md §8 scenario 2, which
// routes a PositionInterpolator's value_changed into its translation).
var TransformMetatype = &node.Metatype{
	TypeID: "urn:vscene:node:Transform",
	Supported: mustIfaceSet(
		field(ifaces.ExposedField, value.MFNode, "children"),
		field(ifaces.ExposedField, value.SFVec3f, "translation"),
		field(ifaces.ExposedField, value.SFRotation, "rotation"),
		field(ifaces.ExposedField, value.SFVec3f, "scale"),
		field(ifaces.ExposedField, value.SFRotation, "scaleOrientation"),
		field(ifaces.ExposedField, value.SFVec3f, "center"),
		field(ifaces.Field, value.SFVec3f, "bboxCenter"),
		field(ifaces.Field, value.SFVec3f, "bboxSize"),
		field(ifaces.EventIn, value.SFNode, "addChildren"),
		field(ifaces.EventIn, value.SFNode, "removeChildren"),
	),
	New: func(n *node.Node) node.Behavior {
		t := &transformBehavior{n: n}
		t.recompute()
		return t
	}}

type transformBehavior struct {
	n      *node.Node
	matrix math32.Matrix4
}

func (t *transformBehavior) OnSet(id string) {
	switch id {
	case "translation", "rotation", "scale", "scaleOrientation", "center":
		t.recompute()
	case "children", "addChildren", "removeChildren":
		t.recomputeBounds()
	}
}

// Matrix returns the node's current local transform.
func (t *transformBehavior) Matrix() *math32.Matrix4 { return &t.matrix }

// Bounds lets a Transform roll up into a further containing Group or
// Transform, the same way Shape does for its geometry.
func (t *transformBehavior) Bounds() bounds.Volume {
	return t.n.BVolume()
}

func (t *transformBehavior) recompute() {
	translation, _ := get(t.n, "translation").Vec3f()
	scale, _ := get(t.n, "scale").Vec3f()
	if scale == (math32.Vector3{}) {
		scale = math32.Vector3{X: 1, Y: 1, Z: 1}
	}
	rot, _ := get(t.n, "rotation").Rotation()

	var q math32.Quaternion
	q.SetFromAxisAngle(&rot.Axis, rot.Angle)
	t.matrix.Compose(&translation, &q, &scale)
	t.recomputeBounds()
}

// recomputeBounds folds every child's bounding volume, transformed by
// this node's own local matrix, into a fresh aggregate sphere (spec.md
// §4.F, §4.L): a Transform's bounding volume as seen by ITS parent
// already accounts for its own translation/rotation/scale.
func (t *transformBehavior) recomputeBounds() {
	agg := bounds.NewSphere()
	for _, child := range t.n.ChildNodes() {
		bd, ok := child.Behavior().(Bounder)
		if !ok {
			continue
		}
		encloseInto(agg, bd.Bounds().Transform(&t.matrix))
	}
	t.n.SetBVolume(agg)
}
