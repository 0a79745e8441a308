package builtin

import (
	"github.com/quadroom/vscene/ifaces"
	"github.com/quadroom/vscene/math32"
	"github.com/quadroom/vscene/node"
	"github.com/quadroom/vscene/value"
)

// PositionInterpolatorMetatype linearly interpolates between keyValue
// entries along key, reacting to set_fraction (spec.md §4.H, §8 scenario
// 2: a Transform's translation routed from a PositionInterpolator's
// value_changed).
var PositionInterpolatorMetatype = &node.Metatype{
	TypeID: "urn:vscene:node:PositionInterpolator",
	Supported: mustIfaceSet(
		field(ifaces.ExposedField, value.MFFloat, "key"),
		field(ifaces.ExposedField, value.MFVec3f, "keyValue"),
		field(ifaces.EventIn, value.SFFloat, "set_fraction"),
		field(ifaces.EventOut, value.SFVec3f, "value_changed"),
	),
	New: func(n *node.Node) node.Behavior { return &positionInterpolatorBehavior{n: n} }}

type positionInterpolatorBehavior struct{ n *node.Node }

func (p *positionInterpolatorBehavior) OnSet(id string) {}

func (p *positionInterpolatorBehavior) React(inID string, v *value.Value, now float64, emit func(outID string, v *value.Value)) {
	if inID != "set_fraction" {
		return
	}
	fraction, ok := v.Float()
	if !ok {
		return
	}

	key := get(p.n, "key")
	keyValue := get(p.n, "keyValue")
	n := key.Len()
	if n == 0 || keyValue.Len() != n {
		return
	}

	result := interpolateVec3f(key, keyValue, n, fraction)
	out := value.New(value.SFVec3f)
	out.SetVec3f(result)
	emit("value_changed", out)
}

func interpolateVec3f(key, keyValue *value.Value, n int, fraction float32) math32.Vector3 {
	first, _ := keyValue.AtVec3f(0)
	if n == 1 {
		return first
	}
	k0, _ := key.AtFloat(0)
	if fraction <= k0 {
		return first
	}
	last, _ := keyValue.AtVec3f(n - 1)
	kLast, _ := key.AtFloat(n - 1)
	if fraction >= kLast {
		return last
	}

	for i := 0; i < n-1; i++ {
		a, _ := key.AtFloat(i)
		b, _ := key.AtFloat(i + 1)
		if fraction >= a && fraction <= b {
			va, _ := keyValue.AtVec3f(i)
			vb, _ := keyValue.AtVec3f(i + 1)
			span := b - a
			if span <= 0 {
				return va
			}
			t := (fraction - a) / span
			return math32.Vector3{
				X: va.X + (vb.X-va.X)*t,
				Y: va.Y + (vb.Y-va.Y)*t,
				Z: va.Z + (vb.Z-va.Z)*t,
			}
		}
	}
	return last
}
