package builtin

import (
	"github.com/quadroom/vscene/ifaces"
	"github.com/quadroom/vscene/node"
	"github.com/quadroom/vscene/sim"
	"github.com/quadroom/vscene/value"
)

// Bindable is implemented by every bindable node's Behavior so the engine
// can discover which sim.BindableCategory stack a freshly constructed node
// belongs to without a metatype-by-metatype switch (spec.md §4.H).
type Bindable interface {
	BindableCategory() sim.BindableCategory
}

func bindableIfaces(extra ...ifaces.Interface) *ifaces.Set {
	base := []ifaces.Interface{
		field(ifaces.EventIn, value.SFBool, "set_bind"),
		field(ifaces.EventOut, value.SFBool, "is_bound"),
		field(ifaces.EventOut, value.SFTime, "bindTime"),
	}
	return mustIfaceSet(append(base, extra...)...)
}

// ViewpointMetatype is the bindable viewpoint node (spec.md §4.H, glossary).
var ViewpointMetatype = &node.Metatype{
	TypeID: "urn:vscene:node:Viewpoint",
	Supported: bindableIfaces(
		field(ifaces.ExposedField, value.SFFloat, "fieldOfView"),
		field(ifaces.ExposedField, value.SFBool, "jump"),
		field(ifaces.ExposedField, value.SFRotation, "orientation"),
		field(ifaces.ExposedField, value.SFVec3f, "position"),
		field(ifaces.Field, value.SFString, "description"),
	),
	New: func(n *node.Node) node.Behavior { return &bindableBehavior{n: n, cat: sim.Viewpoint} }}

// NavigationInfoMetatype is the bindable navigation-parameters node.
var NavigationInfoMetatype = &node.Metatype{
	TypeID: "urn:vscene:node:NavigationInfo",
	Supported: bindableIfaces(
		field(ifaces.ExposedField, value.MFFloat, "avatarSize"),
		field(ifaces.ExposedField, value.SFBool, "headlight"),
		field(ifaces.ExposedField, value.SFFloat, "speed"),
		field(ifaces.ExposedField, value.MFString, "type"),
		field(ifaces.ExposedField, value.SFFloat, "visibilityLimit"),
	),
	New: func(n *node.Node) node.Behavior { return &bindableBehavior{n: n, cat: sim.NavigationInfo} }}

// BackgroundMetatype is the bindable backdrop node.
var BackgroundMetatype = &node.Metatype{
	TypeID: "urn:vscene:node:Background",
	Supported: bindableIfaces(
		field(ifaces.ExposedField, value.MFColor, "skyColor"),
		field(ifaces.ExposedField, value.MFColor, "groundColor"),
	),
	New: func(n *node.Node) node.Behavior { return &bindableBehavior{n: n, cat: sim.Background} }}

// FogMetatype is the bindable atmospheric-fog node.
var FogMetatype = &node.Metatype{
	TypeID: "urn:vscene:node:Fog",
	Supported: bindableIfaces(
		field(ifaces.ExposedField, value.SFColor, "color"),
		field(ifaces.ExposedField, value.SFFloat, "visibilityRange"),
		field(ifaces.ExposedField, value.SFString, "fogType"),
	),
	New: func(n *node.Node) node.Behavior { return &bindableBehavior{n: n, cat: sim.Fog} }}

type bindableBehavior struct {
	n   *node.Node
	cat sim.BindableCategory
}

func (b *bindableBehavior) OnSet(id string) {}

func (b *bindableBehavior) BindableCategory() sim.BindableCategory { return b.cat }
