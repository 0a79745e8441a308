// Package builtin implements the engine's pre-loaded built-in node
// metatypes (spec.md §1, §4.C): hand-written behavior for nodes with real
// runtime logic (grouping, transform, bindable nodes, time sensors,
// interpolators) plus the data-driven field-shape-only metatypes the
// dozens of leaf geometry/appearance/light/sensor nodes need, whose
// rendering callbacks are explicitly out of this core's scope.
package builtin

import (
	"github.com/quadroom/vscene/bounds"
	"github.com/quadroom/vscene/ifaces"
	"github.com/quadroom/vscene/node"
	"github.com/quadroom/vscene/value"
)

func mustSet(n *node.Node, id string, kind value.Kind, set func(v *value.Value)) {
	v := value.New(kind)
	set(v)
	n.Set(id, v)
}

func get(n *node.Node, id string) *value.Value {
	v, _ := n.Get(id)
	return v
}

// Bounder is implemented by behaviors that can compute a bounding volume
// for their node directly from field state (spec.md §4.L): the leaf
// geometry nodes whose draw code is out of scope still need to publish a
// bounding volume for culling.
type Bounder interface {
	Bounds() bounds.Volume
}

// TypeRegistry is the narrow capability Register needs to install a
// metatype-backed local type-identifier into a scope.
type TypeRegistry interface {
	AddType(nt *node.NodeType)
}

// field is a convenience constructor for a Field/ExposedField interface
// declaration.
func field(access ifaces.Access, kind value.Kind, id string) ifaces.Interface {
	return ifaces.Interface{Access: access, Kind: kind, ID: id}
}

// MetatypeRegistry is the narrow capability Register needs to install the
// builtin metatypes under their TypeIDs.
type MetatypeRegistry interface {
	Register(mt *node.Metatype)
}

// Register installs every builtin node metatype into reg (spec.md §4.C:
// "the engine pre-registers its built-in node set before parsing begins").
func Register(reg MetatypeRegistry) {
	for _, mt := range []*node.Metatype{
		GroupMetatype,
		TransformMetatype,
		ShapeMetatype,
		BoxMetatype,
		TimeSensorMetatype,
		PositionInterpolatorMetatype,
		ViewpointMetatype,
		NavigationInfoMetatype,
		BackgroundMetatype,
		FogMetatype,
		AppearanceMetatype,
		MaterialMetatype,
		ColorMetatype,
		CoordinateMetatype,
		IndexedFaceSetMetatype,
		PointLightMetatype,
		DirectionalLightMetatype,
		KeyDeviceSensorMetatype,
	} {
		reg.Register(mt)
	}
}
