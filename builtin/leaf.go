package builtin

import (
	"github.com/quadroom/vscene/ifaces"
	"github.com/quadroom/vscene/node"
	"github.com/quadroom/vscene/value"
)

// The metatypes below cover node types whose field shape is in scope but
// whose rendering callbacks are explicitly out of this core's scope
// (spec.md §1): plain field storage, no Behavior. Metatype.New is left
// nil, which node.New already treats as "no behavior beyond storage".

// AppearanceMetatype groups a Material and texture reference.
var AppearanceMetatype = &node.Metatype{
	TypeID: "urn:vscene:node:Appearance",
	Supported: mustIfaceSet(
		field(ifaces.ExposedField, value.SFNode, "material"),
		field(ifaces.ExposedField, value.SFNode, "texture"),
		field(ifaces.ExposedField, value.SFNode, "textureTransform"),
	),
}

// MaterialMetatype carries the scalar lighting-model parameters.
var MaterialMetatype = &node.Metatype{
	TypeID: "urn:vscene:node:Material",
	Supported: mustIfaceSet(
		field(ifaces.ExposedField, value.SFFloat, "ambientIntensity"),
		field(ifaces.ExposedField, value.SFColor, "diffuseColor"),
		field(ifaces.ExposedField, value.SFColor, "emissiveColor"),
		field(ifaces.ExposedField, value.SFFloat, "shininess"),
		field(ifaces.ExposedField, value.SFColor, "specularColor"),
		field(ifaces.ExposedField, value.SFFloat, "transparency"),
	),
}

// ColorMetatype is a reusable per-vertex color array.
var ColorMetatype = &node.Metatype{
	TypeID:    "urn:vscene:node:Color",
	Supported: mustIfaceSet(field(ifaces.ExposedField, value.MFColor, "color")),
}

// CoordinateMetatype is a reusable vertex-position array.
var CoordinateMetatype = &node.Metatype{
	TypeID:    "urn:vscene:node:Coordinate",
	Supported: mustIfaceSet(field(ifaces.ExposedField, value.MFVec3f, "point")),
}

// IndexedFaceSetMetatype is an indexed polygon mesh, field storage only:
// the triangulation and draw calls this would drive are out of scope.
var IndexedFaceSetMetatype = &node.Metatype{
	TypeID: "urn:vscene:node:IndexedFaceSet",
	Supported: mustIfaceSet(
		field(ifaces.ExposedField, value.SFNode, "color"),
		field(ifaces.ExposedField, value.SFNode, "coord"),
		field(ifaces.ExposedField, value.SFNode, "normal"),
		field(ifaces.ExposedField, value.SFNode, "texCoord"),
		field(ifaces.Field, value.MFInt32, "coordIndex"),
		field(ifaces.Field, value.MFInt32, "colorIndex"),
		field(ifaces.Field, value.MFInt32, "normalIndex"),
		field(ifaces.Field, value.MFInt32, "texCoordIndex"),
		field(ifaces.Field, value.SFBool, "ccw"),
		field(ifaces.Field, value.SFBool, "solid"),
	),
}

// PointLightMetatype is an omnidirectional light source.
var PointLightMetatype = &node.Metatype{
	TypeID: "urn:vscene:node:PointLight",
	Supported: mustIfaceSet(
		field(ifaces.ExposedField, value.SFFloat, "ambientIntensity"),
		field(ifaces.ExposedField, value.SFVec3f, "attenuation"),
		field(ifaces.ExposedField, value.SFColor, "color"),
		field(ifaces.ExposedField, value.SFFloat, "intensity"),
		field(ifaces.ExposedField, value.SFVec3f, "location"),
		field(ifaces.ExposedField, value.SFBool, "on"),
		field(ifaces.ExposedField, value.SFFloat, "radius"),
	),
}

// DirectionalLightMetatype is a parallel-ray light source.
var DirectionalLightMetatype = &node.Metatype{
	TypeID: "urn:vscene:node:DirectionalLight",
	Supported: mustIfaceSet(
		field(ifaces.ExposedField, value.SFFloat, "ambientIntensity"),
		field(ifaces.ExposedField, value.SFColor, "color"),
		field(ifaces.ExposedField, value.SFVec3f, "direction"),
		field(ifaces.ExposedField, value.SFFloat, "intensity"),
		field(ifaces.ExposedField, value.SFBool, "on"),
	),
}

// KeyDeviceSensorMetatype reports raw keyboard events; deliberately
// omitted from the Interchange profile (profile.go) so that authoring a
// scene referencing it under Interchange fails the interface-support
// check with errs.UnsupportedInterface (spec.md §8 scenario 5).
var KeyDeviceSensorMetatype = &node.Metatype{
	TypeID: "urn:vscene:node:KeyDeviceSensor",
	Supported: mustIfaceSet(
		field(ifaces.ExposedField, value.SFBool, "enabled"),
		field(ifaces.EventOut, value.SFInt32, "keyPress"),
		field(ifaces.EventOut, value.SFInt32, "keyRelease"),
		field(ifaces.EventOut, value.SFBool, "isActive"),
	),
}
