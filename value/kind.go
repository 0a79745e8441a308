// Package value implements the typed field-value model: the ~30 singular
// and multi-valued primitive types a node interface can carry.
package value

// Kind identifies the concrete shape of a Value. Kinds are never coerced
// into one another; assignment and event delivery both require an exact
// match.
type Kind int

const (
	SFBool Kind = iota
	SFInt32
	SFFloat
	SFDouble
	SFTime
	SFString
	SFColor
	SFColorRGBA
	SFVec2f
	SFVec3f
	SFVec3d
	SFRotation
	SFNode
	SFImage

	MFBool
	MFInt32
	MFFloat
	MFDouble
	MFTime
	MFString
	MFColor
	MFColorRGBA
	MFVec2f
	MFVec3f
	MFVec3d
	MFRotation
	MFNode
)

var kindNames = map[Kind]string{
	SFBool:      "SFBool",
	SFInt32:     "SFInt32",
	SFFloat:     "SFFloat",
	SFDouble:    "SFDouble",
	SFTime:      "SFTime",
	SFString:    "SFString",
	SFColor:     "SFColor",
	SFColorRGBA: "SFColorRGBA",
	SFVec2f:     "SFVec2f",
	SFVec3f:     "SFVec3f",
	SFVec3d:     "SFVec3d",
	SFRotation:  "SFRotation",
	SFNode:      "SFNode",
	SFImage:     "SFImage",
	MFBool:      "MFBool",
	MFInt32:     "MFInt32",
	MFFloat:     "MFFloat",
	MFDouble:    "MFDouble",
	MFTime:      "MFTime",
	MFString:    "MFString",
	MFColor:     "MFColor",
	MFColorRGBA: "MFColorRGBA",
	MFVec2f:     "MFVec2f",
	MFVec3f:     "MFVec3f",
	MFVec3d:     "MFVec3d",
	MFRotation:  "MFRotation",
	MFNode:      "MFNode",
}

// String returns the scene-language type keyword for the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsMulti reports whether the kind is a multi-valued (MF-) container.
func (k Kind) IsMulti() bool {
	_, ok := multiToSingle[k]
	return ok
}

// singleToMulti and multiToSingle pair up every SF- kind with its MF-
// counterpart. SFImage has no MF- counterpart: an MFImage type does not
// exist in the scene language.
var singleToMulti = map[Kind]Kind{
	SFBool:      MFBool,
	SFInt32:     MFInt32,
	SFFloat:     MFFloat,
	SFDouble:    MFDouble,
	SFTime:      MFTime,
	SFString:    MFString,
	SFColor:     MFColor,
	SFColorRGBA: MFColorRGBA,
	SFVec2f:     MFVec2f,
	SFVec3f:     MFVec3f,
	SFVec3d:     MFVec3d,
	SFRotation:  MFRotation,
	SFNode:      MFNode,
}

var multiToSingle = func() map[Kind]Kind {
	m := make(map[Kind]Kind, len(singleToMulti))
	for sf, mf := range singleToMulti {
		m[mf] = sf
	}
	return m
}()

// Singular returns the SF- kind that corresponds to this kind's element
// type. For an SF- kind it returns itself.
func (k Kind) Singular() Kind {
	if sf, ok := multiToSingle[k]; ok {
		return sf
	}
	return k
}

// Multi returns the MF- kind that corresponds to this kind's element
// type. Panics if the kind has no multi-valued counterpart (SFImage).
func (k Kind) Multi() Kind {
	if mf, ok := singleToMulti[k]; ok {
		return mf
	}
	if _, ok := multiToSingle[k]; ok {
		return k
	}
	panic("value: kind " + k.String() + " has no multi-valued counterpart")
}
