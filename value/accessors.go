package value

import "github.com/quadroom/vscene/math32"

// --- singular accessors -----------------------------------------------
//
// Each Set* mutates in place and returns an error if the value's kind
// doesn't match; each getter returns the zero value and false if the kind
// doesn't match, mirroring the "never implicit" conversion rule in
// spec.md §4.A.

func (v *Value) SetBool(b bool) error {
	if v.kind != SFBool {
		return errKind("SetBool", SFBool, v.kind)
	}
	v.b = b
	return nil
}

func (v *Value) Bool() (bool, bool) {
	return v.b, v.kind == SFBool
}

func (v *Value) SetInt32(i int32) error {
	if v.kind != SFInt32 {
		return errKind("SetInt32", SFInt32, v.kind)
	}
	v.i = i
	return nil
}

func (v *Value) Int32() (int32, bool) {
	return v.i, v.kind == SFInt32
}

func (v *Value) SetFloat(f float32) error {
	if v.kind != SFFloat {
		return errKind("SetFloat", SFFloat, v.kind)
	}
	v.f = f
	return nil
}

func (v *Value) Float() (float32, bool) {
	return v.f, v.kind == SFFloat
}

func (v *Value) SetDouble(d float64) error {
	if v.kind != SFDouble {
		return errKind("SetDouble", SFDouble, v.kind)
	}
	v.d = d
	return nil
}

func (v *Value) Double() (float64, bool) {
	return v.d, v.kind == SFDouble
}

func (v *Value) SetTime(t float64) error {
	if v.kind != SFTime {
		return errKind("SetTime", SFTime, v.kind)
	}
	v.d = t
	return nil
}

func (v *Value) Time() (float64, bool) {
	return v.d, v.kind == SFTime
}

func (v *Value) SetString(s string) error {
	if v.kind != SFString {
		return errKind("SetString", SFString, v.kind)
	}
	v.s = s
	return nil
}

func (v *Value) Str() (string, bool) {
	return v.s, v.kind == SFString
}

func (v *Value) SetColor(c math32.Color) error {
	if v.kind != SFColor {
		return errKind("SetColor", SFColor, v.kind)
	}
	v.col = c
	return nil
}

func (v *Value) Color() (math32.Color, bool) {
	return v.col, v.kind == SFColor
}

func (v *Value) SetColorRGBA(c math32.Color4) error {
	if v.kind != SFColorRGBA {
		return errKind("SetColorRGBA", SFColorRGBA, v.kind)
	}
	v.col4 = c
	return nil
}

func (v *Value) ColorRGBA() (math32.Color4, bool) {
	return v.col4, v.kind == SFColorRGBA
}

func (v *Value) SetVec2f(p math32.Vector2) error {
	if v.kind != SFVec2f {
		return errKind("SetVec2f", SFVec2f, v.kind)
	}
	v.v2 = p
	return nil
}

func (v *Value) Vec2f() (math32.Vector2, bool) {
	return v.v2, v.kind == SFVec2f
}

func (v *Value) SetVec3f(p math32.Vector3) error {
	if v.kind != SFVec3f {
		return errKind("SetVec3f", SFVec3f, v.kind)
	}
	v.v3 = p
	return nil
}

func (v *Value) Vec3f() (math32.Vector3, bool) {
	return v.v3, v.kind == SFVec3f
}

func (v *Value) SetVec3d(p Vector3d) error {
	if v.kind != SFVec3d {
		return errKind("SetVec3d", SFVec3d, v.kind)
	}
	v.v3d = p
	return nil
}

func (v *Value) Vec3d() (Vector3d, bool) {
	return v.v3d, v.kind == SFVec3d
}

// SetRotation sets the rotation value. The axis is normalized; a
// zero-length axis is replaced with (0,1,0) per spec.md §3.1, and the
// caller should treat that substitution as a parse-time warning condition
// (AxisNeedsNormalization reports it).
func (v *Value) SetRotation(r Rotation) error {
	if v.kind != SFRotation {
		return errKind("SetRotation", SFRotation, v.kind)
	}
	v.rot = NormalizeRotation(r)
	return nil
}

func (v *Value) Rotation() (Rotation, bool) {
	return v.rot, v.kind == SFRotation
}

// NormalizeRotation returns a copy of r with its axis normalized,
// substituting (0,1,0) for a zero-length axis.
func NormalizeRotation(r Rotation) Rotation {
	length := r.Axis.Length()
	if length < 1e-8 {
		r.Axis = math32.Vector3{X: 0, Y: 1, Z: 0}
		return r
	}
	r.Axis.Normalize()
	return r
}

// AxisNeedsNormalization reports whether the given axis has length outside
// [1-eps, 1+eps] and would trigger the parse-time warning (spec.md §8).
func AxisNeedsNormalization(axis math32.Vector3, eps float32) bool {
	length := axis.Length()
	return length < 1-eps || length > 1+eps
}

func (v *Value) SetNode(n Node) error {
	if v.kind != SFNode {
		return errKind("SetNode", SFNode, v.kind)
	}
	v.nd = n
	return nil
}

func (v *Value) NodeRef() (Node, bool) {
	return v.nd, v.kind == SFNode
}

func (v *Value) SetImage(img Image) error {
	if v.kind != SFImage {
		return errKind("SetImage", SFImage, v.kind)
	}
	v.img = img
	return nil
}

func (v *Value) ImageValue() (Image, bool) {
	return v.img, v.kind == SFImage
}
