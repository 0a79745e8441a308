package value

import "github.com/quadroom/vscene/math32"

// Len returns the number of elements in a multi-valued Value. Returns 0 for
// a singular Value.
func (v *Value) Len() int {
	switch v.kind {
	case MFBool:
		return len(v.mBool)
	case MFInt32:
		return len(v.mInt)
	case MFFloat:
		return len(v.mFloat)
	case MFDouble, MFTime:
		return len(v.mDoub)
	case MFString:
		return len(v.mStr)
	case MFColor:
		return len(v.mCol)
	case MFColorRGBA:
		return len(v.mCol4)
	case MFVec2f:
		return len(v.mV2)
	case MFVec3f:
		return len(v.mV3)
	case MFVec3d:
		return len(v.mV3d)
	case MFRotation:
		return len(v.mRot)
	case MFNode:
		return len(v.mNode)
	}
	return 0
}

// AppendBool appends a value to an MFBool. Spec.md §4.A: MF- containers
// support random-access read, append, and full replacement — never insert
// or remove in the middle.
func (v *Value) AppendBool(b bool) error {
	if v.kind != MFBool {
		return errKind("AppendBool", MFBool, v.kind)
	}
	v.mBool = append(v.mBool, b)
	return nil
}

func (v *Value) AtBool(i int) (bool, bool) {
	if v.kind != MFBool || i < 0 || i >= len(v.mBool) {
		return false, false
	}
	return v.mBool[i], true
}

func (v *Value) ReplaceBool(items []bool) error {
	if v.kind != MFBool {
		return errKind("ReplaceBool", MFBool, v.kind)
	}
	v.mBool = append([]bool(nil), items...)
	return nil
}

func (v *Value) AppendInt32(i int32) error {
	if v.kind != MFInt32 {
		return errKind("AppendInt32", MFInt32, v.kind)
	}
	v.mInt = append(v.mInt, i)
	return nil
}

func (v *Value) AtInt32(i int) (int32, bool) {
	if v.kind != MFInt32 || i < 0 || i >= len(v.mInt) {
		return 0, false
	}
	return v.mInt[i], true
}

func (v *Value) ReplaceInt32(items []int32) error {
	if v.kind != MFInt32 {
		return errKind("ReplaceInt32", MFInt32, v.kind)
	}
	v.mInt = append([]int32(nil), items...)
	return nil
}

func (v *Value) AppendFloat(f float32) error {
	if v.kind != MFFloat {
		return errKind("AppendFloat", MFFloat, v.kind)
	}
	v.mFloat = append(v.mFloat, f)
	return nil
}

func (v *Value) AtFloat(i int) (float32, bool) {
	if v.kind != MFFloat || i < 0 || i >= len(v.mFloat) {
		return 0, false
	}
	return v.mFloat[i], true
}

func (v *Value) ReplaceFloat(items []float32) error {
	if v.kind != MFFloat {
		return errKind("ReplaceFloat", MFFloat, v.kind)
	}
	v.mFloat = append([]float32(nil), items...)
	return nil
}

func (v *Value) AppendDouble(d float64) error {
	if v.kind != MFDouble && v.kind != MFTime {
		return errKind("AppendDouble", MFDouble, v.kind)
	}
	v.mDoub = append(v.mDoub, d)
	return nil
}

func (v *Value) AtDouble(i int) (float64, bool) {
	if (v.kind != MFDouble && v.kind != MFTime) || i < 0 || i >= len(v.mDoub) {
		return 0, false
	}
	return v.mDoub[i], true
}

func (v *Value) ReplaceDouble(items []float64) error {
	if v.kind != MFDouble && v.kind != MFTime {
		return errKind("ReplaceDouble", MFDouble, v.kind)
	}
	v.mDoub = append([]float64(nil), items...)
	return nil
}

func (v *Value) AppendString(s string) error {
	if v.kind != MFString {
		return errKind("AppendString", MFString, v.kind)
	}
	v.mStr = append(v.mStr, s)
	return nil
}

func (v *Value) AtString(i int) (string, bool) {
	if v.kind != MFString || i < 0 || i >= len(v.mStr) {
		return "", false
	}
	return v.mStr[i], true
}

func (v *Value) ReplaceString(items []string) error {
	if v.kind != MFString {
		return errKind("ReplaceString", MFString, v.kind)
	}
	v.mStr = append([]string(nil), items...)
	return nil
}

func (v *Value) AppendColor(c math32.Color) error {
	if v.kind != MFColor {
		return errKind("AppendColor", MFColor, v.kind)
	}
	v.mCol = append(v.mCol, c)
	return nil
}

func (v *Value) AtColor(i int) (math32.Color, bool) {
	if v.kind != MFColor || i < 0 || i >= len(v.mCol) {
		return math32.Color{}, false
	}
	return v.mCol[i], true
}

func (v *Value) ReplaceColor(items []math32.Color) error {
	if v.kind != MFColor {
		return errKind("ReplaceColor", MFColor, v.kind)
	}
	v.mCol = append([]math32.Color(nil), items...)
	return nil
}

func (v *Value) AppendColorRGBA(c math32.Color4) error {
	if v.kind != MFColorRGBA {
		return errKind("AppendColorRGBA", MFColorRGBA, v.kind)
	}
	v.mCol4 = append(v.mCol4, c)
	return nil
}

func (v *Value) AtColorRGBA(i int) (math32.Color4, bool) {
	if v.kind != MFColorRGBA || i < 0 || i >= len(v.mCol4) {
		return math32.Color4{}, false
	}
	return v.mCol4[i], true
}

func (v *Value) ReplaceColorRGBA(items []math32.Color4) error {
	if v.kind != MFColorRGBA {
		return errKind("ReplaceColorRGBA", MFColorRGBA, v.kind)
	}
	v.mCol4 = append([]math32.Color4(nil), items...)
	return nil
}

func (v *Value) AppendVec2f(p math32.Vector2) error {
	if v.kind != MFVec2f {
		return errKind("AppendVec2f", MFVec2f, v.kind)
	}
	v.mV2 = append(v.mV2, p)
	return nil
}

func (v *Value) AtVec2f(i int) (math32.Vector2, bool) {
	if v.kind != MFVec2f || i < 0 || i >= len(v.mV2) {
		return math32.Vector2{}, false
	}
	return v.mV2[i], true
}

func (v *Value) ReplaceVec2f(items []math32.Vector2) error {
	if v.kind != MFVec2f {
		return errKind("ReplaceVec2f", MFVec2f, v.kind)
	}
	v.mV2 = append([]math32.Vector2(nil), items...)
	return nil
}

func (v *Value) AppendVec3f(p math32.Vector3) error {
	if v.kind != MFVec3f {
		return errKind("AppendVec3f", MFVec3f, v.kind)
	}
	v.mV3 = append(v.mV3, p)
	return nil
}

func (v *Value) AtVec3f(i int) (math32.Vector3, bool) {
	if v.kind != MFVec3f || i < 0 || i >= len(v.mV3) {
		return math32.Vector3{}, false
	}
	return v.mV3[i], true
}

func (v *Value) ReplaceVec3f(items []math32.Vector3) error {
	if v.kind != MFVec3f {
		return errKind("ReplaceVec3f", MFVec3f, v.kind)
	}
	v.mV3 = append([]math32.Vector3(nil), items...)
	return nil
}

func (v *Value) AppendVec3d(p Vector3d) error {
	if v.kind != MFVec3d {
		return errKind("AppendVec3d", MFVec3d, v.kind)
	}
	v.mV3d = append(v.mV3d, p)
	return nil
}

func (v *Value) AtVec3d(i int) (Vector3d, bool) {
	if v.kind != MFVec3d || i < 0 || i >= len(v.mV3d) {
		return Vector3d{}, false
	}
	return v.mV3d[i], true
}

func (v *Value) ReplaceVec3d(items []Vector3d) error {
	if v.kind != MFVec3d {
		return errKind("ReplaceVec3d", MFVec3d, v.kind)
	}
	v.mV3d = append([]Vector3d(nil), items...)
	return nil
}

func (v *Value) AppendRotation(r Rotation) error {
	if v.kind != MFRotation {
		return errKind("AppendRotation", MFRotation, v.kind)
	}
	v.mRot = append(v.mRot, NormalizeRotation(r))
	return nil
}

func (v *Value) AtRotation(i int) (Rotation, bool) {
	if v.kind != MFRotation || i < 0 || i >= len(v.mRot) {
		return Rotation{}, false
	}
	return v.mRot[i], true
}

func (v *Value) ReplaceRotation(items []Rotation) error {
	if v.kind != MFRotation {
		return errKind("ReplaceRotation", MFRotation, v.kind)
	}
	out := make([]Rotation, len(items))
	for i, r := range items {
		out[i] = NormalizeRotation(r)
	}
	v.mRot = out
	return nil
}

func (v *Value) AppendNode(n Node) error {
	if v.kind != MFNode {
		return errKind("AppendNode", MFNode, v.kind)
	}
	v.mNode = append(v.mNode, n)
	return nil
}

func (v *Value) AtNode(i int) (Node, bool) {
	if v.kind != MFNode || i < 0 || i >= len(v.mNode) {
		return nil, false
	}
	return v.mNode[i], true
}

func (v *Value) ReplaceNode(items []Node) error {
	if v.kind != MFNode {
		return errKind("ReplaceNode", MFNode, v.kind)
	}
	v.mNode = append([]Node(nil), items...)
	return nil
}
