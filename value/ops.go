package value

import (
	"fmt"

	"github.com/quadroom/vscene/math32"
)

// Clone returns a deep copy of v. Mutating the clone never affects v.
func (v *Value) Clone() *Value {
	out := new(Value)
	*out = *v
	switch v.kind {
	case SFImage:
		out.img = v.img.Clone()
	case MFBool:
		out.mBool = append([]bool(nil), v.mBool...)
	case MFInt32:
		out.mInt = append([]int32(nil), v.mInt...)
	case MFFloat:
		out.mFloat = append([]float32(nil), v.mFloat...)
	case MFDouble, MFTime:
		out.mDoub = append([]float64(nil), v.mDoub...)
	case MFString:
		out.mStr = append([]string(nil), v.mStr...)
	case MFColor:
		out.mCol = append([]math32.Color(nil), v.mCol...)
	case MFColorRGBA:
		out.mCol4 = append([]math32.Color4(nil), v.mCol4...)
	case MFVec2f:
		out.mV2 = append([]math32.Vector2(nil), v.mV2...)
	case MFVec3f:
		out.mV3 = append([]math32.Vector3(nil), v.mV3...)
	case MFVec3d:
		out.mV3d = append([]Vector3d(nil), v.mV3d...)
	case MFRotation:
		out.mRot = append([]Rotation(nil), v.mRot...)
	case MFNode:
		out.mNode = append([]Node(nil), v.mNode...)
	}
	return out
}

// Assign copies other's payload into v. Both values must carry the same
// kind; otherwise Assign fails and leaves v unmodified (spec.md §4.A, §8).
func (v *Value) Assign(other *Value) error {
	if v.kind != other.kind {
		return fmt.Errorf("value: Assign: kind mismatch: %s != %s", v.kind, other.kind)
	}
	*v = *other.Clone()
	return nil
}
