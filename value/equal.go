package value

// Equal reports whether v and other carry the same kind and payload.
// Node references compare by Ref() identity (or both-null), never by
// recursively comparing the referenced node's fields.
func (v *Value) Equal(other *Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case SFBool:
		return v.b == other.b
	case SFInt32:
		return v.i == other.i
	case SFFloat:
		return v.f == other.f
	case SFDouble, SFTime:
		return v.d == other.d
	case SFString:
		return v.s == other.s
	case SFColor:
		return v.col == other.col
	case SFColorRGBA:
		return v.col4 == other.col4
	case SFVec2f:
		return v.v2 == other.v2
	case SFVec3f:
		return v.v3 == other.v3
	case SFVec3d:
		return v.v3d == other.v3d
	case SFRotation:
		return v.rot == other.rot
	case SFNode:
		return nodeRefEqual(v.nd, other.nd)
	case SFImage:
		return v.img.Equal(other.img)
	case MFBool:
		if len(v.mBool) != len(other.mBool) {
			return false
		}
		for i := range v.mBool {
			if v.mBool[i] != other.mBool[i] {
				return false
			}
		}
		return true
	case MFInt32:
		if len(v.mInt) != len(other.mInt) {
			return false
		}
		for i := range v.mInt {
			if v.mInt[i] != other.mInt[i] {
				return false
			}
		}
		return true
	case MFFloat:
		if len(v.mFloat) != len(other.mFloat) {
			return false
		}
		for i := range v.mFloat {
			if v.mFloat[i] != other.mFloat[i] {
				return false
			}
		}
		return true
	case MFDouble, MFTime:
		if len(v.mDoub) != len(other.mDoub) {
			return false
		}
		for i := range v.mDoub {
			if v.mDoub[i] != other.mDoub[i] {
				return false
			}
		}
		return true
	case MFString:
		if len(v.mStr) != len(other.mStr) {
			return false
		}
		for i := range v.mStr {
			if v.mStr[i] != other.mStr[i] {
				return false
			}
		}
		return true
	case MFColor:
		if len(v.mCol) != len(other.mCol) {
			return false
		}
		for i := range v.mCol {
			if v.mCol[i] != other.mCol[i] {
				return false
			}
		}
		return true
	case MFColorRGBA:
		if len(v.mCol4) != len(other.mCol4) {
			return false
		}
		for i := range v.mCol4 {
			if v.mCol4[i] != other.mCol4[i] {
				return false
			}
		}
		return true
	case MFVec2f:
		if len(v.mV2) != len(other.mV2) {
			return false
		}
		for i := range v.mV2 {
			if v.mV2[i] != other.mV2[i] {
				return false
			}
		}
		return true
	case MFVec3f:
		if len(v.mV3) != len(other.mV3) {
			return false
		}
		for i := range v.mV3 {
			if v.mV3[i] != other.mV3[i] {
				return false
			}
		}
		return true
	case MFVec3d:
		if len(v.mV3d) != len(other.mV3d) {
			return false
		}
		for i := range v.mV3d {
			if v.mV3d[i] != other.mV3d[i] {
				return false
			}
		}
		return true
	case MFRotation:
		if len(v.mRot) != len(other.mRot) {
			return false
		}
		for i := range v.mRot {
			if v.mRot[i] != other.mRot[i] {
				return false
			}
		}
		return true
	case MFNode:
		if len(v.mNode) != len(other.mNode) {
			return false
		}
		for i := range v.mNode {
			if !nodeRefEqual(v.mNode[i], other.mNode[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func nodeRefEqual(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Ref() == b.Ref()
}
