package value

import (
	"fmt"

	"github.com/quadroom/vscene/math32"
)

// Node is the narrow interface the value package needs from a scene-graph
// node. It is satisfied by *node.Node; kept here (rather than importing the
// node package) to avoid a dependency cycle, since node-typed values must
// live in the same package as every other field kind.
type Node interface {
	// Ref returns a stable identity used for equality comparisons between
	// node-reference values: two SFNode values are equal iff they carry
	// the same Ref (or are both null).
	Ref() uintptr
}

// Image is the pixel-buffer payload of an SFImage value.
type Image struct {
	Width      int
	Height     int
	Components int // 1..4, or 0 for an empty image
	Pixels     []byte
}

// Clone returns a deep copy of the image.
func (img Image) Clone() Image {
	out := img
	if img.Pixels != nil {
		out.Pixels = append([]byte(nil), img.Pixels...)
	}
	return out
}

// Equal reports whether two images carry identical dimensions and pixels.
func (img Image) Equal(other Image) bool {
	if img.Width != other.Width || img.Height != other.Height || img.Components != other.Components {
		return false
	}
	if len(img.Pixels) != len(other.Pixels) {
		return false
	}
	for i := range img.Pixels {
		if img.Pixels[i] != other.Pixels[i] {
			return false
		}
	}
	return true
}

// Value is a single tagged field value. The zero Value is not usable;
// always construct one with New.
type Value struct {
	kind Kind

	b   bool
	i   int32
	f   float32
	d   float64
	s   string
	col math32.Color
	col4 math32.Color4
	v2  math32.Vector2
	v3  math32.Vector3
	v3d Vector3d
	rot Rotation
	nd  Node
	img Image

	// Multi-valued storage: exactly one of these is non-nil, matching kind.
	mBool  []bool
	mInt   []int32
	mFloat []float32
	mDoub  []float64
	mStr   []string
	mCol   []math32.Color
	mCol4  []math32.Color4
	mV2    []math32.Vector2
	mV3    []math32.Vector3
	mV3d   []Vector3d
	mRot   []Rotation
	mNode  []Node
}

// Vector3d is a double-precision 3D vector (the extended dialect's SFVec3d).
type Vector3d struct {
	X, Y, Z float64
}

// Rotation is an axis-angle rotation: a normalized 3-component axis plus an
// angle in radians.
type Rotation struct {
	Axis  math32.Vector3
	Angle float32
}

// New returns a new, zero-valued Value of the given kind.
func New(kind Kind) *Value {
	v := &Value{kind: kind}
	if kind.IsMulti() {
		v.initMulti()
	}
	return v
}

func (v *Value) initMulti() {
	switch v.kind {
	case MFBool:
		v.mBool = []bool{}
	case MFInt32:
		v.mInt = []int32{}
	case MFFloat:
		v.mFloat = []float32{}
	case MFDouble:
		v.mDoub = []float64{}
	case MFTime:
		v.mDoub = []float64{}
	case MFString:
		v.mStr = []string{}
	case MFColor:
		v.mCol = []math32.Color{}
	case MFColorRGBA:
		v.mCol4 = []math32.Color4{}
	case MFVec2f:
		v.mV2 = []math32.Vector2{}
	case MFVec3f:
		v.mV3 = []math32.Vector3{}
	case MFVec3d:
		v.mV3d = []Vector3d{}
	case MFRotation:
		v.mRot = []Rotation{}
	case MFNode:
		v.mNode = []Node{}
	}
}

// Kind returns the value's kind. It never changes after construction.
func (v *Value) Kind() Kind {
	return v.kind
}

// errKind builds the standard "kind mismatch" error used by every
// type-checked accessor and by Assign.
func errKind(op string, want, got Kind) error {
	return fmt.Errorf("value: %s: want kind %s, got %s", op, want, got)
}
