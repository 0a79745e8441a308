// Package bounds implements the two concrete bounding-volume kinds
// (sphere, axis-aligned box) and frustum intersection (spec.md §4.L),
// built on top of the affine math in the math32 package.
package bounds

import "github.com/quadroom/vscene/math32"

// Containment is the result of a volume/frustum intersection test.
type Containment int

const (
	Outside Containment = iota
	Inside
	Partial
)

// Volume is satisfied by both Sphere and Box. A "maximum" volume
// (IsMax() true) means "do not cull" — every mutating operation on it is
// a no-op except IntersectFrustum, which always answers Partial
// (spec.md §4.L).
type Volume interface {
	IsMax() bool
	IntersectFrustum(f *Frustum) Containment
	Transform(m *math32.Matrix4) Volume
}

// Max returns the sentinel "do not cull" volume.
func Max() Volume {
	return maxVolume{}
}

type maxVolume struct{}

func (maxVolume) IsMax() bool { return true }
func (maxVolume) IntersectFrustum(*Frustum) Containment {
	return Partial
}
func (m maxVolume) Transform(*math32.Matrix4) Volume { return m }
