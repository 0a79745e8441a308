package bounds

import "github.com/quadroom/vscene/math32"

// Box is an axis-aligned bounding box, the second concrete Volume kind
// (spec.md §4.L). It wraps math32.Box3, which already owns the affine
// arithmetic; Box adds the "empty"/"max" bookkeeping the Volume contract
// needs.
type Box struct {
	inner math32.Box3
	max   bool
}

// NewBox returns an empty axis-aligned bounding box.
func NewBox() *Box {
	b := &Box{}
	b.inner.MakeEmpty()
	return b
}

// IsMax reports whether this box has been set to the unbounded
// "do not cull" sentinel via SetMax.
func (b *Box) IsMax() bool { return b.max }

// SetMax marks this box as the unbounded sentinel.
func (b *Box) SetMax() {
	b.max = true
}

// ExtendPoint grows the box, if necessary, to contain point.
func (b *Box) ExtendPoint(point *math32.Vector3) {
	if b.max {
		return
	}
	b.inner.ExpandByPoint(point)
}

// Extend grows the box, if necessary, to contain other.
func (b *Box) Extend(other *Box) {
	if b.max || other == nil {
		return
	}
	if other.max {
		b.SetMax()
		return
	}
	if other.inner.Empty() {
		return
	}
	if b.inner.Empty() {
		b.inner.Copy(&other.inner)
		return
	}
	b.inner.Union(&other.inner)
}

// Enclose recomputes the box from scratch to exactly contain points.
func (b *Box) Enclose(points []math32.Vector3) {
	if b.max {
		return
	}
	b.inner.MakeEmpty()
	b.inner.SetFromPoints(points)
}

// Transform applies an arbitrary affine matrix to this box and returns
// the resulting volume. A max box stays max.
func (b *Box) Transform(m *math32.Matrix4) Volume {
	if b.max {
		return b
	}
	out := &Box{}
	out.inner.Copy(&b.inner)
	if !out.inner.Empty() {
		out.inner.ApplyMatrix4(m)
	}
	return out
}

// OrthoTransform is the optimized path for orthogonal (possibly
// uniform-scaling) matrices. Behavior is undefined if m is not
// orthogonal, as spec.md §4.L specifies; this implementation does not
// verify orthogonality and simply delegates to the general transform,
// matching the contract "undefined if violated" rather than adding a
// runtime check the spec does not ask for.
func (b *Box) OrthoTransform(m *math32.Matrix4) Volume {
	return b.Transform(m)
}

// IntersectFrustum classifies this box against f.
func (b *Box) IntersectFrustum(f *Frustum) Containment {
	if b.max {
		return Partial
	}
	if b.inner.Empty() {
		return Inside
	}
	min := b.inner.Min
	max := b.inner.Max
	return f.IntersectBox(&min, &max)
}
