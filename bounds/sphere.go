package bounds

import "github.com/quadroom/vscene/math32"

// Sphere is a bounding sphere, the cheap-to-maintain volume every node in
// the graph keeps by default (spec.md §4.L; ported from VrmlBSphere).
type Sphere struct {
	Center math32.Vector3
	Radius float32
	max    bool
}

// NewSphere returns an empty (radius -1, matching VrmlBSphere's "not yet
// set" convention) bounding sphere centered at the origin.
func NewSphere() *Sphere {
	return &Sphere{Radius: -1}
}

// IsMax reports whether this sphere has been set to the unbounded
// "do not cull" sentinel via SetMax.
func (s *Sphere) IsMax() bool { return s.max }

// SetMax marks this sphere as the unbounded sentinel. Enclose and Extend
// become no-ops until the sphere is reset.
func (s *Sphere) SetMax() {
	s.max = true
}

// reset clears the max flag and marks the sphere empty again, so a fresh
// Enclose/ExtendPoint call starts over.
func (s *Sphere) reset() {
	s.max = false
	s.Radius = -1
	s.Center.Set(0, 0, 0)
}

// empty reports whether the sphere has never had a point or volume folded
// into it (VrmlBSphere uses radius < 0 for this, rather than a bool).
func (s *Sphere) empty() bool {
	return s.Radius < 0
}

// Enclose grows this sphere, if necessary, to contain the given sphere.
//
// The historical C++ implementation (VrmlBSphere::enclose) computed the
// new center's Y component from the second span's Z component instead of
// its Y component; §9 of the scene specification flags this as a
// documented bug in the source this engine is modeled on. This
// implementation computes all three axes the same way, which is the fix:
// see the Open Question decisions in DESIGN.md for why the corrected
// form, not the historical one, is implemented here.
func (s *Sphere) Enclose(other *Sphere) {
	if s.max || other == nil {
		return
	}
	if other.max {
		s.SetMax()
		return
	}
	if other.empty() {
		return
	}
	if s.empty() {
		s.Center = other.Center
		s.Radius = other.Radius
		return
	}

	var diff math32.Vector3
	diff.SubVectors(&other.Center, &s.Center)
	dist := diff.Length()

	if dist+other.Radius <= s.Radius {
		return
	}
	if dist+s.Radius <= other.Radius {
		s.Center = other.Center
		s.Radius = other.Radius
		return
	}

	newRadius := (s.Radius + other.Radius + dist) / 2
	if dist > 1e-12 {
		scale := (newRadius - s.Radius) / dist
		s.Center.X += diff.X * scale
		s.Center.Y += diff.Y * scale
		s.Center.Z += diff.Z * scale
	}
	s.Radius = newRadius
}

// ExtendPoint grows this sphere, if necessary, to contain point.
func (s *Sphere) ExtendPoint(point *math32.Vector3) {
	if s.max {
		return
	}
	if s.empty() {
		s.Center = *point
		s.Radius = 0
		return
	}
	var diff math32.Vector3
	diff.SubVectors(point, &s.Center)
	dist := diff.Length()
	if dist <= s.Radius {
		return
	}
	newRadius := (s.Radius + dist) / 2
	scale := (newRadius - s.Radius) / dist
	s.Center.X += diff.X * scale
	s.Center.Y += diff.Y * scale
	s.Center.Z += diff.Z * scale
	s.Radius = newRadius
}

// Transform applies an affine (translate/rotate/uniform-scale) matrix to
// this sphere and returns the resulting volume. A max sphere stays max.
func (s *Sphere) Transform(m *math32.Matrix4) Volume {
	if s.max {
		return s
	}
	out := &Sphere{Center: s.Center, Radius: s.Radius}
	ms := math32.Sphere{Center: out.Center, Radius: out.Radius}
	ms.ApplyMatrix4(m)
	out.Center = ms.Center
	out.Radius = ms.Radius
	return out
}

// OrthoTransform is the optimized path for orthogonal (possibly
// uniform-scaling) matrices; behavior is undefined if m is not
// orthogonal (spec.md §4.L). A sphere's radius under uniform scale is
// just scale*radius, but since Matrix4 carries no cheap "is uniform"
// probe, this delegates to the general Transform.
func (s *Sphere) OrthoTransform(m *math32.Matrix4) Volume {
	return s.Transform(m)
}

// IntersectFrustum classifies this sphere against f.
func (s *Sphere) IntersectFrustum(f *Frustum) Containment {
	if s.max {
		return Partial
	}
	if s.empty() {
		return Inside
	}
	return f.IntersectSphere(&s.Center, s.Radius)
}
