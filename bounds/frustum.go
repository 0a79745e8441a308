package bounds

import "github.com/quadroom/vscene/math32"

// Frustum is a view volume with its wide end facing down the -Z axis and
// its tip at the origin, matching the VRML97 viewing convention: the near
// and far clip planes are always perpendicular to Z (so they're tested
// directly against a point's Z coordinate), while the four side planes
// pass through the eyepoint and are tested with the general plane
// dot-product distance (spec.md §4.L).
type Frustum struct {
	ZNear, ZFar                     float32
	Left, Right, Top, Bottom math32.Plane
}

// NewFrustum builds a Frustum from a vertical field of view (radians),
// aspect ratio (width/height) and near/far clip distances, following
// VrmlFrustum's gluPerspective-style constructor.
func NewFrustum(fovy, aspect, near, far float32) *Frustum {
	f := &Frustum{ZNear: near, ZFar: far}

	halfHeight := near * math32.Tan(fovy/2)
	halfWidth := halfHeight * aspect

	// Side planes pass through the origin (eyepoint); normals point
	// inward.
	f.Left.SetComponents(near, 0, -halfWidth, 0).Normalize()
	f.Right.SetComponents(-near, 0, -halfWidth, 0).Normalize()
	f.Top.SetComponents(0, -near, -halfHeight, 0).Normalize()
	f.Bottom.SetComponents(0, near, -halfHeight, 0).Normalize()
	return f
}

// distanceToPoint returns the signed distance from point to the
// given side plane.
func distanceToPoint(p *math32.Plane, point *math32.Vector3) float32 {
	return p.DistanceToPoint(point)
}

// IntersectSphere classifies a sphere against the frustum using the
// near/far-by-depth, sides-by-dot-product test described in spec.md §4.L
// (ported from VrmlBSphere::isectFrustum).
func (f *Frustum) IntersectSphere(center *math32.Vector3, radius float32) Containment {
	code := Inside

	// Near/far: axis-aligned, tested directly against depth (-Z is
	// into the screen, so "distance to near plane" is -z - zNear).
	depth := -center.Z
	dNear := depth - f.ZNear
	if dNear < -radius {
		return Outside
	}
	if dNear < radius {
		code = Partial
	}

	dFar := f.ZFar - depth
	if dFar < -radius {
		return Outside
	}
	if dFar < radius {
		code = Partial
	}

	for _, p := range []*math32.Plane{&f.Left, &f.Right, &f.Top, &f.Bottom} {
		d := distanceToPoint(p, center)
		if d < -radius {
			return Outside
		}
		if d < radius {
			code = Partial
		}
	}
	return code
}

// IntersectBox classifies an axis-aligned box against the frustum using
// the min/max corner approach against each of the six planes.
func (f *Frustum) IntersectBox(min, max *math32.Vector3) Containment {
	// Near/far: the box spans depths [-max.Z, -min.Z].
	nearDepth, farDepth := -max.Z, -min.Z
	if farDepth < f.ZNear || nearDepth > f.ZFar {
		return Outside
	}
	code := Inside
	if nearDepth < f.ZNear || farDepth > f.ZFar {
		code = Partial
	}

	planes := f.sidePlanes()
	for _, p := range planes {
		n := p.Normal()
		var pv, nv math32.Vector3
		if n.X >= 0 {
			pv.X, nv.X = max.X, min.X
		} else {
			pv.X, nv.X = min.X, max.X
		}
		if n.Y >= 0 {
			pv.Y, nv.Y = max.Y, min.Y
		} else {
			pv.Y, nv.Y = min.Y, max.Y
		}
		if n.Z >= 0 {
			pv.Z, nv.Z = max.Z, min.Z
		} else {
			pv.Z, nv.Z = min.Z, max.Z
		}
		if p.DistanceToPoint(&nv) < 0 {
			if p.DistanceToPoint(&pv) < 0 {
				return Outside
			}
			code = Partial
		}
	}
	return code
}

func (f *Frustum) sidePlanes() []*math32.Plane {
	return []*math32.Plane{&f.Left, &f.Right, &f.Top, &f.Bottom}
}
