package bounds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quadroom/vscene/math32"
)

func TestNewSphereIsEmpty(t *testing.T) {
	s := NewSphere()
	assert.True(t, s.empty())
	assert.False(t, s.IsMax())
}

func TestSphereEncloseFirstSphereAdoptsIt(t *testing.T) {
	s := NewSphere()
	other := &Sphere{Center: math32.Vector3{X: 1, Y: 2, Z: 3}, Radius: 4}
	s.Enclose(other)
	assert.Equal(t, other.Center, s.Center)
	assert.Equal(t, other.Radius, s.Radius)
}

// Enclosing a sphere fully containing this one adopts it wholesale.
func TestSphereEncloseAdoptsLargerContainingSphere(t *testing.T) {
	s := &Sphere{Center: math32.Vector3{}, Radius: 1}
	big := &Sphere{Center: math32.Vector3{X: 10, Y: 0, Z: 0}, Radius: 20}
	s.Enclose(big)
	assert.Equal(t, big.Center, s.Center)
	assert.InDelta(t, 20, s.Radius, 1e-6)
}

// Enclosing a sphere already fully inside this one is a no-op.
func TestSphereEncloseIgnoresContainedSphere(t *testing.T) {
	s := &Sphere{Center: math32.Vector3{}, Radius: 20}
	small := &Sphere{Center: math32.Vector3{X: 1, Y: 0, Z: 0}, Radius: 1}
	s.Enclose(small)
	assert.Equal(t, math32.Vector3{}, s.Center)
	assert.InDelta(t, 20, s.Radius, 1e-6)
}

// Enclosing two equal-radius spheres on either side of the origin grows a
// new center that folds in every axis equally, not just X and Z as the
// historical buggy implementation did for Y (spec.md §9).
func TestSphereEncloseFoldsInAllThreeAxes(t *testing.T) {
	s := &Sphere{Center: math32.Vector3{X: -5, Y: -5, Z: -5}, Radius: 1}
	other := &Sphere{Center: math32.Vector3{X: 5, Y: 5, Z: 5}, Radius: 1}
	s.Enclose(other)

	// The resulting sphere must contain both original spheres' extremal
	// points along every axis, including Y.
	dist := func(p math32.Vector3) float32 {
		d := math32.Vector3{X: p.X - s.Center.X, Y: p.Y - s.Center.Y, Z: p.Z - s.Center.Z}
		return d.Length()
	}
	assert.LessOrEqual(t, float64(dist(math32.Vector3{X: -5, Y: -6, Z: -5})), float64(s.Radius)+1e-4)
	assert.LessOrEqual(t, float64(dist(math32.Vector3{X: 5, Y: 6, Z: 5})), float64(s.Radius)+1e-4)
	// Symmetric input must produce a symmetric (origin-centered) result.
	assert.InDelta(t, 0, s.Center.X, 1e-4)
	assert.InDelta(t, 0, s.Center.Y, 1e-4)
	assert.InDelta(t, 0, s.Center.Z, 1e-4)
}

func TestSphereEncloseMaxPropagates(t *testing.T) {
	s := &Sphere{Center: math32.Vector3{}, Radius: 1}
	other := &Sphere{}
	other.SetMax()
	s.Enclose(other)
	assert.True(t, s.IsMax())
}

func TestSphereExtendPointGrowsToContainIt(t *testing.T) {
	s := NewSphere()
	s.ExtendPoint(&math32.Vector3{X: 1, Y: 0, Z: 0})
	assert.Equal(t, float32(0), s.Radius)

	s.ExtendPoint(&math32.Vector3{X: 3, Y: 0, Z: 0})
	assert.InDelta(t, 1, s.Radius, 1e-5)
	assert.InDelta(t, 2, s.Center.X, 1e-5)
}

func TestSphereIntersectFrustumEmptyIsInside(t *testing.T) {
	s := NewSphere()
	f := NewFrustum(1.0, 1.0, 0.1, 100)
	require.Equal(t, Inside, s.IntersectFrustum(f))
}

func TestSphereIntersectFrustumMaxIsPartial(t *testing.T) {
	s := NewSphere()
	s.SetMax()
	f := NewFrustum(1.0, 1.0, 0.1, 100)
	assert.Equal(t, Partial, s.IntersectFrustum(f))
}

func TestSphereTransformAppliesTranslation(t *testing.T) {
	s := &Sphere{Center: math32.Vector3{}, Radius: 2}
	var m math32.Matrix4
	m.Identity()
	m.SetPosition(&math32.Vector3{X: 5, Y: 0, Z: 0})

	out := s.Transform(&m)
	sphere, ok := out.(*Sphere)
	require.True(t, ok)
	assert.InDelta(t, 5, sphere.Center.X, 1e-5)
	assert.InDelta(t, 2, sphere.Radius, 1e-5)
}

func TestSphereTransformKeepsMax(t *testing.T) {
	s := NewSphere()
	s.SetMax()
	var m math32.Matrix4
	m.Identity()
	out := s.Transform(&m)
	assert.True(t, out.IsMax())
	assert.Same(t, s, out)
}
