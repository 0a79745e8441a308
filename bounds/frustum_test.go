package bounds

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quadroom/vscene/math32"
)

func TestFrustumIntersectSphereDeepInsideIsInside(t *testing.T) {
	f := NewFrustum(1.0, 1.0, 1, 100)
	got := f.IntersectSphere(&math32.Vector3{X: 0, Y: 0, Z: -10}, 0.1)
	assert.Equal(t, Inside, got)
}

func TestFrustumIntersectSphereBehindEyeIsOutside(t *testing.T) {
	f := NewFrustum(1.0, 1.0, 1, 100)
	got := f.IntersectSphere(&math32.Vector3{X: 0, Y: 0, Z: 10}, 0.1)
	assert.Equal(t, Outside, got)
}

func TestFrustumIntersectSphereBeyondFarPlaneIsOutside(t *testing.T) {
	f := NewFrustum(1.0, 1.0, 1, 100)
	got := f.IntersectSphere(&math32.Vector3{X: 0, Y: 0, Z: -1000}, 0.1)
	assert.Equal(t, Outside, got)
}

func TestFrustumIntersectSphereStraddlingNearPlaneIsPartial(t *testing.T) {
	f := NewFrustum(1.0, 1.0, 1, 100)
	got := f.IntersectSphere(&math32.Vector3{X: 0, Y: 0, Z: -1}, 0.5)
	assert.Equal(t, Partial, got)
}

func TestFrustumIntersectSphereFarOffToTheSideIsOutside(t *testing.T) {
	f := NewFrustum(1.0, 1.0, 1, 100)
	got := f.IntersectSphere(&math32.Vector3{X: 1000, Y: 0, Z: -10}, 0.1)
	assert.Equal(t, Outside, got)
}
