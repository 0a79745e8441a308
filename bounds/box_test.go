package bounds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quadroom/vscene/math32"
)

func TestNewBoxIsEmpty(t *testing.T) {
	b := NewBox()
	assert.True(t, b.inner.Empty())
	assert.False(t, b.IsMax())
}

func TestBoxEncloseSetsExtentsFromPoints(t *testing.T) {
	b := NewBox()
	b.Enclose([]math32.Vector3{
		{X: -1, Y: -2, Z: -3},
		{X: 4, Y: 5, Z: 6},
	})
	assert.Equal(t, math32.Vector3{X: -1, Y: -2, Z: -3}, b.inner.Min)
	assert.Equal(t, math32.Vector3{X: 4, Y: 5, Z: 6}, b.inner.Max)
}

func TestBoxTransformAppliesTranslation(t *testing.T) {
	b := NewBox()
	b.Enclose([]math32.Vector3{{X: -1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: 1}})

	var m math32.Matrix4
	m.Identity()
	m.SetPosition(&math32.Vector3{X: 10, Y: 0, Z: 0})

	out := b.Transform(&m)
	box, ok := out.(*Box)
	require.True(t, ok)
	assert.InDelta(t, 9, box.inner.Min.X, 1e-5)
	assert.InDelta(t, 11, box.inner.Max.X, 1e-5)
}

func TestBoxTransformKeepsMax(t *testing.T) {
	b := NewBox()
	b.SetMax()
	var m math32.Matrix4
	m.Identity()
	out := b.Transform(&m)
	assert.True(t, out.IsMax())
	assert.Same(t, b, out)
}

func TestBoxIntersectFrustumEmptyIsInside(t *testing.T) {
	b := NewBox()
	f := NewFrustum(1.0, 1.0, 0.1, 100)
	assert.Equal(t, Inside, b.IntersectFrustum(f))
}
