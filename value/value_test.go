package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quadroom/vscene/math32"
)

func TestCloneIsIndependent(t *testing.T) {
	v := New(SFVec3f)
	require.NoError(t, v.SetVec3f(math32.Vector3{X: 1, Y: 2, Z: 3}))

	clone := v.Clone()
	assert.True(t, v.Equal(clone))

	require.NoError(t, clone.SetVec3f(math32.Vector3{X: 9, Y: 9, Z: 9}))
	assert.False(t, v.Equal(clone))

	p, _ := v.Vec3f()
	assert.Equal(t, math32.Vector3{X: 1, Y: 2, Z: 3}, p)
}

func TestAssignRequiresMatchingKind(t *testing.T) {
	a := New(SFFloat)
	b := New(SFInt32)
	err := a.Assign(b)
	assert.Error(t, err)
}

func TestAssignCopiesPayload(t *testing.T) {
	a := New(SFFloat)
	require.NoError(t, a.SetFloat(1.5))
	b := New(SFFloat)
	require.NoError(t, b.Assign(a))
	f, _ := b.Float()
	assert.Equal(t, float32(1.5), f)
}

func TestRotationNormalizesAxis(t *testing.T) {
	v := New(SFRotation)
	require.NoError(t, v.SetRotation(Rotation{Axis: math32.Vector3{X: 0, Y: 2, Z: 0}, Angle: 1}))
	r, _ := v.Rotation()
	assert.InDelta(t, 1.0, r.Axis.Length(), 1e-6)
}

func TestZeroLengthAxisFallsBackToY(t *testing.T) {
	v := New(SFRotation)
	require.NoError(t, v.SetRotation(Rotation{Axis: math32.Vector3{X: 0, Y: 0, Z: 0}, Angle: 1}))
	r, _ := v.Rotation()
	assert.Equal(t, math32.Vector3{X: 0, Y: 1, Z: 0}, r.Axis)
}

func TestMFAppendAndReplace(t *testing.T) {
	v := New(MFInt32)
	require.NoError(t, v.AppendInt32(1))
	require.NoError(t, v.AppendInt32(2))
	assert.Equal(t, 2, v.Len())

	require.NoError(t, v.ReplaceInt32([]int32{5, 6, 7}))
	assert.Equal(t, 3, v.Len())
	x, ok := v.AtInt32(2)
	assert.True(t, ok)
	assert.Equal(t, int32(7), x)
}

func TestKindSingularMulti(t *testing.T) {
	assert.Equal(t, MFVec3f, SFVec3f.Multi())
	assert.Equal(t, SFVec3f, MFVec3f.Singular())
	assert.False(t, SFImage.IsMulti())
}

func TestPrintRoundTripShape(t *testing.T) {
	v := New(SFVec3f)
	require.NoError(t, v.SetVec3f(math32.Vector3{X: 1, Y: 2, Z: 3}))
	assert.Equal(t, "1 2 3", v.Print())

	mv := New(MFFloat)
	require.NoError(t, mv.AppendFloat(1))
	require.NoError(t, mv.AppendFloat(2))
	assert.Equal(t, "[1, 2]", mv.Print())
}
