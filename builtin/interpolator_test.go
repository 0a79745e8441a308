package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quadroom/vscene/math32"
	"github.com/quadroom/vscene/value"
)

func TestPositionInterpolatorMidpoint(t *testing.T) {
	interp := newNode(t, PositionInterpolatorMetatype)

	key := value.New(value.MFFloat)
	require.NoError(t, key.AppendFloat(0))
	require.NoError(t, key.AppendFloat(1))
	require.NoError(t, interp.Set("key", key))

	keyValue := value.New(value.MFVec3f)
	require.NoError(t, keyValue.AppendVec3f(math32.Vector3{X: 0, Y: 0, Z: 0}))
	require.NoError(t, keyValue.AppendVec3f(math32.Vector3{X: 10, Y: 0, Z: 0}))
	require.NoError(t, interp.Set("keyValue", keyValue))

	behavior := interp.Behavior().(*positionInterpolatorBehavior)
	var got *value.Value
	fraction := value.New(value.SFFloat)
	require.NoError(t, fraction.SetFloat(0.5))
	behavior.React("set_fraction", fraction, 0, func(id string, v *value.Value) {
		if id == "value_changed" {
			got = v
		}
	})

	require.NotNil(t, got)
	p, ok := got.Vec3f()
	require.True(t, ok)
	assert.InDelta(t, 5, p.X, 1e-6)
}
