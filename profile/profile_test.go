package profile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quadroom/vscene/builtin"
	"github.com/quadroom/vscene/registry"
)

func TestInterchangeProfileOmitsKeyDeviceSensor(t *testing.T) {
	doc, err := Decode(strings.NewReader(DefaultComponentsXML))
	require.NoError(t, err)
	components := FromDoc(doc, nil)

	reg := registry.New(nil)
	builtin.Register(reg)

	root := CreateRootScope(Interchange, components, reg, nil)
	_, ok := root.FindType("KeyDeviceSensor")
	assert.False(t, ok, "spec.md §8 scenario 5: Interchange must not expose KeyDeviceSensor")

	_, ok = root.FindType("Shape")
	assert.True(t, ok)
}

func TestImmersiveProfileExposesKeyDeviceSensor(t *testing.T) {
	doc, err := Decode(strings.NewReader(DefaultComponentsXML))
	require.NoError(t, err)
	components := FromDoc(doc, nil)

	reg := registry.New(nil)
	builtin.Register(reg)

	root := CreateRootScope(Immersive, components, reg, nil)
	_, ok := root.FindType("KeyDeviceSensor")
	assert.True(t, ok)
}
