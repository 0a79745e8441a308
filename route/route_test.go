package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quadroom/vscene/ifaces"
	"github.com/quadroom/vscene/node"
	"github.com/quadroom/vscene/value"
)

func newTestNode(t *testing.T, localID string, ifs ...ifaces.Interface) *node.Node {
	set, err := ifaces.NewSet(ifs...)
	require.NoError(t, err)
	nt := &node.NodeType{LocalID: localID, Metatype: &node.Metatype{TypeID: "urn:" + localID, Supported: set}, Interfaces: set}
	n, err := node.New(nt, nil, nil)
	require.NoError(t, err)
	return n
}

func TestAddResolvesAliasesAndSuppressesDuplicates(t *testing.T) {
	src := newTestNode(t, "Sensor", ifaces.Interface{Access: ifaces.ExposedField, Kind: value.SFFloat, ID: "fraction"})
	dst := newTestNode(t, "Xform", ifaces.Interface{Access: ifaces.ExposedField, Kind: value.SFFloat, ID: "value"})

	g := New()
	require.NoError(t, g.Add(src, "fraction_changed", dst, "set_value"))
	require.NoError(t, g.Add(src, "fraction_changed", dst, "set_value"))
	assert.Equal(t, 1, g.Len())

	routes := g.FromSource(src)
	require.Len(t, routes, 1)
	assert.Equal(t, "fraction", routes[0].SrcID)
	assert.Equal(t, "value", routes[0].DstID)
}

func TestAddRejectsKindMismatch(t *testing.T) {
	src := newTestNode(t, "Sensor", ifaces.Interface{Access: ifaces.ExposedField, Kind: value.SFFloat, ID: "fraction"})
	dst := newTestNode(t, "Xform", ifaces.Interface{Access: ifaces.ExposedField, Kind: value.SFVec3f, ID: "translation"})

	g := New()
	assert.Error(t, g.Add(src, "fraction_changed", dst, "set_translation"))
	assert.Equal(t, 0, g.Len())
}

func TestRemoveNodeDropsBothEndpoints(t *testing.T) {
	a := newTestNode(t, "A", ifaces.Interface{Access: ifaces.ExposedField, Kind: value.SFBool, ID: "on"})
	b := newTestNode(t, "B", ifaces.Interface{Access: ifaces.ExposedField, Kind: value.SFBool, ID: "on"})
	c := newTestNode(t, "C", ifaces.Interface{Access: ifaces.ExposedField, Kind: value.SFBool, ID: "on"})

	g := New()
	require.NoError(t, g.Add(a, "on_changed", b, "set_on"))
	require.NoError(t, g.Add(b, "on_changed", c, "set_on"))
	require.Equal(t, 2, g.Len())

	g.RemoveNode(b)
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.FromSource(a))
	assert.Empty(t, g.ToTarget(c))
}
