package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quadroom/vscene/ifaces"
	"github.com/quadroom/vscene/node"
	"github.com/quadroom/vscene/value"
)

func testNodeType(localID string) *node.NodeType {
	set, _ := ifaces.NewSet(ifaces.Interface{Access: ifaces.Field, Kind: value.SFBool, ID: "on"})
	return &node.NodeType{LocalID: localID, Metatype: &node.Metatype{TypeID: "urn:test:" + localID, Supported: set}, Interfaces: set}
}

func TestFindTypeWalksParentChain(t *testing.T) {
	root := New("root", nil)
	root.AddType(testNodeType("Box"))

	child := New("PROTO#body", root)
	_, ok := child.FindType("Box")
	assert.True(t, ok, "type lookup should walk up to the parent scope")

	_, ok = root.FindType("Sphere")
	assert.False(t, ok)
}

func TestAddTypeKeepsExistingOnShapeMismatch(t *testing.T) {
	root := New("root", nil)
	first := testNodeType("Box")
	root.AddType(first)

	set, err := ifaces.NewSet(
		ifaces.Interface{Access: ifaces.Field, Kind: value.SFBool, ID: "on"},
		ifaces.Interface{Access: ifaces.Field, Kind: value.SFFloat, ID: "extra"},
	)
	require.NoError(t, err)
	conflicting := &node.NodeType{LocalID: "Box", Metatype: first.Metatype, Interfaces: set}
	root.AddType(conflicting)

	got, ok := root.FindType("Box")
	require.True(t, ok)
	assert.Same(t, first, got, "a conflicting re-add must not replace the existing binding")
}

func TestAddTypeIsIdempotentForStructurallyIdenticalRedeclaration(t *testing.T) {
	root := New("root", nil)
	first := testNodeType("Box")
	root.AddType(first)

	second := &node.NodeType{LocalID: "Box", Metatype: first.Metatype, Interfaces: first.Interfaces}
	root.AddType(second)

	got, ok := root.FindType("Box")
	require.True(t, ok)
	assert.Same(t, first, got)
}

func TestNodeBindingIsScopeLocal(t *testing.T) {
	root := New("root", nil)
	nt := testNodeType("Box")
	n, err := node.New(nt, nil, root)
	require.NoError(t, err)

	root.AddNode("MyBox", n)
	child := New("child", root)

	_, ok := child.FindNode("MyBox")
	assert.False(t, ok, "DEF/USE lookup must not walk the parent chain")

	_, ok = root.FindNode("MyBox")
	assert.True(t, ok)

	names := root.DefNames()
	assert.Same(t, n, names["MyBox"])
}
