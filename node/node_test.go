package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quadroom/vscene/ifaces"
	"github.com/quadroom/vscene/value"
)

func testNodeType(t *testing.T, ifs ...ifaces.Interface) *NodeType {
	set, err := ifaces.NewSet(ifs...)
	require.NoError(t, err)
	return &NodeType{LocalID: "Test", Metatype: &Metatype{TypeID: "urn:test", Supported: set}, Interfaces: set}
}

func TestNewDefaultsUnspecifiedFields(t *testing.T) {
	nt := testNodeType(t, ifaces.Interface{Access: ifaces.ExposedField, Kind: value.SFFloat, ID: "speed"})
	n, err := New(nt, nil, nil)
	require.NoError(t, err)

	v, ok := n.Get("speed")
	require.True(t, ok)
	f, _ := v.Float()
	assert.Equal(t, float32(0), f)
}

func TestSetRejectsWrongKind(t *testing.T) {
	nt := testNodeType(t, ifaces.Interface{Access: ifaces.Field, Kind: value.SFBool, ID: "on"})
	n, err := New(nt, nil, nil)
	require.NoError(t, err)

	v := value.New(value.SFFloat)
	assert.Error(t, n.Set("on", v))
}

func TestSetMarksModifiedAndInvokesBehavior(t *testing.T) {
	var seen []string
	nt := &NodeType{LocalID: "Test"}
	set, err := ifaces.NewSet(ifaces.Interface{Access: ifaces.ExposedField, Kind: value.SFBool, ID: "on"})
	require.NoError(t, err)
	nt.Interfaces = set
	nt.Metatype = &Metatype{
		TypeID:    "urn:test",
		Supported: set,
		New: func(n *Node) Behavior {
			return behaviorFunc(func(id string) { seen = append(seen, id) })
		},
	}

	n, err := New(nt, nil, nil)
	require.NoError(t, err)
	assert.False(t, n.Modified())

	v := value.New(value.SFBool)
	v.SetBool(true)
	require.NoError(t, n.Set("set_on", v))

	assert.True(t, n.Modified())
	assert.True(t, n.BVolumeDirty())
	assert.Equal(t, []string{"on"}, seen)
}

func TestChildNodesAndDestroyAreAcyclicSafe(t *testing.T) {
	leafSet, err := ifaces.NewSet()
	require.NoError(t, err)
	leafType := &NodeType{LocalID: "Leaf", Metatype: &Metatype{TypeID: "urn:leaf", Supported: leafSet}, Interfaces: leafSet}
	leaf, err := New(leafType, nil, nil)
	require.NoError(t, err)

	parentIfs, err := ifaces.NewSet(ifaces.Interface{Access: ifaces.Field, Kind: value.MFNode, ID: "children"})
	require.NoError(t, err)
	parentType := &NodeType{LocalID: "Parent", Metatype: &Metatype{TypeID: "urn:parent", Supported: parentIfs}, Interfaces: parentIfs}
	parent, err := New(parentType, nil, nil)
	require.NoError(t, err)

	childrenVal := value.New(value.MFNode)
	require.NoError(t, childrenVal.AppendNode(leaf))
	require.NoError(t, childrenVal.AppendNode(leaf)) // same child twice; Destroy must not double-visit badly
	parent.fields["children"] = childrenVal

	kids := parent.ChildNodes()
	require.Len(t, kids, 2)
	assert.Same(t, leaf, kids[0])

	parent.Destroy()
	_, ok := parent.Get("children")
	assert.False(t, ok)
}

type behaviorFunc func(id string)

func (f behaviorFunc) OnSet(id string) { f(id) }
