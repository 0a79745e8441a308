package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quadroom/vscene/ifaces"
	"github.com/quadroom/vscene/node"
	"github.com/quadroom/vscene/scope"
	"github.com/quadroom/vscene/value"
)

func TestStubIsUsableBeforeResolveAndSwapsAtomically(t *testing.T) {
	declared, err := ifaces.NewSet(ifaces.Interface{Access: ifaces.Field, Kind: value.SFBool, ID: "on"})
	require.NoError(t, err)

	stub, mt := NewStub("urn:test:RemoteSwitch", []string{"http://example.com/remote-switch.wrl"}, declared)
	assert.Equal(t, []string{"http://example.com/remote-switch.wrl"}, stub.URLs())
	assert.Nil(t, stub.Real())

	root := scope.New("root", nil)
	nt := &node.NodeType{LocalID: "RemoteSwitch", Metatype: mt, Interfaces: declared}
	n, err := node.New(nt, nil, root)
	require.NoError(t, err)
	require.NotNil(t, n.Behavior())

	real := &node.Metatype{TypeID: "urn:test:RemoteSwitch", Supported: declared}
	stub.Resolve(real)
	assert.Same(t, real, stub.Real())
}
