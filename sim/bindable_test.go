package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quadroom/vscene/ifaces"
	"github.com/quadroom/vscene/node"
	"github.com/quadroom/vscene/route"
	"github.com/quadroom/vscene/value"
)

func bindableNode(t *testing.T) *node.Node {
	set, err := ifaces.NewSet(
		ifaces.Interface{Access: ifaces.EventIn, Kind: value.SFBool, ID: "set_bind"},
		ifaces.Interface{Access: ifaces.EventOut, Kind: value.SFBool, ID: "is_bound"},
	)
	require.NoError(t, err)
	nt := &node.NodeType{LocalID: "Viewpoint", Metatype: &node.Metatype{TypeID: "urn:vp", Supported: set}, Interfaces: set}
	n, err := node.New(nt, nil, nil)
	require.NoError(t, err)
	return n
}

func TestBindableStackLIFOAndIsBoundNotifications(t *testing.T) {
	v1 := bindableNode(t)
	v2 := bindableNode(t)
	routes := route.New()
	s := New(routes, 0, nil)
	s.RegisterBindable(v1, Viewpoint)
	s.RegisterBindable(v2, Viewpoint)

	s.Enqueue(Event{Time: 1, Target: v1, ID: "set_bind", Value: boolValue(true)})
	s.Update(1)
	assert.Same(t, v1, s.Top(Viewpoint))

	s.Enqueue(Event{Time: 2, Target: v2, ID: "set_bind", Value: boolValue(true)})
	s.Update(2)
	assert.Same(t, v2, s.Top(Viewpoint))

	s.Enqueue(Event{Time: 3, Target: v2, ID: "set_bind", Value: boolValue(false)})
	s.Update(3)
	assert.Same(t, v1, s.Top(Viewpoint), "unbinding the top should restore the next one down")
}
