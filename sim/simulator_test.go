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

func boolNode(t *testing.T, localID string, extra ...ifaces.Interface) *node.Node {
	ifs := append([]ifaces.Interface{
		{Access: ifaces.ExposedField, Kind: value.SFBool, ID: "on"},
	}, extra...)
	set, err := ifaces.NewSet(ifs...)
	require.NoError(t, err)
	nt := &node.NodeType{LocalID: localID, Metatype: &node.Metatype{TypeID: "urn:" + localID, Supported: set}, Interfaces: set}
	n, err := node.New(nt, nil, nil)
	require.NoError(t, err)
	return n
}

func boolValue(b bool) *value.Value {
	v := value.New(value.SFBool)
	v.SetBool(b)
	return v
}

func TestUpdateDeliversInTimeOrderWithSeqTiebreak(t *testing.T) {
	target := boolNode(t, "Target")
	routes := route.New()
	s := New(routes, 0, nil)

	s.Enqueue(Event{Time: 2, Target: target, ID: "set_on", Value: boolValue(true)})
	s.Enqueue(Event{Time: 1, Target: target, ID: "set_on", Value: boolValue(false)})

	s.Update(0)
	v, _ := target.Get("on")
	b, _ := v.Bool()
	assert.False(t, b, "nothing <= now=0 should have been delivered")

	s.Update(1)
	v, _ = target.Get("on")
	b, _ = v.Bool()
	assert.False(t, b, "time=1 event (enqueued second) should win over time=2")

	s.Update(2)
	v, _ = target.Get("on")
	b, _ = v.Bool()
	assert.True(t, b)
}

func TestUpdateClampsBackwardTime(t *testing.T) {
	target := boolNode(t, "Target")
	s := New(route.New(), 0, nil)

	s.Update(5)
	s.Enqueue(Event{Time: 3, Target: target, ID: "set_on", Value: boolValue(true)})
	s.Update(2) // clamped forward to 5, so the time=3 event is delivered

	v, _ := target.Get("on")
	b, _ := v.Bool()
	assert.True(t, b)
}

func TestRouteOutChainsThroughGraph(t *testing.T) {
	src := boolNode(t, "Src")
	dst := boolNode(t, "Dst")
	routes := route.New()
	require.NoError(t, routes.Add(src, "on_changed", dst, "set_on"))

	s := New(routes, 0, nil)
	s.Enqueue(Event{Time: 1, Target: src, ID: "set_on", Value: boolValue(true)})
	s.Update(1)

	v, _ := dst.Get("on")
	b, _ := v.Bool()
	assert.True(t, b)
}

func TestIterationCapDiscardsExcessEvents(t *testing.T) {
	target := boolNode(t, "Target")
	s := New(route.New(), 2, nil)

	s.Enqueue(Event{Time: 1, Target: target, ID: "set_on", Value: boolValue(true)})
	s.Enqueue(Event{Time: 1, Target: target, ID: "set_on", Value: boolValue(false)})
	s.Enqueue(Event{Time: 1, Target: target, ID: "set_on", Value: boolValue(true)})

	s.Update(1)
	assert.Equal(t, 0, s.q.Len(), "the capped-off tail should be discarded, not left queued")
}
