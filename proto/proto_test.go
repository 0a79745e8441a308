package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quadroom/vscene/ifaces"
	"github.com/quadroom/vscene/node"
	"github.com/quadroom/vscene/route"
	"github.com/quadroom/vscene/scope"
	"github.com/quadroom/vscene/sim"
	"github.com/quadroom/vscene/value"
)

var counterMetatype = &node.Metatype{
	TypeID: "urn:test:Counter",
	Supported: func() *ifaces.Set {
		s, _ := ifaces.NewSet(ifaces.Interface{Access: ifaces.ExposedField, Kind: value.SFFloat, ID: "value"})
		return s
	}(),
}

func newCounter(t *testing.T, sc *scope.Scope) *node.Node {
	set := counterMetatype.Supported
	nt := &node.NodeType{LocalID: "Counter", Metatype: counterMetatype, Interfaces: set}
	n, err := node.New(nt, nil, sc)
	require.NoError(t, err)
	return n
}

func TestInstantiateWiresExposedFieldISMapping(t *testing.T) {
	root := scope.New("root", nil)
	body := newCounter(t, root)

	publicIfs, err := ifaces.NewSet(ifaces.Interface{Access: ifaces.ExposedField, Kind: value.SFFloat, ID: "val"})
	require.NoError(t, err)

	def := &Definition{
		TypeID:     "urn:test:CounterProto",
		Interfaces: publicIfs,
		BodyRoots:  []*node.Node{body},
		BodyDefs:   map[string]*node.Node{"Body": body},
		IS:         []IS{{BodyNode: body, BodyField: "value", IfaceID: "val"}},
	}

	routes := route.New()
	mt, err := Build(def, routes)
	require.NoError(t, err)

	instNode, err := Instantiate(def, mt, "CounterInstance", nil, root, routes)
	require.NoError(t, err)
	require.NotNil(t, instNode)

	s := sim.New(routes, 0, nil)
	setVal := value.New(value.SFFloat)
	require.NoError(t, setVal.SetFloat(42))
	s.Enqueue(sim.Event{Time: 1, Target: instNode, ID: "set_val", Value: setVal})
	s.Update(1)

	routed := routes.FromSource(instNode)
	require.Len(t, routed, 1)
	bodyNode := routed[0].DstNode
	v, ok := bodyNode.Get("value")
	require.True(t, ok)
	f, _ := v.Float()
	assert.Equal(t, float32(42), f)
}
