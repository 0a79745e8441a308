// Package proto implements the PROTO/EXTERNPROTO engine (spec.md §4.I):
// user-defined composite node metatypes whose instances are a cloned body
// sub-graph wired to the instance's public interface via IS-mappings.
package proto

import (
	"fmt"

	"github.com/quadroom/vscene/ifaces"
	"github.com/quadroom/vscene/node"
	"github.com/quadroom/vscene/route"
	"github.com/quadroom/vscene/scope"
	"github.com/quadroom/vscene/value"
)

// IS records one body-field-to-interface mapping recorded while parsing a
// PROTO body (spec.md §3.6/§6.1's "field-id IS interface-id").
type IS struct {
	BodyNode  *node.Node
	BodyField string
	IfaceID   string
}

// Definition is a parsed-but-not-yet-instantiated PROTO: its public
// interface, its body node list and DEF map (as built in the PROTO's own
// parse scope), the routes recorded between bodies, and the IS-mappings
// connecting body fields to the public interface (spec.md §4.I).
type Definition struct {
	TypeID     string
	Interfaces *ifaces.Set
	BodyRoots  []*node.Node
	BodyDefs   map[string]*node.Node
	BodyRoutes []route.Route
	IS         []IS
	Defaults   map[string]*value.Value
}

// bridgeID is the internal event-in identifier installed on a PROTO
// instance's interface set for each pure event-out IS-mapping, so that a
// body-internal event-out can be routed onto it and re-emitted as the
// instance's own public event-out (see Instantiate).
func bridgeID(ifaceID string) string { return "__is_bridge_" + ifaceID }

// Build finalizes def's public Interfaces to additionally carry the
// internal bridge event-ins pure EventOut IS-mappings need, and returns
// the node.Metatype PROTO instantiation is driven through. routes is the
// route graph new instances' live IS-forwarding routes and body-internal
// routes are installed into; it is normally the engine's single shared
// route graph.
func Build(def *Definition, routes *route.Graph) (*node.Metatype, error) {
	extra := make([]ifaces.Interface, 0)
	for _, is := range def.IS {
		iface, ok := def.Interfaces.Find(ifaces.EventOut, is.IfaceID)
		if !ok {
			continue
		}
		if _, alreadyField := def.Interfaces.Find(ifaces.Field, is.IfaceID); alreadyField {
			continue // exposedField: set_/_changed aliasing already covers this
		}
		extra = append(extra, ifaces.Interface{Access: ifaces.EventIn, Kind: iface.Kind, ID: bridgeID(is.IfaceID)})
	}
	fullIfaces := def.Interfaces
	if len(extra) > 0 {
		merged, err := ifaces.NewSet(append(def.Interfaces.All(), extra...)...)
		if err != nil {
			return nil, fmt.Errorf("proto: %s: building bridge interfaces: %w", def.TypeID, err)
		}
		fullIfaces = merged
	}
	def.Interfaces = fullIfaces

	mt := &node.Metatype{
		TypeID:    def.TypeID,
		Supported: fullIfaces,
	}
	mt.New = func(n *node.Node) node.Behavior {
		return &instance{def: def}
	}
	return mt, nil
}

// instance is the Behavior attached to every PROTO instance node. It
// exists only to answer React for EventOut-bridge forwarding; the
// live field/exposedField IS-routes installed by Instantiate handle the
// far more common case without needing any Behavior callback at all.
type instance struct {
	def *Definition
}

func (p *instance) OnSet(string) {}

func (p *instance) React(inID string, v *value.Value, now float64, emit func(outID string, v *value.Value)) {
	const prefix = "__is_bridge_"
	if len(inID) > len(prefix) && inID[:len(prefix)] == prefix {
		emit(inID[len(prefix):], v)
	}
}

// Instantiate builds one instance of def: a fresh body scope, a two-pass
// deep clone of the body into it, IS-mapping installation, and
// application of the caller's initial-value map through those mappings
// (spec.md §4.I steps 1-5).
func Instantiate(def *Definition, mt *node.Metatype, localID string, initial map[string]*value.Value, outerScope *scope.Scope, routes *route.Graph) (*node.Node, error) {
	bodyScope := scope.New(def.TypeID+"#body", outerScope)

	_, remap, err := node.Clone(def.BodyRoots, def.BodyDefs, bodyScope)
	if err != nil {
		return nil, err
	}

	for _, r := range def.BodyRoutes {
		srcBody, srcOK := remap[r.SrcNode]
		dstBody, dstOK := remap[r.DstNode]
		if !srcOK || !dstOK {
			continue
		}
		if err := routes.Add(srcBody, r.SrcID, dstBody, r.DstID); err != nil {
			return nil, fmt.Errorf("proto: %s: installing body route: %w", def.TypeID, err)
		}
	}

	nt := &node.NodeType{LocalID: localID, Metatype: mt, Interfaces: def.Interfaces}
	instNode, err := node.New(nt, map[string]*value.Value{}, outerScope)
	if err != nil {
		return nil, err
	}

	for _, is := range def.IS {
		bodyNode, ok := remap[is.BodyNode]
		if !ok {
			return nil, fmt.Errorf("proto: %s: IS-mapped body node not found in clone", def.TypeID)
		}
		iface, ok := def.Interfaces.Find(ifaces.Field, is.IfaceID)
		if !ok {
			iface, ok = def.Interfaces.Find(ifaces.EventIn, is.IfaceID)
		}
		if !ok {
			iface, ok = def.Interfaces.Find(ifaces.EventOut, is.IfaceID)
		}
		if !ok {
			return nil, fmt.Errorf("proto: %s: IS-mapping references unknown interface %q", def.TypeID, is.IfaceID)
		}

		switch iface.Access {
		case ifaces.EventOut:
			if err := routes.Add(bodyNode, is.BodyField, instNode, bridgeID(is.IfaceID)); err != nil {
				return nil, fmt.Errorf("proto: %s: IS bridge route: %w", def.TypeID, err)
			}
			continue
		}

		v, ok := initial[is.IfaceID]
		if !ok {
			v, ok = def.Defaults[is.IfaceID]
		}
		if ok {
			if err := bodyNode.Set(is.BodyField, v); err != nil {
				return nil, fmt.Errorf("proto: %s: applying initial value for %q: %w", def.TypeID, is.IfaceID, err)
			}
			instNode.Set(is.IfaceID, v)
		}

		if iface.Access == ifaces.ExposedField || iface.Access == ifaces.EventIn {
			if err := routes.Add(instNode, is.IfaceID, bodyNode, is.BodyField); err != nil {
				return nil, fmt.Errorf("proto: %s: installing IS route: %w", def.TypeID, err)
			}
		}
	}

	return instNode, nil
}
