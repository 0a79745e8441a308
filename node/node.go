// Package node implements the scene graph's node storage (spec.md §3.4,
// §4.F): heterogeneous nodes with typed field storage, modification
// tracking, and clone-into-scope semantics. It deliberately knows nothing
// about routes or simulation; those live in sibling packages so a route
// cycle between two nodes never needs to touch this package's internals.
package node

import (
	"fmt"
	"sync/atomic"

	"github.com/quadroom/vscene/bounds"
	"github.com/quadroom/vscene/ifaces"
	"github.com/quadroom/vscene/value"
)

var nextID uint64

// Metatype is the factory capability set a node-type's backing metatype
// must implement (spec.md §3.3, §4.C). It is declared here, not in
// registry, so that Node and NodeType can reference it without registry
// importing node first.
type Metatype struct {
	// TypeID is the metatype's globally unique identifier, a URI-shaped
	// string such as "urn:vscene:node:Transform".
	TypeID string

	// Supported enumerates every interface this metatype knows how to
	// implement; a node-type's requested interface subset must be a
	// subset of this set (spec.md §3.3).
	Supported *ifaces.Set

	// New constructs the behavior-carrying payload for a freshly created
	// node of this metatype, or nil if the metatype has no behavior
	// beyond field storage (the common case for leaf geometry/appearance
	// nodes, whose field shape is in scope but render callbacks are not,
	// per spec.md §1).
	New func(n *Node) Behavior

	// Initialize, Render and Shutdown are the registry lifecycle hooks of
	// spec.md §4.C. Any may be nil.
	Initialize func(initialViewpoint *Node, timestamp float64)
	Render     func(viewer interface{})
	Shutdown   func(timestamp float64)
}

// Behavior is the optional capability a node's metatype attaches to give
// it runtime behavior beyond plain field storage: time-dependent ticking,
// bindable-stack participation, bounding-volume computation, or reacting
// to an inbound event. Each method is consulted via a type assertion, so
// a concrete behavior only needs to implement the subsets it cares about.
type Behavior interface {
	// OnSet is invoked after a field write (construction or event
	// delivery) lands in storage, so behaviors can react (e.g. a
	// Transform recomputing its cached matrix). id is the canonical
	// storage identifier (post set_/_changed resolution).
	OnSet(id string)
}

// NodeType is the concrete, instantiable shape derived from a Metatype by
// supplying a local identifier and the subset of interfaces the scene
// author wishes to expose (spec.md §3.3).
type NodeType struct {
	LocalID    string
	Metatype   *Metatype
	Interfaces *ifaces.Set
}

// Scope is the narrow capability a Node needs from its enclosing scope:
// enough to participate in DEF/USE and cloning, without node importing
// the scope package (which itself needs to hold *Node values).
type Scope interface {
	AddNode(name string, n *Node)
	FindNode(name string) (*Node, bool)
}

// Node is an instance of a NodeType (spec.md §3.4).
type Node struct {
	id       uint64
	nodeType *NodeType
	scope    Scope
	fields   map[string]*value.Value
	explicit map[string]bool
	behavior Behavior

	modified     bool
	bvolumeDirty bool
	bvolume      bounds.Volume
}

// New constructs a Node of the given type, seeding its field storage from
// initial (kind-checked against the type's interfaces) and defaulting
// every unspecified field (spec.md §4.F).
func New(nt *NodeType, initial map[string]*value.Value, sc Scope) (*Node, error) {
	if nt == nil {
		return nil, fmt.Errorf("node: nil node type")
	}
	n := &Node{
		id:       atomic.AddUint64(&nextID, 1),
		nodeType: nt,
		scope:    sc,
		fields:   make(map[string]*value.Value, nt.Interfaces.Len()),
		explicit: make(map[string]bool, nt.Interfaces.Len()),
	}
	for _, iface := range nt.Interfaces.All() {
		if iface.Access != ifaces.Field && iface.Access != ifaces.ExposedField {
			continue
		}
		if v, ok := initial[iface.ID]; ok {
			if v.Kind() != iface.Kind {
				return nil, fmt.Errorf("node: field %q: want kind %s, got %s", iface.ID, iface.Kind, v.Kind())
			}
			n.fields[iface.ID] = v.Clone()
			n.explicit[iface.ID] = true
			continue
		}
		n.fields[iface.ID] = value.New(iface.Kind)
	}
	if nt.Metatype != nil && nt.Metatype.New != nil {
		n.behavior = nt.Metatype.New(n)
	}
	return n, nil
}

// Ref satisfies value.Node: a stable identity for SFNode equality.
func (n *Node) Ref() uintptr {
	if n == nil {
		return 0
	}
	return uintptr(n.id)
}

// Type returns the node's concrete type.
func (n *Node) Type() *NodeType { return n.nodeType }

// Scope returns the scope the node was constructed in.
func (n *Node) Scope() Scope { return n.scope }

// Behavior returns the behavior payload attached by the metatype, or nil.
func (n *Node) Behavior() Behavior { return n.behavior }

// Get returns the current value stored for the canonical field id.
func (n *Node) Get(id string) (*value.Value, bool) {
	storageID, ok := n.nodeType.Interfaces.StorageID(id)
	if !ok {
		return nil, false
	}
	v, ok := n.fields[storageID]
	return v, ok
}

// Set writes v into the field/exposedField/event-in resolved from id,
// failing if the kinds disagree (spec.md §4.A: "numeric conversions are
// never implicit"). On success it marks the node modified and, if the
// node's metatype attached a Behavior, invokes OnSet.
func (n *Node) Set(id string, v *value.Value) error {
	iface, ok := n.nodeType.Interfaces.Find(ifaces.EventIn, id)
	if !ok {
		iface, ok = n.nodeType.Interfaces.Find(ifaces.Field, id)
	}
	if !ok {
		return fmt.Errorf("node: %s has no writable interface %q", n.nodeType.LocalID, id)
	}
	if iface.Kind != v.Kind() {
		return fmt.Errorf("node: %s.%s: want kind %s, got %s", n.nodeType.LocalID, id, iface.Kind, v.Kind())
	}
	storageID, _ := n.nodeType.Interfaces.StorageID(iface.ID)
	n.fields[storageID] = v.Clone()
	n.explicit[storageID] = true
	n.modified = true
	n.bvolumeDirty = true
	if n.behavior != nil {
		n.behavior.OnSet(storageID)
	}
	return nil
}

// FieldExplicit reports whether id was set to a value at construction
// (via the initial map) or by a later Set call, as opposed to carrying its
// kind's zero value only because it was never mentioned. A metatype whose
// field has a non-zero default distinct from its kind's zero value needs
// this to tell "never set" from "set to the zero value on purpose" apart.
func (n *Node) FieldExplicit(id string) bool {
	storageID, ok := n.nodeType.Interfaces.StorageID(id)
	if !ok {
		return false
	}
	return n.explicit[storageID]
}

// Fields returns the node's field values in interface order (Field and
// ExposedField interfaces only), for printing and cloning.
func (n *Node) Fields() []FieldValue {
	out := make([]FieldValue, 0, len(n.fields))
	for _, iface := range n.nodeType.Interfaces.All() {
		if iface.Access != ifaces.Field && iface.Access != ifaces.ExposedField {
			continue
		}
		out = append(out, FieldValue{ID: iface.ID, Value: n.fields[iface.ID]})
	}
	return out
}

// FieldValue pairs a field identifier with its current value.
type FieldValue struct {
	ID    string
	Value *value.Value
}

// Modified reports whether the node has been mutated since the last
// render traversal cleared the flag.
func (n *Node) Modified() bool { return n.modified }

// SetModified sets or clears the modified flag directly (used by the
// traversal after consuming it).
func (n *Node) SetModified(m bool) { n.modified = m }

// BVolumeDirty reports whether the cached bounding volume needs recompute.
func (n *Node) BVolumeDirty() bool { return n.bvolumeDirty }

// SetBVolume installs a freshly computed bounding volume and clears the
// dirty flag.
func (n *Node) SetBVolume(v bounds.Volume) {
	n.bvolume = v
	n.bvolumeDirty = false
}

// BVolume returns the cached bounding volume (possibly stale if
// BVolumeDirty is true; recomputation is the caller's responsibility,
// since only the metatype's render/geometry logic — out of this core's
// scope — knows how to compute it for leaf shapes).
func (n *Node) BVolume() bounds.Volume {
	if n.bvolume == nil {
		return bounds.Max()
	}
	return n.bvolume
}

// UpdateModified marks every node in path as modified, walking the slice
// back-to-front so it behaves like a depth-first ancestor walk without
// recursing on the call stack (spec.md §4.F: "uses the traversal path as
// its own stack, not call-stack recursion"). Callers pass the path from
// root to the node that actually changed.
func UpdateModified(path []*Node) {
	for i := len(path) - 1; i >= 0; i-- {
		path[i].modified = true
		path[i].bvolumeDirty = true
	}
}

// ChildNodes returns every node directly referenced by this node's
// SFNode/MFNode fields, in field order. Used by destroy/clone/traversal
// to walk the graph without depending on a parent-tracking mechanism.
func (n *Node) ChildNodes() []*Node {
	var out []*Node
	for _, iface := range n.nodeType.Interfaces.All() {
		if iface.Access != ifaces.Field && iface.Access != ifaces.ExposedField {
			continue
		}
		v := n.fields[iface.ID]
		if v == nil {
			continue
		}
		switch v.Kind() {
		case value.SFNode:
			if ref, _ := v.NodeRef(); ref != nil {
				if child, ok := ref.(*Node); ok {
					out = append(out, child)
				}
			}
		case value.MFNode:
			for i := 0; i < v.Len(); i++ {
				if ref, _ := v.AtNode(i); ref != nil {
					if child, ok := ref.(*Node); ok {
						out = append(out, child)
					}
				}
			}
		}
	}
	return out
}

// Destroy releases this node's references to its children using an
// explicit work queue rather than stack recursion, so destruction cost is
// bounded by graph size, not call-stack depth (spec.md §3.4). Because
// node references are shared ownership resolved by whatever holds the
// last reference (the Go garbage collector, in this implementation —
// there is no manual refcount), Destroy's job is limited to breaking
// internal field references so a node with no external holders becomes
// collectible even inside a reference cycle formed by routes (those are
// torn down by the route graph, not here).
func (n *Node) Destroy() {
	queue := []*Node{n}
	seen := map[*Node]bool{n: true}
	for len(queue) > 0 {
		cur := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		for _, child := range cur.ChildNodes() {
			if !seen[child] {
				seen[child] = true
				queue = append(queue, child)
			}
		}
		cur.fields = nil
	}
}
