// Package scope implements nested lexical scopes that bind local
// type-identifiers to node-types and DEF-names to nodes (spec.md §3.5,
// §4.D).
package scope

import (
	"reflect"

	"github.com/quadroom/vscene/node"
	"github.com/quadroom/vscene/util/logger"
)

// Scope is a named, possibly-nested namespace. Type lookup walks the
// parent chain; node lookup does not, since DEF/USE is lexically scoped
// to the enclosing body (spec.md §3.5).
type Scope struct {
	name   string
	parent *Scope
	types  map[string]*node.NodeType
	nodes  map[string]*node.Node
	log    *logger.Logger
}

// New returns a fresh scope nested inside parent (nil for the root scope).
func New(name string, parent *Scope) *Scope {
	log := logger.New("scope", nil)
	if parent != nil {
		log = parent.log
	}
	return &Scope{
		name:   name,
		parent: parent,
		types:  make(map[string]*node.NodeType),
		nodes:  make(map[string]*node.Node),
		log:    log,
	}
}

// Name returns the scope's diagnostic name (e.g. the PROTO it belongs to).
func (s *Scope) Name() string { return s.name }

// Parent returns the enclosing scope, or nil for the root scope.
func (s *Scope) Parent() *Scope { return s.parent }

// AddType installs nt under its local identifier. Re-adding the same
// identifier is not an error if the existing entry is structurally
// identical (same interface set from the same metatype) — this keeps a
// component imported twice with compatible levels idempotent (spec.md
// §4.D). Otherwise the old entry wins and a warning is logged.
func (s *Scope) AddType(nt *node.NodeType) {
	existing, ok := s.types[nt.LocalID]
	if !ok {
		s.types[nt.LocalID] = nt
		return
	}
	if sameType(existing, nt) {
		return
	}
	s.log.Warn("scope %s: type %q already bound to a different shape; keeping existing", s.name, nt.LocalID)
}

func sameType(a, b *node.NodeType) bool {
	if a.Metatype != b.Metatype {
		return false
	}
	aIfs, bIfs := a.Interfaces.All(), b.Interfaces.All()
	return reflect.DeepEqual(aIfs, bIfs)
}

// FindType resolves id by walking the parent chain (spec.md §3.5).
func (s *Scope) FindType(id string) (*node.NodeType, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if nt, ok := cur.types[id]; ok {
			return nt, true
		}
	}
	return nil, false
}

// AddNode binds name to n in this scope only (no parent-chain fallback on
// lookup, so this is intentionally scope-local).
func (s *Scope) AddNode(name string, n *node.Node) {
	if name == "" {
		return
	}
	s.nodes[name] = n
}

// FindNode looks up name in this scope only.
func (s *Scope) FindNode(name string) (*node.Node, bool) {
	n, ok := s.nodes[name]
	return n, ok
}

// DefNames returns a copy of this scope's DEF-name map, for clone-into and
// debug dumping.
func (s *Scope) DefNames() map[string]*node.Node {
	out := make(map[string]*node.Node, len(s.nodes))
	for k, v := range s.nodes {
		out[k] = v
	}
	return out
}
