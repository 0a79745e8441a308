package proto

import (
	"sync"

	"github.com/quadroom/vscene/ifaces"
	"github.com/quadroom/vscene/node"
)

// Stub backs an EXTERNPROTO whose URL list did not resolve to an already
// registered metatype at parse time (spec.md §4.E). It is immediately
// usable — nodes constructed from it simply carry no behavior — and the
// real metatype is recorded by Resolve. Neither this package nor the
// parser fetches the URLs; whoever obtains the real metatype calls
// Resolve.
type Stub struct {
	mu   sync.RWMutex
	real *node.Metatype
	urls []string
}

// NewStub returns a stub metatype usable immediately under typeID,
// exposing the interface set the EXTERNPROTO declaration promised (the
// real body, once fetched, must expose a compatible or wider set —
// Resolve does not re-validate this; a mismatch surfaces the next time a
// field is accessed and fails kind-checking).
func NewStub(typeID string, urls []string, declared *ifaces.Set) (*Stub, *node.Metatype) {
	s := &Stub{urls: urls}
	mt := &node.Metatype{
		TypeID:    typeID,
		Supported: declared,
		New: func(n *node.Node) node.Behavior {
			return &stubBehavior{stub: s}
		},
	}
	return s, mt
}

// URLs returns the EXTERNPROTO's URL list, so the registry can register
// this stub's metatype under every one of them (spec.md §4.E:
// "subsequent references resolve to the same stub").
func (s *Stub) URLs() []string { return s.urls }

// Resolve installs the fetched real metatype under the stub's lock, after
// which Real returns it. Nodes already constructed from the stub are not
// changed: they keep the no-op stub behavior, and events delivered to
// them are not forwarded to the real metatype.
func (s *Stub) Resolve(real *node.Metatype) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.real = real
}

// Real returns the fetched metatype, or nil if the fetch hasn't completed.
func (s *Stub) Real() *node.Metatype {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.real
}

// stubBehavior is the Behavior attached to a node constructed while its
// EXTERNPROTO is still unresolved. It is a no-op; once Resolve runs,
// newly constructed nodes go through the real metatype directly; existing
// stub-backed nodes keep this no-op behavior; the one-time transition
// spec.md §4.I describes is modeled by Real() starting to return a
// non-nil metatype, which callers that hold a *Stub can observe.
type stubBehavior struct {
	stub *Stub
}

func (b *stubBehavior) OnSet(string) {}
