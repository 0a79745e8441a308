// Package registry implements the process-wide node metatype registry
// (spec.md §4.C): a catalog of built-in node metatypes plus dynamically
// registered PROTO/EXTERNPROTO metatypes, along with an alias table that
// maps EXTERNPROTO URLs to metatype ids. It keeps no record of which URL
// a metatype was last fetched from.
package registry

import (
	"sync"

	"github.com/quadroom/vscene/errs"
	"github.com/quadroom/vscene/ifaces"
	"github.com/quadroom/vscene/node"
	"github.com/quadroom/vscene/util/logger"
)

// Registry is a reader-writer-locked catalog of metatypes (spec.md §5:
// "registrations take the write lock (rare; only during parse or
// externproto resolution); lookups take the read lock"). Registration is
// append-only: there is no public removal short of Shutdown, which
// models engine teardown.
type Registry struct {
	mu    sync.RWMutex
	byID  map[string]*node.Metatype
	alias map[string]string // url -> canonical metatype id
	log   *logger.Logger
}

// New returns an empty registry. Engines typically build exactly one and
// keep it for the process lifetime, per spec.md §5's "process-wide
// singleton" framing, but nothing here enforces singleton-ness: the
// caller (engine.Engine) owns the instance.
func New(log *logger.Logger) *Registry {
	if log == nil {
		log = logger.New("registry", nil)
	}
	return &Registry{
		byID:  make(map[string]*node.Metatype),
		alias: make(map[string]string),
		log:   log,
	}
}

// Register installs mt under its TypeID, append-only: re-registering the
// same TypeID overwrites the old entry.
func (r *Registry) Register(mt *node.Metatype) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[mt.TypeID] = mt
	r.log.Debug("registered metatype %s", mt.TypeID)
}

// RegisterAlias records that url also resolves to metatypeID, so a later
// EXTERNPROTO reference under a different URL in the same list resolves
// to the same metatype (spec.md §4.E).
func (r *Registry) RegisterAlias(url, metatypeID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alias[url] = metatypeID
}

// Lookup returns the metatype registered under id, or nil.
func (r *Registry) Lookup(id string) *node.Metatype {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id]
}

// LookupURL resolves a URL previously passed to RegisterAlias to its
// metatype, if any.
func (r *Registry) LookupURL(url string) *node.Metatype {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.alias[url]
	if !ok {
		return nil
	}
	return r.byID[id]
}

// NewType validates that every interface in requested is one mt knows how
// to implement and, if so, returns a concrete NodeType exposing exactly
// that subset under localID (spec.md §3.3).
func (r *Registry) NewType(localID string, mt *node.Metatype, requested *ifaces.Set) (*node.NodeType, error) {
	for _, want := range requested.All() {
		if _, ok := mt.Supported.Find(want.Access, want.ID); !ok {
			return nil, &errs.UnsupportedInterface{NodeType: localID, Requested: want.ID}
		}
	}
	return &node.NodeType{LocalID: localID, Metatype: mt, Interfaces: requested}, nil
}

// Initialize runs the initialize lifecycle hook (spec.md §4.C) on every
// registered metatype, after parse and before the first simulation tick.
func (r *Registry) Initialize(initialViewpoint *node.Node, timestamp float64) {
	r.mu.RLock()
	mts := make([]*node.Metatype, 0, len(r.byID))
	for _, mt := range r.byID {
		mts = append(mts, mt)
	}
	r.mu.RUnlock()
	for _, mt := range mts {
		if mt.Initialize != nil {
			mt.Initialize(initialViewpoint, timestamp)
		}
	}
}

// Render runs the render lifecycle hook on every registered metatype,
// once per frame before scene traversal.
func (r *Registry) Render(viewer interface{}) {
	r.mu.RLock()
	mts := make([]*node.Metatype, 0, len(r.byID))
	for _, mt := range r.byID {
		mts = append(mts, mt)
	}
	r.mu.RUnlock()
	for _, mt := range mts {
		if mt.Render != nil {
			mt.Render(viewer)
		}
	}
}

// Shutdown runs the shutdown lifecycle hook on every registered metatype
// and discards the registry's contents, modeling engine teardown (spec.md
// §4.C: "deregistration is forbidden except at full teardown").
func (r *Registry) Shutdown(timestamp float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, mt := range r.byID {
		if mt.Shutdown != nil {
			mt.Shutdown(timestamp)
		}
	}
	r.byID = make(map[string]*node.Metatype)
	r.alias = make(map[string]string)
}
