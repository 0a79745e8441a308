// Package engine is the top-level façade (spec.md §6.2): it owns one
// metatype registry, one component/profile registry, one route graph,
// one simulator, and the scene's root scope, and exposes the small
// surface a host application drives a frame loop with.
package engine

import (
	"strings"

	"github.com/quadroom/vscene/builtin"
	"github.com/quadroom/vscene/node"
	"github.com/quadroom/vscene/profile"
	"github.com/quadroom/vscene/registry"
	"github.com/quadroom/vscene/route"
	"github.com/quadroom/vscene/scope"
	"github.com/quadroom/vscene/sim"
	"github.com/quadroom/vscene/util/logger"
	"github.com/quadroom/vscene/viewer"
)

// Document is what a parser run (or a hand-built scene for testing)
// hands to Load: a flat list of root nodes already instantiated into
// scopes, plus the routes connecting them. It deliberately carries no
// parse-time state (scope stack, pending IS maps): by the time a
// Document exists, all of that has already been resolved.
type Document struct {
	Roots            []*node.Node
	Routes           []route.Route
	InitialViewpoint *node.Node

	// Metadata holds the extended dialect's META key/value pairs
	// (spec.md §6.1, §6.2); nil for a compact-dialect parse.
	Metadata map[string]string
}

// config holds the functional-options-configurable engine parameters
// (spec.md §4.N ambient stack: "configuration follows the teacher's
// functional-options idiom, not a config struct literal").
type config struct {
	log     *logger.Logger
	iterCap int
	prof    profile.Profile
}

// Option configures an Engine at construction.
type Option func(*config)

// WithLogger overrides the engine's root logger (the g3n-style
// hierarchical *logger.Logger). The registry, component catalog and
// simulator log through it directly; the parser derives a child logger
// from it.
func WithLogger(log *logger.Logger) Option {
	return func(c *config) { c.log = log }
}

// WithIterationCap overrides sim.DefaultIterationCap for this engine's
// simulator.
func WithIterationCap(n int) Option {
	return func(c *config) { c.iterCap = n }
}

// WithProfile selects the component/profile preset the root scope is
// built from (spec.md §4.J); Compact1997 if unspecified.
func WithProfile(p profile.Profile) Option {
	return func(c *config) { c.prof = p }
}

// Engine ties the registry, profile catalog, route graph, and simulator
// together behind the operations a host application's frame loop needs
// (spec.md §6.2).
type Engine struct {
	viewer   viewer.Viewer
	registry *registry.Registry
	profiles *profile.Registry
	routes   *route.Graph
	sim      *sim.Simulator
	root     *scope.Scope
	log      *logger.Logger

	initialViewpoint *node.Node
	now              float64
}

// New constructs an Engine bound to v, pre-registering the built-in node
// metatypes and the default component descriptor (spec.md §4.C, §4.J).
func New(v viewer.Viewer, opts ...Option) (*Engine, error) {
	cfg := config{
		log:     logger.New("engine", nil),
		iterCap: sim.DefaultIterationCap,
		prof:    profile.Compact1997,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	reg := registry.New(cfg.log)
	builtin.Register(reg)

	doc, err := profile.Decode(strings.NewReader(profile.DefaultComponentsXML))
	if err != nil {
		return nil, err
	}
	components := profile.FromDoc(doc, cfg.log)

	root := profile.CreateRootScope(cfg.prof, components, reg, cfg.log)
	routes := route.New()

	e := &Engine{
		viewer:   v,
		registry: reg,
		profiles: components,
		routes:   routes,
		sim:      sim.New(routes, cfg.iterCap, cfg.log),
		root:     root,
		log:      cfg.log,
	}
	return e, nil
}

// RootScope returns the engine's root scope, the namespace a parser
// populates with scene-level DEF names and PROTO-declared types.
func (e *Engine) RootScope() *scope.Scope { return e.root }

// Registry returns the engine's metatype registry, for a parser to
// register PROTO/EXTERNPROTO metatypes into.
func (e *Engine) Registry() *registry.Registry { return e.registry }

// Routes returns the engine's route graph.
func (e *Engine) Routes() *route.Graph { return e.routes }

// Components returns the engine's component/profile catalog, so a parser
// can install a scene's PROFILE/COMPONENT header statements into the root
// scope it is populating (spec.md §4.J, §6.1).
func (e *Engine) Components() *profile.Registry { return e.profiles }

// Simulator returns the engine's event simulator.
func (e *Engine) Simulator() *sim.Simulator { return e.sim }

// Logger returns the engine's root logger, so sibling subsystems (the
// parser, in particular) can derive a named child logger from it rather
// than constructing their own root (spec.md §4.N ambient stack).
func (e *Engine) Logger() *logger.Logger { return e.log }

// RegisterMetatype installs an additional node metatype (spec.md §6.2),
// for a host application extending the built-in node set.
func (e *Engine) RegisterMetatype(mt *node.Metatype) {
	e.registry.Register(mt)
}

// Load installs doc's routes and wires every root (and transitively every
// descendant) that implements sim.Ticker or builtin.Bindable into the
// simulator, then runs each metatype's Initialize hook (spec.md §4.C,
// §6.2).
func (e *Engine) Load(doc *Document) error {
	for _, r := range doc.Routes {
		if err := e.routes.Add(r.SrcNode, r.SrcID, r.DstNode, r.DstID); err != nil {
			e.log.Warn("engine: %v; dropping route", err)
		}
	}

	e.initialViewpoint = doc.InitialViewpoint
	e.wireBehaviors(doc.Roots)

	e.registry.Initialize(e.initialViewpoint, e.now)
	return nil
}

func (e *Engine) wireBehaviors(roots []*node.Node) {
	seen := make(map[*node.Node]bool)
	stack := append([]*node.Node{}, roots...)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == nil || seen[n] {
			continue
		}
		seen[n] = true

		if _, ok := n.Behavior().(sim.Ticker); ok {
			e.sim.RegisterTicker(n)
		}
		if b, ok := n.Behavior().(builtin.Bindable); ok {
			e.sim.RegisterBindable(n, b.BindableCategory())
		}
		stack = append(stack, n.ChildNodes()...)
	}
}

// Update advances simulated time to now, delivering queued events and
// ticking registered time-dependent nodes (spec.md §4.H).
func (e *Engine) Update(now float64) {
	e.now = now
	e.sim.Update(now)
}

// Render runs one BeginFrame/traversal/EndFrame cycle against the
// engine's viewer (spec.md §4.K); node-type-specific draw dispatch is the
// registry's Render lifecycle hook, run here before EndFrame.
func (e *Engine) Render() {
	e.viewer.BeginFrame()
	e.registry.Render(e.viewer)
	e.viewer.EndFrame()
}

// Shutdown runs every metatype's Shutdown hook and discards the registry
// (spec.md §4.C).
func (e *Engine) Shutdown(now float64) {
	e.registry.Shutdown(now)
}
