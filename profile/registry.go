package profile

import (
	"github.com/quadroom/vscene/errs"
	"github.com/quadroom/vscene/ifaces"
	"github.com/quadroom/vscene/node"
	"github.com/quadroom/vscene/registry"
	"github.com/quadroom/vscene/scope"
	"github.com/quadroom/vscene/util/logger"
)

// Level is one decoded (component, level-number) entry, resolved against
// the node metatype registry so its node-type declarations are ready to
// install.
type Level struct {
	Number    int
	Requires  []LevelRef
	NodeTypes []NodeTypeDecl
}

// Component is a named, ordered set of levels (level numbers need not be
// contiguous, but are conventionally 1-based and increasing).
type Component struct {
	Name   string
	Levels map[int]Level
}

// Registry is the immutable-after-init component catalog (spec.md §4.J,
// §5: "immutable after engine init and need no locking on read").
type Registry struct {
	components map[string]Component
	log        *logger.Logger
}

// FromDoc builds an immutable Registry from a decoded descriptor.
func FromDoc(doc *ComponentsDoc, log *logger.Logger) *Registry {
	if log == nil {
		log = logger.New("profile", nil)
	}
	r := &Registry{components: make(map[string]Component), log: log}
	for _, c := range doc.Components {
		comp := Component{Name: c.Name, Levels: make(map[int]Level, len(c.Levels))}
		for _, lvl := range c.Levels {
			comp.Levels[lvl.Number] = Level{Number: lvl.Number, Requires: lvl.Requires, NodeTypes: lvl.NodeTypes}
		}
		r.components[c.Name] = comp
	}
	return r
}

// resolveLevels returns every (component, level) pair transitively
// required by requesting component at level, following Level.Requires
// (spec.md §4.J supplement, grounded on component.cpp's level::requires()
// — see DESIGN.md).
func (r *Registry) resolveLevels(component string, level int, seen map[string]int, out *[]LevelRef) error {
	comp, ok := r.components[component]
	if !ok {
		return &errs.UnsupportedComponentLevel{Component: component, Level: level}
	}
	if have, ok := seen[component]; ok && have >= level {
		return nil
	}
	lvl, ok := comp.Levels[level]
	if !ok {
		return &errs.UnsupportedComponentLevel{Component: component, Level: level}
	}
	seen[component] = level
	*out = append(*out, LevelRef{Component: component, Level: level})
	for _, req := range lvl.Requires {
		if err := r.resolveLevels(req.Component, req.Level, seen, out); err != nil {
			return err
		}
	}
	return nil
}

// InstallInto installs every node-type supplied by component at level
// (plus everything that level transitively requires) into sc, resolving
// each declaration's backing metatype against reg. Unknown components or
// unsupported levels are logged but do not fail the whole install (spec.md
// §4.J: "unknown components or unsupported levels are logged but do not
// fail profile application").
func (r *Registry) InstallInto(sc *scope.Scope, reg *registry.Registry, component string, level int) {
	var refs []LevelRef
	if err := r.resolveLevels(component, level, map[string]int{}, &refs); err != nil {
		r.log.Warn("profile: %v", err)
		return
	}
	for _, ref := range refs {
		lvl := r.components[ref.Component].Levels[ref.Level]
		for _, decl := range lvl.NodeTypes {
			mt := reg.Lookup(decl.MetatypeID)
			if mt == nil {
				r.log.Warn("profile: component %s level %d: metatype %s not registered", ref.Component, ref.Level, decl.MetatypeID)
				continue
			}
			ifs := make([]ifaces.Interface, 0, len(decl.Interfaces))
			for _, id := range decl.Interfaces {
				if iface, ok := mt.Supported.Find(ifaces.Field, id); ok {
					ifs = append(ifs, iface)
					continue
				}
				if iface, ok := mt.Supported.Find(ifaces.ExposedField, id); ok {
					ifs = append(ifs, iface)
					continue
				}
				if iface, ok := mt.Supported.Find(ifaces.EventIn, id); ok {
					ifs = append(ifs, iface)
					continue
				}
				if iface, ok := mt.Supported.Find(ifaces.EventOut, id); ok {
					ifs = append(ifs, iface)
					continue
				}
				r.log.Warn("profile: %s: metatype %s has no interface %q", decl.Name, decl.MetatypeID, id)
			}
			set, err := ifaces.NewSet(ifs...)
			if err != nil {
				r.log.Warn("profile: %s: %v", decl.Name, err)
				continue
			}
			sc.AddType(&node.NodeType{LocalID: decl.Name, Metatype: mt, Interfaces: set})
		}
	}
}
