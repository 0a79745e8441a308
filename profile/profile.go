package profile

import (
	"github.com/quadroom/vscene/registry"
	"github.com/quadroom/vscene/scope"
	"github.com/quadroom/vscene/util/logger"
)

// ComponentLevel names one (component, level) pair a Profile pre-declares.
type ComponentLevel struct {
	Component string
	Level     int
}

// Profile is a named preset of component levels (spec.md §4.J). The
// compact-1997 dialect has exactly one implicit profile; the extended
// dialect's PROFILE header selects one of several.
type Profile struct {
	Name   string
	Levels []ComponentLevel
}

// Builtin profiles, matching the small fixed set spec.md §4.J names.
// Interchange is the minimal extended-dialect profile; Immersive adds
// sensors and navigation; Full requests every known component at its
// highest level; Compact1997 mirrors the original dialect's fixed node
// set expressed as a single component/level for uniformity.
var (
	// None installs nothing at engine construction; a host parsing
	// extended-dialect scenes (which select their own profile via a
	// PROFILE header statement) should construct the engine with
	// engine.WithProfile(profile.None) so the scene's own PROFILE
	// statement is the sole source of the root scope's installed
	// component levels, rather than layering on top of a default.
	None        = Profile{Name: "None"}
	Compact1997 = Profile{Name: "Compact1997", Levels: []ComponentLevel{{"Core", 1}, {"Compact1997", 1}}}
	Interchange = Profile{Name: "Interchange", Levels: []ComponentLevel{{"Core", 1}, {"Grouping", 1}, {"Shape", 1}, {"Geometry3D", 1}}}
	Immersive   = Profile{Name: "Immersive", Levels: []ComponentLevel{
		{"Core", 2}, {"Grouping", 2}, {"Shape", 2}, {"Geometry3D", 2},
		{"Lighting", 2}, {"Navigation", 2}, {"KeyDeviceSensor", 1}, {"Interpolation", 2},
	}}
	Full = Profile{Name: "Full", Levels: []ComponentLevel{
		{"Core", 2}, {"Grouping", 2}, {"Shape", 3}, {"Geometry3D", 4},
		{"Lighting", 3}, {"Navigation", 2}, {"KeyDeviceSensor", 1}, {"Interpolation", 2},
	}}
)

var byName = map[string]Profile{
	None.Name:        None,
	Compact1997.Name: Compact1997,
	Interchange.Name: Interchange,
	Immersive.Name:   Immersive,
	Full.Name:        Full,
}

// Lookup returns the builtin profile named name.
func Lookup(name string) (Profile, bool) {
	p, ok := byName[name]
	return p, ok
}

// CreateRootScope builds a fresh root scope and populates it by
// consulting the component registry for each of the profile's (component,
// level) pairs (spec.md §4.J).
func CreateRootScope(p Profile, components *Registry, reg *registry.Registry, log *logger.Logger) *scope.Scope {
	root := scope.New("root:"+p.Name, nil)
	for _, cl := range p.Levels {
		components.InstallInto(root, reg, cl.Component, cl.Level)
	}
	return root
}
