package engine

import (
	"io"

	"gopkg.in/yaml.v2"

	"github.com/quadroom/vscene/node"
	"github.com/quadroom/vscene/scope"
)

// fieldSnapshot is one field's identifier and declared kind, in field-dump
// form: values are summarized by kind rather than serialized in full,
// since a handful of kinds (SFImage, MFNode) have no meaningful flat YAML
// rendering.
type fieldSnapshot struct {
	ID   string `yaml:"id"`
	Kind string `yaml:"kind"`
}

// nodeSnapshot is one node's debug-dump shape: its metatype, local
// (node-type) identifier, DEF name if any, field summary, and children.
type nodeSnapshot struct {
	MetatypeID string          `yaml:"metatype"`
	TypeID     string          `yaml:"type"`
	DefName    string          `yaml:"def,omitempty"`
	Fields     []fieldSnapshot `yaml:"fields,omitempty"`
	Children   []nodeSnapshot  `yaml:"children,omitempty"`
}

// sceneSnapshot is the root of a scene dump: every scope-level DEF name
// plus the root node list.
type sceneSnapshot struct {
	Scope string         `yaml:"scope"`
	Defs  []string       `yaml:"defs,omitempty"`
	Roots []nodeSnapshot `yaml:"roots"`
}

func snapshotNode(n *node.Node, defs map[*node.Node]string) nodeSnapshot {
	snap := nodeSnapshot{
		MetatypeID: n.Type().Metatype.TypeID,
		TypeID:     n.Type().LocalID,
		DefName:    defs[n],
	}
	for _, fv := range n.Fields() {
		snap.Fields = append(snap.Fields, fieldSnapshot{ID: fv.ID, Kind: fv.Value.Kind().String()})
	}
	for _, c := range n.ChildNodes() {
		snap.Children = append(snap.Children, snapshotNode(c, defs))
	}
	return snap
}

func invertDefNames(sc *scope.Scope) map[*node.Node]string {
	out := make(map[*node.Node]string)
	for name, n := range sc.DefNames() {
		out[n] = name
	}
	return out
}

// DumpSceneYAML writes a human-readable YAML snapshot of the scene rooted
// at e's root scope to w: every DEF name bound in the root scope, and the
// node tree under roots with each field summarized by kind. It is a
// debugging aid only — not a serialization format the engine can reload —
// following the same "structured document" rendering g3n's GUI builder
// uses for layouts, applied here to scene trees instead.
func (e *Engine) DumpSceneYAML(w io.Writer, roots []*node.Node) error {
	defs := invertDefNames(e.root)
	snap := sceneSnapshot{Scope: e.root.Name()}
	for name := range e.root.DefNames() {
		snap.Defs = append(snap.Defs, name)
	}
	for _, r := range roots {
		snap.Roots = append(snap.Roots, snapshotNode(r, defs))
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(snap)
}
