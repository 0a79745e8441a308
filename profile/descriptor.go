// Package profile implements the component/profile registry (spec.md
// §4.J): named presets of (component, level) pairs, each level
// contributing a set of node-types to install in a scope. Components are
// discovered from an XML descriptor, grounded on the teacher's only XML
// decoding site (a Decoder wrapping xml.Decoder with a typed DOM struct
// tree — see DESIGN.md).
package profile

import (
	"encoding/xml"
	"fmt"
	"io"
)

// NodeTypeDecl is one node-type a component level supplies: its local
// scene-language identifier, the backing metatype-id, and the interface
// names it requests from that metatype (the interface kinds themselves
// are resolved against the metatype's Supported set at install time, not
// carried redundantly in the descriptor).
type NodeTypeDecl struct {
	XMLName    xml.Name `xml:"nodeType"`
	Name       string   `xml:"name,attr"`
	MetatypeID string   `xml:"metatypeId,attr"`
	Interfaces []string `xml:"interface"`
}

// LevelDecl is one level of a component: the node-types it supplies and
// the lower levels (of this or another component) it silently requires
// (spec.md §4.J supplement: "a level may require a lower level of the
// same or another component").
type LevelDecl struct {
	XMLName   xml.Name       `xml:"level"`
	Number    int            `xml:"number,attr"`
	Requires  []LevelRef     `xml:"requires"`
	NodeTypes []NodeTypeDecl `xml:"nodeType"`
}

// LevelRef names a (component, level) dependency.
type LevelRef struct {
	Component string `xml:"component,attr"`
	Level     int    `xml:"level,attr"`
}

// ComponentDecl is one top-level <component> element.
type ComponentDecl struct {
	XMLName xml.Name    `xml:"component"`
	Name    string      `xml:"name,attr"`
	Levels  []LevelDecl `xml:"level"`
}

// ComponentsDoc is the root of a component descriptor file (spec.md
// §4.J: "parsed from an XML descriptor that enumerates levels...").
type ComponentsDoc struct {
	XMLName    xml.Name        `xml:"components"`
	Components []ComponentDecl `xml:"component"`
}

// Decode reads a ComponentsDoc from r.
func Decode(r io.Reader) (*ComponentsDoc, error) {
	doc := &ComponentsDoc{}
	if err := xml.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("profile: decoding component descriptor: %w", err)
	}
	return doc, nil
}

// Dump renders doc as a human-readable tree, mirroring the teacher's
// per-struct Dump-method idiom for debugging decoded XML DOMs.
func (doc *ComponentsDoc) Dump(w io.Writer) {
	for _, c := range doc.Components {
		fmt.Fprintf(w, "component %s\n", c.Name)
		for _, lvl := range c.Levels {
			fmt.Fprintf(w, "  level %d\n", lvl.Number)
			for _, req := range lvl.Requires {
				fmt.Fprintf(w, "    requires %s level %d\n", req.Component, req.Level)
			}
			for _, nt := range lvl.NodeTypes {
				fmt.Fprintf(w, "    nodeType %s -> %s\n", nt.Name, nt.MetatypeID)
			}
		}
	}
}
