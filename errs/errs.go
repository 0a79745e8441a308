// Package errs implements the typed error kinds of spec.md §7. Every kind
// carries structured fields so callers can switch on it instead of
// string-matching a formatted message; each also implements error so it
// can be returned and logged uniformly.
package errs

import "fmt"

// InvalidScene reports a parse failure at a specific source position.
type InvalidScene struct {
	URI     string
	Line    int
	Col     int
	Message string
}

func (e *InvalidScene) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.URI, e.Line, e.Col, e.Message)
}

// BadMediaType reports a media-type hint that selects neither dialect.
type BadMediaType struct {
	Type string
}

func (e *BadMediaType) Error() string {
	return fmt.Sprintf("unsupported media type %q", e.Type)
}

// InvalidURL reports a malformed URL in an EXTERNPROTO or resource
// reference.
type InvalidURL struct {
	Raw string
}

func (e *InvalidURL) Error() string {
	return fmt.Sprintf("invalid URL %q", e.Raw)
}

// UnsupportedInterface reports a scene declaring an interface a metatype
// does not support.
type UnsupportedInterface struct {
	NodeType  string
	Requested string
}

func (e *UnsupportedInterface) Error() string {
	return fmt.Sprintf("node type %q does not support interface %q", e.NodeType, e.Requested)
}

// UnsupportedComponentLevel reports a profile requesting a component
// level the registry cannot satisfy.
type UnsupportedComponentLevel struct {
	Component string
	Level     int
}

func (e *UnsupportedComponentLevel) Error() string {
	return fmt.Sprintf("component %q has no level %d", e.Component, e.Level)
}

// ResourceUnavailable reports a failed external fetch.
type ResourceUnavailable struct {
	URL    string
	Reason string
}

func (e *ResourceUnavailable) Error() string {
	return fmt.Sprintf("resource %q unavailable: %s", e.URL, e.Reason)
}
