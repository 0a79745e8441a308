// Package uri resolves the base/relative URI pairs the parser and the
// EXTERNPROTO loader need (spec.md §4.E, §4.M), grounded on the fallback
// chain in openvrml's doc.cpp: an "anonymous stream" URI falls back to the
// scene's world URL, and an empty world URL falls back to the empty file
// URL "file:///". Relative references then resolve against the filesystem
// root, not against the process's current directory.
package uri

import (
	"net/url"
	"strings"
)

// AnonymousPrefix marks a base URI as belonging to a stream handed to the
// parser with no URI of its own (spec.md §4.E).
const AnonymousPrefix = "x-vscene-anonymous-stream:"

// Resolve resolves ref against base following the scene language's rules:
//   - if base carries the AnonymousPrefix, it is replaced by worldURL
//     before resolution;
//   - if the resulting base is still empty, resolution uses "file:///",
//     so a relative ref resolves against the filesystem root rather than
//     the process's current directory;
//   - otherwise standard RFC 3986 relative resolution applies.
func Resolve(base, worldURL, ref string) (string, error) {
	effectiveBase := base
	if strings.HasPrefix(effectiveBase, AnonymousPrefix) {
		effectiveBase = worldURL
	}
	if effectiveBase == "" {
		effectiveBase = "file:///"
	}

	baseURL, err := url.Parse(effectiveBase)
	if err != nil {
		return "", err
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	return baseURL.ResolveReference(refURL).String(), nil
}

// IsAbsolute reports whether raw parses as a URL carrying a scheme.
func IsAbsolute(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.IsAbs()
}

// Valid reports whether raw is a syntactically valid URI reference.
func Valid(raw string) bool {
	_, err := url.Parse(raw)
	return err == nil
}
