// Package ifaces implements the node interface descriptor and the ordered
// interface set every node-type publishes (spec.md §3.2, §4.B).
package ifaces

import (
	"fmt"
	"sort"
	"strings"

	"github.com/quadroom/vscene/value"
)

// Access identifies the directionality/writability of an interface.
type Access int

const (
	EventIn Access = iota
	EventOut
	Field
	ExposedField
)

func (a Access) String() string {
	switch a {
	case EventIn:
		return "eventIn"
	case EventOut:
		return "eventOut"
	case Field:
		return "field"
	case ExposedField:
		return "exposedField"
	}
	return "?"
}

// Interface describes one named, typed, directional endpoint.
type Interface struct {
	Access Access
	Kind   value.Kind
	ID     string
}

// Set is an ordered collection of Interfaces, sorted by identifier for
// deterministic printing and enumeration (spec.md §4.B). Lookup is by
// (access-kind is implied by usage, id) with the set_/_changed aliasing
// resolved by a two-try lookup.
type Set struct {
	entries []Interface // sorted by ID
}

// NewSet builds a Set from the given interfaces, validating there are no
// duplicate identifiers and no set_/_changed collisions that would alias
// two different storage slots.
func NewSet(ifs ...Interface) (*Set, error) {
	s := &Set{entries: append([]Interface(nil), ifs...)}
	sort.Slice(s.entries, func(i, j int) bool { return s.entries[i].ID < s.entries[j].ID })
	seen := make(map[string]bool, len(s.entries))
	for _, iface := range s.entries {
		if seen[iface.ID] {
			return nil, fmt.Errorf("ifaces: duplicate interface id %q", iface.ID)
		}
		seen[iface.ID] = true
	}
	if err := s.validateAliases(); err != nil {
		return nil, err
	}
	return s, nil
}

// validateAliases checks that every set_<id>/<id>_changed alias that
// resolves (by the two-try lookup) a bare identifier agrees with the
// interface actually stored under that bare identifier, per spec.md §3.2's
// identifier-compatibility rule.
func (s *Set) validateAliases() error {
	for _, iface := range s.entries {
		if iface.Access == EventIn && strings.HasPrefix(iface.ID, "set_") {
			bare := strings.TrimPrefix(iface.ID, "set_")
			if other, ok := s.lookupExact(bare); ok && other.Access != ExposedField {
				return fmt.Errorf("ifaces: %s aliases %s but it is not an exposedField", iface.ID, bare)
			}
		}
		if iface.Access == EventOut && strings.HasSuffix(iface.ID, "_changed") {
			bare := strings.TrimSuffix(iface.ID, "_changed")
			if other, ok := s.lookupExact(bare); ok && other.Access != ExposedField {
				return fmt.Errorf("ifaces: %s aliases %s but it is not an exposedField", iface.ID, bare)
			}
		}
	}
	return nil
}

func (s *Set) lookupExact(id string) (Interface, bool) {
	i := sort.Search(len(s.entries), func(i int) bool { return s.entries[i].ID >= id })
	if i < len(s.entries) && s.entries[i].ID == id {
		return s.entries[i], true
	}
	return Interface{}, false
}

// Find resolves id for the given access kind, trying the exact identifier
// first and then the set_/_changed stripped/added form (spec.md §4.B).
// EventIn resolves "foo" and "set_foo" to the same exposedField interface;
// EventOut resolves "foo" and "foo_changed" likewise.
func (s *Set) Find(access Access, id string) (Interface, bool) {
	if iface, ok := s.lookupExact(id); ok && aliasCompatible(iface.Access, access) {
		return iface, true
	}
	switch access {
	case EventIn:
		if strings.HasPrefix(id, "set_") {
			if iface, ok := s.lookupExact(strings.TrimPrefix(id, "set_")); ok && iface.Access == ExposedField {
				return iface, true
			}
		} else if iface, ok := s.lookupExact("set_" + id); ok && iface.Access == ExposedField {
			return iface, true
		}
	case EventOut:
		if strings.HasSuffix(id, "_changed") {
			if iface, ok := s.lookupExact(strings.TrimSuffix(id, "_changed")); ok && iface.Access == ExposedField {
				return iface, true
			}
		} else if iface, ok := s.lookupExact(id + "_changed"); ok && iface.Access == ExposedField {
			return iface, true
		}
	}
	return Interface{}, false
}

// aliasCompatible reports whether an interface stored with the given
// access kind may satisfy a lookup for the requested access kind: an
// ExposedField satisfies all three; otherwise the kinds must match
// exactly.
func aliasCompatible(stored, requested Access) bool {
	if stored == ExposedField {
		return requested == EventIn || requested == EventOut || requested == Field || requested == ExposedField
	}
	return stored == requested
}

// All returns the interfaces in sorted-by-ID order.
func (s *Set) All() []Interface {
	return append([]Interface(nil), s.entries...)
}

// Len returns the number of distinct interfaces (exposedFields count once).
func (s *Set) Len() int {
	return len(s.entries)
}

// FieldKind returns the writable-field storage kind for id, whether id is
// a bare field, an exposedField, or (stripped of its set_/_changed alias)
// resolves to one. Used by the parser to type-check field initializers and
// by event delivery to type-check inbound events.
func (s *Set) FieldKind(id string) (value.Kind, bool) {
	if iface, ok := s.Find(Field, id); ok {
		return iface.Kind, true
	}
	if iface, ok := s.Find(EventIn, id); ok {
		return iface.Kind, true
	}
	if iface, ok := s.Find(EventOut, id); ok {
		return iface.Kind, true
	}
	return 0, false
}

// StorageID returns the canonical field-storage identifier for id — the
// bare exposedField/field name an event-in or event-out alias ultimately
// writes through to.
func (s *Set) StorageID(id string) (string, bool) {
	if iface, ok := s.lookupExact(id); ok {
		return iface.ID, true
	}
	if strings.HasPrefix(id, "set_") {
		if iface, ok := s.lookupExact(strings.TrimPrefix(id, "set_")); ok && iface.Access == ExposedField {
			return iface.ID, true
		}
	}
	if strings.HasSuffix(id, "_changed") {
		if iface, ok := s.lookupExact(strings.TrimSuffix(id, "_changed")); ok && iface.Access == ExposedField {
			return iface.ID, true
		}
	}
	return "", false
}
