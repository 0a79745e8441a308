// Package sim implements the event queue and simulation loop (spec.md
// §4.H): time-stamped event delivery along routes, time-dependent node
// ticking, and the four bindable-node LIFO stacks.
package sim

import (
	"github.com/quadroom/vscene/node"
	"github.com/quadroom/vscene/value"
)

// Event is a single (timestamp, target event-in, value) triple (spec.md
// §3.7).
type Event struct {
	Time   float64
	Target *node.Node
	ID     string
	Value  *value.Value
	seq    uint64 // insertion order, used as the tie-break
}
