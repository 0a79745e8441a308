package sim

import (
	"github.com/quadroom/vscene/ifaces"
	"github.com/quadroom/vscene/node"
	"github.com/quadroom/vscene/route"
	"github.com/quadroom/vscene/util/logger"
	"github.com/quadroom/vscene/value"
)

// Ticker is implemented by a node's Behavior when it needs a per-tick
// callback (time sensors and their kin, spec.md §4.H). emit lets it
// produce event-outs that are then routed exactly like any other
// delivery.
type Ticker interface {
	Tick(now float64, emit func(outID string, v *value.Value))
}

// Reactor is implemented by a node's Behavior when an inbound event
// should, beyond the plain field write Node.Set already performs,
// compute and emit further event-outs (an interpolator producing
// value_changed from set_fraction, for instance).
type Reactor interface {
	React(inID string, v *value.Value, now float64, emit func(outID string, v *value.Value))
}

// DefaultIterationCap bounds the number of deliveries a single Update may
// perform, cutting cycles that would otherwise run forever (spec.md §4.H,
// §5).
const DefaultIterationCap = 10000

// Simulator is the single-threaded cooperative event queue and
// simulation loop of spec.md §4.H. It does no locking of its own, so all
// of its methods must be called from one goroutine.
type Simulator struct {
	routes  *route.Graph
	q       *queue
	lastNow float64
	iterCap int
	log     *logger.Logger

	bindables    [numBindableCategories]bindableStack
	bindCategory map[*node.Node]BindableCategory
	tickers      []*node.Node
}

// New returns a Simulator wired to routes, with the given per-tick
// iteration cap (DefaultIterationCap if zero).
func New(routes *route.Graph, iterCap int, log *logger.Logger) *Simulator {
	if iterCap <= 0 {
		iterCap = DefaultIterationCap
	}
	if log == nil {
		log = logger.New("sim", nil)
	}
	return &Simulator{
		routes:       routes,
		q:            newQueue(),
		iterCap:      iterCap,
		log:          log,
		bindCategory: make(map[*node.Node]BindableCategory),
	}
}

// Enqueue adds an externally produced event to the queue (e.g. the
// engine injecting a synthetic bindTime event at scene load).
func (s *Simulator) Enqueue(e Event) {
	s.q.push(e)
}

// RegisterTicker adds n to the set of nodes ticked once per Update call,
// in registration order (spec.md §4.H).
func (s *Simulator) RegisterTicker(n *node.Node) {
	s.tickers = append(s.tickers, n)
}

// RegisterBindable associates n with one of the four bindable categories
// so a set_bind event delivered to it drives that category's stack.
func (s *Simulator) RegisterBindable(n *node.Node, cat BindableCategory) {
	s.bindCategory[n] = cat
}

// Update advances simulated time to now, delivering every queued event
// with timestamp <= now in nondecreasing order (ties broken by enqueue
// order), ticking every registered time-dependent node first, and
// re-draining events produced by those deliveries until the queue
// empties or the iteration cap is reached (spec.md §4.H, §8).
//
// If now is less than the time of the previous Update call, time is
// clamped non-decreasingly and a warning is logged — spec.md §9 flags the
// 1997-era source's backward clamp as a bug; this implements the later,
// corrected behavior.
func (s *Simulator) Update(now float64) {
	if now < s.lastNow {
		s.log.Warn("sim: update(%v) called after update(%v); clamping", now, s.lastNow)
		now = s.lastNow
	}
	s.lastNow = now

	for _, n := range s.tickers {
		if t, ok := n.Behavior().(Ticker); ok {
			target := n
			t.Tick(now, func(outID string, v *value.Value) {
				s.routeOut(target, outID, v, now)
			})
		}
	}

	delivered := 0
	for delivered < s.iterCap {
		ev, ok := s.q.peek()
		if !ok || ev.Time > now {
			return
		}
		ev = s.q.pop()
		s.deliver(ev)
		delivered++
	}
	if ev, ok := s.q.peek(); ok && ev.Time <= now {
		s.log.Warn("sim: per-tick iteration cap (%d) reached; discarding remaining events", s.iterCap)
		for {
			ev, ok := s.q.peek()
			if !ok || ev.Time > now {
				break
			}
			s.q.pop()
		}
	}
}

func (s *Simulator) deliver(ev Event) {
	iface, ok := ev.Target.Type().Interfaces.Find(ifaces.EventIn, ev.ID)
	if !ok {
		s.log.Warn("sim: %s has no event-in %q; dropping event", ev.Target.Type().LocalID, ev.ID)
		return
	}

	if ev.ID == "set_bind" {
		if cat, isBindable := s.bindCategory[ev.Target]; isBindable {
			bindTo, _ := ev.Value.Bool()
			s.handleBind(cat, ev.Target, bindTo, ev.Time)
			return
		}
	}

	if err := ev.Target.Set(ev.ID, ev.Value); err != nil {
		s.log.Warn("sim: %v; dropping event", err)
		return
	}
	if iface.Access == ifaces.ExposedField {
		s.routeOut(ev.Target, iface.ID, ev.Value, ev.Time)
	}
	if reactor, ok := ev.Target.Behavior().(Reactor); ok {
		target := ev.Target
		reactor.React(ev.ID, ev.Value, ev.Time, func(outID string, v *value.Value) {
			s.routeOut(target, outID, v, ev.Time)
		})
	}
}

// routeOut enqueues, at timestamp t, the value v for every route whose
// source is (n, outID).
func (s *Simulator) routeOut(n *node.Node, outID string, v *value.Value, t float64) {
	for _, r := range s.routes.FromSource(n) {
		if r.SrcID != outID {
			continue
		}
		s.q.push(Event{Time: t, Target: r.DstNode, ID: r.DstID, Value: v})
	}
}

func (s *Simulator) handleBind(cat BindableCategory, n *node.Node, bind bool, t float64) {
	stack := &s.bindables[cat]
	if bind {
		lost, gained := stack.Bind(n)
		if lost != nil {
			s.emitIsBound(lost, false, t)
		}
		s.emitIsBound(gained, true, t)
		return
	}
	wasTop, gained := stack.Unbind(n)
	if wasTop {
		s.emitIsBound(n, false, t)
		if gained != nil {
			s.emitIsBound(gained, true, t)
		}
	}
}

func (s *Simulator) emitIsBound(n *node.Node, bound bool, t float64) {
	v := value.New(value.SFBool)
	v.SetBool(bound)
	s.routeOut(n, "is_bound", v, t)
}
