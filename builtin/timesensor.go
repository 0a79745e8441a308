package builtin

import (
	"github.com/quadroom/vscene/ifaces"
	"github.com/quadroom/vscene/node"
	"github.com/quadroom/vscene/value"
)

// TimeSensorMetatype drives a fraction_changed/cycleTime/isActive cycle
// off wall-clock simulation time (spec.md §4.H, §8 scenario 2).
//
// Activation/deactivation follows the corrected, non-backward-clamping
// rule spec.md §9 calls out as the fix for the original dialect's
// stuck-sensor bug: a sensor activates the instant startTime falls
// inside [lastTime, timeNow] (rather than only exactly at startTime), and
// deactivates at min(startTime+cycleInterval, stopTime) rather than
// silently missing the boundary when a tick overshoots it.
var TimeSensorMetatype = &node.Metatype{
	TypeID: "urn:vscene:node:TimeSensor",
	Supported: mustIfaceSet(
		field(ifaces.ExposedField, value.SFTime, "cycleInterval"),
		field(ifaces.ExposedField, value.SFBool, "enabled"),
		field(ifaces.ExposedField, value.SFBool, "loop"),
		field(ifaces.ExposedField, value.SFTime, "startTime"),
		field(ifaces.ExposedField, value.SFTime, "stopTime"),
		field(ifaces.EventOut, value.SFTime, "cycleTime"),
		field(ifaces.EventOut, value.SFFloat, "fraction_changed"),
		field(ifaces.EventOut, value.SFBool, "isActive"),
		field(ifaces.EventOut, value.SFTime, "time"),
	),
	New: func(n *node.Node) node.Behavior { return &timeSensorBehavior{n: n, lastTime: -1} }}

type timeSensorBehavior struct {
	n        *node.Node
	isActive bool
	lastTime float64
}

func (t *timeSensorBehavior) OnSet(id string) {}

func (t *timeSensorBehavior) Tick(now float64, emit func(outID string, v *value.Value)) {
	enabled, _ := get(t.n, "enabled").Bool()
	if !enabled {
		return
	}

	startTime, _ := get(t.n, "startTime").Time()
	stopTime, _ := get(t.n, "stopTime").Time()
	cycleInterval, _ := get(t.n, "cycleInterval").Time()
	loop, _ := get(t.n, "loop").Bool()
	if cycleInterval <= 0 {
		cycleInterval = 1
	}

	// Time as seen by the sensor never runs backward: a tick earlier than
	// the previous one is treated as happening at the previous tick's time.
	// A fresh sensor's constructor -1 sentinel lies below any non-negative
	// now, so startTime >= lastTime holds on the first tick for any
	// non-negative startTime, letting a startTime-0 sensor activate on its
	// first tick instead of requiring startTime to land exactly at tick zero.
	if now < t.lastTime {
		now = t.lastTime
	}

	if !t.isActive && startTime <= now && startTime >= t.lastTime &&
		(stopTime < startTime || stopTime > now || loop) {
		t.isActive = true
		emitBool(emit, "isActive", true)
	}

	if t.isActive {
		deactivateAt := startTime + cycleInterval
		if stopTime > startTime && stopTime < deactivateAt {
			deactivateAt = stopTime
		}
		shouldStop := (stopTime > startTime && stopTime <= now) ||
			(!loop && startTime+cycleInterval <= now)

		tickTime := now
		if shouldStop && deactivateAt < tickTime {
			tickTime = deactivateAt
		}

		elapsed := tickTime - startTime
		cyclePos := elapsed
		if cycleInterval > 0 {
			cyclePos = mod64(elapsed, cycleInterval)
		}
		fraction := float32(cyclePos / cycleInterval)

		emitTime(emit, "time", tickTime)
		emitFloat(emit, "fraction_changed", fraction)
		if elapsed > 0 && cycleInterval > 0 && mod64(elapsed, cycleInterval) < mod64(t.lastTime-startTime, cycleInterval) {
			emitTime(emit, "cycleTime", tickTime)
		}

		if shouldStop {
			t.isActive = false
			emitBool(emit, "isActive", false)
		}
	}

	t.lastTime = now
}

func mod64(a, b float64) float64 {
	if b <= 0 {
		return 0
	}
	m := a - b*float64(int64(a/b))
	if m < 0 {
		m += b
	}
	return m
}

func emitBool(emit func(string, *value.Value), id string, b bool) {
	v := value.New(value.SFBool)
	v.SetBool(b)
	emit(id, v)
}

func emitFloat(emit func(string, *value.Value), id string, f float32) {
	v := value.New(value.SFFloat)
	v.SetFloat(f)
	emit(id, v)
}

func emitTime(emit func(string, *value.Value), id string, t float64) {
	v := value.New(value.SFTime)
	v.SetTime(t)
	emit(id, v)
}
