// Package iec implements the IEC serial-bus line multiplexer: the
// wired-OR active-low combination of host- and drive-driven levels on
// ATN, CLOCK, DATA, SRQ and RESET, plus the ATN-acknowledge XOR side
// channel that auto-pulls DATA low on a host-initiated ATN sequence.
//
// Grounded on spec.md §9's explicit guidance to factor out an IecBus
// value rather than the original's static globals, generalized from
// the teacher's device/sys_channel interrupt-line OR-across-devices
// pattern (many sources, one effective level).
package iec

// Line identifies one of the bus's five logical signals.
type Line int

const (
	LineATN Line = iota
	LineCLOCK
	LineDATA
	LineSRQ
	LineRESET
	lineCount
)

// traceDepth bounds the optional per-line transition ring, recovered
// from src/iec_bus.h's debugging ring buffer per SPEC_FULL.md's
// supplemented-features note.
const traceDepth = 64

type Transition struct {
	cycle uint64
	level bool
}

// IecBus holds the host- and drive-asserted levels for each line and
// computes the combined wired-OR state. Each line is active-low: a
// level of true here means the line is pulled low (asserted).
type IecBus struct {
	hostLevel  [lineCount]bool
	driveLevel [lineCount]bool
	effective  [lineCount]bool

	cycle uint64

	traceOn bool
	trace   [lineCount][]Transition
}

// New returns a bus with every line released (high, i.e. not
// asserted).
func New() *IecBus {
	return &IecBus{}
}

// SetTrace enables or disables the per-line transition ring.
func (b *IecBus) SetTrace(on bool) { b.traceOn = on }

// SetHostLevel records the host's current assertion of line.
func (b *IecBus) SetHostLevel(line Line, level bool) {
	b.hostLevel[line] = level
}

// SetDriveLevel records the drive's own assertion of line (ATN/CLOCK/
// DATA/SRQ/RESET outputs other than the VIA-A-derived ones Publish
// computes; SRQ and RESET are typically driven this way since the
// drive never drives RESET and only optionally drives SRQ).
func (b *IecBus) SetDriveLevel(line Line, level bool) {
	b.driveLevel[line] = level
}

// Effective returns the wired-OR combined level most recently
// published for line.
func (b *IecBus) Effective(line Line) bool { return b.effective[line] }

// HostAssertedOnly reports the level the drive should sample when
// updating its own VIA inputs: the combined state, except with the
// drive's own contribution removed, so a device never reacts to the
// line it is itself holding low (self-feedback avoidance, per
// spec.md §4.5).
func (b *IecBus) HostAssertedOnly(line Line) bool {
	return b.hostLevel[line] || (b.effective[line] && !b.driveLevel[line])
}

// Publish recomputes every line's wired-OR level from the current
// host/drive assertions, plus the ATN-acknowledge XOR side channel:
// the drive's CLOCK output is viaAPB3 inverted, DATA output is
// viaAPB1 inverted, and atnAckXOR (host ATN XOR VIA-A PB4) additionally
// pulls DATA low when true. It should be called once per CPU cycle,
// after the VIA tick, per spec.md §5's ordering.
func (b *IecBus) Publish(viaAPB3, viaAPB1, atnAckXOR bool) {
	b.cycle++

	b.driveLevel[LineCLOCK] = viaAPB3
	b.driveLevel[LineDATA] = viaAPB1 || atnAckXOR

	for l := Line(0); l < lineCount; l++ {
		level := b.hostLevel[l] || b.driveLevel[l]
		if level != b.effective[l] {
			b.record(l, level)
		}
		b.effective[l] = level
	}
}

func (b *IecBus) record(l Line, level bool) {
	if !b.traceOn {
		return
	}
	ring := append(b.trace[l], Transition{cycle: b.cycle, level: level})
	if len(ring) > traceDepth {
		ring = ring[len(ring)-traceDepth:]
	}
	b.trace[l] = ring
}

// Trace returns a copy of the recorded transitions for line, oldest
// first; empty unless SetTrace(true) was called.
func (b *IecBus) Trace(line Line) []Transition {
	out := make([]Transition, len(b.trace[line]))
	copy(out, b.trace[line])
	return out
}
