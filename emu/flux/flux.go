// Package flux implements the analog-to-digital flux-reversal decoder
// and GCR bit-cell state machine that sits between the mounted disk
// image and VIA-B: it turns the bit pattern under the head into a byte
// stream and a byte-sync flag, including the weak-bit noise simulation
// copy-protected software probes for.
//
// Grounded on util/tape.go's frame/sub-byte state-machine style (a
// Context struct that advances its own phase counter one unit at a
// time, independent of the caller's loop structure) and spec.md §9's
// note on a small, locally seeded LCG/xorshift generator.
package flux

import (
	"github.com/go6502/drivecore/emu/diskimage"
	"github.com/go6502/drivecore/emu/mechanism"
)

// Source is a small, locally seeded pseudo-random generator. The
// decoder never reaches for a global RNG, since two decoders (or two
// runs seeded identically) must reproduce the exact same weak-bit
// sequence.
type Source interface {
	Next() uint32
}

// Xorshift32 is the default Source: a single 32-bit xorshift generator,
// adequate for the flux decoder's cosmetic noise draws.
type Xorshift32 struct{ state uint32 }

// NewXorshift32 seeds the generator; a zero seed is replaced with a
// fixed nonzero constant, since xorshift's state must never be zero.
func NewXorshift32(seed uint32) *Xorshift32 {
	if seed == 0 {
		seed = 0x2545f491
	}
	return &Xorshift32{state: seed}
}

func (x *Xorshift32) Next() uint32 {
	x.state ^= x.state << 13
	x.state ^= x.state >> 17
	x.state ^= x.state << 5
	return x.state
}

const maxUint32 = 4294967295.0

// reversalRangeReal and reversalRangeNoise bound the uniform draw (in
// microseconds) for the time to the next forced flux reversal,
// following spec.md §4.3: a real transition satisfies the read
// amplifier's AGC and narrows the window; a noise-induced one widens
// it, which is what produces differing reads of a weak-bit track.
var (
	reversalRangeReal  = [2]float64{18, 20}
	reversalRangeNoise = [2]float64{2, 25}
)

// Decoder holds the flux/GCR state machine's registers. It has no
// notion of which half-track or image is current; SubTick is handed
// the mechanism and image each call, matching spec.md §5's ordering
// (the decoder never owns component state it doesn't need to).
type Decoder struct {
	rng Source

	cellRemain     float64 // sub-ticks left until the current bit cell ends
	cellReversed   bool    // did a reversal occur anywhere in this cell
	zeroRun        int     // consecutive shifted-in zero bits
	timeToReversal float64 // sub-ticks left until the next forced reversal

	shiftReg  uint16
	bytePhase byte
	byteReg   byte

	writeByte   byte
	writeNext   byte // taken into writeByte at the next byte boundary
	writeBitPos int
}

// NewDecoder returns a decoder seeded from rng; call Reset once the
// mechanism's density/position are established.
func NewDecoder(rng Source) *Decoder {
	d := &Decoder{rng: rng}
	d.Reset()
	return d
}

// Reset clears the shift/byte-phase state and redraws the reversal
// timer, as a real drive does on power-up or motor restart.
func (d *Decoder) Reset() {
	d.shiftReg = 0
	d.bytePhase = 0
	d.byteReg = 0
	d.zeroRun = 0
	d.cellReversed = false
	d.cellRemain = 0
	d.drawReversal(reversalRangeReal)
}

func (d *Decoder) drawReversal(rng [2]float64) {
	frac := float64(d.rng.Next()) / maxUint32
	us := rng[0] + frac*(rng[1]-rng[0])
	d.timeToReversal = us * 16
}

// ShiftRegister returns the raw 10-bit-relevant shift register (kept at
// full 16-bit width for inspection/testing).
func (d *Decoder) ShiftRegister() uint16 { return d.shiftReg }

// ByteRegister returns the last byte latched at a byte-phase boundary.
func (d *Decoder) ByteRegister() byte { return d.byteReg }

// SetWriteByte loads the byte VIA-B port A holds for the next
// byte-boundary write, per spec.md §4.3's "Writing" paragraph: the
// write-shift register is fed from the port on each byte boundary.
func (d *Decoder) SetWriteByte(b byte) {
	d.writeNext = b
}

// SubTick advances the decoder by one of the 16 sub-ticks per CPU
// cycle. byteReady is true only on the sub-tick that completes a byte;
// sync is true on every bit-cell boundary at which the last ten bits
// shifted in are all ones. ca2WriteMode selects whether this tick also writes a bit back
// to img at the current head position.
func (d *Decoder) SubTick(mech *mechanism.Mechanism, img *diskimage.Image, ca2WriteMode bool) (byteReady bool, sync bool) {
	d.timeToReversal--
	reversedNow := false
	if d.timeToReversal <= 0 {
		reversedNow = true
		d.drawReversal(reversalRangeNoise)
	}

	if d.cellRemain <= 0 {
		cellWidth := mechanism.CellWidthUS[mech.Density()&0x3] * 16
		d.cellRemain = cellWidth
	}
	d.cellRemain--

	if reversedNow {
		d.cellReversed = true
	}

	if d.cellRemain > 0 {
		return false, false
	}

	// Cell boundary: sample the real bit under the head as an
	// additional reversal source, then shift one bit in.
	headBit := img.ReadBit(mech.HalfTrack(), mech.Angle())
	if headBit {
		d.cellReversed = true
		d.drawReversal(reversalRangeReal)
	}

	in := d.cellReversed
	if !in {
		d.zeroRun++
		if d.zeroRun >= 4 {
			in = true // hardware cap: never more than three consecutive zero cells
			d.zeroRun = 0
		}
	} else {
		d.zeroRun = 0
	}
	d.cellReversed = false

	d.shiftReg <<= 1
	if in {
		d.shiftReg |= 1
	}

	if ca2WriteMode {
		if d.writeBitPos == 0 {
			d.writeByte = d.writeNext
		}
		wbit := d.writeByte&(0x80>>uint(d.writeBitPos)) != 0
		img.WriteBit(mech.HalfTrack(), mech.Angle(), wbit)
		d.writeBitPos++
		if d.writeBitPos >= 8 {
			d.writeBitPos = 0
		}
	}

	mech.AdvanceAngle()

	if d.shiftReg&0x3ff == 0x3ff {
		d.bytePhase = 0
		return false, true
	}

	d.bytePhase++
	if d.bytePhase >= 8 {
		d.bytePhase = 0
		d.byteReg = byte(d.shiftReg)
		return true, false
	}
	return false, false
}
