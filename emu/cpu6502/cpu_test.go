package cpu6502

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeBus is a flat 64K RAM used to drive the CPU in isolation from the
// rest of the drive core.
type fakeBus struct {
	ram   [65536]byte
	reads []uint16
}

func (b *fakeBus) Read(addr uint16) byte {
	b.reads = append(b.reads, addr)
	return b.ram[addr]
}

func (b *fakeBus) Write(addr uint16, v byte) { b.ram[addr] = v }

func newTestCPU(resetVector uint16) (*CPU, *fakeBus) {
	bus := &fakeBus{}
	bus.ram[0xFFFC] = byte(resetVector)
	bus.ram[0xFFFD] = byte(resetVector >> 8)
	c := NewCPU(bus)
	c.Reset()
	for i := 0; i < 7; i++ {
		c.Step()
	}
	return c, bus
}

func stepN(c *CPU, n int) {
	for i := 0; i < n; i++ {
		c.Step()
	}
}

func TestResetSequence(t *testing.T) {
	c, _ := newTestCPU(0x8000)
	assert.Equal(t, uint16(0x8000), c.PC)
	assert.Equal(t, byte(0xFA), c.SP) // three decrements from 0xFD
	assert.True(t, c.P&FlagI != 0)
}

func TestImmediateLoadTakesTwoCycles(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	bus.ram[0x8000] = 0xA9 // LDA #imm
	bus.ram[0x8001] = 0x42

	stepN(c, 2)
	assert.Equal(t, byte(0x42), c.A)
	assert.Equal(t, uint16(0x8002), c.PC)
}

func TestAbsoluteXPageCrossAddsCycle(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	bus.ram[0x8000] = 0xBD // LDA abs,X
	bus.ram[0x8001] = 0xFF
	bus.ram[0x8002] = 0x20
	bus.ram[0x20FF+1] = 0x55 // wraps to 0x2100
	c.X = 1

	// no cross would be 4 cycles; crossing 0x20FF -> 0x2100 costs 5.
	stepN(c, 5)
	assert.Equal(t, byte(0x55), c.A)
	assert.Equal(t, uint16(0x8003), c.PC)
}

func TestStoreAbsoluteXAlwaysTakesFixedCycles(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	bus.ram[0x8000] = 0x9D // STA abs,X
	bus.ram[0x8001] = 0x10
	bus.ram[0x8002] = 0x20
	c.X = 1
	c.A = 0x99

	// STA abs,X is always 5 cycles regardless of page crossing.
	stepN(c, 5)
	assert.Equal(t, byte(0x99), bus.ram[0x2011])
}

func TestBRKPushesBAndJumpsToIRQVector(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	bus.ram[0x8000] = 0x00 // BRK
	bus.ram[0xFFFE] = 0x00
	bus.ram[0xFFFF] = 0x90

	stepN(c, 7) // opcode fetch (T0) + six sequence cycles (T1-T6)
	assert.Equal(t, uint16(0x9000), c.PC)

	pushed := bus.ram[0x0100|uint16(c.SP+1)]
	assert.NotEqual(t, byte(0), pushed&FlagB, "break flag must be set in the pushed status")
}

func TestLateNMIMorphsBRKVector(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	bus.ram[0x8000] = 0x00 // BRK
	bus.ram[0xFFFE] = 0x00
	bus.ram[0xFFFF] = 0x90
	bus.ram[0xFFFA] = 0x00
	bus.ram[0xFFFB] = 0xA0

	c.Step() // T0: opcode fetch
	c.Step() // T1: signature byte
	c.Step() // T2: push PCH
	c.Step() // T3: push PCL
	c.AssertNMIEdge()
	c.Step() // T4: push P -- last chance for NMI to morph the vector
	c.Step() // T5: vector low, must now read from FFFA
	c.Step() // T6: vector high

	assert.Equal(t, uint16(0xA000), c.PC, "NMI asserted before T4 completes must steal the BRK vector")
}

func TestNMIDuringT4DoesNotMorphThisBRK(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	bus.ram[0x8000] = 0x00 // BRK
	bus.ram[0xFFFE] = 0x00
	bus.ram[0xFFFF] = 0x90
	bus.ram[0xFFFA] = 0x00
	bus.ram[0xFFFB] = 0xA0

	c.Step() // T0: opcode fetch
	c.Step() // T1: signature byte
	c.Step() // T2: push PCH
	c.Step() // T3: push PCL
	c.Step() // T4: push P -- morph decision already made for this cycle
	c.AssertNMIEdge()
	c.Step() // T5: vector low -- too late, must still read from FFFE
	c.Step() // T6: vector high

	assert.Equal(t, uint16(0x9000), c.PC, "NMI landing during T4 itself must not steal this BRK's vector")
}

func TestEarlyNMIAfterVectorFetchDoesNotMorphThisBRK(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	bus.ram[0x8000] = 0x00 // BRK
	bus.ram[0xFFFE] = 0x00
	bus.ram[0xFFFF] = 0x90
	bus.ram[0xFFFA] = 0x00
	bus.ram[0xFFFB] = 0xA0

	stepN(c, 6) // through T5 (vector low already fetched from FFFE)
	c.AssertNMIEdge()
	c.Step() // T6: vector high, from the already-chosen FFFE page

	assert.Equal(t, uint16(0x9000), c.PC)
}

func TestDecimalAdcBCD(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	bus.ram[0x8000] = 0xF8 // SED
	bus.ram[0x8001] = 0x69 // ADC #imm
	bus.ram[0x8002] = 0x58
	c.A = 0x29
	c.P &^= FlagC

	stepN(c, 2) // SED
	stepN(c, 2) // ADC #$58

	assert.Equal(t, byte(0x87), c.A, "29 + 58 in BCD should be 87")
}

func TestDecimalSbcBCD(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	bus.ram[0x8000] = 0xF8 // SED
	bus.ram[0x8001] = 0x38 // SEC
	bus.ram[0x8002] = 0xE9 // SBC #imm
	bus.ram[0x8003] = 0x12
	c.A = 0x46

	stepN(c, 2) // SED
	stepN(c, 2) // SEC
	stepN(c, 2) // SBC #$12

	assert.Equal(t, byte(0x34), c.A, "46 - 12 in BCD should be 34")
}

func TestBranchNotTakenIsTwoCycles(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	bus.ram[0x8000] = 0xF0 // BEQ
	bus.ram[0x8001] = 0x10
	c.P &^= FlagZ

	stepN(c, 2)
	assert.Equal(t, uint16(0x8002), c.PC)
}

func TestBranchTakenSamePageIsThreeCycles(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	bus.ram[0x8000] = 0xF0 // BEQ +0x10
	bus.ram[0x8001] = 0x10
	c.P |= FlagZ

	stepN(c, 3)
	assert.Equal(t, uint16(0x8012), c.PC)
}

func TestJamHaltsForever(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	bus.ram[0x8000] = 0x02 // JAM

	stepN(c, 1)
	pc := c.PC
	stepN(c, 5)
	assert.Equal(t, pc, c.PC, "a JAMmed CPU never advances PC")
}

func TestIllegalLAXLoadsBothAAndX(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	bus.ram[0x8000] = 0xA7 // LAX zp
	bus.ram[0x8001] = 0x10
	bus.ram[0x0010] = 0x77

	stepN(c, 3)
	assert.Equal(t, byte(0x77), c.A)
	assert.Equal(t, byte(0x77), c.X)
}

func TestJsrRtsRoundTrip(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	bus.ram[0x8000] = 0x20 // JSR $9000
	bus.ram[0x8001] = 0x00
	bus.ram[0x8002] = 0x90
	bus.ram[0x9000] = 0x60 // RTS

	stepN(c, 6)
	assert.Equal(t, uint16(0x9000), c.PC)
	stepN(c, 6)
	assert.Equal(t, uint16(0x8003), c.PC)
}

func TestSyncPulsesOnOpcodeFetchOnly(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	bus.ram[0x8000] = 0xA9 // LDA #imm
	bus.ram[0x8001] = 0x01

	c.Step()
	assert.True(t, c.SYNC())
	c.Step()
	assert.False(t, c.SYNC())
}
