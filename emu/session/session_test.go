package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go6502/drivecore/emu/iec"
)

func testROM() []byte {
	rom := make([]byte, 0x8000)
	// Reset vector -> 0x8000, an infinite JMP $8000 loop.
	rom[0x7ffc] = 0x00
	rom[0x7ffd] = 0x80
	rom[0x0000] = 0x4c // JMP abs
	rom[0x0001] = 0x00
	rom[0x0002] = 0x80
	return rom
}

func TestNewSessionRejectsEmptyROM(t *testing.T) {
	_, err := NewSession(nil, Config{})
	assert.Error(t, err)
}

func TestStepCycleRunsWithoutPanicking(t *testing.T) {
	s, err := NewSession(testROM(), Config{})
	assert.NoError(t, err)

	for i := 0; i < 1000; i++ {
		s.StepCycle()
	}
	snap := s.Snapshot()
	assert.Equal(t, uint64(1000), snap.Cycle)
	assert.Equal(t, 36, snap.HalfTrack)
}

func TestAssertResetReinitializesCPU(t *testing.T) {
	s, err := NewSession(testROM(), Config{})
	assert.NoError(t, err)

	for i := 0; i < 100; i++ {
		s.StepCycle()
	}
	s.AssertReset(true)
	s.AssertReset(false)
	for i := 0; i < 10; i++ {
		s.StepCycle()
	}
	assert.True(t, s.Line(iec.LineRESET) == false)
}

func TestUnmountRefusesDuringMediaChange(t *testing.T) {
	s, err := NewSession(testROM(), Config{})
	assert.NoError(t, err)

	s.mech.BeginMediaChange()
	err = s.UnmountImage()
	assert.Error(t, err)
}

func TestHostLineReflectsInEffectiveState(t *testing.T) {
	s, err := NewSession(testROM(), Config{})
	assert.NoError(t, err)

	s.SetHostLine(iec.LineATN, true)
	s.StepCycle()
	assert.True(t, s.Line(iec.LineATN))
}

func TestStartStop(t *testing.T) {
	s, err := NewSession(testROM(), Config{})
	assert.NoError(t, err)

	s.Start()
	s.Stop()
}
