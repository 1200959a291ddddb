package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go6502/drivecore/emu/session"
)

func testROM() []byte {
	rom := make([]byte, 0x8000)
	rom[0x7ffc] = 0x00
	rom[0x7ffd] = 0x80
	rom[0x0000] = 0x4c // JMP $8000
	rom[0x0001] = 0x00
	rom[0x0002] = 0x80
	return rom
}

func TestDispatchQuitExits(t *testing.T) {
	sess, err := session.NewSession(testROM(), session.Config{})
	assert.NoError(t, err)
	assert.True(t, dispatchREPL(sess, "quit"))
}

func TestDispatchBlankLineDoesNotExit(t *testing.T) {
	sess, err := session.NewSession(testROM(), session.Config{})
	assert.NoError(t, err)
	assert.False(t, dispatchREPL(sess, "   "))
}

func TestDispatchUnknownCommandDoesNotExit(t *testing.T) {
	sess, err := session.NewSession(testROM(), session.Config{})
	assert.NoError(t, err)
	assert.False(t, dispatchREPL(sess, "bogus"))
}

func TestDispatchStatusDoesNotExit(t *testing.T) {
	sess, err := session.NewSession(testROM(), session.Config{})
	assert.NoError(t, err)
	assert.False(t, dispatchREPL(sess, "status"))
}

func TestDispatchResetDoesNotExit(t *testing.T) {
	sess, err := session.NewSession(testROM(), session.Config{})
	assert.NoError(t, err)
	assert.False(t, dispatchREPL(sess, "reset"))
}
