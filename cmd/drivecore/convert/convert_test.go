package convert

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunConvertsD64ToG64(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "disk.d64")
	out := filepath.Join(dir, "disk.g64")

	require.NoError(t, os.WriteFile(in, rawD64Fixture(), 0o644))
	require.NoError(t, run(in, out))

	info, err := os.Stat(out)
	assert.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRunRejectsUnreadableInput(t *testing.T) {
	dir := t.TempDir()
	err := run(filepath.Join(dir, "missing.d64"), filepath.Join(dir, "out.g64"))
	assert.Error(t, err)
}

// rawD64Fixture builds a minimal valid 35-track D64 image: every track's
// sectors hold zeroed data, which loadD64/saveD64 can round-trip.
func rawD64Fixture() []byte {
	sectorsPerTrack := func(track int) int {
		switch {
		case track <= 17:
			return 21
		case track <= 24:
			return 19
		case track <= 30:
			return 18
		default:
			return 17
		}
	}
	var buf []byte
	for t := 1; t <= 35; t++ {
		for s := 0; s < sectorsPerTrack(t); s++ {
			buf = append(buf, make([]byte, 256)...)
		}
	}
	return buf
}
