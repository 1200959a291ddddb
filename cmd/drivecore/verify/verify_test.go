package verify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func TestRunSucceedsOnRoundTrippableImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "disk.d64")
	require.NoError(t, os.WriteFile(path, rawD64Fixture(), 0o644))

	assert.NoError(t, run(path))
}

func TestRunFailsOnMissingFile(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, run(filepath.Join(dir, "missing.d64")))
}

func TestFirstDiffFindsOffset(t *testing.T) {
	a := []byte{1, 2, 3}
	b := []byte{1, 9, 3}
	d := firstDiff(a, b)
	assert.Equal(t, 1, d.Offset)
	assert.Equal(t, byte(2), d.Original)
	assert.Equal(t, byte(9), d.RoundTripped)
}

func TestFirstDiffReportsNoneWhenEqual(t *testing.T) {
	d := firstDiff([]byte{1, 2}, []byte{1, 2})
	assert.Equal(t, -1, d.Offset)
}
