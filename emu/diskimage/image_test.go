package diskimage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func rawD64Fixture() []byte {
	total := d64TrackOffsets[d64SectorsMax] + sectorsPerTrack(d64SectorsMax)*d64BytesPerSect
	buf := make([]byte, total)
	for i := range buf {
		buf[i] = byte(i % 256)
	}
	return buf
}

func TestLoadSaveD64RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "disk.d64")
	raw := rawD64Fixture()
	assert.NoError(t, os.WriteFile(path, raw, 0o644))

	img, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, FormatD64, img.format)

	assert.NoError(t, img.Save())

	after, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, raw, after, "round-tripping every sector through GCR must reproduce the original image byte-for-byte")
}

func TestReadWriteBitWrapsAtTrackLength(t *testing.T) {
	img := &Image{}
	img.tracks[10] = []byte{0x00}
	img.trackBits[10] = 8

	img.WriteBit(10, 0, true)
	img.WriteBit(10, 8+2, true) // wraps back to angle 2

	assert.True(t, img.ReadBit(10, 0))
	assert.True(t, img.ReadBit(10, 2))
	assert.False(t, img.ReadBit(10, 1))
	assert.True(t, img.dirty[10])
}

func TestNewUnmountedImageReadsAllOnes(t *testing.T) {
	img := New()
	for i := 0; i < 64; i++ {
		assert.True(t, img.ReadBit(5, i))
	}
}

func TestHalfTrackLengthUnknownIsZero(t *testing.T) {
	img := &Image{}
	assert.Equal(t, 0, img.HalfTrackLength(3))
	assert.Equal(t, 0, img.HalfTrackLength(999))
}

func TestSaveAsConvertsD64ToG64(t *testing.T) {
	dir := t.TempDir()
	d64Path := filepath.Join(dir, "disk.d64")
	assert.NoError(t, os.WriteFile(d64Path, rawD64Fixture(), 0o644))

	img, err := Load(d64Path)
	assert.NoError(t, err)

	g64Path := filepath.Join(dir, "disk.g64")
	assert.NoError(t, img.SaveAs(g64Path))
	assert.Equal(t, FormatG64, img.format)

	reloaded, err := Load(g64Path)
	assert.NoError(t, err)
	assert.Equal(t, FormatG64, reloaded.format)
	assert.Equal(t, img.HalfTrackLength(img.used0()), reloaded.HalfTrackLength(img.used0()))
}

// used0 returns the first half-track Load populated, for a length
// comparison that doesn't hardcode track numbering.
func (img *Image) used0() int {
	for ht, u := range img.used {
		if u {
			return ht
		}
	}
	return 0
}

func TestSaveAsRejectsUnknownExtension(t *testing.T) {
	img := New()
	err := img.SaveAs(filepath.Join(t.TempDir(), "disk.xyz"))
	assert.Error(t, err)
}
