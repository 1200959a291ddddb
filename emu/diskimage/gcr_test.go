package diskimage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGCR4ByteRoundTrip(t *testing.T) {
	src := [4]byte{0x4c, 0x3d, 0xfe, 0x00}
	var gcr [5]byte
	convert4BytesToGCR(src, gcr[:])

	var out [4]byte
	ok := convert4BytesFromGCR(gcr, out[:])
	assert.True(t, ok)
	assert.Equal(t, src[:], out[:])
}

func TestGCR4ByteRoundTripAllValues(t *testing.T) {
	for a := 0; a < 256; a += 37 {
		src := [4]byte{byte(a), byte(a + 1), byte(a + 2), byte(a + 3)}
		var gcr [5]byte
		convert4BytesToGCR(src, gcr[:])
		var out [4]byte
		ok := convert4BytesFromGCR(gcr, out[:])
		assert.True(t, ok)
		assert.Equal(t, src[:], out[:])
	}
}

func TestEncodeDecodeD64TrackRoundTrip(t *testing.T) {
	track := 18
	n := sectorsPerTrack(track)
	sectors := make([][]byte, n)
	for s := range sectors {
		data := make([]byte, d64BytesPerSect)
		for i := range data {
			data[i] = byte((s*7 + i*13) & 0xff)
		}
		sectors[s] = data
	}

	diskID := [2]byte{0x41, 0x30}
	bits, err := encodeD64Track(track, sectors, diskID)
	assert.NoError(t, err)

	decoded, err := decodeD64Track(track, bits)
	assert.NoError(t, err)
	assert.Len(t, decoded, n)
	for s := 0; s < n; s++ {
		assert.Equal(t, sectors[s], decoded[s], "sector %d mismatch", s)
	}
}

func TestIsBadGCRDetectsThreeZeros(t *testing.T) {
	assert.True(t, isBadGCR(0x00, 0x80))
	assert.False(t, isBadGCR(0xff, 0xff))
}

func TestDensityZoneAndSectorsPerTrack(t *testing.T) {
	assert.Equal(t, 21, sectorsPerTrack(1))
	assert.Equal(t, 3, densityZone(1))
	assert.Equal(t, 17, sectorsPerTrack(35))
	assert.Equal(t, 0, densityZone(35))
}
