package diskimage

import (
	"bytes"
	"io"
	"os"

	"github.com/pierrec/lz4/v4"
)

// NBZ is an LZ4-compressed NIB image, used for copy-protected dumps
// where the raw nibble data is mostly redundant padding. Loading and
// saving simply wrap loadNIB/saveNIB around an LZ4 stream.
func loadNBZ(path string) (*Image, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var decoded bytes.Buffer
	zr := lz4.NewReader(bytes.NewReader(raw))
	if _, err := io.Copy(&decoded, zr); err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp("", "nbz-*.nib")
	if err != nil {
		return nil, err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)
	if _, err := tmp.Write(decoded.Bytes()); err != nil {
		tmp.Close()
		return nil, err
	}
	tmp.Close()

	img, err := loadNIB(tmpPath)
	if err != nil {
		return nil, err
	}
	img.format = FormatNBZ
	img.path = path
	return img, nil
}

func saveNBZ(img *Image) error {
	plain := make([]byte, nibHeaderLen+nibMaxTracks*nibTrackLen)
	copy(plain[0:], nibMagic)
	for ht := 0; ht < nibMaxTracks; ht++ {
		plain[0x10+ht] = img.density[ht]
		trackOff := nibHeaderLen + ht*nibTrackLen
		if img.used[ht] {
			copy(plain[trackOff:trackOff+nibTrackLen], img.tracks[ht])
		} else {
			for i := 0; i < nibTrackLen; i++ {
				plain[trackOff+i] = 0xff
			}
		}
	}

	var compressed bytes.Buffer
	zw := lz4.NewWriter(&compressed)
	if _, err := zw.Write(plain); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}
	return os.WriteFile(img.path, compressed.Bytes(), 0o644)
}
