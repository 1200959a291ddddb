package diskimage

import (
	"encoding/binary"
	"fmt"
	"os"
)

// G64 stores raw GCR bytes per half-track plus a density table, so no
// GCR encode/decode is needed on load or save — the file already is
// what the flux decoder reads bit-by-bit.
const (
	g64Magic      = "GCR-1541"
	g64HeaderLen  = 12
	g64MaxTracks  = 84
	g64TrackSlot  = 7928 // VICE's conventional max track byte length
)

func loadG64(path string) (*Image, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(raw) < g64HeaderLen || string(raw[0:8]) != g64Magic {
		return nil, fmt.Errorf("diskimage: not a G64 image: %s", path)
	}
	numTracks := int(raw[9])

	img := &Image{format: FormatG64, path: path}
	offTableStart := g64HeaderLen
	speedTableStart := offTableStart + numTracks*4

	for ht := 0; ht < numTracks && ht < g64MaxTracks; ht++ {
		trackOff := binary.LittleEndian.Uint32(raw[offTableStart+ht*4:])
		if trackOff == 0 {
			continue
		}
		speedEntry := binary.LittleEndian.Uint32(raw[speedTableStart+ht*4:])
		density := int(speedEntry & 0x3)

		trackLenBytes := int(binary.LittleEndian.Uint16(raw[trackOff:]))
		data := make([]byte, trackLenBytes)
		copy(data, raw[int(trackOff)+2:int(trackOff)+2+trackLenBytes])

		img.tracks[ht] = data
		img.trackBits[ht] = trackLenBytes * 8
		img.density[ht] = byte(density)
		img.used[ht] = true
	}
	return img, nil
}

func saveG64(img *Image) error {
	numTracks := g64MaxTracks
	offTableStart := g64HeaderLen
	speedTableStart := offTableStart + numTracks*4
	dataStart := speedTableStart + numTracks*4

	var data []byte
	offsets := make([]uint32, numTracks)
	speeds := make([]uint32, numTracks)

	cursor := uint32(dataStart)
	for ht := 0; ht < numTracks; ht++ {
		if !img.used[ht] {
			continue
		}
		offsets[ht] = cursor
		speeds[ht] = uint32(img.density[ht])

		lenBytes := len(img.tracks[ht])
		entry := make([]byte, 2+lenBytes)
		binary.LittleEndian.PutUint16(entry, uint16(lenBytes))
		copy(entry[2:], img.tracks[ht])
		data = append(data, entry...)
		cursor += uint32(len(entry))
	}

	out := make([]byte, dataStart)
	copy(out[0:8], g64Magic)
	out[8] = 0 // version
	out[9] = byte(numTracks)
	binary.LittleEndian.PutUint16(out[10:12], uint16(g64TrackSlot))
	for ht := 0; ht < numTracks; ht++ {
		binary.LittleEndian.PutUint32(out[offTableStart+ht*4:], offsets[ht])
		binary.LittleEndian.PutUint32(out[speedTableStart+ht*4:], speeds[ht])
	}
	out = append(out, data...)
	return os.WriteFile(img.path, out, 0o644)
}
