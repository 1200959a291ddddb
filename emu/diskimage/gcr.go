package diskimage

// GCR (group-coded recording) nibble tables and the 4-byte<->5-byte
// conversion routines the 1541 controller's serial ASIC implements in
// hardware. Recovered verbatim from original_source/src/gcr.cpp, since
// spec.md names the GCR encoding but not its exact nibble tables or
// on-track sector layout.

// gcrEncode maps a 4-bit nibble to its 5-bit GCR code. Every code has at
// most two consecutive zero bits, so the decoder can never mistake data
// for the all-ones sync mark.
var gcrEncode = [16]byte{
	0x0a, 0x0b, 0x12, 0x13,
	0x0e, 0x0f, 0x16, 0x17,
	0x09, 0x19, 0x1a, 0x1b,
	0x0d, 0x1d, 0x1e, 0x15,
}

// gcrDecodeHigh/gcrDecodeLow recover a nibble from a 5-bit GCR code,
// placed in the high or low nibble of the result respectively. 0xff
// marks a GCR code with no valid nibble (a "bad GCR" group).
var gcrDecodeHigh = [32]byte{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0x80, 0x00, 0x10, 0xff, 0xc0, 0x40, 0x50,
	0xff, 0xff, 0x20, 0x30, 0xff, 0xf0, 0x60, 0x70,
	0xff, 0x90, 0xa0, 0xb0, 0xff, 0xd0, 0xe0, 0xff,
}

var gcrDecodeLow = [32]byte{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0x08, 0x00, 0x01, 0xff, 0x0c, 0x04, 0x05,
	0xff, 0xff, 0x02, 0x03, 0xff, 0x0f, 0x06, 0x07,
	0xff, 0x09, 0x0a, 0x0b, 0xff, 0x0d, 0x0e, 0xff,
}

// convert4BytesToGCR packs 4 raw bytes (8 nibbles) into 5 GCR bytes (8
// five-bit groups), matching the 1541 write channel's bit packing.
func convert4BytesToGCR(src [4]byte, dst []byte) {
	g := func(b byte) uint32 { return uint32(gcrEncode[b]) }

	dst[0] = byte((g(src[0]>>4) << 3) | (g(src[0]&0x0f) >> 2))
	dst[1] = byte((g(src[0]&0x0f)<<6)&0xc0) |
		byte((g(src[1]>>4)<<1)|(g(src[1]&0x0f)>>4))
	dst[2] = byte((g(src[1]&0x0f)<<4)&0xf0) | byte(g(src[2]>>4)>>1)
	dst[3] = byte((g(src[2]>>4)<<7)&0x80) | byte(g(src[2]&0x0f)<<2) |
		byte(g(src[3]>>4)>>3)
	dst[4] = byte((g(src[3]>>4)<<5)&0xe0) | byte(g(src[3]&0x0f))
}

// convert4BytesFromGCR is the inverse of convert4BytesToGCR. It returns
// false if any of the eight 5-bit groups is not a valid GCR code.
func convert4BytesFromGCR(src [5]byte, dst []byte) bool {
	groups := [8]byte{
		src[0] >> 3,
		((src[0] << 2) | (src[1] >> 6)) & 0x1f,
		(src[1] >> 1) & 0x1f,
		((src[1] << 4) | (src[2] >> 4)) & 0x1f,
		((src[2] << 1) | (src[3] >> 7)) & 0x1f,
		(src[3] >> 2) & 0x1f,
		((src[3] << 3) | (src[4] >> 5)) & 0x1f,
		src[4] & 0x1f,
	}

	dst[0] = gcrDecodeHigh[groups[0]] | gcrDecodeLow[groups[1]]
	dst[1] = gcrDecodeHigh[groups[2]] | gcrDecodeLow[groups[3]]
	dst[2] = gcrDecodeHigh[groups[4]] | gcrDecodeLow[groups[5]]
	dst[3] = gcrDecodeHigh[groups[6]] | gcrDecodeLow[groups[7]]

	for i := 0; i < 8; i += 2 {
		if gcrDecodeHigh[groups[i]] == 0xff || gcrDecodeLow[groups[i+1]] == 0xff {
			return false
		}
	}
	return true
}

// isBadGCR reports whether a raw GCR byte pair contains three or more
// consecutive zero bits anywhere in its 16 bits — a pattern the real
// encoder never produces and the decoder uses to flag a corrupt track.
func isBadGCR(a, b byte) bool {
	combined := uint16(a)<<8 | uint16(b)
	window := byte(0)
	for i := 0; i < 16; i++ {
		bit := byte((combined >> (15 - i)) & 1)
		if bit == 0 {
			window++
			if window >= 3 {
				return true
			}
		} else {
			window = 0
		}
	}
	return false
}

// sectorsPerTrack returns the 1541's sector count for 1-indexed track.
func sectorsPerTrack(track int) int {
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

// densityZone returns the speed zone (0-3, innermost to outermost) the
// 1541 selects for 1-indexed track, matching mechanism.CellWidthUS's
// zone ordering.
func densityZone(track int) int {
	switch {
	case track <= 17:
		return 3
	case track <= 24:
		return 2
	case track <= 30:
		return 1
	default:
		return 0
	}
}
