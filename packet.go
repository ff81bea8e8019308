// SPDX-License-Identifier: MIT

package wad

// emitMatchPacket appends the flag/position bytes for a match of matchSize
// bytes looking back matchLookback bytes from the current destination
// position, selecting the cheapest family that can represent it. It
// mirrors the original encoder's family selection: little match when it
// fits in 8 bytes/2048 lookback, otherwise big or bigger match (the latter
// two share the 0x20-0x3F flag range, distinguished only by whether the
// length needs a second byte).
func emitMatchPacket(out []byte, matchSize, matchLookback int) []byte {
	delta := matchLookback - 1

	if matchSize <= littleMatchMaxLen && matchLookback <= littleMatchMaxLookback {
		posMajor := byte(delta / 8)
		posMinor := byte(delta % 8)
		out = append(out, byte(((matchSize-1)<<5)|int(posMinor)<<2), posMajor)
		return out
	}

	if matchSize > bigMatchMaxLen {
		out = append(out, markerA)
		out = append(out, byte(matchSize-(0x1F+2)))
	} else {
		out = append(out, markerA|byte(matchSize-2))
	}

	posMinor := byte(delta % 0x40)
	posMajor := byte(delta / 0x40)
	out = append(out, posMinor<<2, posMajor)
	return out
}

// markerA is the base flag for the 0x20-0x3F match family (the original
// source's "packet type B"), which covers both the spec's big-match range
// (3-33) and bigger-match range (34-288); the two differ only in whether
// the low 5 bits of the flag carry the length directly or are zero,
// signalling a following length byte.
const markerA = 1 << 5

// injectTinySuffix ORs a 1-3 byte literal count into the second-to-last
// byte of the most recently emitted packet (the byte at out[len(out)-2]),
// the slot every match/dummy packet reserves for this purpose, then
// appends the literal bytes themselves.
func injectTinySuffix(out []byte, lit []byte) []byte {
	out[len(out)-2] |= byte(len(lit))
	out = append(out, lit...)
	return out
}

// emitLiteralPacket appends a standalone literal packet (length >= 4) for
// lit. Literals of length 1-3 are never emitted this way; callers must
// fold them into a tiny suffix via injectTinySuffix instead.
func emitLiteralPacket(out []byte, lit []byte) []byte {
	n := len(lit)
	switch {
	case n <= 18:
		out = append(out, byte(n-3))
	default:
		out = append(out, 0, byte(n-18))
	}
	out = append(out, lit...)
	return out
}

// appendDummyPacket appends the no-op packet used to separate adjacent
// literals or to reserve a tiny-suffix slot when none is available.
func appendDummyPacket(out []byte) []byte {
	return append(out, dummyPacket[:]...)
}

// appendPadPacket appends the no-op realignment packet plus 0xEE filler
// until the stream position reaches the next offset congruent to
// headerSize modulo the 8 KiB alignment window.
func appendPadPacket(out []byte) []byte {
	out = append(out, padPacket[:]...)
	for len(out)%alignBoundary != headerSize {
		out = append(out, padFillByte)
	}
	return out
}
