// SPDX-License-Identifier: MIT

package wad

// Header layout: 16 bytes, little-endian.
const (
	headerSize = 16

	magic0 = 0x57 // 'W'
	magic1 = 0x41 // 'A'
	magic2 = 0x44 // 'D'

	// headerTagOffset is where the informational "WRENCH01\0" tag starts.
	headerTagOffset = 7
)

var headerTag = [9]byte{'W', 'R', 'E', 'N', 'C', 'H', '0', '1', 0}

// Packet flag ranges.
const (
	literalFlagMax     = 0x10 // flags below this are literal packets
	biggerMatchFlagMax = 0x20 // [0x10, 0x20) bigger match / pad
	bigMatchFlagMax    = 0x40 // [0x20, 0x40) big match
	// [0x40, 0x100) little match
)

// Universal length constants.
const (
	minMatch   = 3
	maxLiteral = 273
	maxMatch   = 288 // decoder tolerance; see Open Question in design notes
	encoderCap = 256 // encoder never emits a match longer than this
)

// Per-family bounds.
const (
	littleMatchMinLen      = 3
	littleMatchMaxLen      = 8
	littleMatchMaxLookback = 2048

	bigMatchMinLen      = 3
	bigMatchMaxLen      = 33
	bigMatchMaxLookback = 16384

	biggerMatchMinLen      = 34
	biggerMatchMaxLen      = 288
	biggerMatchMaxLookback = 16384
)

// alignBoundary is the 8 KiB realignment window measured from headerSize.
const alignBoundary = 0x2000

// dummyPacket is a no-op bigger-match-family packet (lookback == dst.pos)
// used to separate adjacent literals or to carry a tiny literal when no
// match packet is available to piggyback on.
var dummyPacket = [3]byte{0x11, 0x00, 0x00}

// padPacket is a no-op packet inserted to keep the stream aligned to 8 KiB
// from offset 0x10; it is followed by 0xEE filler up to the boundary.
var padPacket = [3]byte{0x12, 0x00, 0x00}

const padFillByte = 0xEE
