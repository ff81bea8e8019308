// SPDX-License-Identifier: MIT

package wad

// tinySlotFlag is the sentinel value of Encoder.lastFlag meaning "the
// previous packet has no tiny-suffix slot available" — either because
// none has been emitted yet, or because its slot was just filled by a
// literal of length 1-3. A systems-rewrite of the original's
// DO_NOT_INJECT_FLAG magic integer.
const tinySlotFlag = -1

// Encoder is a per-block, single-threaded packet producer. It emits a
// stream of packets for its source slice without any concern for the 8
// KiB realignment the compressor driver enforces across the whole stream;
// that is the stitcher's job.
type Encoder struct {
	out      []byte
	lastFlag int
}

// NewEncoder returns an Encoder with no packets emitted yet.
func NewEncoder() *Encoder {
	return &Encoder{lastFlag: tinySlotFlag}
}

// Bytes returns the packets emitted so far.
func (e *Encoder) Bytes() []byte {
	return e.out
}

// EncodeBlock runs a fresh Encoder over src[pos:end] and returns the
// packets it emitted. A match or literal never grows past end; match
// sources may lie before pos, since the finder searches the full src slice
// for cross-block lookback.
func EncodeBlock(src []byte, pos, end int) []byte {
	e := NewEncoder()
	for pos < end {
		endOfBuffer := pos+encoderCap >= end
		literalSize, matchOffset, matchSize := findMatch(src, pos, end, endOfBuffer)

		if literalSize == 0 {
			pos = e.encodeMatch(src, pos, matchOffset, matchSize)
			continue
		}

		pos = e.encodeLiteral(src, pos, literalSize)
		if matchSize > 0 {
			pos = e.encodeMatch(src, pos, matchOffset, matchSize)
		}
	}
	return e.out
}

// encodeMatch appends a match packet for a match of matchSize bytes at
// matchOffset, starting from source position pos, and returns the
// advanced position.
func (e *Encoder) encodeMatch(src []byte, pos, matchOffset, matchSize int) int {
	lookback := pos - matchOffset
	start := len(e.out)
	e.out = emitMatchPacket(e.out, matchSize, lookback)
	e.lastFlag = int(e.out[start])
	return pos + matchSize
}

// encodeLiteral appends a literal of literalSize bytes starting at pos
// (folding it into the previous packet's tiny suffix when it is 1-3
// bytes), and returns the advanced position.
func (e *Encoder) encodeLiteral(src []byte, pos, literalSize int) int {
	if e.lastFlag >= 0 && e.lastFlag < literalFlagMax {
		// Two literals in a row are forbidden; separate them with a dummy.
		e.out = appendDummyPacket(e.out)
		e.lastFlag = int(dummyPacket[0])
	}

	if literalSize <= 3 {
		if e.lastFlag == tinySlotFlag {
			// The previous packet's tiny slot is already spoken for (or
			// there is no previous packet); reserve a fresh one.
			e.out = appendDummyPacket(e.out)
		}
		e.out = injectTinySuffix(e.out, src[pos:pos+literalSize])
		e.lastFlag = tinySlotFlag
		return pos + literalSize
	}

	start := len(e.out)
	e.out = emitLiteralPacket(e.out, src[pos:pos+literalSize])
	e.lastFlag = int(e.out[start])
	return pos + literalSize
}
