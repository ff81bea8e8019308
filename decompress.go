// SPDX-License-Identifier: MIT

package wad

import (
	"io"

	"github.com/go-faster/errors"
)

// Decompress decodes a full WAD stream and returns the decompressed bytes.
// opts may be nil (decode the whole stream).
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	limit := 0
	if opts != nil {
		limit = opts.Limit
	}
	return decompress(src, limit)
}

// DecompressN decodes exactly n destination bytes from src, or all
// available bytes if n is 0. opts may be nil.
func DecompressN(src []byte, n int, opts *DecompressOptions) ([]byte, error) {
	return decompress(src, n)
}

// DecompressFromReader reads the full stream then calls Decompress. No
// decoding logic of its own. If opts.MaxInputSize > 0 and more bytes are
// read, returns ErrInvalidParameter.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read source")
	}

	if opts != nil && opts.MaxInputSize > 0 && len(src) > opts.MaxInputSize {
		return nil, errors.Wrap(ErrInvalidParameter, "input exceeds MaxInputSize")
	}

	return Decompress(src, opts)
}

// decompress runs the §4.1 state machine. limit == 0 decodes the whole
// stream bounded by the header's total size; otherwise it stops once the
// destination has produced limit bytes.
func decompress(src []byte, limit int) ([]byte, error) {
	if limit < 0 {
		return nil, errors.Wrap(ErrInvalidParameter, "negative limit")
	}

	srcBuf := NewByteBuffer(src)
	header, err := ReadHeader(srcBuf)
	if err != nil {
		return nil, errors.Wrap(err, "read header")
	}

	dst := make([]byte, 0, estimateOutputSize(src, limit))

	srcPos := srcBuf.Pos()
	totalSize := int(header.TotalSize)

	for srcPos < totalSize && (limit == 0 || len(dst) < limit) {
		if srcPos >= len(src) {
			return nil, errors.Wrap(ErrTruncatedInput, "flag byte")
		}
		flag := src[srcPos]
		srcPos++

		if flag < literalFlagMax {
			n, consumed, derr := decodeLiteralLength(src, srcPos, flag)
			if derr != nil {
				return nil, derr
			}
			srcPos += consumed

			if srcPos+n > len(src) {
				return nil, errors.Wrap(ErrTruncatedInput, "literal run")
			}
			dst = append(dst, src[srcPos:srcPos+n]...)
			srcPos += n

			if srcPos < len(src) && src[srcPos] < literalFlagMax {
				return nil, ErrDoubleLiteral
			}
			continue
		}

		matchLen, lookback, isPad, newSrcPos, derr := decodeMatchHeader(src, srcPos, flag, len(dst))
		if derr != nil {
			return nil, derr
		}
		srcPos = newSrcPos

		if isPad {
			for srcPos%0x1000 != 0x10 {
				srcPos++
			}
			continue
		}

		if matchLen != 1 {
			if lookback < 0 {
				return nil, errors.Wrap(ErrBadLookback, "negative lookback")
			}
			for i := 0; i < matchLen; i++ {
				dst = append(dst, dst[lookback+i])
			}
		}

		if srcPos < 2 {
			return nil, errors.Wrap(ErrCorruptPacket, "tiny literal lookup underflows stream")
		}
		tiny := int(src[srcPos-2] & 0x03)
		if tiny > 0 {
			if srcPos+tiny > len(src) {
				return nil, errors.Wrap(ErrTruncatedInput, "tiny literal suffix")
			}
			dst = append(dst, src[srcPos:srcPos+tiny]...)
			srcPos += tiny
		}
	}

	if limit != 0 && len(dst) > limit {
		dst = dst[:limit]
	}
	return dst, nil
}

// decodeLiteralLength computes a literal packet's byte count and how many
// extra header bytes (beyond the flag already consumed) it used.
func decodeLiteralLength(src []byte, pos int, flag byte) (n int, consumed int, err error) {
	if flag != 0 {
		return int(flag) + 3, 0, nil
	}
	if pos >= len(src) {
		return 0, 0, errors.Wrap(ErrTruncatedInput, "long literal length byte")
	}
	return int(src[pos]) + 18, 1, nil
}

// decodeMatchHeader parses a bigger/big/little match packet's header
// (everything but the match copy and tiny literal suffix) starting at pos,
// the byte immediately after the flag. dstPos is the destination length so
// far, used for lookback arithmetic.
func decodeMatchHeader(src []byte, pos int, flag byte, dstPos int) (matchLen, lookback int, isPad bool, newPos int, err error) {
	switch {
	case flag < biggerMatchFlagMax:
		// This family doubles as the pad/dummy no-op carrier: a packet whose
		// lookback resolves to the current destination position is never a
		// real match. If its raw length field is 1 it is a dummy (falls
		// through with matchLen == 1, i.e. no copy); otherwise it is a pad
		// that advances the source cursor to the next offset 0x10 past a
		// 4 KiB boundary.
		raw := int(flag & 7)
		if raw == 0 {
			x, e := readByteAt(src, &pos)
			if e != nil {
				return 0, 0, false, pos, e
			}
			raw = int(x) + 7
		}

		b0, e := readByteAt(src, &pos)
		if e != nil {
			return 0, 0, false, pos, e
		}
		b1, e := readByteAt(src, &pos)
		if e != nil {
			return 0, 0, false, pos, e
		}

		lb := dstPos + int(flag&8)*-0x800 - (int(b0>>2) + int(b1)*0x40)
		if lb != dstPos {
			return raw + 2, lb - 0x4000, false, pos, nil
		}
		if raw != 1 {
			return 0, 0, true, pos, nil
		}
		return 1, 0, false, pos, nil

	case flag < bigMatchFlagMax:
		l := int(flag & 0x1F)
		if l == 0 {
			x, e := readByteAt(src, &pos)
			if e != nil {
				return 0, 0, false, pos, e
			}
			l = int(x) + 0x1F
		}
		l += 2

		b1, e := readByteAt(src, &pos)
		if e != nil {
			return 0, 0, false, pos, e
		}
		b2, e := readByteAt(src, &pos)
		if e != nil {
			return 0, 0, false, pos, e
		}

		lb := dstPos - (int(b1>>2) + int(b2)*0x40) - 1
		return l, lb, false, pos, nil

	default:
		b1, e := readByteAt(src, &pos)
		if e != nil {
			return 0, 0, false, pos, e
		}

		lb := dstPos - int(b1)*8 - ((int(flag)>>2)&7) - 1
		l := int(flag>>5) + 1
		return l, lb, false, pos, nil
	}
}

// readByteAt reads one byte from src at *pos and advances *pos.
func readByteAt(src []byte, pos *int) (byte, error) {
	if *pos >= len(src) {
		return 0, errors.Wrap(ErrTruncatedInput, "packet field")
	}
	b := src[*pos]
	*pos++
	return b, nil
}

// estimateOutputSize picks a starting capacity for the destination slice to
// cut down on reallocation without over-committing memory.
func estimateOutputSize(src []byte, limit int) int {
	if limit > 0 {
		return limit
	}
	return len(src) * 2
}
