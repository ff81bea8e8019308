// SPDX-License-Identifier: MIT

package wad

import "github.com/go-faster/errors"

// PacketLength computes the number of bytes the packet starting at b[0]
// occupies, including any tiny-literal suffix, without otherwise decoding
// it. For every packet other than a pad packet it agrees with the decoder's
// own consumption in Decompress; it is used by the compressor's stitcher to
// walk an intermediate block's packets. A pad packet measures as its 3
// header bytes: the 0xEE filler after it, which the decoder skips by stream
// position, is not counted.
//
// b is the packet stream starting at the packet to be measured; trailing
// bytes belonging to later packets may follow.
func PacketLength(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, errors.Wrap(ErrTruncatedInput, "packet length: empty input")
	}

	flag := b[0]
	size := 1

	if flag < literalFlagMax {
		if flag != 0 {
			size += int(flag) + 3
		} else {
			if len(b) < 2 {
				return 0, errors.Wrap(ErrTruncatedInput, "packet length: long literal size byte")
			}
			size += 1 + int(b[1]) + 18
		}

		if size < len(b) && b[size] < literalFlagMax {
			return 0, ErrDoubleLiteral
		}
		return size, nil
	}

	switch {
	case flag < biggerMatchFlagMax:
		if flag&7 == 0 {
			size++
		}
		size += 2

	case flag < bigMatchFlagMax:
		if flag&0x1F == 0 {
			size++
		}
		size += 2

	default:
		size++
	}

	if size-2 >= len(b) {
		return 0, errors.Wrap(ErrTruncatedInput, "packet length: tiny literal lookup")
	}
	size += int(b[size-2] & 0x03)

	return size, nil
}
