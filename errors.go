// SPDX-License-Identifier: MIT

package wad

import "errors"

// Sentinel errors for WAD decompression and compression. Most are wrapped
// with call-site context via github.com/go-faster/errors before being
// returned, some are returned bare; callers compare against these with
// errors.Is.
var (
	// ErrBadMagic is returned when a header's first three bytes are not "WAD".
	ErrBadMagic = errors.New("wad: bad magic")
	// ErrDoubleLiteral is returned when two literal packets appear adjacent
	// in a compressed stream, which the grammar forbids.
	ErrDoubleLiteral = errors.New("wad: two literal packets in a row")
	// ErrTruncatedInput is returned when a packet reads past the end of the
	// source buffer.
	ErrTruncatedInput = errors.New("wad: truncated input")
	// ErrCorruptPacket is returned for a malformed packet; the decoder
	// returns it when a tiny-literal lookup would fall before the stream
	// start.
	ErrCorruptPacket = errors.New("wad: corrupt packet")
	// ErrInvalidParameter is returned for a bad thread count, an input too
	// small to hold a header, or a negative decompress limit.
	ErrInvalidParameter = errors.New("wad: invalid parameter")
	// ErrBadLookback is returned when a match's lookback distance underflows
	// the destination buffer.
	ErrBadLookback = errors.New("wad: bad lookback")
)
