// SPDX-License-Identifier: MIT

package wad

import "github.com/go-faster/errors"

// Header is the 16-byte WAD container header.
type Header struct {
	// TotalSize is the 32-bit length of the complete compressed stream,
	// including the header itself.
	TotalSize uint32
	// Tag is the informational "WRENCH01\0" literal tag; only the magic
	// bytes that precede it are validated on decode.
	Tag [9]byte
}

// ValidateMagic reports whether b starts with the "WAD" magic bytes.
// b may be shorter than the full header; only the first 3 bytes are read.
func ValidateMagic(b []byte) bool {
	return len(b) >= 3 && b[0] == magic0 && b[1] == magic1 && b[2] == magic2
}

// ReadHeader parses the 16-byte header at the buffer's current position
// and advances the cursor past it.
func ReadHeader(buf *ByteBuffer) (Header, error) {
	if buf.Size() < headerSize {
		return Header{}, errors.Wrap(ErrInvalidParameter, "input too small for header")
	}

	start := buf.Pos()
	if !ValidateMagic(buf.Bytes()[start:]) {
		return Header{}, ErrBadMagic
	}

	buf.Seek(start + 3)
	totalSize, err := buf.ReadUint32LE()
	if err != nil {
		return Header{}, errors.Wrap(err, "read total_size")
	}

	var h Header
	h.TotalSize = totalSize
	copy(h.Tag[:], buf.Bytes()[start+headerTagOffset:start+headerSize])
	buf.Seek(start + headerSize)

	return h, nil
}

// WriteTo appends the header to buf at its current position, using h.Tag
// if set or the default "WRENCH01\0" tag otherwise.
func (h Header) WriteTo(buf *ByteBuffer) {
	buf.WriteByte(magic0)
	buf.WriteByte(magic1)
	buf.WriteByte(magic2)

	var sizeBytes [4]byte
	sizeBytes[0] = byte(h.TotalSize)
	sizeBytes[1] = byte(h.TotalSize >> 8)
	sizeBytes[2] = byte(h.TotalSize >> 16)
	sizeBytes[3] = byte(h.TotalSize >> 24)
	buf.WriteBytes(sizeBytes[:])

	tag := h.Tag
	if tag == [9]byte{} {
		tag = headerTag
	}
	buf.WriteBytes(tag[:])
}
