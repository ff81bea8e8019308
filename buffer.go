// SPDX-License-Identifier: MIT

package wad

import "encoding/binary"

// ByteBuffer is a growable, positioned byte array. It supports sequential
// read/write with an internal cursor as well as random peeks at arbitrary
// absolute offsets, which the packet codec needs for back-references and
// the stitcher needs for header patching. Buffers are owned by the caller;
// the codec never retains a reference past a call.
type ByteBuffer struct {
	data []byte
	pos  int
}

// NewByteBuffer wraps an existing slice for reading, positioned at 0.
func NewByteBuffer(data []byte) *ByteBuffer {
	return &ByteBuffer{data: data}
}

// Bytes returns the buffer's backing slice.
func (b *ByteBuffer) Bytes() []byte {
	return b.data
}

// Size returns the number of bytes currently in the buffer.
func (b *ByteBuffer) Size() int {
	return len(b.data)
}

// Pos returns the current cursor position.
func (b *ByteBuffer) Pos() int {
	return b.pos
}

// Seek repositions the cursor to an absolute offset.
func (b *ByteBuffer) Seek(pos int) {
	b.pos = pos
}

// ReadByte reads one byte at the cursor and advances it.
func (b *ByteBuffer) ReadByte() (byte, error) {
	if b.pos >= len(b.data) {
		return 0, ErrTruncatedInput
	}
	v := b.data[b.pos]
	b.pos++
	return v, nil
}

// PeekByte reads one byte at an arbitrary absolute offset without moving
// the cursor.
func (b *ByteBuffer) PeekByte(offset int) (byte, error) {
	if offset < 0 || offset >= len(b.data) {
		return 0, ErrTruncatedInput
	}
	return b.data[offset], nil
}

// ReadUint32LE reads a little-endian 32-bit value at the cursor and
// advances it by 4.
func (b *ByteBuffer) ReadUint32LE() (uint32, error) {
	if b.pos+4 > len(b.data) {
		return 0, ErrTruncatedInput
	}
	v := binary.LittleEndian.Uint32(b.data[b.pos : b.pos+4])
	b.pos += 4
	return v, nil
}

// WriteByte writes one byte at the cursor, growing the buffer if needed,
// and advances the cursor.
func (b *ByteBuffer) WriteByte(v byte) {
	b.ensure(b.pos + 1)
	b.data[b.pos] = v
	b.pos++
}

// WriteBytes writes a slice at the cursor, growing the buffer if needed,
// and advances the cursor past it.
func (b *ByteBuffer) WriteBytes(v []byte) {
	b.ensure(b.pos + len(v))
	copy(b.data[b.pos:], v)
	b.pos += len(v)
}

// WriteUint32LEAt patches a little-endian 32-bit value at an absolute
// offset without moving the cursor. Used to back-patch the header's
// total_size field once the final stream length is known.
func (b *ByteBuffer) WriteUint32LEAt(offset int, v uint32) {
	b.ensure(offset + 4)
	binary.LittleEndian.PutUint32(b.data[offset:offset+4], v)
}

// ensure grows the backing slice so that it has at least n bytes.
func (b *ByteBuffer) ensure(n int) {
	if n <= len(b.data) {
		return
	}
	grown := make([]byte, n)
	copy(grown, b.data)
	b.data = grown
}
