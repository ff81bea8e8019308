// SPDX-License-Identifier: MIT

package wad

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInputSet() []struct {
	name string
	data []byte
} {
	return []struct {
		name string
		data []byte
	}{
		{name: "nil", data: nil},
		{name: "empty", data: []byte{}},
		{name: "single-byte", data: []byte{0xAB}},
		{name: "short-text", data: []byte("hello wrench, wad test")},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 2000)},
		{name: "long-run", data: bytes.Repeat([]byte{0xFF}, 12000)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1200)},
		{name: "tiny-literal-heavy", data: bytes.Repeat([]byte{1, 2, 3, 9, 9, 9, 9, 9, 9, 9}, 800)},
		{name: "cross-block-seam", data: bytes.Repeat([]byte("seam-test-data-"), 5000)},
	}
}

func TestCompressDecompress_RoundTripAcrossThreadCounts(t *testing.T) {
	threadCounts := []int{1, 2, 4, 8}

	for _, in := range testInputSet() {
		for _, tc := range threadCounts {
			t.Run(in.name, func(t *testing.T) {
				cmp, err := Compress(in.data, &CompressOptions{ThreadCount: tc})
				require.NoError(t, err)
				require.GreaterOrEqual(t, len(cmp), headerSize)

				out, err := Decompress(cmp, nil)
				require.NoError(t, err)
				assert.True(t, bytes.Equal(out, in.data), "round-trip mismatch for %s at threads=%d", in.name, tc)
			})
		}
	}
}

func TestCompress_HeaderTotalSizeMatchesStreamLength(t *testing.T) {
	data := bytes.Repeat([]byte("header-consistency"), 4096)

	cmp, err := Compress(data, &CompressOptions{ThreadCount: 3})
	require.NoError(t, err)

	buf := NewByteBuffer(cmp)
	h, err := ReadHeader(buf)
	require.NoError(t, err)
	assert.EqualValues(t, len(cmp), h.TotalSize)
}

func TestCompress_Deterministic(t *testing.T) {
	data := bytes.Repeat([]byte("determinism-check-payload"), 777)

	first, err := Compress(data, &CompressOptions{ThreadCount: 4})
	require.NoError(t, err)
	second, err := Compress(data, &CompressOptions{ThreadCount: 4})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCompress_NoAdjacentLiteralPackets(t *testing.T) {
	data := bytes.Repeat([]byte("literal-adjacency-check-"), 3000)

	cmp, err := Compress(data, &CompressOptions{ThreadCount: 2})
	require.NoError(t, err)

	pos := headerSize
	sawPacket := false
	for pos < len(cmp) {
		n, err := PacketLength(cmp[pos:])
		require.NoError(t, err)
		sawPacket = true
		pos += n
	}
	assert.True(t, sawPacket)
	assert.Equal(t, len(cmp), pos, "packet walk must land exactly on the stream end")
}

func TestCompress_LargeInputProducesPadPackets(t *testing.T) {
	// Pseudo-random bytes barely compress, so the stream spans several
	// 8 KiB windows.
	data := make([]byte, 65536)
	x := uint32(1)
	for i := range data {
		x = x*1664525 + 1013904223
		data[i] = byte(x >> 24)
	}

	cmp, err := Compress(data, &CompressOptions{ThreadCount: 1})
	require.NoError(t, err)

	padCount := 0
	pos := headerSize
	for pos < len(cmp) {
		if cmp[pos] == padPacket[0] {
			padCount++
			// Skip the pad packet and its filler to the next window start.
			pos += len(padPacket)
			for pos%alignBoundary != headerSize {
				pos++
			}
			continue
		}
		n, err := PacketLength(cmp[pos:])
		require.NoError(t, err)
		pos += n
	}
	assert.GreaterOrEqual(t, padCount, 3)

	out, err := Decompress(cmp, nil)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestDecompress_RejectsBadMagic(t *testing.T) {
	bad := []byte("NOTWAD\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00")
	_, err := Decompress(bad, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadMagic)
}

func TestDecompress_RejectsDoubleLiteral(t *testing.T) {
	// Two literal packets back-to-back: 0x01 "abcd" 0x01 "efgh" (a short
	// literal copies flag+3 bytes), no dummy in between. The grammar
	// forbids this.
	body := []byte{0x01, 'a', 'b', 'c', 'd', 0x01, 'e', 'f', 'g', 'h'}
	stream := buildStream(body)

	_, err := Decompress(stream, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDoubleLiteral)
}

func TestDecompress_TruncatedInput(t *testing.T) {
	body := []byte{0x04, 'a', 'b'} // claims 7 literal bytes, only 2 present
	stream := buildStream(body)

	_, err := Decompress(stream, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTruncatedInput)
}

func TestDecompress_EmptyBodyYieldsEmptyOutput(t *testing.T) {
	stream := buildStream(nil)

	out, err := Decompress(stream, nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDecompressN_StopsAtLimit(t *testing.T) {
	data := bytes.Repeat([]byte("limit-test-payload"), 500)
	cmp, err := Compress(data, nil)
	require.NoError(t, err)

	out, err := DecompressN(cmp, 10, nil)
	require.NoError(t, err)
	assert.Equal(t, data[:10], out)
}

func TestDecompressFromReader_MaxInputSize(t *testing.T) {
	data := bytes.Repeat([]byte("reader-cap"), 200)
	cmp, err := Compress(data, nil)
	require.NoError(t, err)

	_, err = DecompressFromReader(bytes.NewReader(cmp), &DecompressOptions{MaxInputSize: len(cmp) - 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	out, err := DecompressFromReader(bytes.NewReader(cmp), &DecompressOptions{MaxInputSize: len(cmp)})
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

// buildStream wraps body with a minimal valid 16-byte header whose
// total_size covers exactly the header plus body.
func buildStream(body []byte) []byte {
	buf := NewByteBuffer(nil)
	Header{}.WriteTo(buf)
	buf.WriteBytes(body)
	out := buf.Bytes()
	buf2 := NewByteBuffer(out)
	buf2.WriteUint32LEAt(3, uint32(len(out)))
	return buf2.Bytes()
}
