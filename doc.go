// SPDX-License-Identifier: MIT

/*
Package wad implements the WAD container codec: a reverse-engineered
LZ77-family decompressor and a multi-threaded, block-aware compressor that
produce bitstreams consumable by the game's own decoder.

The stream is a 16-byte header (magic "WAD", a little-endian total size,
and an informational tag) followed by a sequence of packets: literals and
three match-packet families (little, big, bigger), each optionally followed
by 0-3 raw "tiny literal" bytes. The decoder tolerates a slightly larger
family of bitstreams than the encoder produces; round-trip equality, not
encoder byte-exact equality, is the contract.

# Decompress

	out, err := wad.Decompress(compressed, nil)

To decode only a prefix (e.g. to read just a file's header fields):

	out, err := wad.DecompressN(compressed, 64, nil)

From an io.Reader:

	out, err := wad.DecompressFromReader(r, nil)

# Compress

Options may be nil (uses one worker, no-op logger):

	out, err := wad.Compress(data, nil)
	out, err := wad.Compress(data, &wad.CompressOptions{ThreadCount: 4})
*/
package wad
