// SPDX-License-Identifier: MIT

package wad

import (
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/go-faster/errors"
)

// Compress encodes src into a complete WAD stream: header, packets, and the
// 8 KiB pad/seam-dummy realignment the console's scratchpad copy requires.
// opts may be nil (single-threaded, no logging).
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	threadCount := opts.threadCount()
	if threadCount < 1 {
		return nil, errors.Wrap(ErrInvalidParameter, "ThreadCount must be >= 1")
	}
	log := opts.logger()

	blocks := partitionBlocks(len(src), threadCount)
	log.Check(zap.DebugLevel, "partitioned blocks").Write(
		zap.Int("thread_count", threadCount),
		zap.Int("block_count", len(blocks)),
	)

	intermediates := make([][]byte, len(blocks))
	g := new(errgroup.Group)
	for i, blk := range blocks {
		i, blk := i, blk
		g.Go(func() error {
			intermediates[i] = EncodeBlock(src, blk.pos, blk.end)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "encode blocks")
	}

	dest := NewByteBuffer(nil)
	Header{}.WriteTo(dest)

	for i, intermediate := range intermediates {
		pos := 0
		for pos < len(intermediate) {
			packetSize, err := PacketLength(intermediate[pos:])
			if err != nil {
				return nil, errors.Wrap(err, "stitch block")
			}

			insertDummy := i != 0 && pos == 0
			insertSize := packetSize
			if insertDummy {
				insertSize += 3
			}

			if ((dest.Pos()+0x1ff0)%alignBoundary)+insertSize > alignBoundary-3 {
				log.Check(zap.DebugLevel, "inserting pad packet").Write(zap.Int("dest_pos", dest.Pos()))
				dest.WriteBytes(padPacket[:])
				for dest.Pos()%alignBoundary != headerSize {
					dest.WriteByte(padFillByte)
				}
			}

			if insertDummy {
				log.Check(zap.DebugLevel, "inserting seam dummy packet").Write(zap.Int("block", i))
				dest.WriteBytes(dummyPacket[:])
			}

			dest.WriteBytes(intermediate[pos : pos+packetSize])
			pos += packetSize
		}
	}

	totalSize := uint32(dest.Pos())
	dest.WriteUint32LEAt(3, totalSize)

	return dest.Bytes(), nil
}

type block struct {
	pos, end int
}

// partitionBlocks splits a source of srcSize bytes into threadCount disjoint
// ranges, rounding the combined size up to a multiple of 0x100*threadCount
// so that every block starts on an equal, 256-byte-aligned stride. Blocks
// are truncated at srcSize, so the trailing ones may be short or empty.
func partitionBlocks(srcSize, threadCount int) []block {
	if threadCount == 1 {
		return []block{{0, srcSize}}
	}

	minBlockSize := 0x100 * threadCount
	total := srcSize
	if rem := total % minBlockSize; rem != 0 {
		total += minBlockSize - rem
	}
	blockSize := total / threadCount

	blocks := make([]block, threadCount)
	for i := 0; i < threadCount; i++ {
		pos := blockSize * i
		end := blockSize * (i + 1)
		if end > srcSize {
			end = srcSize
		}
		if pos > srcSize {
			pos = srcSize
		}
		blocks[i] = block{pos, end}
	}
	return blocks
}
