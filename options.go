// SPDX-License-Identifier: MIT

package wad

import "go.uber.org/zap"

// DecompressOptions configures decompression.
// Limit bounds how many destination bytes are produced; zero means decode
// the whole stream (spec's bytes_to_decompress == 0 case).
type DecompressOptions struct {
	// Limit is the number of destination bytes to produce. Zero decodes
	// until the header's total size is reached.
	Limit int
	// MaxInputSize limits how many bytes DecompressFromReader may read
	// (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns options that decode the whole stream
// with no input size limit.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{}
}

// CompressOptions configures compression.
type CompressOptions struct {
	// ThreadCount is the number of parallel block workers. Must be >= 1;
	// DefaultCompressOptions uses 1.
	ThreadCount int
	// Logger receives debug-level tracing of block partitioning and
	// seam/pad insertion. A nil Logger behaves like zap.NewNop().
	Logger *zap.Logger
}

// DefaultCompressOptions returns options for single-threaded compression
// with no logging.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{ThreadCount: 1}
}

func (o *CompressOptions) logger() *zap.Logger {
	if o == nil || o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o *CompressOptions) threadCount() int {
	if o == nil {
		return 1
	}
	return o.ThreadCount
}
