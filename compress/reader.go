package compress

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Magic prefixes of the stream formats Detect can recognize.
var (
	magicZstd   = []byte{0x28, 0xB5, 0x2F, 0xFD}
	magicGzip   = []byte{0x1F, 0x8B}
	magicLZ4    = []byte{0x04, 0x22, 0x4D, 0x18}
	magicS2     = []byte{0xFF, 0x06, 0x00, 0x00, 'S', '2', 's', 'T', 'w', 'O'}
	magicSnappy = []byte{0xFF, 0x06, 0x00, 0x00, 's', 'N', 'a', 'P', 'p', 'Y'}
)

// NewReader wraps r with a streaming decompressor for the given format.
// FormatNone returns r unchanged behind a no-op closer.
//
// The returned reader is single-use; closing it does not close r.
func NewReader(format Format, r io.Reader) (io.ReadCloser, error) {
	switch format {
	case FormatNone:
		return io.NopCloser(r), nil
	case FormatZstd:
		decoder, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("create zstd reader: %w", err)
		}

		return decoder.IOReadCloser(), nil
	case FormatS2:
		return io.NopCloser(s2.NewReader(r)), nil
	case FormatLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	case FormatGzip:
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}

		return gr, nil
	default:
		return nil, fmt.Errorf("unsupported compression format: %s", format)
	}
}

// Detect sniffs the compression format from the stream's magic bytes without
// consuming them. Inputs that match no known magic are reported as
// FormatNone, so plain uncompressed JSON flows through unchanged.
func Detect(br *bufio.Reader) (Format, error) {
	prefix, err := br.Peek(len(magicS2))
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("peek stream prefix: %w", err)
	}

	switch {
	case bytes.HasPrefix(prefix, magicZstd):
		return FormatZstd, nil
	case bytes.HasPrefix(prefix, magicGzip):
		return FormatGzip, nil
	case bytes.HasPrefix(prefix, magicLZ4):
		return FormatLZ4, nil
	case bytes.HasPrefix(prefix, magicS2), bytes.HasPrefix(prefix, magicSnappy):
		// s2.NewReader transparently accepts snappy-framed streams, so both
		// identifiers route to the same decompressor.
		return FormatS2, nil
	default:
		return FormatNone, nil
	}
}
