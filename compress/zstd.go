package compress

// ZstdCompressor provides Zstandard compression, the format the conversion
// pipeline's archived inputs are normally stored in.
//
// Performance characteristics:
//   - Compression: moderate speed, best ratio of the supported formats
//   - Decompression: fast, well suited to the read-heavy pipeline path
//   - Memory usage: encoder/decoder state is pooled across operations
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
