package compress

import "fmt"

// Compressor compresses whole in-memory payloads.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//   - Input slice is not modified
//   - Internal encoder state may be pooled for efficiency
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses whole in-memory payloads.
//
// This interface mirrors the Compressor interface but focuses on the
// decompression operation. Separate interfaces allow asymmetric
// implementations where compression and decompression have different
// performance characteristics or resource requirements.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// The input must have been compressed with the same format. The
	// decompressor validates the data and returns an error if it is
	// corrupted or uses an incompatible format.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a fresh Codec for the
// specified format. Unlike GetCodec it never shares instances, so callers
// that want isolated codec state use this entry point.
//
// Parameters:
//   - format: Compression format (None, Zstd, S2, LZ4, or Gzip)
//
// Returns:
//   - Codec: Codec instance for the specified format
//   - error: Invalid format error
func CreateCodec(format Format) (Codec, error) {
	switch format {
	case FormatNone:
		return NewNoOpCompressor(), nil
	case FormatZstd:
		return NewZstdCompressor(), nil
	case FormatS2:
		return NewS2Compressor(), nil
	case FormatLZ4:
		return NewLZ4Compressor(), nil
	case FormatGzip:
		return NewGzipCompressor(), nil
	default:
		return nil, fmt.Errorf("invalid compression format: %s", format)
	}
}

var builtinCodecs = map[Format]Codec{
	FormatNone: NewNoOpCompressor(),
	FormatZstd: NewZstdCompressor(),
	FormatS2:   NewS2Compressor(),
	FormatLZ4:  NewLZ4Compressor(),
	FormatGzip: NewGzipCompressor(),
}

// GetCodec retrieves a built-in Codec for the specified format.
func GetCodec(format Format) (Codec, error) {
	if codec, ok := builtinCodecs[format]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression format: %s", format)
}
