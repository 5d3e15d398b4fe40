package compress

import "fmt"

// Format identifies a compression format handled by this package.
type Format uint8

const (
	FormatNone Format = 0x1 // FormatNone represents no compression.
	FormatZstd Format = 0x2 // FormatZstd represents Zstandard compression.
	FormatS2   Format = 0x3 // FormatS2 represents S2 stream compression.
	FormatLZ4  Format = 0x4 // FormatLZ4 represents LZ4 frame compression.
	FormatGzip Format = 0x5 // FormatGzip represents gzip compression.
)

func (f Format) String() string {
	switch f {
	case FormatNone:
		return "None"
	case FormatZstd:
		return "Zstd"
	case FormatS2:
		return "S2"
	case FormatLZ4:
		return "LZ4"
	case FormatGzip:
		return "Gzip"
	default:
		return "Unknown"
	}
}

// ParseFormat maps a user-supplied format name to a Format.
// Accepted names: none, zstd, s2, lz4, gzip (case-sensitive, lower case).
func ParseFormat(name string) (Format, error) {
	switch name {
	case "none":
		return FormatNone, nil
	case "zstd":
		return FormatZstd, nil
	case "s2":
		return FormatS2, nil
	case "lz4":
		return FormatLZ4, nil
	case "gzip":
		return FormatGzip, nil
	default:
		return 0, fmt.Errorf("unknown compression format: %q", name)
	}
}
