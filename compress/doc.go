// Package compress provides the compression codecs and stream readers used
// by the jsonl conversion pipeline.
//
// Two surfaces are offered:
//
//   - Block codecs (Compressor, Decompressor, Codec) for whole in-memory
//     payloads, created via CreateCodec or GetCodec.
//   - Stream readers (NewReader) that wrap an io.Reader for the pipeline's
//     decompress-while-converting path, with Detect sniffing the input
//     format from its magic bytes.
//
// # Supported Formats
//
//   - None: passthrough (uncompressed input)
//   - Zstd: best compression ratio, the original archive format
//   - S2: balanced compression and speed
//   - LZ4: fastest decompression
//   - Gzip: ubiquitous interchange format
//
// All stream readers are single-use and tied to one conversion job. Block
// codecs are safe for concurrent use; expensive encoder/decoder state is
// pooled internally.
package compress
