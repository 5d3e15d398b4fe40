// Package pipeline wraps the split package in a file-to-file conversion
// workflow: read a compressed file containing one JSON array, convert it to
// JSON Lines in a single streaming pass, and re-archive the result as a zip
// entry.
//
// The compression format of the input is sniffed from its magic bytes by
// default (zstd, gzip, lz4, s2 or plain), and the emitted JSON Lines are
// checksummed with xxHash64 on the fly; the digest is recorded both in the
// returned Stats and in the archive comment.
//
// Two execution modes share the same semantics:
//
//   - the default single-goroutine mode decompresses, splits and writes in
//     one loop;
//   - WithConcurrency moves decompression to a producer goroutine feeding
//     the splitter through a bounded channel, which helps when the
//     decompressor and the zip deflater compete for the same core.
//
// Any fault aborts the job and removes the partially written archive; there
// is no retry and no recovery.
package pipeline
