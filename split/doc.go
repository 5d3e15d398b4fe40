// Package split converts a single top-level JSON array into JSON Lines output
// using a single-pass, streaming, byte-level scan.
//
// The core is the Splitter state machine: it consumes arbitrary chunks of the
// input, tracks string-literal and nesting state, and emits each completed
// array element trimmed of outer whitespace. Structural-looking bytes inside
// quoted strings carry no meaning, and element content is passed through
// verbatim; the package never parses elements into typed values.
//
// Three front ends share the one state machine:
//
//   - Copy drains an io.Reader and writes every element plus a newline to an
//     io.Writer (push).
//   - Scanner yields one element per Scan call, reading only as much input as
//     needed (pull).
//   - Bytes and String convert an in-memory document, joining elements with a
//     single newline and no trailing newline.
//
// All three produce the same element sequence for the same input, regardless
// of how the input is chunked.
//
// A Splitter instance is single-threaded and owns its element buffer; create
// one per conversion job and discard it afterward. Structural faults
// (ErrMissingArrayStart, ErrUnexpectedEOF, ErrTrailingData) are fatal for the
// job: no retry, no rollback of already-written output.
package split
