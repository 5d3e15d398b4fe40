// Package jsonl converts a single top-level JSON array into JSON Lines
// output, one array element per line, using a single-pass, streaming,
// byte-level scan.
//
// The converter never parses elements into typed values: element content is
// passed through verbatim, trimmed only of outer whitespace. Structural bytes
// inside quoted strings are correctly ignored, escape sequences included, and
// a data-parallel skip over boring byte runs keeps throughput high.
//
// # Basic Usage
//
// Converting an in-memory document:
//
//	out, err := jsonl.Split([]byte(`[{"a":1}, 2, "x,y"]`))
//	if err != nil {
//	    return err
//	}
//	// out == "{\"a\":1}\n2\n\"x,y\""
//
// Streaming from a reader to a writer:
//
//	n, err := jsonl.Convert(dst, src)
//
// Pulling one element at a time:
//
//	sc := jsonl.NewScanner(src)
//	defer sc.Close()
//	for sc.Scan() {
//	    handle(sc.Bytes())
//	}
//	if err := sc.Err(); err != nil {
//	    return err
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the split
// package, which holds the core state machine and its drivers. The pipeline
// package adds the surrounding decompress/re-archive workflow, and the
// compress package the codecs it uses.
package jsonl

import (
	"io"

	"github.com/arloliu/jsonl/split"
)

// Split converts a complete JSON array held in memory into JSON Lines,
// elements joined by a single newline with no trailing newline.
func Split(data []byte, opts ...split.Option) ([]byte, error) {
	return split.Bytes(data, opts...)
}

// SplitString is the string counterpart of Split.
func SplitString(s string, opts ...split.Option) (string, error) {
	return split.String(s, opts...)
}

// Convert streams the JSON array read from src to dst as JSON Lines, one
// newline-terminated line per element, and returns the element count.
func Convert(dst io.Writer, src io.Reader, opts ...split.Option) (int64, error) {
	return split.Copy(dst, src, opts...)
}

// NewScanner creates a pull-mode scanner that yields one array element per
// Scan call, reading only as much of src as needed.
func NewScanner(src io.Reader, opts ...split.Option) *split.Scanner {
	return split.NewScanner(src, opts...)
}
