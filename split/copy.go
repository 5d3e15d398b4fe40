package split

import (
	"bufio"
	"fmt"
	"io"
)

// Copy drains src, splitting the JSON array it contains, and writes every
// element followed by one newline to dst. It returns the number of elements
// written.
//
// Copy reads fixed-size chunks (see WithChunkSize) and does a single pass
// over the input; elements already written to dst stay written even when a
// later structural fault fails the job.
func Copy(dst io.Writer, src io.Reader, opts ...Option) (int64, error) {
	cfg, err := newSettings(opts...)
	if err != nil {
		return 0, err
	}

	bw := bufio.NewWriterSize(dst, cfg.chunkSize)
	sp, err := NewSplitter(func(element []byte) error {
		if _, err := bw.Write(element); err != nil {
			return fmt.Errorf("write element: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("write newline: %w", err)
		}

		return nil
	}, opts...)
	if err != nil {
		return 0, err
	}
	defer sp.Close()

	buf := make([]byte, cfg.chunkSize)
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			if err := sp.Feed(buf[:n]); err != nil {
				return sp.Elements(), err
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return sp.Elements(), fmt.Errorf("read source: %w", rerr)
		}
	}

	if err := sp.Finish(); err != nil {
		return sp.Elements(), err
	}
	if err := bw.Flush(); err != nil {
		return sp.Elements(), fmt.Errorf("flush output: %w", err)
	}

	return sp.Elements(), nil
}
