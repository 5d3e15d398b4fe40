package split

import "github.com/arloliu/jsonl/internal/pool"

// Bytes converts a complete in-memory JSON array into JSON Lines, joining
// the elements with a single newline and no trailing newline. This is the
// whole-buffer counterpart of Copy, which instead terminates every element
// with a newline; each API commits to its own convention.
func Bytes(data []byte, opts ...Option) ([]byte, error) {
	out := pool.GetOutputBuffer()
	defer pool.PutOutputBuffer(out)

	sp, err := NewSplitter(func(element []byte) error {
		if out.Len() > 0 {
			out.MustWriteByte('\n')
		}
		out.MustWrite(element)

		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	defer sp.Close()

	if err := sp.Feed(data); err != nil {
		return nil, err
	}
	if err := sp.Finish(); err != nil {
		return nil, err
	}

	// The output buffer goes back to the pool; hand the caller a copy.
	return append([]byte(nil), out.Bytes()...), nil
}

// String converts a complete JSON array held in a string. See Bytes for the
// formatting convention.
func String(s string, opts ...Option) (string, error) {
	out, err := Bytes([]byte(s), opts...)
	if err != nil {
		return "", err
	}

	return string(out), nil
}
