package split

import (
	"fmt"
	"io"
)

// Scanner is the pull-mode driver: each Scan call yields the next array
// element, reading only as much of the source as needed to complete it.
//
// The usage mirrors bufio.Scanner:
//
//	sc := split.NewScanner(r)
//	defer sc.Close()
//	for sc.Scan() {
//	    handle(sc.Bytes())
//	}
//	if err := sc.Err(); err != nil {
//	    return err
//	}
//
// For identical input, the element sequence is identical to what Copy writes.
type Scanner struct {
	src   io.Reader
	sp    *Splitter
	buf   []byte
	queue [][]byte
	cur   []byte
	err   error
	eof   bool
	done  bool
}

// NewScanner creates a pull-mode Scanner over src. A configuration error
// surfaces on the first Scan via Err.
func NewScanner(src io.Reader, opts ...Option) *Scanner {
	sc := &Scanner{src: src}

	cfg, err := newSettings(opts...)
	if err != nil {
		sc.err = err

		return sc
	}

	sc.buf = make([]byte, cfg.chunkSize)
	sc.sp, err = NewSplitter(func(element []byte) error {
		// One read chunk can complete several elements; queue copies so the
		// splitter may reuse its buffer.
		sc.queue = append(sc.queue, append([]byte(nil), element...))

		return nil
	}, opts...)
	if err != nil {
		sc.err = err
	}

	return sc
}

// Scan advances to the next element. It returns false at the end of the
// array or on error; Err distinguishes the two.
func (sc *Scanner) Scan() bool {
	if sc.err != nil {
		return false
	}

	for len(sc.queue) == 0 {
		if sc.done {
			return false
		}
		if sc.eof {
			sc.done = true
			if err := sc.sp.Finish(); err != nil {
				sc.err = err

				return false
			}

			continue
		}

		n, rerr := sc.src.Read(sc.buf)
		if n > 0 {
			if err := sc.sp.Feed(sc.buf[:n]); err != nil {
				sc.err = err

				return false
			}
		}
		if rerr == io.EOF {
			sc.eof = true
		} else if rerr != nil {
			sc.err = fmt.Errorf("read source: %w", rerr)

			return false
		}
	}

	sc.cur = sc.queue[0]
	sc.queue = sc.queue[1:]

	return true
}

// Bytes returns the current element. The slice is owned by the Scanner until
// the next Scan call.
func (sc *Scanner) Bytes() []byte {
	return sc.cur
}

// Text returns the current element as a string.
func (sc *Scanner) Text() string {
	return string(sc.cur)
}

// Err returns the first error encountered, or nil if the source was fully
// consumed as a well-formed array.
func (sc *Scanner) Err() error {
	return sc.err
}

// Close releases the Scanner's splitter resources. The Scanner must not be
// used afterward.
func (sc *Scanner) Close() {
	if sc.sp != nil {
		sc.sp.Close()
		sc.sp = nil
	}
}
