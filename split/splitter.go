package split

import (
	"fmt"

	"github.com/arloliu/jsonl/internal/pool"
	"github.com/arloliu/jsonl/internal/scan"
)

type state uint8

const (
	stateAwaitingArrayStart state = iota
	stateInElement
	stateInString
	stateComplete
	stateFailed
)

// EmitFunc receives each completed element, trimmed of outer whitespace.
// The slice is only valid for the duration of the call; implementations that
// retain it must copy.
type EmitFunc func(element []byte) error

// Splitter is the incremental state machine that splits a top-level JSON
// array into its elements.
//
// Feed it the input in chunks of any size, then call Finish; the element
// sequence is identical no matter where the chunk boundaries fall, including
// mid-string and mid-escape. A Splitter serves exactly one conversion job and
// must not be used from multiple goroutines.
type Splitter struct {
	emit       EmitFunc
	elem       *pool.ByteBuffer
	err        error
	elements   int64
	depth      int
	maxElement int
	state      state
}

// NewSplitter creates a Splitter that invokes emit for every completed
// element. Only WithMaxElementSize is meaningful here; chunking is the
// caller's concern.
func NewSplitter(emit EmitFunc, opts ...Option) (*Splitter, error) {
	cfg, err := newSettings(opts...)
	if err != nil {
		return nil, err
	}

	return &Splitter{
		emit:       emit,
		elem:       pool.GetElementBuffer(),
		maxElement: cfg.maxElement,
	}, nil
}

// Elements returns the number of elements emitted so far.
func (s *Splitter) Elements() int64 {
	return s.elements
}

// Close releases the splitter's element buffer back to its pool.
// The splitter must not be fed afterward.
func (s *Splitter) Close() {
	pool.PutElementBuffer(s.elem)
	s.elem = nil
}

// Feed consumes the next chunk of input, emitting any elements completed
// within it. Once Feed returns an error, the job is failed and every
// subsequent Feed or Finish returns the same error.
func (s *Splitter) Feed(chunk []byte) error {
	if s.err != nil {
		return s.err
	}

	i, n := 0, len(chunk)
	for i < n {
		switch s.state {
		case stateAwaitingArrayStart:
			i = scan.SkipWhitespace(chunk, i)
			if i >= n {
				break
			}
			if chunk[i] != '[' {
				return s.fail(fmt.Errorf("%w: first significant byte is %q", ErrMissingArrayStart, chunk[i]))
			}
			i++
			s.state = stateInElement

		case stateInElement:
			var err error
			if i, err = s.feedElement(chunk, i, n); err != nil {
				return err
			}

		case stateInString:
			var err error
			if i, err = s.feedString(chunk, i, n); err != nil {
				return err
			}

		case stateComplete:
			j := scan.SkipWhitespace(chunk, i)
			if j < n {
				return s.fail(fmt.Errorf("%w: %q", ErrTrailingData, chunk[j]))
			}
			i = j

		case stateFailed:
			return s.err
		}
	}

	return nil
}

// Finish declares the source exhausted. It fails with ErrUnexpectedEOF unless
// the closing ']' of the array has been consumed.
func (s *Splitter) Finish() error {
	if s.err != nil {
		return s.err
	}
	if s.state != stateComplete {
		return s.fail(ErrUnexpectedEOF)
	}

	return nil
}

// feedElement processes chunk[i:n] in element mode and returns the new index.
func (s *Splitter) feedElement(chunk []byte, i, n int) (int, error) {
	next := scan.IndexStructural(chunk, i, n)
	stop := n
	if next >= 0 {
		stop = next
	}

	// Bulk-copy the boring run, dropping leading whitespace while the
	// element buffer is still empty.
	if err := s.append(chunk[i:stop]); err != nil {
		return stop, err
	}
	if next < 0 {
		return n, nil
	}

	i = next + 1
	switch c := chunk[next]; c {
	case '"':
		s.elem.MustWriteByte('"')
		s.state = stateInString

	case '{', '[':
		s.elem.MustWriteByte(c)
		s.depth++

	case '}':
		// An unmatched '}' never drives depth negative; element-level
		// validity is not checked here.
		if s.depth > 0 {
			s.depth--
		}
		s.elem.MustWriteByte(c)

	case ']':
		if s.depth == 0 {
			// Array terminator: flush the final element and accept only
			// whitespace from here on.
			if err := s.flush(); err != nil {
				return i, err
			}
			s.state = stateComplete

			return i, nil
		}
		s.depth--
		s.elem.MustWriteByte(c)

	case ',':
		if s.depth == 0 {
			if err := s.flush(); err != nil {
				return i, err
			}

			return i, nil
		}
		s.elem.MustWriteByte(c)

	case '\\':
		// A backslash outside a string literal has no structural meaning.
		s.elem.MustWriteByte('\\')
	}

	return i, s.checkElementSize()
}

// feedString processes chunk[i:n] inside a string literal and returns the new
// index. Every byte is copied verbatim; only an unescaped quote has meaning.
func (s *Splitter) feedString(chunk []byte, i, n int) (int, error) {
	next := scan.IndexStructural(chunk, i, n)
	if next < 0 {
		s.elem.MustWrite(chunk[i:n])

		return n, s.checkElementSize()
	}
	s.elem.MustWrite(chunk[i:next])

	c := chunk[next]
	if c == '"' {
		// The escape parity is computed on the accumulated element buffer,
		// so a backslash run split across chunks still counts correctly.
		if scan.BackslashRun(s.elem.Bytes(), s.elem.Len())%2 == 0 {
			s.state = stateInElement
		}
	}
	s.elem.MustWriteByte(c)

	return next + 1, s.checkElementSize()
}

// append copies data into the element buffer, suppressing leading whitespace
// while the buffer is empty.
func (s *Splitter) append(data []byte) error {
	if s.elem.Len() == 0 {
		data = data[scan.SkipWhitespace(data, 0):]
	}
	if len(data) == 0 {
		return nil
	}
	s.elem.MustWrite(data)

	return s.checkElementSize()
}

// flush trims trailing whitespace from the current element and emits it.
// Whitespace-only slots (for example a tolerated trailing comma) produce no
// element at all rather than an empty one.
func (s *Splitter) flush() error {
	trimmed := scan.TrimRightWhitespace(s.elem.Bytes())
	if len(trimmed) > 0 {
		s.elements++
		if err := s.emit(trimmed); err != nil {
			return s.fail(err)
		}
	}
	s.elem.Reset()

	return nil
}

func (s *Splitter) checkElementSize() error {
	if s.maxElement > 0 && s.elem.Len() > s.maxElement {
		return s.fail(fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrElementTooLarge, s.elem.Len(), s.maxElement))
	}

	return nil
}

// fail latches err as the job's terminal error.
func (s *Splitter) fail(err error) error {
	s.state = stateFailed
	s.err = err

	return err
}
