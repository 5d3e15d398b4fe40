// Package scan provides low-level byte scanning primitives for the JSON array
// splitter: locating the next structurally significant byte, deciding whether
// a quote is escaped, and skipping JSON whitespace.
//
// The structural byte set is fixed: '"', '\\', ',', '[', ']', '{', '}'.
// Only ASCII bytes are structural, which is safe on UTF-8 input because no
// ASCII byte can appear as a continuation byte of a multi-byte sequence.
package scan

import (
	"encoding/binary"
	"math/bits"
)

const (
	// wordSize is the SWAR lane-group width in bytes.
	wordSize = 8

	// loBits and hiBits are the classic SWAR zero-byte detection masks:
	// a byte of w is zero iff ((w - loBits) &^ w & hiBits) has its high bit set.
	loBits = 0x0101010101010101
	hiBits = 0x8080808080808080
)

// Broadcast constants for each structural byte, one lane per input byte.
const (
	bcastQuote     = '"' * loBits
	bcastBackslash = '\\' * loBits
	bcastComma     = ',' * loBits
	bcastLBracket  = '[' * loBits
	bcastRBracket  = ']' * loBits
	bcastLBrace    = '{' * loBits
	bcastRBrace    = '}' * loBits
)

// structural is the byte classification table for the scalar path.
var structural = [256]bool{
	'"': true, '\\': true, ',': true,
	'[': true, ']': true, '{': true, '}': true,
}

// IsStructural reports whether b is one of the seven structural bytes.
func IsStructural(b byte) bool {
	return structural[b]
}

// IndexStructural returns the smallest index i in [start, end) such that
// buf[i] is a structural byte, or -1 if the range contains none.
//
// The implementation tests eight bytes per step using a data-parallel
// equality-OR over a 64-bit lane group, with a scalar tail for the remainder.
// It is behaviorally identical to indexStructuralScalar for every input.
func IndexStructural(buf []byte, start, end int) int {
	i := start
	for ; i+wordSize <= end; i += wordSize {
		w := binary.LittleEndian.Uint64(buf[i:])

		m := zeroByteMask(w ^ bcastQuote)
		m |= zeroByteMask(w ^ bcastBackslash)
		m |= zeroByteMask(w ^ bcastComma)
		m |= zeroByteMask(w ^ bcastLBracket)
		m |= zeroByteMask(w ^ bcastRBracket)
		m |= zeroByteMask(w ^ bcastLBrace)
		m |= zeroByteMask(w ^ bcastRBrace)

		if m != 0 {
			// Lowest set high bit belongs to the first matching lane.
			return i + bits.TrailingZeros64(m)/8
		}
	}

	return indexStructuralScalar(buf, i, end)
}

// zeroByteMask returns a mask with the high bit of each lane set where the
// corresponding byte of w is zero.
//
// The subtract-borrow trick can also set a lane's high bit when the byte
// is >= 0x80, but the &^ w term clears those lanes; all structural bytes
// are ASCII so the XOR of a match is exactly zero.
func zeroByteMask(w uint64) uint64 {
	return (w - loBits) &^ w & hiBits
}

// indexStructuralScalar is the reference implementation of IndexStructural.
func indexStructuralScalar(buf []byte, start, end int) int {
	for i := start; i < end; i++ {
		if structural[buf[i]] {
			return i
		}
	}

	return -1
}

// BackslashRun counts the contiguous '\\' bytes in buf immediately preceding
// index end. A quote written at buf[end] is escaped iff the run is odd.
func BackslashRun(buf []byte, end int) int {
	n := 0
	for i := end - 1; i >= 0 && buf[i] == '\\'; i-- {
		n++
	}

	return n
}

// IsWhitespace reports whether b is JSON whitespace (space, tab, CR, LF).
func IsWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// SkipWhitespace returns the smallest index i' >= i with i' == len(buf) or
// buf[i'] not JSON whitespace.
func SkipWhitespace(buf []byte, i int) int {
	for i < len(buf) && IsWhitespace(buf[i]) {
		i++
	}

	return i
}

// TrimRightWhitespace returns buf with trailing JSON whitespace removed.
// The result aliases buf.
func TrimRightWhitespace(buf []byte) []byte {
	n := len(buf)
	for n > 0 && IsWhitespace(buf[n-1]) {
		n--
	}

	return buf[:n]
}
