package split

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var errSink = errors.New("sink failed")

// collect feeds the whole input as a single chunk and returns the emitted
// elements as strings.
func collect(t *testing.T, input string, opts ...Option) ([]string, error) {
	t.Helper()

	var elements []string
	sp, err := NewSplitter(func(element []byte) error {
		elements = append(elements, string(element))
		return nil
	}, opts...)
	require.NoError(t, err)
	defer sp.Close()

	if err := sp.Feed([]byte(input)); err != nil {
		return elements, err
	}

	return elements, sp.Finish()
}

func TestSplitter_Elements(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty array", "[]", nil},
		{"empty array with whitespace", " [ \t\r\n ] ", nil},
		{"single number", "[1]", []string{"1"}},
		{"numbers", "[1,2,3]", []string{"1", "2", "3"}},
		{"outer whitespace trimmed", "[ 1 , 2 ,\n\t3 ]", []string{"1", "2", "3"}},
		{"internal whitespace preserved", `[{"a": 1,  "b": 2}]`, []string{`{"a": 1,  "b": 2}`}},
		{"comma inside string", `["x,y"]`, []string{`"x,y"`}},
		{"brackets inside string", `["a[b]c{d}"]`, []string{`"a[b]c{d}"`}},
		{"escaped quote and backslash", `["a\"b\\c"]`, []string{`"a\"b\\c"`}},
		{"string ending in escaped backslash", `["a\\","b"]`, []string{`"a\\"`, `"b"`}},
		{"nested array whole", "[[3,4],[5]]", []string{"[3,4]", "[5]"}},
		{"nested object whole", `[{"a":1},{"b":[2,3]}]`, []string{`{"a":1}`, `{"b":[2,3]}`}},
		{"null and bool literals", "[null, true ,false]", []string{"null", "true", "false"}},
		{"trailing comma tolerated", "[1,2,]", []string{"1", "2"}},
		{"trailing comma with whitespace", "[1,2, \n ]", []string{"1", "2"}},
		{"trailing whitespace after array", "[1] \n\t ", []string{"1"}},
		{"empty string element", `[""]`, []string{`""`}},
		{"backslash outside string kept", `[a\b]`, []string{`a\b`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := collect(t, tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSplitter_Scenario(t *testing.T) {
	input := `[{"a":1}, 2, "x,y", [3,4], null, {"s":"a\"b\\c"}]`
	want := []string{`{"a":1}`, "2", `"x,y"`, "[3,4]", "null", `{"s":"a\"b\\c"}`}

	got, err := collect(t, input)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestSplitter_StructuralErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"bare number", "123", ErrMissingArrayStart},
		{"object instead of array", `{"a":1}`, ErrMissingArrayStart},
		{"whitespace then garbage", "   x", ErrMissingArrayStart},
		{"missing closing bracket", "[1,2", ErrUnexpectedEOF},
		{"empty input", "", ErrUnexpectedEOF},
		{"whitespace only", " \n\t ", ErrUnexpectedEOF},
		{"unterminated string", `["abc`, ErrUnexpectedEOF},
		{"unterminated nested", `[{"a":1}`, ErrUnexpectedEOF},
		{"trailing garbage", "[1,2] x", ErrTrailingData},
		{"second array", "[1][2]", ErrTrailingData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := collect(t, tt.input)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSplitter_ErrorIsSticky(t *testing.T) {
	sp, err := NewSplitter(func([]byte) error { return nil })
	require.NoError(t, err)
	defer sp.Close()

	first := sp.Feed([]byte("nope"))
	require.ErrorIs(t, first, ErrMissingArrayStart)

	require.Equal(t, first, sp.Feed([]byte("[1]")))
	require.Equal(t, first, sp.Finish())
}

func TestSplitter_EmitErrorFailsJob(t *testing.T) {
	calls := 0
	sp, err := NewSplitter(func([]byte) error {
		calls++
		if calls == 2 {
			return errSink
		}
		return nil
	})
	require.NoError(t, err)
	defer sp.Close()

	err = sp.Feed([]byte("[1,2,3]"))
	require.ErrorIs(t, err, errSink)
	require.Equal(t, int64(2), sp.Elements())
	require.ErrorIs(t, sp.Finish(), errSink)
}

func TestSplitter_MaxElementSize(t *testing.T) {
	big := `["` + strings.Repeat("a", 100) + `"]`

	_, err := collect(t, big, WithMaxElementSize(32))
	require.ErrorIs(t, err, ErrElementTooLarge)

	got, err := collect(t, big, WithMaxElementSize(200))
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestSplitter_DepthClampOnUnmatchedBrace(t *testing.T) {
	// An unmatched '}' inside an element is content, not structure, and must
	// not make the next top-level ']' look nested.
	got, err := collect(t, "[a}b]")
	require.NoError(t, err)
	require.Equal(t, []string{"a}b"}, got)
}

func TestSplitter_OptionValidation(t *testing.T) {
	_, err := NewSplitter(func([]byte) error { return nil }, WithMaxElementSize(-1))
	require.Error(t, err)

	_, err = NewSplitter(func([]byte) error { return nil }, WithChunkSize(0))
	require.Error(t, err)
}

// chunked feeds input split at the given boundaries and returns the emitted
// elements joined by newlines.
func chunked(t *testing.T, input string, bounds []int) (string, error) {
	t.Helper()

	var sb strings.Builder
	sp, err := NewSplitter(func(element []byte) error {
		sb.Write(element)
		sb.WriteByte('\n')
		return nil
	})
	require.NoError(t, err)
	defer sp.Close()

	prev := 0
	for _, b := range bounds {
		if err := sp.Feed([]byte(input[prev:b])); err != nil {
			return sb.String(), err
		}
		prev = b
	}
	if err := sp.Feed([]byte(input[prev:])); err != nil {
		return sb.String(), err
	}

	return sb.String(), sp.Finish()
}

// Splitting the same input at any byte offset, including mid-string and
// mid-escape, must produce output identical to a single-chunk feed.
func TestSplitter_ChunkBoundaryIndependence(t *testing.T) {
	inputs := []string{
		`[{"a":1}, 2, "x,y", [3,4], null, {"s":"a\"b\\c"}]`,
		`[ "split \\\" me" , [1, [2, [3]]], {"k": "v,w"} ]`,
		"[\n  1,\n  2,\n]",
		"[]",
	}

	for _, input := range inputs {
		whole, err := chunked(t, input, nil)
		require.NoError(t, err)

		for cut := 0; cut <= len(input); cut++ {
			got, err := chunked(t, input, []int{cut})
			require.NoError(t, err, "cut at %d", cut)
			require.Equal(t, whole, got, "cut at %d", cut)
		}
	}
}

func TestSplitter_RandomChunking(t *testing.T) {
	input := `[{"a":1}, "x,y", [3,[4,5]], "esc \\\\ \" end", null, 12.5e-3, {"s":"a\"b\\c"}, true]`
	whole, err := chunked(t, input, nil)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 500; iter++ {
		var bounds []int
		for pos := 0; pos < len(input); {
			pos += 1 + rng.Intn(8)
			if pos < len(input) {
				bounds = append(bounds, pos)
			}
		}

		got, err := chunked(t, input, bounds)
		require.NoError(t, err, "bounds %v", bounds)
		require.Equal(t, whole, got, "bounds %v", bounds)
	}
}
