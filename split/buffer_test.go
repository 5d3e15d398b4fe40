package split

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytes_Basic(t *testing.T) {
	out, err := Bytes([]byte(`[{"a":1}, 2, "x,y", [3,4], null, {"s":"a\"b\\c"}]`))
	require.NoError(t, err)
	require.Equal(t,
		"{\"a\":1}\n2\n\"x,y\"\n[3,4]\nnull\n{\"s\":\"a\\\"b\\\\c\"}",
		string(out))
}

func TestBytes_NoTrailingNewline(t *testing.T) {
	out, err := Bytes([]byte("[1,2,3]"))
	require.NoError(t, err)
	require.Equal(t, "1\n2\n3", string(out))
	require.False(t, strings.HasSuffix(string(out), "\n"))
}

func TestBytes_EmptyArray(t *testing.T) {
	out, err := Bytes([]byte(" [ ] "))
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestBytes_SingleElement(t *testing.T) {
	out, err := Bytes([]byte(`[ "only" ]`))
	require.NoError(t, err)
	require.Equal(t, `"only"`, string(out))
}

func TestBytes_Errors(t *testing.T) {
	_, err := Bytes([]byte("123"))
	require.ErrorIs(t, err, ErrMissingArrayStart)

	_, err = Bytes([]byte("[1,2"))
	require.ErrorIs(t, err, ErrUnexpectedEOF)

	_, err = Bytes([]byte("[1] tail"))
	require.ErrorIs(t, err, ErrTrailingData)
}

func TestString(t *testing.T) {
	out, err := String(`[1, [2,3]]`)
	require.NoError(t, err)
	require.Equal(t, "1\n[2,3]", out)

	_, err = String("{}")
	require.ErrorIs(t, err, ErrMissingArrayStart)
}

// The adapter and the push driver agree modulo their newline conventions.
func TestBytes_MatchesCopy(t *testing.T) {
	inputs := []string{
		`[{"a":1}, 2, "x,y", [3,4], null, {"s":"a\"b\\c"}]`,
		"[1,2,]",
		`[ " keep  internal " ]`,
	}

	for _, input := range inputs {
		joined, err := Bytes([]byte(input))
		require.NoError(t, err)

		var streamed bytes.Buffer
		_, err = Copy(&streamed, strings.NewReader(input), WithChunkSize(2))
		require.NoError(t, err)

		require.Equal(t, streamed.String(), string(joined)+"\n", "input %q", input)
	}
}
