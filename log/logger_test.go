package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, Silent, ParseLevel("silent"))
	require.Equal(t, Error, ParseLevel("error"))
	require.Equal(t, Warn, ParseLevel("warn"))
	require.Equal(t, Info, ParseLevel("info"))
	require.Equal(t, Debug, ParseLevel("debug"))
	require.Equal(t, Info, ParseLevel("bogus"))
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput(Warn, &buf)

	l.Debugf("debug %d", 1)
	l.Infof("info %d", 2)
	require.Empty(t, buf.String())

	l.Warnf("warn %d", 3)
	l.Errorf("error %d", 4)

	out := buf.String()
	require.Contains(t, out, "[WARN] warn 3")
	require.Contains(t, out, "[ERROR] error 4")
	require.NotContains(t, out, "info")
}

func TestDiscard(t *testing.T) {
	// Must be safe to call at any level without output or panic.
	Discard.Errorf("dropped")
	Discard.Debugf("dropped")
}
