package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	level, err := ParseLogLevel("debug")
	require.Nil(t, err)
	require.Equal(t, DebugLevel, level)
	require.Equal(t, "DEBUG", LogLevelToString(level))

	level, err = ParseLogLevel("")
	require.Nil(t, err)
	require.Equal(t, InfoLevel, level)

	_, err = ParseLogLevel("verbose")
	require.NotNil(t, err)
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, WarnLevel, false)
	log.Info().Msg("hidden")
	require.Equal(t, 0, buf.Len())
	log.Warn().Str("key", "('x', 0)").Msg("shown")
	require.Contains(t, buf.String(), "\"message\":\"shown\"")
	require.Contains(t, buf.String(), "\"level\":\"warn\"")
}
