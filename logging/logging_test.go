package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("info")
	require.Nil(t, err)
	require.Equal(t, InfoLevel, level)
	level, err = ParseLevel("WARNING")
	require.Nil(t, err)
	require.Equal(t, WarnLevel, level)
	_, err = ParseLevel("loud")
	require.NotNil(t, err)
	for l := TraceLevel; l <= FatalLevel; l++ {
		parsed, err := ParseLevel(LogLevelToString(l))
		require.Nil(t, err)
		require.Equal(t, l, parsed)
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var out bytes.Buffer
	logger := New(&out, WarnLevel)
	logger.Infof("hidden %d", 1)
	logger.Warnf("shown %d", 2)
	logger.Errorf("shown %d", 3)
	require.NotContains(t, out.String(), "hidden")
	require.Contains(t, out.String(), "[WARN] shown 2")
	require.Contains(t, out.String(), "[ERROR] shown 3")

	var nilLogger *Logger
	require.False(t, nilLogger.Enabled(FatalLevel))
	nilLogger.Errorf("dropped")
	require.False(t, Discard().Enabled(FatalLevel))
}
