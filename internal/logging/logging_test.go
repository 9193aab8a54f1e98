package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"runmate/internal/logging"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"":       zapcore.WarnLevel,
		"debug":  zapcore.DebugLevel,
		" INFO ": zapcore.InfoLevel,
		"error":  zapcore.ErrorLevel,
	}
	for in, want := range cases {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := logging.ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	l, err := logging.New(logging.Options{Level: "error"})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))

	l, err = logging.New(logging.Options{Level: "error", Verbose: true, JSON: true})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	_, err = logging.New(logging.Options{Level: "loud"})
	assert.Error(t, err)
}
