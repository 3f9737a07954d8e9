// SPDX-License-Identifier: MIT
package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/campusroute/internal/logging"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zap.DebugLevel},
		{"DEBUG", zap.DebugLevel},
		{"warn", zap.WarnLevel},
		{" error ", zap.ErrorLevel},
		{"info", zap.InfoLevel},
		{"verbose", zap.InfoLevel},
		{"", zap.InfoLevel},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, logging.ParseLevel(c.in), c.in)
	}
}

func TestConfig(t *testing.T) {
	zc, err := logging.Config("json", "warn")
	require.NoError(t, err)
	assert.Equal(t, "json", zc.Encoding)
	assert.Equal(t, zap.WarnLevel, zc.Level.Level())
	assert.Equal(t, []string{"stderr"}, zc.OutputPaths)

	zc, err = logging.Config("console", "debug")
	require.NoError(t, err)
	assert.Equal(t, "console", zc.Encoding)
	assert.True(t, zc.Level.Enabled(zap.DebugLevel))

	_, err = logging.Config("xml", "info")
	assert.ErrorIs(t, err, logging.ErrBadFormat)
}

func TestNew(t *testing.T) {
	l, err := logging.New("json", "info")
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.False(t, l.Core().Enabled(zap.DebugLevel))

	_, err = logging.New("yaml", "info")
	assert.ErrorIs(t, err, logging.ErrBadFormat)
}

func TestLogr_VerbosityMapsToDebug(t *testing.T) {
	obs, logs := observer.New(zap.DebugLevel)
	lg := logging.Logr(zap.New(obs))

	lg.Info("search started", "algorithm", "bfs")
	lg.V(1).Info("relaxing edge")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, "bfs", entries[0].ContextMap()["algorithm"])
	assert.Equal(t, zap.DebugLevel, entries[1].Level)
}
