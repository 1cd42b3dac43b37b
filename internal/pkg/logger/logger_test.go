package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		enabled zapcore.Level
		debug   bool
	}{
		{name: "info level", level: "info", enabled: zapcore.InfoLevel, debug: false},
		{name: "debug level", level: "debug", enabled: zapcore.DebugLevel, debug: true},
		{name: "unknown level falls back to info", level: "verbose", enabled: zapcore.InfoLevel, debug: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.level, "test")
			require.NoError(t, err)
			require.NotNil(t, log)

			assert.True(t, log.Core().Enabled(tt.enabled))
			assert.Equal(t, tt.debug, log.Core().Enabled(zapcore.DebugLevel))
		})
	}
}
