//go:build !integration

package app

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name          string
		logLevel      string
		expectedLevel zerolog.Level
	}{
		{name: "default level", logLevel: "", expectedLevel: zerolog.InfoLevel},
		{name: "debug level", logLevel: "debug", expectedLevel: zerolog.DebugLevel},
		{name: "error level", logLevel: "error", expectedLevel: zerolog.ErrorLevel},
		{name: "invalid level falls back to info", logLevel: "nonsense", expectedLevel: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.logLevel != "" {
				t.Setenv("LOG_LEVEL", tt.logLevel)
			} else {
				_ = os.Unsetenv("LOG_LEVEL")
			}

			InitializeLogger()

			assert.Equal(t, tt.expectedLevel, zerolog.GlobalLevel())
		})
	}
}
