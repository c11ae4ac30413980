package logging_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/arthur-debert/prettiprint/pkg/logging"
)

// captureLogger routes the global logger into a buffer for the test.
func captureLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	prevLevel := zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})
	return &buf
}

func TestSetupLoggerLevels(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{99, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		logging.SetupLogger(tt.verbosity)
		if got := zerolog.GlobalLevel(); got != tt.want {
			t.Errorf("SetupLogger(%d) level = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestGetLogger(t *testing.T) {
	buf := captureLogger(t)

	logger := logging.GetLogger("console")
	logger.Debug().Msg("ready")
	if !strings.Contains(buf.String(), `"component":"console"`) {
		t.Errorf("GetLogger output missing component field: %s", buf.String())
	}
}

func TestWithFields(t *testing.T) {
	buf := captureLogger(t)

	logger := logging.WithFields(map[string]interface{}{
		"command": "demo",
		"theme":   "dark",
	})
	logger.Debug().Msg("started")

	out := buf.String()
	if !strings.Contains(out, `"command":"demo"`) || !strings.Contains(out, `"theme":"dark"`) {
		t.Errorf("WithFields output missing fields: %s", out)
	}
}

func TestLogDuration(t *testing.T) {
	buf := captureLogger(t)

	logging.LogDuration(time.Now().Add(-time.Millisecond), "render")

	out := buf.String()
	if !strings.Contains(out, `"operation":"render"`) || !strings.Contains(out, `"duration"`) {
		t.Errorf("LogDuration output missing fields: %s", out)
	}
}
