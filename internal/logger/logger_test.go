package logger

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		logDebug  bool
		checkFunc func(t *testing.T, output string)
	}{
		{
			name:   "Text logger info level",
			config: Config{Level: "info", Format: "text", Output: "stdout"},
			checkFunc: func(t *testing.T, output string) {
				if !bytes.Contains([]byte(output), []byte("level=INFO")) ||
					!bytes.Contains([]byte(output), []byte("msg=\"test message\"")) {
					t.Errorf("Expected text log output with info level and message, got: %s", output)
				}
			},
		},
		{
			name:     "JSON logger debug level",
			config:   Config{Level: "debug", Format: "json", Output: "stdout"},
			logDebug: true,
			checkFunc: func(t *testing.T, output string) {
				var logEntry map[string]interface{}
				if err := json.Unmarshal([]byte(output), &logEntry); err != nil {
					t.Fatalf("Failed to unmarshal JSON log: %v, output: %s", err, output)
				}
				if logEntry["level"] != "DEBUG" || logEntry["msg"] != "test message" {
					t.Errorf("Expected JSON log output with debug level and message, got: %v", logEntry)
				}
			},
		},
		{
			name:     "Debug suppressed at info level",
			config:   Config{Level: "info", Format: "text", Output: "stdout"},
			logDebug: true,
			checkFunc: func(t *testing.T, output string) {
				if output != "" {
					t.Errorf("Expected no output for debug message at info level, got: %s", output)
				}
			},
		},
		{
			name:   "Invalid level falls back to info",
			config: Config{Level: "loud", Format: "text", Output: "stdout"},
			checkFunc: func(t *testing.T, output string) {
				if !bytes.Contains([]byte(output), []byte("level=INFO")) {
					t.Errorf("Expected info-level output for invalid level config, got: %s", output)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(tt.config, &buf)

			if tt.logDebug {
				logger.Debug("test message")
			} else {
				logger.Info("test message")
			}

			tt.checkFunc(t, buf.String())
		})
	}
}
