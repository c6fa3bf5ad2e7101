package log

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"WARN", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"garbage", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLogLevel(tt.in); got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetLevel(t *testing.T) {
	original := Logger().GetLevel()
	defer SetLevel(original.String())

	SetLevel("error")
	if got := Logger().GetLevel(); got != zerolog.ErrorLevel {
		t.Errorf("level after SetLevel(error) = %v, want error", got)
	}

	SetLevel("debug")
	if got := Logger().GetLevel(); got != zerolog.DebugLevel {
		t.Errorf("level after SetLevel(debug) = %v, want debug", got)
	}
}
