package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{" error ", LevelError},
		{"", LevelInfo},
		{"verbose", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestInitForCLI_WritesSubsystemAndError(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelDebug, &buf)

	Info("Courses", "loaded %d courses", 3)
	Error("API", errors.New("boom"), "request failed")

	out := buf.String()
	assert.Contains(t, out, "loaded 3 courses")
	assert.Contains(t, out, "subsystem=Courses")
	assert.Contains(t, out, "subsystem=API")
	assert.Contains(t, out, "error=boom")
}

func TestInitForCLI_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelWarn, &buf)

	Info("CLI", "should not appear")
	Warn("CLI", "should appear")

	assert.NotContains(t, buf.String(), "should not appear")
	assert.Contains(t, buf.String(), "should appear")
}

func TestInitForTUI_SendsEntriesToChannel(t *testing.T) {
	ch := InitForTUI(LevelInfo)
	defer CloseTUIChannel()

	Debug("TUI", "filtered out")
	Info("Participants", "created participant %s", "p-1")

	select {
	case entry := <-ch:
		assert.Equal(t, LevelInfo, entry.Level)
		assert.Equal(t, "Participants", entry.Subsystem)
		assert.Equal(t, "created participant p-1", entry.Message)
		assert.False(t, entry.Timestamp.IsZero())
	default:
		require.Fail(t, "expected a log entry on the TUI channel")
	}

	select {
	case entry := <-ch:
		t.Fatalf("unexpected extra entry: %+v", entry)
	default:
	}
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}
