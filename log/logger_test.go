package log

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type capturedMessage struct {
	level   Level
	message string
}

type testLogger struct {
	captured []capturedMessage
}

func (t *testLogger) Log(level Level, format string, args ...any) {
	t.captured = append(t.captured, capturedMessage{level: level, message: fmt.Sprintf(format, args...)})
}

func TestLogfWithoutLogger(t *testing.T) {
	SetLogger(nil)
	defer SetLogger(nil)

	// Logging with no logger configured must be a no-op, not a panic
	Logf(LevelInfo, "dropped %d", 42)
}

func TestLogf(t *testing.T) {
	logger := &testLogger{}

	SetLogger(logger)
	defer SetLogger(nil)

	Logf(LevelInfo, "the answer is %d", 42)

	require.Equal(t, []capturedMessage{{level: LevelInfo, message: "the answer is 42"}}, logger.captured)
}

func TestLevelledFunctions(t *testing.T) {
	logger := &testLogger{}

	SetLogger(logger)
	defer SetLogger(nil)

	Tracef("a")
	Debugf("b")
	Infof("c")
	Warnf("d")
	Errorf("e")

	expected := []capturedMessage{
		{level: LevelTrace, message: "a"},
		{level: LevelDebug, message: "b"},
		{level: LevelInfo, message: "c"},
		{level: LevelWarning, message: "d"},
		{level: LevelError, message: "e"},
	}

	require.Equal(t, expected, logger.captured)
}

func TestLevelString(t *testing.T) {
	require.Equal(t, "trace", LevelTrace.String())
	require.Equal(t, "debug", LevelDebug.String())
	require.Equal(t, "info", LevelInfo.String())
	require.Equal(t, "warning", LevelWarning.String())
	require.Equal(t, "error", LevelError.String())
	require.Equal(t, "unknown", Level(42).String())
}
