package logio_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boklang/bok/internal/logio"
)

func TestLoggerPrintfWritesLeveledLine(t *testing.T) {
	var buf bytes.Buffer
	var logger logio.Logger
	logger.SetOutput(logio.NopCloser(&buf))

	logger.Printf("TRACE", "%s", "dup")
	assert.Equal(t, "TRACE: dup\n", buf.String())
}

func TestLoggerErrorfSetsExitCode(t *testing.T) {
	var buf bytes.Buffer
	var logger logio.Logger
	logger.SetOutput(logio.NopCloser(&buf))

	assert.Equal(t, 0, logger.ExitCode())
	logger.Errorf("boom: %v", "bad")
	assert.Contains(t, buf.String(), "ERROR: boom: bad")
	assert.Equal(t, 1, logger.ExitCode())
}

func TestLoggerErrorIfIgnoresNil(t *testing.T) {
	var buf bytes.Buffer
	var logger logio.Logger
	logger.SetOutput(logio.NopCloser(&buf))

	logger.ErrorIf(nil)
	assert.Empty(t, buf.String())
	assert.Equal(t, 0, logger.ExitCode())
}

func TestWriterBuffersUntilNewline(t *testing.T) {
	var lines []string
	w := &logio.Writer{Logf: func(format string, args ...interface{}) {
		lines = append(lines, format)
	}}

	n, err := w.Write([]byte("partial"))
	require.NoError(t, err)
	assert.Equal(t, len("partial"), n)
	assert.Empty(t, lines, "no newline yet, nothing should flush")

	_, err = w.Write([]byte(" line\nmore"))
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "%s", lines[0])
}

func TestWriterSyncFlushesRemainder(t *testing.T) {
	var got []byte
	w := &logio.Writer{Logf: func(format string, args ...interface{}) {
		got = args[0].([]byte)
	}}

	_, err := w.Write([]byte("trailing, no newline"))
	require.NoError(t, err)
	require.NoError(t, w.Sync())
	assert.Equal(t, "trailing, no newline", string(got))
}
