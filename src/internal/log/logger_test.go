package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetFile(FileOptions{})
		SetVerbose(false)
	})
	return &buf
}

func TestInfof_WritesPrefixedLine(t *testing.T) {
	buf := captureOutput(t)

	Infof("GET %s called", "/v1/processes")

	assert.Equal(t, "[INF] GET /v1/processes called\n", buf.String())
}

func TestDebugf_OnlyInVerboseMode(t *testing.T) {
	buf := captureOutput(t)

	Debugf("hidden")
	assert.Empty(t, buf.String())

	SetVerbose(true)
	assert.True(t, IsVerbose())
	Debugf("shown")
	assert.Equal(t, "[DBG] shown\n", buf.String())
}

func TestSetLevel(t *testing.T) {
	buf := captureOutput(t)

	require.NoError(t, SetLevel("warn"))
	Infof("dropped")
	Warnf("kept")
	assert.Equal(t, "[WRN] kept\n", buf.String())

	assert.Error(t, SetLevel("loud"))
}

func TestWithField_AppendsSortedFields(t *testing.T) {
	buf := captureOutput(t)

	WithField("sec_id", 2).WithField("addr", "127.0.0.1:6666").Infof("worker registered")

	line := buf.String()
	assert.True(t, strings.HasPrefix(line, "[INF] worker registered"))
	assert.Contains(t, line, "addr=127.0.0.1:6666 sec_id=2")
}
