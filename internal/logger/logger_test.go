package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog_Indentation(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf)

	log.Info("solution")
	done := log.Indent()
	log.Info("project")
	inner := log.Indent()
	log.Warn("checksum mismatch")
	inner()
	done()
	log.Info("summary")

	assert.Equal(t,
		"solution\n"+
			"  project\n"+
			"    WARNING: checksum mismatch\n"+
			"summary\n",
		buf.String())
}

func TestLog_IndentCloseIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf)

	done := log.Indent()
	done()
	done() // A double close must not unwind an outer scope.

	log.Info("top")
	assert.Equal(t, "top\n", buf.String())
}

func TestLog_DebugGatedByVerbose(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf)

	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.SetVerbose(true)
	log.Debug("shown %d", 1)
	assert.Equal(t, "shown 1\n", buf.String())
}

func TestLog_SetOutput(t *testing.T) {
	log := Discard()
	var buf bytes.Buffer
	log.SetOutput(&buf)

	log.Error("boom")
	assert.Equal(t, "ERROR: boom\n", buf.String())
}
