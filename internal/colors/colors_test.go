package colors

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	entries []string
}

func (r *recordingLogger) Debug(msg string, args ...any) { r.entries = append(r.entries, "debug:"+msg) }
func (r *recordingLogger) Info(msg string, args ...any)  { r.entries = append(r.entries, "info:"+msg) }
func (r *recordingLogger) Warn(msg string, args ...any)  { r.entries = append(r.entries, "warn:"+msg) }
func (r *recordingLogger) Error(msg string, args ...any) { r.entries = append(r.entries, "error:"+msg) }

func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	t.Cleanup(func() { SetOutput(nil, nil) })
	return &out, &errOut
}

func TestError(t *testing.T) {
	out, errOut := captureOutput(t)

	Error("something", "went wrong")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Error:")
	assert.Contains(t, errOut.String(), "something went wrong")
	assert.Contains(t, errOut.String(), Red)
}

func TestSuccessAndInfoGoToStdout(t *testing.T) {
	out, errOut := captureOutput(t)

	Success("saved")
	Info("hello")

	assert.Contains(t, out.String(), checkmark+Reset+" saved")
	assert.Contains(t, out.String(), Blue+"hello")
	assert.Empty(t, errOut.String())
}

func TestWarning(t *testing.T) {
	_, errOut := captureOutput(t)

	Warning("careful")

	assert.Contains(t, errOut.String(), Yellow+"Warning:")
}

func TestDebugIsGated(t *testing.T) {
	_, errOut := captureOutput(t)
	t.Cleanup(func() { SetDebug(false) })

	SetDebug(false)
	Debug("hidden")
	assert.Empty(t, errOut.String())

	SetDebug(true)
	Debug("shown")
	assert.Contains(t, errOut.String(), "Debug:")
	assert.Contains(t, errOut.String(), "shown")
}

func TestMessagesAreMirroredToLogger(t *testing.T) {
	captureOutput(t)
	rec := &recordingLogger{}
	SetLogger(rec)
	t.Cleanup(func() { SetLogger(nil) })

	Error("e")
	Warning("w")
	Info("i")

	assert.Equal(t, []string{"error:e", "warn:w", "info:i"}, rec.entries)
}
