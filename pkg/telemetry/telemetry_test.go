package telemetry

import (
	"bytes"
	"strings"
	"testing"
)

func TestNoopRecorderIsDefault(t *testing.T) {
	Reset()
	stop := Active().Phase("build graph")
	stop() // must not panic or block
}

func TestWriterRecorderWritesPhaseLine(t *testing.T) {
	var buf bytes.Buffer
	SetRecorder(&WriterRecorder{W: &buf, Prefix: "layout "})
	defer Reset()

	stop := Active().Phase("extract clusters")
	stop()

	out := buf.String()
	if !strings.HasPrefix(out, "layout extract clusters: ") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestSetRecorderNilRestoresNoop(t *testing.T) {
	SetRecorder(nil)
	if _, ok := Active().(noopRecorder); !ok {
		t.Errorf("Active() = %T, want noopRecorder", Active())
	}
}
