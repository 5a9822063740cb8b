package cli

import (
	"bytes"
	"io"
	"testing"

	"github.com/merman-go/merman/pkg/buildinfo"
)

func TestVersionCommandPrintsBuildinfo(t *testing.T) {
	c := New(io.Discard, LogInfo)
	cmd := c.versionCommand()

	var out bytes.Buffer
	cmd.SetOut(&out)
	if err := cmd.RunE(cmd, nil); err != nil {
		t.Fatalf("RunE: %v", err)
	}
	if got := out.String(); got != buildinfo.String()+"\n" {
		t.Errorf("output = %q, want %q", got, buildinfo.String()+"\n")
	}
}
