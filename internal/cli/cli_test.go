package cli

import (
	"io"
	"testing"
)

func TestRootCommandRegistersAllSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := []string{"render", "layout", "graph", "serve", "version", "completion"}
	for _, name := range want {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("expected subcommand %q to be registered, find error: %v", name, err)
		}
	}
}

func TestSetLogLevelUpdatesLogger(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.SetLogLevel(LogDebug)
	if c.Logger.GetLevel() != LogDebug {
		t.Errorf("Logger level = %v, want %v", c.Logger.GetLevel(), LogDebug)
	}
}
