package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig(\"\") error: %v", err)
	}
	if cfg.Float("flowchart.nodeSpacing", -1) != 50.0 {
		t.Errorf("expected default flowchart.nodeSpacing, got %v", cfg["flowchart.nodeSpacing"])
	}
}

func TestLoadConfigMergesNestedTableOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	toml := "[flowchart]\nnodeSpacing = 80.0\n"
	if err := os.WriteFile(path, []byte(toml), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if got := cfg.Float("flowchart.nodeSpacing", -1); got != 80.0 {
		t.Errorf("flowchart.nodeSpacing = %v, want 80", got)
	}
	// Untouched keys still fall back to the baseline.
	if got := cfg.Float("flowchart.rankSpacing", -1); got != 50.0 {
		t.Errorf("flowchart.rankSpacing = %v, want unchanged default 50", got)
	}
}
