package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "configs", "config.toml")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config not written: %v", err)
	}
	if cfg.Workbook.Sheet != "FileList" {
		t.Errorf("Expected sheet FileList, got %q", cfg.Workbook.Sheet)
	}

	reloaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Macro.Procedure != "CompareVersions" {
		t.Errorf("Expected procedure CompareVersions, got %q", reloaded.Macro.Procedure)
	}
	if len(reloaded.SVN.Extensions) != 2 {
		t.Errorf("Expected 2 extensions, got %v", reloaded.SVN.Extensions)
	}
}

func TestLoadConfigFillsMissingValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[workbook]
path = "out/list.xlsm"

[svn]
extensions = ["cpp"]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Workbook.Path != "out/list.xlsm" {
		t.Errorf("path overwritten: %q", cfg.Workbook.Path)
	}
	if cfg.Workbook.Sheet != "FileList" {
		t.Errorf("Expected default sheet, got %q", cfg.Workbook.Sheet)
	}
	if cfg.SVN.Binary != "svn" {
		t.Errorf("Expected default binary, got %q", cfg.SVN.Binary)
	}
	if len(cfg.SVN.Extensions) != 1 || cfg.SVN.Extensions[0] != "cpp" {
		t.Errorf("extensions overwritten: %v", cfg.SVN.Extensions)
	}
	if cfg.SVN.Timeout() != 120*time.Second {
		t.Errorf("Expected 2m timeout, got %v", cfg.SVN.Timeout())
	}
	if cfg.Macro.ButtonLeft != 400 || cfg.Macro.ButtonTop != 120 {
		t.Errorf("Expected default button position, got %v,%v", cfg.Macro.ButtonLeft, cfg.Macro.ButtonTop)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[workbook\npath="), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for malformed toml")
	}
}
