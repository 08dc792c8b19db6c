package xlists

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileConfig_Missing(t *testing.T) {
	cfg, err := LoadFileConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.CDPURL != "http://localhost:9222" {
		t.Fatalf("expected default cdp_url, got %q", cfg.CDPURL)
	}
	if cfg.Output != "list_export.json" {
		t.Fatalf("expected default output, got %q", cfg.Output)
	}
}

func TestLoadFileConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "cdp_url: http://localhost:9223\nmax_pages: 10\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFileConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.CDPURL != "http://localhost:9223" {
		t.Fatalf("wrong cdp_url: %q", cfg.CDPURL)
	}
	if cfg.MaxPages != 10 {
		t.Fatalf("wrong max_pages: %d", cfg.MaxPages)
	}
	if cfg.Output != "list_export.json" {
		t.Fatalf("unset output should keep default, got %q", cfg.Output)
	}
}

func TestLoadFileConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("cdp_url: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFileConfig(path); err == nil {
		t.Fatal("expected parse error")
	}
}
