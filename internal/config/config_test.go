package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("OUTPUT_DIR", "")
	t.Setenv("HISTORY_DB_PATH", "")
	t.Setenv("MAX_REQUEST_DIGITS", "")

	cfg := Load()
	if cfg.ListenAddr != ":8080" {
		t.Errorf("expected default listen addr, got %q", cfg.ListenAddr)
	}
	if cfg.OutputDir != "./tones" {
		t.Errorf("expected default output dir, got %q", cfg.OutputDir)
	}
	if cfg.MaxRequestDigits != 64 {
		t.Errorf("expected default digit cap 64, got %d", cfg.MaxRequestDigits)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9999")
	t.Setenv("OUTPUT_DIR", "/tmp/out")
	t.Setenv("HISTORY_DB_PATH", "/tmp/out/h.db")
	t.Setenv("MAX_REQUEST_DIGITS", "16")

	cfg := Load()
	if cfg.ListenAddr != ":9999" {
		t.Errorf("expected :9999, got %q", cfg.ListenAddr)
	}
	if cfg.OutputDir != "/tmp/out" {
		t.Errorf("expected /tmp/out, got %q", cfg.OutputDir)
	}
	if cfg.HistoryDBPath != "/tmp/out/h.db" {
		t.Errorf("expected /tmp/out/h.db, got %q", cfg.HistoryDBPath)
	}
	if cfg.MaxRequestDigits != 16 {
		t.Errorf("expected 16, got %d", cfg.MaxRequestDigits)
	}
}

func TestLoadBadIntFallsBack(t *testing.T) {
	t.Setenv("MAX_REQUEST_DIGITS", "lots")

	cfg := Load()
	if cfg.MaxRequestDigits != 64 {
		t.Errorf("expected fallback 64 for unparseable value, got %d", cfg.MaxRequestDigits)
	}
}
