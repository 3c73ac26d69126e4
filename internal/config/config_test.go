package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Username == "" {
		t.Error("username default missing")
	}
	if cfg.RemoteLatencyScale < 0 {
		t.Errorf("latency scale = %v", cfg.RemoteLatencyScale)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LINGUALEARN_DB", "/tmp/custom.db")
	t.Setenv("LINGUALEARN_REMOTE_LATENCY", "0")
	t.Setenv("LINGUALEARN_USERNAME", "PolyglotPam")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "/tmp/custom.db" {
		t.Errorf("dbPath = %q", cfg.DBPath)
	}
	if cfg.RemoteLatencyScale != 0 {
		t.Errorf("latency scale = %v, want 0", cfg.RemoteLatencyScale)
	}
	if cfg.Username != "PolyglotPam" {
		t.Errorf("username = %q", cfg.Username)
	}
}
