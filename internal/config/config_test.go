package config

import (
	"os"
	"path/filepath"
	"testing"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("USAGEMARK_DATA_DIR", "")
	t.Setenv("USAGEMARK_PERIOD", "")
	t.Setenv("USAGEMARK_LOCALE", "")
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.General.Period != "all" || cfg.General.MaxDailyRows != 10 {
		t.Errorf("general defaults = %+v", cfg.General)
	}
	if cfg.Markers.Start != "<!-- usagemark:start -->" || cfg.Markers.End != "<!-- usagemark:end -->" {
		t.Errorf("marker defaults = %+v", cfg.Markers)
	}
	if cfg.Output.Document != "README.md" {
		t.Errorf("document default = %q", cfg.Output.Document)
	}
	if Exists() {
		t.Error("no file written yet, Exists should be false")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	isolate(t)

	cfg := DefaultConfig()
	cfg.General.Period = "week"
	cfg.General.DataDir = "/data/usage"
	cfg.Badge.Label = "spend"
	cfg.Badge.Value = "cost"
	cfg.Models.ShortNames = map[string]string{"claude-opus-4-6": "Primary"}

	if err := Save(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !Exists() {
		t.Fatal("config file should exist after save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.General.Period != "week" || got.General.DataDir != "/data/usage" {
		t.Errorf("general = %+v", got.General)
	}
	if got.Badge.Label != "spend" || got.Badge.Value != "cost" {
		t.Errorf("badge = %+v", got.Badge)
	}
	if got.Models.ShortNames["claude-opus-4-6"] != "Primary" {
		t.Errorf("short names = %v", got.Models.ShortNames)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("USAGEMARK_PERIOD", "month")
	t.Setenv("USAGEMARK_DATA_DIR", "/env/dir")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.General.Period != "month" {
		t.Errorf("Period = %q, want month (env override)", cfg.General.Period)
	}
	if cfg.General.DataDir != "/env/dir" {
		t.Errorf("DataDir = %q, want /env/dir", cfg.General.DataDir)
	}
}

func TestLoad_BadToml(t *testing.T) {
	isolate(t)

	if err := os.MkdirAll(ConfigDir(), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(ConfigPath(), []byte("not = [valid"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err == nil {
		t.Fatal("want parse error")
	}
	// Defaults still come back so the caller can warn and continue.
	if cfg.Output.Document != "README.md" {
		t.Errorf("document = %q, want default on parse failure", cfg.Output.Document)
	}
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := ConfigPath(); got != filepath.Join("/xdg", "usagemark", "config.toml") {
		t.Errorf("ConfigPath = %q", got)
	}
}
