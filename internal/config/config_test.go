package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

func TestLoadConfig(t *testing.T) {
	p := writeFile(t, "config.json", `{
		"server": {"address": "127.0.0.1:9000"},
		"scenario_pack": " ./packs/civics.yaml ",
		"database": "/tmp/x.db",
		"session_ttl": "2h",
		"purge_interval": "30s"
	}`)

	cfg, err := LoadConfig(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerAddress != "127.0.0.1:9000" || cfg.ScenarioPack != "./packs/civics.yaml" || cfg.Database != "/tmp/x.db" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.SessionTTL != 2*time.Hour || cfg.PurgeInterval != 30*time.Second {
		t.Fatalf("unexpected durations: %s %s", cfg.SessionTTL, cfg.PurgeInterval)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeFile(t, "config.json", `{}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerAddress != DefaultAddress || cfg.SessionTTL != DefaultSessionTTL || cfg.ScenarioPack != "" {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := LoadConfig(writeFile(t, "bad.json", `{`)); err == nil {
		t.Fatalf("expected parse error")
	}
	_, err := LoadConfig(writeFile(t, "ttl.json", `{"session_ttl": "forever"}`))
	if err == nil || !strings.Contains(err.Error(), "session_ttl") {
		t.Fatalf("expected session_ttl error, got %v", err)
	}
	if _, err := LoadConfig(writeFile(t, "neg.json", `{"purge_interval": "-1s"}`)); err == nil {
		t.Fatalf("expected error for negative purge interval")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("SMARTSANSTHA_ADDR", ":7070")
	t.Setenv("SMARTSANSTHA_DB", "file::memory:")
	t.Setenv("SMARTSANSTHA_SESSION_TTL", "45m")

	cfg := Defaults()
	if err := ApplyEnv(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerAddress != ":7070" || cfg.Database != "file::memory:" || cfg.SessionTTL != 45*time.Minute {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.PurgeInterval != DefaultPurgeInterval {
		t.Fatalf("unset variables must keep their value, got %s", cfg.PurgeInterval)
	}
}

func TestApplyEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SMARTSANSTHA_PURGE_INTERVAL", "soon")
	if err := ApplyEnv(Defaults()); err == nil {
		t.Fatalf("expected parse error")
	}
}
