package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
debug: true
server:
  host: 0.0.0.0
  port: 9090
storage:
  backend: memory
cache:
  ttl_minutes: 5
scoring:
  question_text_weight: 12
datasets:
  directories:
    - ./datasets
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !cfg.Debug {
		t.Error("Debug not parsed")
	}
	if cfg.Server.Host != "0.0.0.0" || cfg.Server.Port != 9090 {
		t.Errorf("server = %s:%d", cfg.Server.Host, cfg.Server.Port)
	}
	if cfg.Storage.Backend != "memory" {
		t.Errorf("backend = %q", cfg.Storage.Backend)
	}
	if cfg.Cache.TTLMinutes != 5 {
		t.Errorf("ttl = %d", cfg.Cache.TTLMinutes)
	}
	if cfg.Scoring.QuestionTextWeight != 12 {
		t.Errorf("QuestionTextWeight = %v, want explicit 12", cfg.Scoring.QuestionTextWeight)
	}
	// Unset scoring values still pick up defaults.
	if cfg.Scoring.TagWeight != 4 {
		t.Errorf("TagWeight = %v, want default 4", cfg.Scoring.TagWeight)
	}
	// "./" dataset paths are resolved against the config directory.
	if want := filepath.Join(dir, "datasets"); cfg.Datasets.Directories[0] != want {
		t.Errorf("dataset dir = %q, want %q", cfg.Datasets.Directories[0], want)
	}
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "{}\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Host != "localhost" || cfg.Server.Port != 8080 {
		t.Errorf("default server = %s:%d", cfg.Server.Host, cfg.Server.Port)
	}
	if cfg.Server.RequestsPerSecond != 25 || cfg.Server.Burst != 50 {
		t.Errorf("default rate limit = %v/%d", cfg.Server.RequestsPerSecond, cfg.Server.Burst)
	}
	if cfg.Storage.Backend != "sqlite" {
		t.Errorf("default backend = %q", cfg.Storage.Backend)
	}
	if cfg.Cache.TTLMinutes != 15 {
		t.Errorf("default ttl = %d", cfg.Cache.TTLMinutes)
	}
	if cfg.Scoring.QuestionTextWeight != 10 {
		t.Errorf("default QuestionTextWeight = %v", cfg.Scoring.QuestionTextWeight)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := writeConfig(t, t.TempDir(), "server: [not a map\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"absolute untouched", "/var/lib/prepsearch.db", "/var/lib/prepsearch.db"},
		{"empty untouched", "", ""},
		{"dot-slash relative to config dir", "./data/q.db", "/etc/prepsearch/data/q.db"},
		{"bare relative to home", "prepsearch/q.db", filepath.Join(home, "prepsearch/q.db")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := expandPath(tt.path, "/etc/prepsearch"); got != tt.want {
				t.Errorf("expandPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
