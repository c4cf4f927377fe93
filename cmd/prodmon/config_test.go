package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prodmon.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PRODMON_CONFIG", "")
	cfg := LoadConfig("")

	if len(cfg.ProductiveKeywords) == 0 {
		t.Error("expected default productive keywords")
	}
	if len(cfg.UnproductiveKeywords) == 0 {
		t.Error("expected default unproductive keywords")
	}
	if cfg.Broker != "" {
		t.Errorf("Broker = %q, want empty", cfg.Broker)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
grace_seconds: 30
broker: tcp://broker.local:1883
productive_keywords:
  - emacs
  - vim
`)
	cfg := LoadConfig(path)

	if cfg.GraceSeconds != 30 {
		t.Errorf("GraceSeconds = %d, want 30", cfg.GraceSeconds)
	}
	if cfg.Broker != "tcp://broker.local:1883" {
		t.Errorf("Broker = %q", cfg.Broker)
	}
	if len(cfg.ProductiveKeywords) != 2 || cfg.ProductiveKeywords[0] != "emacs" {
		t.Errorf("ProductiveKeywords = %v", cfg.ProductiveKeywords)
	}
	// The other list was left out, so defaults still apply.
	if len(cfg.UnproductiveKeywords) == 0 {
		t.Error("expected default unproductive keywords")
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
broker: tcp://from-yaml:1883
db_path: /tmp/yaml.db
`)
	t.Setenv("PRODMON_BROKER", "tcp://from-env:1883")
	t.Setenv("PRODMON_HTTP_ADDR", ":9999")

	cfg := LoadConfig(path)

	if cfg.Broker != "tcp://from-env:1883" {
		t.Errorf("Broker = %q, env should win over yaml", cfg.Broker)
	}
	if cfg.HTTPAddr != ":9999" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.DBPath != "/tmp/yaml.db" {
		t.Errorf("DBPath = %q, yaml should survive without env", cfg.DBPath)
	}
}

func TestLoadConfigEnvPath(t *testing.T) {
	path := writeConfig(t, "poll_ms: 250\n")
	t.Setenv("PRODMON_CONFIG", path)

	cfg := LoadConfig("")

	if cfg.PollMs != 250 {
		t.Errorf("PollMs = %d, want 250", cfg.PollMs)
	}
}

func TestMergeConfigRespectsFlags(t *testing.T) {
	opts := options{
		poll:   time.Second,
		grace:  15 * time.Second,
		broker: "tcp://127.0.0.1:1883",
		dbPath: "./prodmon.db",
	}
	cfg := Config{
		PollMs:       500,
		GraceSeconds: 60,
		Broker:       "tcp://cfg:1883",
		DBPath:       "/var/lib/prodmon.db",
	}

	// "grace" was given on the command line, the rest were not.
	mergeConfig(cfg, &opts, map[string]bool{"grace": true})

	if opts.poll != 500*time.Millisecond {
		t.Errorf("poll = %v, want 500ms from config", opts.poll)
	}
	if opts.grace != 15*time.Second {
		t.Errorf("grace = %v, flag value should win", opts.grace)
	}
	if opts.broker != "tcp://cfg:1883" {
		t.Errorf("broker = %q", opts.broker)
	}
	if opts.dbPath != "/var/lib/prodmon.db" {
		t.Errorf("dbPath = %q", opts.dbPath)
	}
}

func TestMergeConfigIgnoresZeroValues(t *testing.T) {
	opts := options{poll: time.Second, httpAddr: ":8090"}
	mergeConfig(Config{}, &opts, map[string]bool{})

	if opts.poll != time.Second {
		t.Errorf("poll = %v, zero config must not clobber defaults", opts.poll)
	}
	if opts.httpAddr != ":8090" {
		t.Errorf("httpAddr = %q", opts.httpAddr)
	}
}
