package main

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML configuration file. Knobs set here apply
// unless the corresponding flag is given on the command line; keyword
// lists replace the built-in defaults wholesale.
type Config struct {
	PollMs           int64 `yaml:"poll_ms"`
	GraceSeconds     int   `yaml:"grace_seconds"`
	HeartbeatSeconds int   `yaml:"heartbeat_seconds"`
	FlushSeconds     int   `yaml:"flush_seconds"`
	FocusTTLSeconds  int   `yaml:"focus_ttl_seconds"`

	Broker     string `yaml:"broker"`
	HTTPAddr   string `yaml:"http_addr"`
	DBPath     string `yaml:"db_path"`
	FocusTopic string `yaml:"focus_topic"`

	ProductiveKeywords   []string `yaml:"productive_keywords"`
	UnproductiveKeywords []string `yaml:"unproductive_keywords"`
}

var defaultProductiveKeywords = []string{
	// Development
	"visual studio code", "pycharm", "intellij", "android studio", "sublime text",
	"terminal", "command prompt", "powershell", "git",

	// Office & writing
	"word", "excel", "powerpoint", "onenote",
	"google docs", "google sheets", "google slides",

	// Communication
	"zoom", "microsoft teams", "slack",

	// Design
	"photoshop", "illustrator", "figma", "canva", "autocad",

	// Research & learning
	"github", "stack overflow", "jira", "trello", "documentation",
}

var defaultUnproductiveKeywords = []string{
	// Social media
	"instagram", "twitter", "facebook", "reddit", "pinterest", "tiktok",

	// Entertainment & streaming
	"youtube", "netflix", "prime video", "disney+", "hulu",

	// Music
	"spotify", "apple music", "soundcloud",

	// Gaming & chat
	"steam", "epic games", "discord", "telegram",
}

// LoadConfig reads the YAML config at path (or $PRODMON_CONFIG when path is
// empty). A missing path yields defaults; a present but unreadable file is
// fatal.
func LoadConfig(path string) Config {
	var cfg Config

	if path == "" {
		path = os.Getenv("PRODMON_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("read config %s: %v", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("parse config %s: %v", path, err)
		}
		log.Printf("loaded config from %s", path)
	}

	// Env vars override YAML values
	envOverride(&cfg.Broker, "PRODMON_BROKER")
	envOverride(&cfg.DBPath, "PRODMON_DB_PATH")
	envOverride(&cfg.HTTPAddr, "PRODMON_HTTP_ADDR")
	envOverride(&cfg.FocusTopic, "PRODMON_FOCUS_TOPIC")

	if len(cfg.ProductiveKeywords) == 0 {
		cfg.ProductiveKeywords = defaultProductiveKeywords
	}
	if len(cfg.UnproductiveKeywords) == 0 {
		cfg.UnproductiveKeywords = defaultUnproductiveKeywords
	}
	return cfg
}

func envOverride(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

// mergeConfig applies config-file values for every knob not set explicitly
// on the command line (set holds the flag names seen by flag.Visit).
func mergeConfig(cfg Config, opts *options, set map[string]bool) {
	if !set["poll"] && cfg.PollMs > 0 {
		opts.poll = time.Duration(cfg.PollMs) * time.Millisecond
	}
	if !set["grace"] && cfg.GraceSeconds > 0 {
		opts.grace = time.Duration(cfg.GraceSeconds) * time.Second
	}
	if !set["heartbeat"] && cfg.HeartbeatSeconds > 0 {
		opts.heartbeat = time.Duration(cfg.HeartbeatSeconds) * time.Second
	}
	if !set["flush"] && cfg.FlushSeconds > 0 {
		opts.flush = time.Duration(cfg.FlushSeconds) * time.Second
	}
	if !set["focus-ttl"] && cfg.FocusTTLSeconds > 0 {
		opts.focusTTL = time.Duration(cfg.FocusTTLSeconds) * time.Second
	}
	if !set["broker"] && cfg.Broker != "" {
		opts.broker = cfg.Broker
	}
	if !set["http"] && cfg.HTTPAddr != "" {
		opts.httpAddr = cfg.HTTPAddr
	}
	if !set["db"] && cfg.DBPath != "" {
		opts.dbPath = cfg.DBPath
	}
	if !set["focus-topic"] && cfg.FocusTopic != "" {
		opts.focusTopic = cfg.FocusTopic
	}
}
