package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the top-level renshu configuration.
type Config struct {
	User  UserConfig  `toml:"user"`
	Study StudyConfig `toml:"study"`
	Theme ThemeConfig `toml:"theme"`
}

type UserConfig struct {
	Name string `toml:"name"`
}

// StudyConfig controls drill defaults.
type StudyConfig struct {
	DefaultDeck string `toml:"default_deck"` // hiragana, katakana, vocab
	DrillSize   int    `toml:"drill_size"`   // prompts per untimed drill
	TimedSecs   int    `toml:"timed_secs"`   // default timed-challenge length
	Tips        *bool  `toml:"tips"`         // nil means on
}

// TipsEnabled reports whether the daily tip is shown on the dashboard.
// A pointer distinguishes "never set" (on) from an explicit false.
func (s StudyConfig) TipsEnabled() bool {
	return s.Tips == nil || *s.Tips
}

// BoolPtr returns a pointer to b, for optional bool config fields.
func BoolPtr(b bool) *bool {
	return &b
}

// ThemeConfig holds presentation defaults. The active theme itself lives in
// the prefs store so switching themes never rewrites the config file.
type ThemeConfig struct {
	Default string `toml:"default"`
}

// Paths returns standard XDG-compliant paths.
type Paths struct {
	ConfigDir  string
	DataDir    string
	CacheDir   string
	StateDir   string
	ConfigFile string
	DBFile     string
}

// GetPaths returns the resolved paths, respecting XDG env vars.
func GetPaths() Paths {
	home, _ := os.UserHomeDir()

	configDir := envOr("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	dataDir := envOr("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))
	cacheDir := envOr("XDG_CACHE_HOME", filepath.Join(home, ".cache"))
	stateDir := envOr("XDG_STATE_HOME", filepath.Join(home, ".local", "state"))

	renshuConfig := filepath.Join(configDir, "renshu")
	renshuData := filepath.Join(dataDir, "renshu")

	return Paths{
		ConfigDir:  renshuConfig,
		DataDir:    renshuData,
		CacheDir:   filepath.Join(cacheDir, "renshu"),
		StateDir:   filepath.Join(stateDir, "renshu"),
		ConfigFile: filepath.Join(renshuConfig, "config.toml"),
		DBFile:     filepath.Join(renshuData, "renshu.db"),
	}
}

// EnsureDirs creates all required directories.
func (p Paths) EnsureDirs() error {
	dirs := []string{p.ConfigDir, p.DataDir, p.CacheDir, p.StateDir}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}
	return nil
}

// Load reads config from disk, returning defaults if not found.
func Load() (*Config, error) {
	paths := GetPaths()
	cfg := &Config{}

	data, err := os.ReadFile(paths.ConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)
	return cfg, nil
}

// Save writes config to disk.
func Save(cfg *Config) error {
	paths := GetPaths()
	if err := paths.EnsureDirs(); err != nil {
		return err
	}

	f, err := os.Create(paths.ConfigFile)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Initialized returns true if renshu has been set up.
func Initialized() bool {
	paths := GetPaths()
	_, err := os.Stat(paths.ConfigFile)
	return err == nil
}

func defaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills zero-valued fields so a partial config file still works.
func applyDefaults(cfg *Config) {
	if cfg.Study.DefaultDeck == "" {
		cfg.Study.DefaultDeck = "hiragana"
	}
	if cfg.Study.DrillSize == 0 {
		cfg.Study.DrillSize = 20
	}
	if cfg.Study.TimedSecs == 0 {
		cfg.Study.TimedSecs = 60
	}
	if cfg.Theme.Default == "" {
		cfg.Theme.Default = "ink"
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
