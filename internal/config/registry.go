package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// KeyType represents the data type of a config key.
type KeyType string

const (
	KeyTypeString KeyType = "string"
	KeyTypeInt    KeyType = "int"
	KeyTypeBool   KeyType = "bool"
)

// KeyEntry describes a known, settable config key.
type KeyEntry struct {
	// Type is the value's data type (string, int, bool).
	Type KeyType
	// Desc is a human-readable description shown in `renshu config list`.
	Desc string
	// DefaultStr is the string representation of the default/zero value.
	DefaultStr string

	// get returns the current value as a string.
	get func(*Config) string
	// set validates and applies the value to cfg, returning an error on type mismatch.
	set func(cfg *Config, value string) error
	// unset resets the key to its schema default.
	unset func(cfg *Config)
}

// Get returns the current value of the key as a string.
func (e *KeyEntry) Get(cfg *Config) string { return e.get(cfg) }

// Set validates and sets the value, returning a descriptive error on type mismatch.
func (e *KeyEntry) Set(cfg *Config, value string) error { return e.set(cfg, value) }

// Unset resets the key to its schema default.
func (e *KeyEntry) Unset(cfg *Config) { e.unset(cfg) }

// SchemaKeys is the authoritative registry of all settable config keys.
// Keys use dot-notation matching the TOML section structure.
var SchemaKeys = map[string]*KeyEntry{
	"user.name": {
		Type:       KeyTypeString,
		Desc:       "Display name used in greetings",
		DefaultStr: "",
		get:        func(cfg *Config) string { return cfg.User.Name },
		set:        func(cfg *Config, v string) error { cfg.User.Name = v; return nil },
		unset:      func(cfg *Config) { cfg.User.Name = "" },
	},
	"study.default_deck": {
		Type:       KeyTypeString,
		Desc:       "Deck used when `renshu drill` is run without one (hiragana, katakana, vocab)",
		DefaultStr: "hiragana",
		get:        func(cfg *Config) string { return cfg.Study.DefaultDeck },
		set: func(cfg *Config, v string) error {
			switch v {
			case "hiragana", "katakana", "vocab":
				cfg.Study.DefaultDeck = v
				return nil
			}
			return fmt.Errorf("unknown deck %q (use one of: hiragana, katakana, vocab)", v)
		},
		unset: func(cfg *Config) { cfg.Study.DefaultDeck = "hiragana" },
	},
	"study.drill_size": {
		Type:       KeyTypeInt,
		Desc:       "Prompts per untimed drill",
		DefaultStr: "20",
		get:        func(cfg *Config) string { return strconv.Itoa(cfg.Study.DrillSize) },
		set: func(cfg *Config, v string) error {
			n, err := ParseIntValue(v)
			if err != nil {
				return fmt.Errorf("invalid value %q for study.drill_size: %w", v, err)
			}
			cfg.Study.DrillSize = n
			return nil
		},
		unset: func(cfg *Config) { cfg.Study.DrillSize = 20 },
	},
	"study.tips": {
		Type:       KeyTypeBool,
		Desc:       "Show the daily study tip on the dashboard",
		DefaultStr: "true",
		get:        func(cfg *Config) string { return strconv.FormatBool(cfg.Study.TipsEnabled()) },
		set: func(cfg *Config, v string) error {
			b, err := ParseBoolValue(v)
			if err != nil {
				return fmt.Errorf("invalid value %q for study.tips: %w", v, err)
			}
			cfg.Study.Tips = BoolPtr(b)
			return nil
		},
		unset: func(cfg *Config) { cfg.Study.Tips = nil },
	},
	"study.timed_secs": {
		Type:       KeyTypeInt,
		Desc:       "Seconds on the clock for timed challenges",
		DefaultStr: "60",
		get:        func(cfg *Config) string { return strconv.Itoa(cfg.Study.TimedSecs) },
		set: func(cfg *Config, v string) error {
			n, err := ParseIntValue(v)
			if err != nil {
				return fmt.Errorf("invalid value %q for study.timed_secs: %w", v, err)
			}
			cfg.Study.TimedSecs = n
			return nil
		},
		unset: func(cfg *Config) { cfg.Study.TimedSecs = 60 },
	},
	"theme.default": {
		Type:       KeyTypeString,
		Desc:       "Theme applied when no theme has been chosen yet",
		DefaultStr: "ink",
		get:        func(cfg *Config) string { return cfg.Theme.Default },
		set:        func(cfg *Config, v string) error { cfg.Theme.Default = v; return nil },
		unset:      func(cfg *Config) { cfg.Theme.Default = "ink" },
	},
}

// ValidKeyNames returns the sorted list of all known config key names.
func ValidKeyNames() []string {
	names := make([]string, 0, len(SchemaKeys))
	for k := range SchemaKeys {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// LookupKey returns the KeyEntry for a known config key.
func LookupKey(key string) (*KeyEntry, bool) {
	entry, ok := SchemaKeys[key]
	return entry, ok
}

// ParseBoolValue accepts common boolean string representations.
// Valid truthy values: true, 1, yes, on.
// Valid falsy values: false, 0, no, off.
func ParseBoolValue(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("not a boolean: %q (use one of: true/false, 1/0, yes/no, on/off)", s)
	}
}

// ParseIntValue parses a positive integer config value.
func ParseIntValue(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("must be positive, got %d", n)
	}
	return n, nil
}
