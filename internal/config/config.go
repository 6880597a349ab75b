package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/marcelocantos/clish/internal/cap"
	"github.com/marcelocantos/clish/internal/rules"
)

// Config holds the global clish configuration.
type Config struct {
	Tiers       TierConfig                         `yaml:"tiers"`
	History     HistoryConfig                      `yaml:"history"`
	Rules       map[string]rules.CommandRuleConfig `yaml:"rules"`
	RulesScript string                             `yaml:"rules_script"`
}

// TierConfig controls which command tiers are enabled.
type TierConfig struct {
	Read      bool `yaml:"read"`
	Write     bool `yaml:"write"`
	Dangerous bool `yaml:"dangerous"`
}

// HistoryConfig controls the history log.
type HistoryConfig struct {
	Path     string `yaml:"path"`
	Disabled bool   `yaml:"disabled"`
}

// DefaultConfig returns the default configuration. All tiers are enabled;
// the shell is driven by a person at a prompt, and the guard rules still
// apply to the dangerous commands.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Tiers: TierConfig{
			Read:      true,
			Write:     true,
			Dangerous: true,
		},
		History: HistoryConfig{
			Path: filepath.Join(home, ".local", "share", "clish", "history.jsonl"),
		},
	}
}

// Load reads the config from the standard location (~/.config/clish/config.yaml).
// If the file doesn't exist, returns the default config.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultConfig(), nil
	}

	path := filepath.Join(home, ".config", "clish", "config.yaml")
	return LoadFrom(path)
}

// LoadFrom reads the config from the given path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.History.Path = expandHome(cfg.History.Path)
	cfg.RulesScript = expandHome(cfg.RulesScript)

	return cfg, nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// ApplyRules creates a RuleSet from the config and sets it on the
// registry. Hardcoded safety rules are always included; YAML rules and
// the optional Starlark rule script are layered on top.
func (c *Config) ApplyRules(reg *cap.Registry) error {
	rs := rules.NewRuleSet(rules.Hardcoded()...)
	for name, cmdRule := range c.Rules {
		for _, fn := range rules.CompileCommandRule(name, cmdRule) {
			rs.AddConfig(fn)
		}
	}
	if c.RulesScript != "" {
		fn, err := rules.LoadScript(c.RulesScript)
		if err != nil {
			return fmt.Errorf("load rules script: %w", err)
		}
		rs.AddConfig(fn)
	}
	reg.SetRules(rs)
	return nil
}

// ApplyTiers sets the registry tier permissions from the config.
func (c *Config) ApplyTiers(reg *cap.Registry) {
	reg.SetTier(cap.TierRead, c.Tiers.Read)
	reg.SetTier(cap.TierWrite, c.Tiers.Write)
	reg.SetTier(cap.TierDangerous, c.Tiers.Dangerous)
}

// ConfigPath returns the standard config file path.
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "clish", "config.yaml")
}
