// Package config owns the NamingConfig persisted on disk and its defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ColonReplacement selects how colons in resolved names are rewritten.
type ColonReplacement string

const (
	ColonDelete         ColonReplacement = "delete"
	ColonDash           ColonReplacement = "dash"
	ColonSpaceDash      ColonReplacement = "space-dash"
	ColonSpaceDashSpace ColonReplacement = "space-dash-space"
	// ColonSmart replaces ": " with " - " first, then bare ":" with "-".
	ColonSmart ColonReplacement = "smart"
)

// MultiEpisodeStyleExtend continues the first numbering occurrence per extra
// episode (S01E01-E02). It is currently the only supported style; the key is
// persisted so configs stay forward compatible if more styles are added.
const MultiEpisodeStyleExtend = "extend"

// NamingConfig holds the user's renaming settings.
type NamingConfig struct {
	RenameEpisodes           bool             `koanf:"rename"`
	ReplaceIllegalCharacters bool             `koanf:"replace_illegal_characters"`
	ColonReplacement         ColonReplacement `koanf:"colon_replacement"`
	StandardEpisodeFormat    string           `koanf:"standard_episode_format"`
	SeriesFolderFormat       string           `koanf:"series_folder_format"`
	MultiEpisodeStyle        string           `koanf:"multi_episode_style"`
}

// Default returns the stock configuration used when no file exists or when a
// caller wants rule evaluation without a concrete user override.
func Default() *NamingConfig {
	return &NamingConfig{
		RenameEpisodes:           true,
		ReplaceIllegalCharacters: true,
		ColonReplacement:         ColonSmart,
		StandardEpisodeFormat:    "{Site Title} - {Release Date} - {Episode Title} {Quality Full}",
		SeriesFolderFormat:       "{Site Title}",
		MultiEpisodeStyle:        MultiEpisodeStyleExtend,
	}
}

// Path returns the config file location under the XDG config home.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "scene-tidy", "config.toml")
}

// Load reads the configuration from disk, falling back to defaults for a
// missing file and for any field left empty.
func Load() (*NamingConfig, error) {
	return loadFrom(Path())
}

func loadFrom(path string) (*NamingConfig, error) {
	cfg := Default()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("stat config file: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("load config file %s: %w", path, err)
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	defaults := Default()
	if cfg.StandardEpisodeFormat == "" {
		cfg.StandardEpisodeFormat = defaults.StandardEpisodeFormat
	}
	if cfg.SeriesFolderFormat == "" {
		cfg.SeriesFolderFormat = defaults.SeriesFolderFormat
	}
	if cfg.ColonReplacement == "" {
		cfg.ColonReplacement = defaults.ColonReplacement
	}
	if cfg.MultiEpisodeStyle == "" {
		cfg.MultiEpisodeStyle = defaults.MultiEpisodeStyle
	}

	return cfg, nil
}

// Save writes the configuration to disk as TOML.
func (c *NamingConfig) Save() error {
	return c.saveTo(Path())
}

func (c *NamingConfig) saveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	body, err := toml.Parser().Marshal(map[string]interface{}{
		"rename":                     c.RenameEpisodes,
		"replace_illegal_characters": c.ReplaceIllegalCharacters,
		"colon_replacement":          string(c.ColonReplacement),
		"standard_episode_format":    c.StandardEpisodeFormat,
		"series_folder_format":       c.SeriesFolderFormat,
		"multi_episode_style":        c.MultiEpisodeStyle,
	})
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
