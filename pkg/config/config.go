/*
Package config manages TOML config for the table generator.
*/
package config

import (
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/yawnoc/stroke-input-data/internal/utils"
)

// Config holds the entire config structure
type Config struct {
	Input  InputConfig  `toml:"input"`
	Output OutputConfig `toml:"output"`
	Prefix PrefixConfig `toml:"prefix"`
}

// InputConfig names the two source files the generator consumes.
type InputConfig struct {
	Ranking   string `toml:"ranking"`
	Catalogue string `toml:"catalogue"`
}

// OutputConfig names the files the generator writes. Binary is the
// optional MessagePack export; empty disables it.
type OutputConfig struct {
	Exact   string `toml:"exact"`
	Prefix  string `toml:"prefix"`
	Ignored string `toml:"ignored"`
	Binary  string `toml:"binary"`
}

// PrefixConfig holds the prefix precomputation bounds.
type PrefixConfig struct {
	// MaxStrokeCount is the longest prefix precomputed for the live
	// lookup, n in the prefix file header.
	MaxStrokeCount int `toml:"max_stroke_count"`
	// MaxMatchCount caps the characters per prefix row.
	MaxMatchCount int `toml:"max_match_count"`
	// FullLookupRowCount is the rough size of the full exact table,
	// quoted in the prefix file header to justify the bound.
	FullLookupRowCount int `toml:"full_lookup_row_count"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Ranking:   "ranking.txt",
			Catalogue: "codepoint-character-sequence.txt",
		},
		Output: OutputConfig{
			Exact:   "sequence-exact-characters.txt",
			Prefix:  "sequence-prefix-characters.txt",
			Ignored: ".ignored-lines.txt",
			Binary:  "",
		},
		Prefix: PrefixConfig{
			MaxStrokeCount:     3,
			MaxMatchCount:      20,
			FullLookupRowCount: 30000,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file, on top of the builtin defaults so
// partial files stay usable.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
