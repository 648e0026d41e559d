/*
Package config manages the TOML config for wordtrie.

The file is created with defaults on first run. Sections that fail to
decode as a whole are recovered key by key; anything still unreadable
keeps its default.
*/
package config

import (
	"math"
	"os"
	"path/filepath"

	"github.com/bastiangx/wordtrie/internal/utils"
	"github.com/charmbracelet/log"
)

// FileName is the default config file name inside the config dir.
const FileName = "config.toml"

// MaxRankLimit caps server.max_limit so ranks fit the uint16 wire field.
const MaxRankLimit = math.MaxUint16

// Config holds the entire config structure
type Config struct {
	Dict   DictConfig   `toml:"dict"`
	Server ServerConfig `toml:"server"`
	CLI    CliConfig    `toml:"cli"`
}

// DictConfig holds dictionary sources and lookup options.
type DictConfig struct {
	DataDir           string `toml:"data_dir"`
	WordsFile         string `toml:"words_file"`
	AbbreviationsFile string `toml:"abbreviations_file"`
	PhoneticsFile     string `toml:"phonetics_file"`
	SuggestionLimit   int    `toml:"suggestion_limit"`
	CacheSize         int    `toml:"cache_size"`
}

// ServerConfig has IPC server options.
type ServerConfig struct {
	MaxLimit  int `toml:"max_limit"`
	MaxPrefix int `toml:"max_prefix"`
}

// CliConfig holds menu shell options.
type CliConfig struct {
	DefaultLimit int  `toml:"default_limit"`
	NoFilter     bool `toml:"no_filter"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Dict: DictConfig{
			DataDir:           "data",
			WordsFile:         "dictionary.txt",
			AbbreviationsFile: "abbreviations.txt",
			PhoneticsFile:     "phonetic.txt",
			SuggestionLimit:   3,
			CacheSize:         256,
		},
		Server: ServerConfig{
			MaxLimit:  64,
			MaxPrefix: 60,
		},
		CLI: CliConfig{
			DefaultLimit: 3,
			NoFilter:     false,
		},
	}
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. defaultPath, created with defaults when missing
// 3. Builtin defaults
// The returned path is the file actually used, "" for builtin defaults.
func LoadConfigWithPriority(customPath, defaultPath string) (*Config, string) {
	if customPath != "" {
		if _, err := os.Stat(customPath); err == nil {
			config, err := LoadConfig(customPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customPath)
				return config, customPath
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customPath, err)
		}
	}

	if defaultPath == "" {
		return DefaultConfig(), ""
	}
	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), ""
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	if err := utils.EnsureDir(filepath.Dir(configPath)); err != nil {
		return nil, err
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			return nil, err
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file, recovering what it can from a broken one.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	config.sanitize()
	return config, nil
}

// tryPartialParse extracts known keys with the right types from a file
// that did not decode into Config.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	raw, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(raw, "dict"); ok {
		extractDictConfig(section, &config.Dict)
	}
	if section, ok := utils.ExtractSection(raw, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	if section, ok := utils.ExtractSection(raw, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	config.sanitize()
	return config, nil
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "data_dir"); ok {
		dict.DataDir = val
	}
	if val, ok := utils.ExtractString(data, "words_file"); ok {
		dict.WordsFile = val
	}
	if val, ok := utils.ExtractString(data, "abbreviations_file"); ok {
		dict.AbbreviationsFile = val
	}
	if val, ok := utils.ExtractString(data, "phonetics_file"); ok {
		dict.PhoneticsFile = val
	}
	if val, ok := utils.ExtractInt(data, "suggestion_limit"); ok {
		dict.SuggestionLimit = val
	}
	if val, ok := utils.ExtractInt(data, "cache_size"); ok {
		dict.CacheSize = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt(data, "max_limit"); ok {
		server.MaxLimit = val
	}
	if val, ok := utils.ExtractInt(data, "max_prefix"); ok {
		server.MaxPrefix = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
	if val, ok := utils.ExtractBool(data, "no_filter"); ok {
		cli.NoFilter = val
	}
}

// sanitize puts out-of-range numbers back to their defaults.
func (c *Config) sanitize() {
	def := DefaultConfig()
	if c.Dict.SuggestionLimit < 1 {
		log.Warnf("suggestion_limit %d is invalid, using %d", c.Dict.SuggestionLimit, def.Dict.SuggestionLimit)
		c.Dict.SuggestionLimit = def.Dict.SuggestionLimit
	}
	if c.Dict.CacheSize < 0 {
		c.Dict.CacheSize = 0
	}
	if c.Server.MaxLimit < 1 {
		c.Server.MaxLimit = def.Server.MaxLimit
	}
	if c.Server.MaxLimit > MaxRankLimit {
		log.Warnf("max_limit %d exceeds %d, capping", c.Server.MaxLimit, MaxRankLimit)
		c.Server.MaxLimit = MaxRankLimit
	}
	if c.Server.MaxPrefix < 1 {
		c.Server.MaxPrefix = def.Server.MaxPrefix
	}
	if c.CLI.DefaultLimit < 1 {
		c.CLI.DefaultLimit = def.CLI.DefaultLimit
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// Update changes server limits and saves to configPath when it is set.
func (c *Config) Update(configPath string, maxLimit, maxPrefix *int) error {
	if maxLimit != nil {
		c.Server.MaxLimit = *maxLimit
	}
	if maxPrefix != nil {
		c.Server.MaxPrefix = *maxPrefix
	}
	c.sanitize()
	if configPath == "" {
		return nil
	}
	return SaveConfig(c, configPath)
}
