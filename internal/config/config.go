// Package config handles loading butler.toml configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/amonks/butler/internal/paths"
)

// ErrInvalidConfig indicates a config value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the butler.toml configuration file.
type Config struct {
	Interpreter Interpreter `toml:"interpreter"`
	History     History     `toml:"history"`
	Log         Log         `toml:"log"`
}

// Interpreter contains dispatcher configuration.
type Interpreter struct {
	// MutationTimeout bounds each task or journal store call, like "5s".
	// Zero means the dispatcher default.
	MutationTimeout Duration `toml:"mutation-timeout"`

	// Queue makes concurrent commands wait their turn instead of being rejected.
	Queue bool `toml:"queue"`
}

// History contains command history display configuration.
type History struct {
	// Recent is how many commands the recent-commands view shows.
	Recent int `toml:"recent"`
}

// Log contains logging configuration.
type Log struct {
	Verbose bool `toml:"verbose"`
}

// DefaultRecent is used when history.recent is unset.
const DefaultRecent = 10

// Duration is a time.Duration written as a Go duration string.
type Duration struct {
	time.Duration
}

// UnmarshalText parses values like "250ms" or "5s".
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// MarshalText formats the duration as a Go duration string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Load loads configuration from the global config file and from
// butler.toml in dir. Project values win for keys the project file defines.
// Returns defaults if no config files exist.
func Load(dir string) (*Config, error) {
	return LoadFile(paths.ProjectConfigPath(dir))
}

// LoadFile is like Load but reads the project config from path.
func LoadFile(path string) (*Config, error) {
	globalPath, err := paths.GlobalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(path)
	if err != nil {
		return nil, err
	}

	merged := mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta)
	if err := merged.validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.Interpreter.MutationTimeout = pick(projectMeta.IsDefined("interpreter", "mutation-timeout"), projectCfg.Interpreter.MutationTimeout, globalCfg.Interpreter.MutationTimeout)
	merged.Interpreter.Queue = pick(projectMeta.IsDefined("interpreter", "queue"), projectCfg.Interpreter.Queue, globalCfg.Interpreter.Queue)
	merged.Log.Verbose = pick(projectMeta.IsDefined("log", "verbose"), projectCfg.Log.Verbose, globalCfg.Log.Verbose)

	merged.History.Recent = DefaultRecent
	if projectMeta.IsDefined("history", "recent") {
		merged.History.Recent = projectCfg.History.Recent
	} else if globalMeta.IsDefined("history", "recent") {
		merged.History.Recent = globalCfg.History.Recent
	}

	return &merged
}

func pick[T any](projectDefined bool, projectValue, globalValue T) T {
	if projectDefined {
		return projectValue
	}
	return globalValue
}

func (c *Config) validate() error {
	if c.Interpreter.MutationTimeout.Duration < 0 {
		return fmt.Errorf("%w: interpreter.mutation-timeout must not be negative", ErrInvalidConfig)
	}
	if c.History.Recent < 1 {
		return fmt.Errorf("%w: history.recent must be at least 1", ErrInvalidConfig)
	}
	return nil
}
