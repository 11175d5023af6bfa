// Package config is a strictly optional, protocol-neutral tuning layer:
// preallocation capacity hints and a metrics on/off switch, none of which
// are observable in the five-command protocol's output.
//
// The direct-read-plus-env-override shape is adapted from the teacher's
// internal/config/local_config.go, which reads config.yaml straight off
// disk (bypassing its viper singleton) so callers can load configuration
// before or without viper being initialized. This package keeps that
// shape but drops the project-directory walk: reltrack has no persistent
// project root, so the config path is always given explicitly by the CLI.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config is the full set of tunable knobs. Zero value is not valid on its
// own; use Defaults() or Load().
type Config struct {
	InitialTypeCapacity   int  `yaml:"initial-type-capacity" toml:"initial-type-capacity"`
	InitialEntityCapacity int  `yaml:"initial-entity-capacity" toml:"initial-entity-capacity"`
	Metrics               bool `yaml:"metrics" toml:"metrics"`
}

// Defaults returns the configuration used when no file is given and no
// environment overrides are set.
func Defaults() Config {
	return Config{
		InitialTypeCapacity:   16,
		InitialEntityCapacity: 1024,
		Metrics:               false,
	}
}

// Load reads path (a .yaml, .yml, or .toml file) if path is non-empty,
// starting from Defaults() and overlaying whatever the file sets, then
// applying environment variable overrides on top. A non-empty path that
// can't be read or parsed is an error; an empty path just returns
// Defaults() with environment overrides applied.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 - path is an explicit CLI flag
		if err != nil {
			return Config{}, err
		}
		if strings.HasSuffix(path, ".toml") {
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return Config{}, err
			}
		} else {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, err
			}
		}
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

// applyEnvOverrides mirrors local_config.go's GetLocalSyncBranch pattern:
// environment variables take precedence over whatever the file set.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("RELTRACK_INITIAL_TYPE_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.InitialTypeCapacity = n
		}
	}
	if v := os.Getenv("RELTRACK_INITIAL_ENTITY_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.InitialEntityCapacity = n
		}
	}
	if v := os.Getenv("RELTRACK_METRICS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Metrics = b
		}
	}
}
