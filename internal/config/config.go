// Package config loads natded's configuration: whether output is
// colorized, whether step metrics are exported, how long watch mode
// debounces before re-running, and the author attached to exported
// sessions. Values come from a config file (TOML or YAML, either is
// accepted), environment variables (ND_* prefix), and command-line
// flags, in increasing order of precedence, the same layering the
// teacher's own config code builds on viper for.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config is the subset of settings that need to be read directly,
// independent of whatever cobra command is running.
type Config struct {
	// Color enables ANSI styling of sequents and effects in the
	// terminal front-end.
	Color bool `mapstructure:"color"`

	// MetricsEnabled turns on the OpenTelemetry step/theorem counters.
	MetricsEnabled bool `mapstructure:"metrics-enabled"`

	// WatchDebounce is how long the watch-mode script runner waits
	// after a file-system event before re-executing the script.
	WatchDebounce time.Duration `mapstructure:"watch-debounce"`

	// Author is attached to exported proof sessions; informational
	// only, never checked by the engine.
	Author string `mapstructure:"author"`
}

// Default returns the engine's documented defaults.
func Default() Config {
	return Config{
		Color:          true,
		MetricsEnabled: false,
		WatchDebounce:  300 * time.Millisecond,
	}
}

// Load builds a Config by layering, in increasing precedence: built-in
// defaults, a config file, and ND_-prefixed environment variables. The
// config file is explicitFile if non-empty; otherwise natded.toml or
// natded.yaml is searched for in the current directory and $HOME.
func Load(explicitFile string) (Config, error) {
	v := viper.New()
	def := Default()
	v.SetDefault("color", def.Color)
	v.SetDefault("metrics-enabled", def.MetricsEnabled)
	v.SetDefault("watch-debounce", def.WatchDebounce)
	v.SetDefault("author", def.Author)

	v.SetEnvPrefix("ND")
	v.AutomaticEnv()

	if explicitFile != "" {
		v.SetConfigFile(explicitFile)
	} else {
		v.SetConfigName("natded")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && explicitFile != "" {
			return Config{}, fmt.Errorf("reading config %s: %w", filepath.Base(explicitFile), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
