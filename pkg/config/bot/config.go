package bot

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// OwnerAnyone is the owner setting under which every user passes owner-only
// checks.
const OwnerAnyone = "anyone"

type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

type CommandConfig struct {
	Disabled map[string]bool `yaml:"disabled"`
}

type Config struct {
	// Prefixes is the global prefix set, in matching order. An empty list
	// leaves the default in place: the empty prefix, meaning bare command
	// names are recognized.
	Prefixes []string `yaml:"prefixes"`
	// GuildPrefixes maps guild ids to extra prefixes recognized only there.
	GuildPrefixes map[string][]string `yaml:"guildPrefixes"`
	// Owner is a user id, "anyone", or empty for no owner.
	Owner    string        `yaml:"owner"`
	Commands CommandConfig `yaml:"commands"`
	Log      LogConfig     `yaml:"log"`
}

// FromFile reads a yaml configuration, applying defaults for anything left
// unset.
func FromFile(path string) (Config, error) {
	config := Config{
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
		},
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(content, &config); err != nil {
		return Config{}, fmt.Errorf("cannot parse %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if c.Log.Encoding != "json" && c.Log.Encoding != "console" {
		return fmt.Errorf("log encoding must be either 'json' or 'console', got %q", c.Log.Encoding)
	}
	return nil
}
