package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Game   GameConfig   `mapstructure:"game"`
	Search SearchConfig `mapstructure:"search"`
	Log    LogConfig    `mapstructure:"log"`
	UI     UIConfig     `mapstructure:"ui"`
}

// GameConfig holds game setup settings
type GameConfig struct {
	// BlackFirst decides which color makes the first move.
	BlackFirst bool `mapstructure:"black_first"`
	// HumanColor is "black" or "white"; the other color is played by
	// the searcher.
	HumanColor string `mapstructure:"human_color"`
}

// SearchConfig holds search settings
type SearchConfig struct {
	// Depth is the negamax depth in plies. Search work grows
	// exponentially with it.
	Depth int `mapstructure:"depth"`
	// CollectStats enables per-search node/cutoff counters in logs.
	CollectStats bool `mapstructure:"collect_stats"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// UIConfig holds terminal rendering settings
type UIConfig struct {
	// ShowHints marks the legal moves on the rendered board.
	ShowHints bool `mapstructure:"show_hints"`
	// Colored enables ANSI colors.
	Colored bool `mapstructure:"colored"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("game.black_first", true)
	v.SetDefault("game.human_color", "black")

	v.SetDefault("search.depth", 5)
	v.SetDefault("search.collect_stats", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("ui.show_hints", true)
	v.SetDefault("ui.colored", true)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("REVERSI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if configPath != "" {
			// Specific file requested but not found; fall back to defaults
		} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Validate checks the configuration for values the game cannot run with.
func Validate(c *Config) error {
	if c.Search.Depth <= 0 {
		return fmt.Errorf("search.depth must be positive, got %d", c.Search.Depth)
	}
	switch c.Game.HumanColor {
	case "black", "white":
	default:
		return fmt.Errorf("game.human_color must be black or white, got %q", c.Game.HumanColor)
	}
	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		// Initialize with defaults if not already initialized
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	v.Set(key, value)
	v.Unmarshal(cfg)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of config file
func WatchConfig(onChange func()) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		v.Unmarshal(cfg)
		if onChange != nil {
			onChange()
		}
	})
}
