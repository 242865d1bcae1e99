// File: internal/config/config.go
// Configuration for the humancursor CLI and library defaults. Loaded from a
// YAML file and environment variables via Viper; every knob has a sensible
// default so a config file is optional.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// LoggerConfig controls the zap logger bootstrap.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// CursorConfig holds the default movement options of a cursor session.
// Per-call options override these field by field.
type CursorConfig struct {
	// Spread overrides control-point randomization, pixels. 0 = derived
	// from the movement distance.
	Spread float64 `mapstructure:"spread" yaml:"spread"`
	// MoveSpeed scales trace density and timing. 0 = randomized per move.
	MoveSpeed float64 `mapstructure:"move_speed" yaml:"move_speed"`
	// UseTimestamps attaches synthesized event times to dispatched moves.
	UseTimestamps bool `mapstructure:"use_timestamps" yaml:"use_timestamps"`
	// MoveDelayMs paces dispatches within a trace, milliseconds.
	MoveDelayMs int `mapstructure:"move_delay_ms" yaml:"move_delay_ms"`
	// RandomizeMoveDelay scales each inter-step wait by a fresh draw.
	RandomizeMoveDelay bool `mapstructure:"randomize_move_delay" yaml:"randomize_move_delay"`
	// OvershootThreshold enables overshoot for moves longer than this many
	// pixels; 0 disables it.
	OvershootThreshold float64 `mapstructure:"overshoot_threshold" yaml:"overshoot_threshold"`
	// OvershootRadius is how far past the target an overshooting move aims.
	OvershootRadius float64 `mapstructure:"overshoot_radius" yaml:"overshoot_radius"`
	// JitterAmplitude adds Perlin drift of this many pixels to generated
	// traces; 0 disables the jitter decorator.
	JitterAmplitude float64 `mapstructure:"jitter_amplitude" yaml:"jitter_amplitude"`
}

// MoveDelay returns the pacing delay as a duration.
func (c CursorConfig) MoveDelay() time.Duration {
	return time.Duration(c.MoveDelayMs) * time.Millisecond
}

// BrowserConfig controls the chromedp session of the demo command.
type BrowserConfig struct {
	Headless bool `mapstructure:"headless" yaml:"headless"`
	Debug    bool `mapstructure:"debug" yaml:"debug"`
}

// Config is the root of the application configuration.
type Config struct {
	Logger  LoggerConfig  `mapstructure:"logger" yaml:"logger"`
	Cursor  CursorConfig  `mapstructure:"cursor" yaml:"cursor"`
	Browser BrowserConfig `mapstructure:"browser" yaml:"browser"`
}

// SetDefaults initializes default values for all configuration parameters.
func SetDefaults(v *viper.Viper) {
	// Logger
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "humancursor")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)

	// Cursor
	v.SetDefault("cursor.spread", 0)
	v.SetDefault("cursor.move_speed", 0)
	v.SetDefault("cursor.use_timestamps", false)
	v.SetDefault("cursor.move_delay_ms", 0)
	v.SetDefault("cursor.randomize_move_delay", false)
	v.SetDefault("cursor.overshoot_threshold", 0)
	v.SetDefault("cursor.overshoot_radius", 120)
	v.SetDefault("cursor.jitter_amplitude", 0)

	// Browser
	v.SetDefault("browser.headless", true)
	v.SetDefault("browser.debug", false)
}

// Load reads the configuration from the given file (optional), the
// environment (HUMANCURSOR_ prefix), and the defaults, in that order of
// precedence.
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("HUMANCURSOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; proceed with defaults and env vars.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
