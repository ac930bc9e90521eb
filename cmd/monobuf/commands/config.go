package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/BeatGlow/monobuf/draw"
)

// Config holds the settings shared by all commands.
type Config struct {
	Width   int          `mapstructure:"width"`
	Height  int          `mapstructure:"height"`
	Format  string       `mapstructure:"format"`
	Style   string       `mapstructure:"style"`
	Output  string       `mapstructure:"output"`
	Verbose bool         `mapstructure:"verbose"`
	Dither  DitherConfig `mapstructure:"dither"`
}

// DitherConfig controls image conversion.
type DitherConfig struct {
	Scaler    string `mapstructure:"scaler"`
	Ordered   bool   `mapstructure:"ordered"`
	Threshold bool   `mapstructure:"threshold"`
	Invert    bool   `mapstructure:"invert"`
}

// DefaultConfig returns configuration with default values.
func DefaultConfig() Config {
	return Config{
		Width:  128,
		Height: 64,
		Format: "text",
		Style:  "block",
		Output: "-",
		Dither: DitherConfig{
			Scaler: "catmullrom",
		},
	}
}

// Output formats.
var formats = []string{"raw", "png", "text"}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Width%8 != 0 {
		return fmt.Errorf("width %d is not a positive multiple of 8", c.Width)
	}
	if c.Height <= 0 {
		return fmt.Errorf("height %d must be positive", c.Height)
	}
	for _, f := range formats {
		if c.Format == f {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q, expected one of %s", c.Format, strings.Join(formats, ", "))
}

// Options converts the dither settings to [draw.Options].
func (c DitherConfig) Options() (*draw.Options, error) {
	opts := draw.DefaultOptions
	switch strings.ToLower(c.Scaler) {
	case "", "catmullrom":
		opts.Scaler = draw.CatmullRom
	case "bilinear":
		opts.Scaler = draw.BiLinear
	case "approx":
		opts.Scaler = draw.ApproxBiLinear
	case "nearest":
		opts.Scaler = draw.NearestNeighbor
	default:
		return nil, fmt.Errorf("unknown scaler %q", c.Scaler)
	}
	opts.Ordered = c.Ordered
	opts.Threshold = c.Threshold
	opts.Invert = c.Invert
	return &opts, nil
}

// loadConfig reads the optional config file and decodes flags, environment and file
// into cfg.
func loadConfig(v *viper.Viper, cfg *Config) error {
	v.SetEnvPrefix("MONOBUF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) {
				return fmt.Errorf("config file %s not found", path)
			}
			return fmt.Errorf("config: %w", err)
		}
	}

	*cfg = DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return cfg.Validate()
}
