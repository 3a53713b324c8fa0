package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"hamview/internal/geo"
	"hamview/internal/menus"
)

// Config holds all application configuration.
type Config struct {
	Window   WindowConfig `mapstructure:"window"`
	Map      MapConfig    `mapstructure:"map"`
	Units    string       `mapstructure:"units"`
	Language string       `mapstructure:"language"`
	Log      LogConfig    `mapstructure:"log"`
}

type WindowConfig struct {
	Width    int `mapstructure:"width"`  // tiles
	Height   int `mapstructure:"height"` // tiles
	TileSize int `mapstructure:"tile_size"`
}

type MapConfig struct {
	TileDir   string  `mapstructure:"tile_dir"`
	Zoom      int     `mapstructure:"zoom"`
	CenterLat float64 `mapstructure:"center_lat"`
	CenterLon float64 `mapstructure:"center_lon"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// Load reads configuration from an optional YAML file and environment
// variables. An empty path falls back to the default search locations.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("window.width", 8)
	v.SetDefault("window.height", 4)
	v.SetDefault("window.tile_size", 256)
	v.SetDefault("map.tile_dir", "tiles")
	v.SetDefault("map.zoom", 12)
	v.SetDefault("map.center_lat", 45.0)
	v.SetDefault("map.center_lon", -122.0)
	v.SetDefault("units", geo.UnitsMetric)
	v.SetDefault("language", "en")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "hamview.log")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		_ = v.ReadInConfig() // OK if missing
	}

	// Environment variables: HAMVIEW_MAP_ZOOM → map.zoom
	v.SetEnvPrefix("HAMVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that required configuration fields are present and sane.
func (c *Config) Validate() error {
	var errs []string

	if c.Window.Width < 1 || c.Window.Height < 1 {
		errs = append(errs, fmt.Sprintf("window size must be at least 1x1 tiles, got %dx%d",
			c.Window.Width, c.Window.Height))
	}
	if c.Window.TileSize < 1 {
		errs = append(errs, fmt.Sprintf("window.tile_size must be positive, got %d", c.Window.TileSize))
	}
	if c.Map.Zoom < 0 || c.Map.Zoom > 19 {
		errs = append(errs, fmt.Sprintf("map.zoom must be 0-19, got %d", c.Map.Zoom))
	}
	if _, err := geo.NewPosition(c.Map.CenterLat, c.Map.CenterLon); err != nil {
		errs = append(errs, fmt.Sprintf("map center: %v", err))
	}
	if c.Units != geo.UnitsMetric && c.Units != geo.UnitsImperial {
		errs = append(errs, fmt.Sprintf("units must be %q or %q, got %q",
			geo.UnitsMetric, geo.UnitsImperial, c.Units))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Center returns the configured start position.
func (c *Config) Center() geo.Position {
	pos, _ := geo.NewPosition(c.Map.CenterLat, c.Map.CenterLon)
	return pos
}

// Translator resolves the label translation function. Labels are
// passed through unchanged until translation catalogs are shipped;
// callers receive an explicit function either way instead of reading
// ambient process state.
func (c *Config) Translator() menus.Translator {
	return func(s string) string { return s }
}
