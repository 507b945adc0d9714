// Package config loads the optional bbox.yaml configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable holding a config file path.
const EnvPath = "BBOX_CONFIG"

// Default values applied by ApplyDefaults.
const (
	DefaultLogLevel       = "info"
	DefaultRenderCellSize = 16
	DefaultRenderBorder   = 2
	DefaultGridColor      = "#D0D0D0"
	DefaultBackground     = "#FFFFFF"
	DefaultMarkedColor    = "#303030"
	DefaultImageCellSize  = 1
	DefaultImageThreshold = 128
	DefaultOCRLanguage    = "eng"
)

// Config is the top-level structure parsed from bbox.yaml.
type Config struct {
	// Logging configures the slog handler.
	Logging LoggingConfig `yaml:"logging"`
	// Mode holds the default result mode.
	Mode ModeConfig `yaml:"mode"`
	// Render configures PNG rendering of grids and boxes.
	Render RenderConfig `yaml:"render"`
	// Image configures sampling an image into a grid.
	Image ImageConfig `yaml:"image"`
	// OCR configures reading text grids from images.
	OCR OCRConfig `yaml:"ocr"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty means stderr.
	Path string `yaml:"path"`
}

// ModeConfig holds result-shaping defaults.
type ModeConfig struct {
	// AllBoxes makes all-boxes mode the default.
	AllBoxes bool `yaml:"all_boxes"`
}

// RenderConfig configures PNG output.
type RenderConfig struct {
	// CellSize is the edge length of one grid cell in pixels.
	CellSize int `yaml:"cell_size"`
	// Border is the box outline thickness in pixels.
	Border int `yaml:"border"`
	// ShowGrid draws cell separator lines.
	ShowGrid bool `yaml:"show_grid"`
	// GridColor is the hex color of separator lines.
	GridColor string `yaml:"grid_color"`
	// Background is the hex color of blank cells.
	Background string `yaml:"background"`
	// MarkedColor is the hex color of marked cells.
	MarkedColor string `yaml:"marked_color"`
}

// ImageConfig configures image sampling.
type ImageConfig struct {
	// CellSize is the number of pixels per grid cell along each side.
	CellSize int `yaml:"cell_size"`
	// Threshold is the luminance (0-255) below which a pixel counts as dark.
	Threshold int `yaml:"threshold"`
}

// OCRConfig configures OCR.
type OCRConfig struct {
	// Language is the Tesseract language code.
	Language string `yaml:"language"`
}

// Default returns a Config with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// Load reads and validates the config at path. An empty path yields the
// defaults; a named file that does not exist is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults fills zero-valued fields.
func ApplyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Render.CellSize == 0 {
		cfg.Render.CellSize = DefaultRenderCellSize
	}
	if cfg.Render.Border == 0 {
		cfg.Render.Border = DefaultRenderBorder
	}
	if cfg.Render.GridColor == "" {
		cfg.Render.GridColor = DefaultGridColor
	}
	if cfg.Render.Background == "" {
		cfg.Render.Background = DefaultBackground
	}
	if cfg.Render.MarkedColor == "" {
		cfg.Render.MarkedColor = DefaultMarkedColor
	}
	if cfg.Image.CellSize == 0 {
		cfg.Image.CellSize = DefaultImageCellSize
	}
	if cfg.Image.Threshold == 0 {
		cfg.Image.Threshold = DefaultImageThreshold
	}
	if cfg.OCR.Language == "" {
		cfg.OCR.Language = DefaultOCRLanguage
	}
}

// Validate checks the configuration for out-of-range or malformed values.
// All problems are reported together.
func Validate(cfg *Config) error {
	var errs []error

	switch strings.ToLower(cfg.Logging.Level) {
	case "debug", "info", "warn", "error":
		// ok
	default:
		errs = append(errs, fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", cfg.Logging.Level))
	}

	if cfg.Render.CellSize < 1 {
		errs = append(errs, fmt.Errorf("render.cell_size must be positive, got %d", cfg.Render.CellSize))
	}
	if cfg.Render.Border < 1 || cfg.Render.Border*2 > cfg.Render.CellSize {
		errs = append(errs, fmt.Errorf("render.border must be between 1 and half the cell size, got %d", cfg.Render.Border))
	}
	for name, hex := range map[string]string{
		"render.grid_color":   cfg.Render.GridColor,
		"render.background":   cfg.Render.Background,
		"render.marked_color": cfg.Render.MarkedColor,
	} {
		if _, err := colorful.Hex(hex); err != nil {
			errs = append(errs, fmt.Errorf("%s: invalid hex color %q", name, hex))
		}
	}

	if cfg.Image.CellSize < 1 {
		errs = append(errs, fmt.Errorf("image.cell_size must be positive, got %d", cfg.Image.CellSize))
	}
	if cfg.Image.Threshold < 1 || cfg.Image.Threshold > 255 {
		errs = append(errs, fmt.Errorf("image.threshold must be in 1..255, got %d", cfg.Image.Threshold))
	}

	return errors.Join(errs...)
}
