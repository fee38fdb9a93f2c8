// Package config holds the build parameters shared by every front-end.
//
// Parameters come from three layers, later ones winning: built-in defaults,
// an optional YAML preset file, and whatever the front-end collected from
// flags, prompts or form fields. Presets are read-only; nothing is written
// back between runs.
//
// Example preset:
//
//	folder: photos/holiday
//	grid: 5
//	tile_width: 160
//	tile_height: 120
//	background: "#202020"
//	output: holiday.jpg
//	jpeg_quality: 90
//	seed: 42
package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/ironsheep/image-mosaic/internal/mosaic"
)

// DefaultFolder is the source folder used when none is given.
const DefaultFolder = "images"

// DefaultGrid is the grid dimension used when none is given.
const DefaultGrid = 3

// Config describes one mosaic build and where its output goes.
type Config struct {
	Folder      string  `yaml:"folder"`
	Grid        int     `yaml:"grid"`
	TileWidth   int     `yaml:"tile_width"`
	TileHeight  int     `yaml:"tile_height"`
	Background  string  `yaml:"background"`
	Output      string  `yaml:"output"`
	JPEGQuality int     `yaml:"jpeg_quality"`
	Seed        *uint64 `yaml:"seed"`
}

// Default returns the built-in parameters.
func Default() Config {
	return Config{
		Folder:      DefaultFolder,
		Grid:        DefaultGrid,
		TileWidth:   mosaic.DefaultTileSize.Width,
		TileHeight:  mosaic.DefaultTileSize.Height,
		Background:  "#000000",
		Output:      mosaic.DefaultOutput,
		JPEGQuality: mosaic.DefaultJPEGQuality,
	}
}

// Load reads a YAML preset on top of the defaults.
//
// Keys missing from the file keep their default value. Unknown keys are
// rejected so that typos do not go unnoticed.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every numeric parameter and the background colour.
func (c Config) Validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"grid", c.Grid},
		{"tile_width", c.TileWidth},
		{"tile_height", c.TileHeight},
	}
	for _, chk := range checks {
		if chk.value <= 0 {
			return fmt.Errorf("%w: %s must be a positive integer, got %d", mosaic.ErrInvalidParameter, chk.name, chk.value)
		}
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("%w: jpeg_quality must be between 1 and 100, got %d", mosaic.ErrInvalidParameter, c.JPEGQuality)
	}
	if _, err := ParseBackground(c.Background); err != nil {
		return err
	}
	return nil
}

// Tile returns the configured tile size.
func (c Config) Tile() mosaic.TileSize {
	return mosaic.TileSize{Width: c.TileWidth, Height: c.TileHeight}
}

// BuildOptions turns the configuration into builder options.
//
// A configured seed yields a reproducible shuffle; otherwise every build
// draws a fresh order.
func (c Config) BuildOptions() (mosaic.Options, error) {
	if err := c.Validate(); err != nil {
		return mosaic.Options{}, err
	}
	bg, _ := ParseBackground(c.Background)

	opts := mosaic.Options{
		Grid:       c.Grid,
		Tile:       c.Tile(),
		Background: bg,
	}
	if c.Seed != nil {
		opts.Rand = mosaic.NewSeededRand(*c.Seed)
	}
	return opts, nil
}

// SaveOptions returns the encoder options for the configured output.
func (c Config) SaveOptions() []mosaic.SaveOption {
	return []mosaic.SaveOption{mosaic.WithJPEGQuality(c.JPEGQuality)}
}

// ParsePositiveInt parses user input such as a grid size typed at a prompt.
// Surrounding whitespace is ignored.
func ParsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", mosaic.ErrInvalidParameter, strings.TrimSpace(s))
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d is not a positive integer", mosaic.ErrInvalidParameter, n)
	}
	return n, nil
}

// ParseBackground parses a "#RRGGBB" or "#RGB" colour. An empty string
// means black.
func ParseBackground(s string) (color.Color, error) {
	if s == "" {
		return color.Black, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("%w: background %q: %v", mosaic.ErrInvalidParameter, s, err)
	}
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
