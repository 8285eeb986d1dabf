// Package config loads startup configuration: embedded YAML defaults, then an
// optional override file found under the XDG config directory.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/adrg/xdg"
	yaml "gopkg.in/yaml.v3"

	"github.com/hailam/chessboard/internal/board"
)

// RelPath is the config file location relative to the XDG config dirs.
const RelPath = "chessboard/config.yaml"

//go:embed defaults.yaml
var defaultYAML []byte

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// PieceSpec is one roster entry.
type PieceSpec struct {
	Glyph string `yaml:"glyph"`
	Kind  string `yaml:"kind,omitempty"`
	Color string `yaml:"color"`
}

// BoardConfig controls board geometry and defaults for display preferences.
type BoardConfig struct {
	SquareSize      int  `yaml:"square_size"`
	ShowCoordinates bool `yaml:"show_coordinates"`
	FillHighlights  bool `yaml:"fill_highlights"`
	Sound           bool `yaml:"sound"`
}

// ThemeConfig holds colors as #rrggbb strings.
type ThemeConfig struct {
	Light      string `yaml:"light"`
	Dark       string `yaml:"dark"`
	Highlight  string `yaml:"highlight"`
	Background string `yaml:"background"`
}

// Config is the full startup configuration.
type Config struct {
	Locale string      `yaml:"locale"`
	Board  BoardConfig `yaml:"board"`
	Theme  ThemeConfig `yaml:"theme"`
	Roster []PieceSpec `yaml:"roster"`
}

// Default returns the embedded defaults.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultYAML, cfg); err != nil {
		return nil, fmt.Errorf("parse embedded defaults: %w", err)
	}
	return cfg, nil
}

// Load returns the defaults merged with the override file at path. An empty
// path searches the XDG config dirs; a missing file there is not an error.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	if path == "" {
		found, err := xdg.SearchConfigFile(RelPath)
		if err != nil {
			return cfg, cfg.Validate()
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := cfg.Merge(data); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge applies YAML on top of the current values. Keys absent from data keep
// their values; a roster in data replaces the whole roster.
func (c *Config) Merge(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	return nil
}

// Validate checks value ranges and that every roster entry names a piece.
func (c *Config) Validate() error {
	if c.Board.SquareSize < 24 || c.Board.SquareSize > 256 {
		return fmt.Errorf("%w: board.square_size %d out of range [24,256]", ErrInvalidConfig, c.Board.SquareSize)
	}
	for name, v := range map[string]string{
		"theme.light":      c.Theme.Light,
		"theme.dark":       c.Theme.Dark,
		"theme.highlight":  c.Theme.Highlight,
		"theme.background": c.Theme.Background,
	} {
		if _, err := ParseHexColor(v); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, name, err)
		}
	}
	if _, err := c.Pieces(); err != nil {
		return err
	}
	return nil
}

// Pieces converts the roster to board pieces.
func (c *Config) Pieces() ([]board.Piece, error) {
	pieces := make([]board.Piece, 0, len(c.Roster))
	for i, spec := range c.Roster {
		p, err := spec.Piece()
		if err != nil {
			return nil, fmt.Errorf("%w: roster[%d]: %v", ErrInvalidConfig, i, err)
		}
		pieces = append(pieces, p)
	}
	return pieces, nil
}

// Piece converts one roster entry. The kind comes from the explicit kind
// field if set, otherwise from the glyph.
func (s PieceSpec) Piece() (board.Piece, error) {
	col, ok := board.ParseColor(s.Color)
	if !ok {
		return board.Piece{}, fmt.Errorf("unknown color %q", s.Color)
	}

	var kind board.Kind
	if s.Kind != "" {
		kind = board.ParseKind(s.Kind)
	} else {
		kind = board.ParseKind(s.Glyph)
	}
	if kind == board.NoKind {
		return board.Piece{}, fmt.Errorf("unknown piece %q", s.Glyph+s.Kind)
	}

	p := board.Piece{Kind: kind, Color: col}
	if r := []rune(strings.TrimSpace(s.Glyph)); len(r) == 1 && r[0] != kind.Glyph(col) {
		p.Glyph = r[0]
	}
	return p, nil
}

// ParseHexColor parses #rrggbb or #rrggbbaa.
func ParseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 255}
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 9:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		err = fmt.Errorf("want #rrggbb, got %q", s)
	}
	return c, err
}

// MustColor parses a color already checked by Validate.
func MustColor(s string) color.RGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
