// Package config holds the demo settings, read from YAML and overridden
// from the command line.
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/evilkuma/affine2d/scenes"
)

var ErrInvalid = errors.New("config: invalid")

// Params is the initial transform; Angle is in degrees here.
type Params struct {
	TranslationX float32 `yaml:"translate_x"`
	TranslationY float32 `yaml:"translate_y"`
	Angle        float64 `yaml:"angle"`
	ScaleX       float32 `yaml:"scale_x"`
	ScaleY       float32 `yaml:"scale_y"`
}

type Config struct {
	// Canvas size in pixels. The window adds the border and slider panel.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Border int `yaml:"border"`

	Variant  string `yaml:"variant"`
	Segments int    `yaml:"segments"`
	Count    int    `yaml:"count"`
	// Seed for the random variants; 0 picks one from the clock.
	Seed int64 `yaml:"seed"`

	// ClearColor is the canvas background as r, g, b, a in [0,1].
	ClearColor [4]float32 `yaml:"clear_color"`

	// Font is a TrueType file for slider labels; labels are skipped when
	// empty.
	Font     string `yaml:"font"`
	FontSize int    `yaml:"font_size"`

	Texture        string `yaml:"texture"`
	MaxTextureSize int    `yaml:"max_texture_size"`

	LogLevel string `yaml:"log_level"`
	Params   Params `yaml:"params"`

	// Snapshot, when set, renders one frame into this PNG file and exits.
	Snapshot string `yaml:"snapshot"`
}

// Default returns the stock settings: an 800x500 canvas with a 10 pixel
// black border, cleared green, showing the single circle.
func Default() Config {
	return Config{
		Width:          800,
		Height:         500,
		Border:         10,
		Variant:        scenes.Default,
		Segments:       25,
		Count:          10,
		ClearColor:     [4]float32{0, 1, 0, 1},
		FontSize:       14,
		MaxTextureSize: 2048,
		LogLevel:       "info",
		Params:         Params{ScaleX: 1, ScaleY: 1},
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "open config")
	}
	defer f.Close()
	return Read(f)
}

// Read parses YAML from r over the defaults. Unknown keys are rejected.
func Read(r io.Reader) (Config, error) {
	conf := Default()
	contents, err := io.ReadAll(r)
	if err != nil {
		return conf, errors.Wrap(err, "read config")
	}
	if err := yaml.UnmarshalStrict(contents, &conf); err != nil {
		return conf, errors.Wrap(err, "parse config")
	}
	return conf, nil
}

// Validate checks ranges and the variant name.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalid, "canvas size %dx%d", c.Width, c.Height)
	case c.Border < 0:
		return errors.Wrapf(ErrInvalid, "border %d", c.Border)
	case c.Segments < 3:
		return errors.Wrapf(ErrInvalid, "segments %d, need at least 3", c.Segments)
	case c.Count < 0:
		return errors.Wrapf(ErrInvalid, "count %d", c.Count)
	case c.FontSize <= 0:
		return errors.Wrapf(ErrInvalid, "font size %d", c.FontSize)
	case c.MaxTextureSize < 0:
		return errors.Wrapf(ErrInvalid, "max texture size %d", c.MaxTextureSize)
	}
	for _, ch := range c.ClearColor {
		if ch < 0 || ch > 1 {
			return errors.Wrapf(ErrInvalid, "clear color %v", c.ClearColor)
		}
	}
	if !scenes.Known(c.Variant) {
		return errors.Wrapf(ErrInvalid, "variant %q", c.Variant)
	}
	return nil
}
