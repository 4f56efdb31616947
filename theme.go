package knobs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Theme holds the colors and sizes the stock behaviors draw with.
type Theme struct {
	// Colors
	Background Color `toml:"background" yaml:"background"`
	Surface    Color `toml:"surface" yaml:"surface"`
	Outline    Color `toml:"outline" yaml:"outline"`
	Hovered    Color `toml:"hovered" yaml:"hovered"`
	Accent     Color `toml:"accent" yaml:"accent"`
	Text       Color `toml:"text" yaml:"text"`

	// Sizing
	StrokeWidth float32 `toml:"stroke_width" yaml:"stroke_width"`
	FontSize    float32 `toml:"font_size" yaml:"font_size"`
	KnobRadius  float32 `toml:"knob_radius" yaml:"knob_radius"`
	Spacing     float32 `toml:"spacing" yaml:"spacing"`
}

// DefaultTheme returns the default theme.
func DefaultTheme() Theme {
	return DarkTheme()
}

// DarkTheme returns a dark theme.
func DarkTheme() Theme {
	return Theme{
		Background: RGBA8(24, 24, 28, 255),
		Surface:    RGBA8(44, 44, 52, 255),
		Outline:    RGBA8(110, 110, 120, 255),
		Hovered:    RGBA8(170, 170, 185, 255),
		Accent:     RGBA8(236, 150, 48, 255),
		Text:       ColorWhite,

		StrokeWidth: 2,
		FontSize:    16,
		KnobRadius:  24,
		Spacing:     12,
	}
}

// LightTheme returns a light theme.
func LightTheme() Theme {
	return Theme{
		Background: RGBA8(236, 236, 240, 255),
		Surface:    RGBA8(214, 214, 220, 255),
		Outline:    RGBA8(120, 120, 130, 255),
		Hovered:    RGBA8(60, 60, 70, 255),
		Accent:     RGBA8(30, 110, 200, 255),
		Text:       ColorBlack,

		StrokeWidth: 2,
		FontSize:    16,
		KnobRadius:  24,
		Spacing:     12,
	}
}

// ThemeFormat is a theme file encoding.
type ThemeFormat int

const (
	ThemeTOML ThemeFormat = iota
	ThemeYAML
)

// String returns the format name.
func (f ThemeFormat) String() string {
	switch f {
	case ThemeTOML:
		return "toml"
	case ThemeYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

var ErrUnknownThemeFormat = errors.New("knobs: unknown theme format")

// ThemeFormatFor picks a format from a file extension.
func ThemeFormatFor(path string) (ThemeFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ThemeTOML, nil
	case ".yaml", ".yml":
		return ThemeYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownThemeFormat, path)
	}
}

type decoder interface {
	Decode(v any) error
}

type encoder interface {
	Encode(v any) error
}

func newThemeDecoder(r io.Reader, format ThemeFormat) (decoder, error) {
	switch format {
	case ThemeTOML:
		return toml.NewDecoder(r).DisallowUnknownFields(), nil
	case ThemeYAML:
		d := yaml.NewDecoder(r)
		d.KnownFields(true)
		return d, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownThemeFormat, format)
	}
}

// LoadTheme reads a theme. Keys missing from the input keep their
// DefaultTheme values; unknown keys are an error.
func LoadTheme(r io.Reader, format ThemeFormat) (Theme, error) {
	theme := DefaultTheme()

	d, err := newThemeDecoder(r, format)
	if err != nil {
		return Theme{}, err
	}
	if err := d.Decode(&theme); err != nil && !errors.Is(err, io.EOF) {
		return Theme{}, fmt.Errorf("decode %v theme: %w", format, err)
	}
	return theme, nil
}

// LoadThemeFile reads a theme from a .toml, .yaml or .yml file.
func LoadThemeFile(path string) (Theme, error) {
	format, err := ThemeFormatFor(path)
	if err != nil {
		return Theme{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return Theme{}, fmt.Errorf("open theme: %w", err)
	}
	defer f.Close()

	theme, err := LoadTheme(f, format)
	if err != nil {
		return Theme{}, fmt.Errorf("%s: %w", path, err)
	}
	return theme, nil
}

// WriteTheme encodes a theme.
func WriteTheme(w io.Writer, theme Theme, format ThemeFormat) error {
	var e encoder
	switch format {
	case ThemeTOML:
		e = toml.NewEncoder(w)
	case ThemeYAML:
		ye := yaml.NewEncoder(w)
		defer ye.Close()
		e = ye
	default:
		return fmt.Errorf("%w: %v", ErrUnknownThemeFormat, format)
	}
	if err := e.Encode(theme); err != nil {
		return fmt.Errorf("encode %v theme: %w", format, err)
	}
	return nil
}
