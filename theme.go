package gochart

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Theme holds every host-tunable visual constant of the engine.
type Theme struct {
	// Palette is cycled by series index for unstacked kinds.
	Palette []string `yaml:"palette"`
	// StackedPalette is cycled for stacked bars, bottom layer first.
	StackedPalette []string `yaml:"stacked_palette"`
	// CanonicalColors pins a color to a series name (matched case-insensitively).
	CanonicalColors map[string]string `yaml:"canonical_colors"`

	IncreaseColor  string `yaml:"increase_color"`
	DecreaseColor  string `yaml:"decrease_color"`
	HeatColor      string `yaml:"heat_color"`
	LightTextColor string `yaml:"light_text_color"`
	DarkTextColor  string `yaml:"dark_text_color"`
	GridColor      string `yaml:"grid_color"`
	AxisTextColor  string `yaml:"axis_text_color"`

	// Locale is a BCP 47 tag used for number formatting.
	Locale string `yaml:"locale"`
	// TargetSeries names the series that actual-vs-target performance compares against.
	TargetSeries string `yaml:"target_series"`

	// FontFamily measures legend labels. Unknown families fall back to the bundled Go font.
	FontFamily string `yaml:"font_family"`
	// FontDirs are searched for .ttf/.otf/.ttc files when FontFamily is not bundled.
	FontDirs []string `yaml:"font_dirs"`

	Viewport Viewport `yaml:"viewport"`
}

// Viewport is the pixel size of a rendered chart.
type Viewport struct {
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// DefaultPalette runs dark blue to purple.
var DefaultPalette = []string{
	"#1e3a8a", "#1e40af", "#3730a3", "#4338ca",
	"#5b21b6", "#6d28d9", "#7c3aed", "#8b5cf6",
}

// DefaultStackedPalette runs dark to light purple so stack layers read as a gradient.
var DefaultStackedPalette = []string{
	"#4c1d95", "#6d28d9", "#8b5cf6", "#c4b5fd",
}

// DefaultTheme returns the built-in theme. It carries no canonical colors;
// hosts supply their own vocabulary.
func DefaultTheme() *Theme {
	return &Theme{
		Palette:         append([]string(nil), DefaultPalette...),
		StackedPalette:  append([]string(nil), DefaultStackedPalette...),
		CanonicalColors: map[string]string{},
		IncreaseColor:   "#16a34a",
		DecreaseColor:   "#dc2626",
		HeatColor:       "#4338ca",
		LightTextColor:  "#ffffff",
		DarkTextColor:   "#1f2937",
		GridColor:       "#e5e7eb",
		AxisTextColor:   "#6b7280",
		Locale:          "en",
		TargetSeries:    "Target",
		FontFamily:      DefaultFontFamily,
		Viewport:        Viewport{Width: 800, Height: 450},
	}
}

// LoadTheme reads a YAML theme file. Keys left out keep their defaults.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}
	return ParseTheme(data)
}

// ParseTheme decodes a YAML theme document over the defaults.
func ParseTheme(data []byte) (*Theme, error) {
	t := DefaultTheme()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	t.applyEnvOverrides()
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Theme) applyEnvOverrides() {
	if v := strings.TrimSpace(os.Getenv("GOCHART_LOCALE")); v != "" {
		t.Locale = v
	}
}

// Validate checks the theme for unusable values.
func (t *Theme) Validate() error {
	var errs []string
	if len(t.Palette) == 0 {
		errs = append(errs, "palette is empty")
	}
	if len(t.StackedPalette) == 0 {
		errs = append(errs, "stacked palette is empty")
	}
	for i, c := range t.Palette {
		if _, ok := NormalizeColor(c); !ok {
			errs = append(errs, fmt.Sprintf("palette color %d (%q) is invalid", i, c))
		}
	}
	for i, c := range t.StackedPalette {
		if _, ok := NormalizeColor(c); !ok {
			errs = append(errs, fmt.Sprintf("stacked palette color %d (%q) is invalid", i, c))
		}
	}
	for name, c := range t.CanonicalColors {
		if _, ok := NormalizeColor(c); !ok {
			errs = append(errs, fmt.Sprintf("canonical color for %q (%q) is invalid", name, c))
		}
	}
	if t.Viewport.Width <= 0 || t.Viewport.Height <= 0 {
		errs = append(errs, "viewport must be positive")
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("invalid theme:\n  %s", strings.Join(errs, "\n  "))
}
