package gochart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseThemeOverridesDefaults(t *testing.T) {
	theme, err := ParseTheme([]byte(`
palette: ["#112233", "#445566"]
canonical_colors:
  Revenue: "#00aa00"
increase_color: "#00ff00"
viewport:
  width: 1280
  height: 720
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"#112233", "#445566"}, theme.Palette)
	assert.Equal(t, "#00aa00", theme.CanonicalColors["Revenue"])
	assert.Equal(t, "#00ff00", theme.IncreaseColor)
	assert.Equal(t, Viewport{Width: 1280, Height: 720}, theme.Viewport)

	// Keys not in the document keep their defaults.
	def := DefaultTheme()
	assert.Equal(t, def.StackedPalette, theme.StackedPalette)
	assert.Equal(t, def.DecreaseColor, theme.DecreaseColor)
	assert.Equal(t, "en", theme.Locale)
}

func TestParseThemeInvalid(t *testing.T) {
	_, err := ParseTheme([]byte(`
palette: ["#112233", "blue"]
canonical_colors:
  Cost: "nope"
viewport:
  width: 0
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `palette color 1 ("blue") is invalid`)
	assert.Contains(t, err.Error(), `canonical color for "Cost"`)
	assert.Contains(t, err.Error(), "viewport must be positive")

	_, err = ParseTheme([]byte("palette: [unterminated"))
	assert.ErrorContains(t, err, "parse theme")
}

func TestThemeLocaleFromEnv(t *testing.T) {
	t.Setenv("GOCHART_LOCALE", "de")
	theme, err := ParseTheme([]byte(`locale: fr`))
	require.NoError(t, err)
	assert.Equal(t, "de", theme.Locale)
}

func TestLoadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("target_series: Plan\nfont_dirs: [/opt/fonts]\n"), 0600))

	theme, err := LoadTheme(path)
	require.NoError(t, err)
	assert.Equal(t, "Plan", theme.TargetSeries)
	assert.Equal(t, []string{"/opt/fonts"}, theme.FontDirs)

	_, err = LoadTheme(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDefaultThemeIsValid(t *testing.T) {
	theme := DefaultTheme()
	require.NoError(t, theme.Validate())
	assert.Len(t, theme.Palette, 8)
	assert.Len(t, theme.StackedPalette, 4)
	assert.Empty(t, theme.CanonicalColors)
	assert.Equal(t, DefaultFontFamily, theme.FontFamily)

	// DefaultTheme hands out copies.
	theme.Palette[0] = "#000000"
	assert.Equal(t, "#1e3a8a", DefaultTheme().Palette[0])
}
