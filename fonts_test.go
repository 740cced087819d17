package gochart

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestFontCacheBundledFamily(t *testing.T) {
	fc := NewFontCache()
	assert.Contains(t, fc.Families(), DefaultFontFamily)

	face := fc.Face(DefaultFontFamily, 12)
	require.NotNil(t, face)
	assert.Same(t, face, fc.Face("GO", 12), "faces are cached by lowercase name and size")
	assert.Same(t, face, fc.Face("no such font", 12), "unknown families fall back to the bundled font")

	assert.Zero(t, fc.Measure("", "", 12))
	short, long := fc.Measure("go", "Rev", 12), fc.Measure("go", "Revenue", 12)
	assert.Greater(t, long, short)
	assert.InDelta(t, 2*long, fc.Measure("go", "Revenue", 24), 1)
}

func TestFontCacheLoadFont(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Brand.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0600))

	fc := NewFontCache()
	require.NoError(t, fc.LoadFont("brand", path))
	assert.NotNil(t, fc.Face("brand", 10))

	assert.Error(t, fc.LoadFont("missing", filepath.Join(dir, "missing.ttf")))
	assert.ErrorContains(t, fc.LoadFontData("junk", []byte("not a font")), `parse font "junk"`)
}

func TestFontCacheScansDirs(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "Corporate.TTF"), goregular.TTF, 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("skip"), 0600))

	fc := NewFontCache(dir)
	families := fc.Families()
	assert.Contains(t, families, "corporate", "registered by file name")
	assert.Contains(t, families, "go regular", "registered by internal family name")
	assert.NotContains(t, families, "readme")
}

func TestFontCacheConcurrentFaces(t *testing.T) {
	fc := NewFontCache()
	var wg sync.WaitGroup
	widths := make([]float64, 8)
	for i := range widths {
		wg.Add(1)
		go func() {
			defer wg.Done()
			widths[i] = fc.Measure(DefaultFontFamily, "Quarterly revenue", 11)
		}()
	}
	wg.Wait()
	for _, w := range widths {
		assert.Equal(t, widths[0], w)
	}
}

func TestLegendUsesFontMeasure(t *testing.T) {
	fc := NewFontCache()
	measure := func(s string, size float64) float64 { return fc.Measure(DefaultFontFamily, s, size) }

	l := buildLegend(twoSeries(KindBar), nil, DefaultTheme())
	require.NotNil(t, l)
	l.layout(Rect{Width: 800, Height: 450}, measure)
	e := l.Entries[0]
	assert.InDelta(t, l.Swatch+swatchGap+measure(e.Label, l.FontSize), e.Width, 1e-9)
}

func TestEngineMeasuresLegendWithFontCache(t *testing.T) {
	fc := NewFontCache()
	spec := twoSeries(KindBar)
	shared := New(WithFontCache(fc)).Render(spec, nil)
	own := New().Render(spec, nil)
	require.NotNil(t, shared.Legend)
	assert.Equal(t, shared.Legend, own.Legend)

	e := shared.Legend.Entries[0]
	want := shared.Legend.Swatch + swatchGap + fc.Measure(DefaultFontFamily, e.Label, shared.Legend.FontSize)
	assert.InDelta(t, want, e.Width, 1e-9)
}
