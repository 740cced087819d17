package gochart

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// DefaultFontFamily is the bundled Go Regular face, always available.
const DefaultFontFamily = "go"

// fontKey identifies a measuring face by family and size.
type fontKey struct {
	name string
	size float64
}

// FontCache loads TrueType/OpenType fonts and caches unhinted faces used to
// measure label text. Besides the bundled family it searches the given
// directories for .ttf, .otf, .ttc and .otc files on first use.
// It is safe for concurrent use.
type FontCache struct {
	mu      sync.RWMutex
	dirs    []string
	fonts   map[string]*opentype.Font // lowercase family or file name -> parsed font
	faces   map[fontKey]font.Face
	scanned bool
}

// NewFontCache creates a FontCache over dirs plus the bundled family.
func NewFontCache(dirs ...string) *FontCache {
	fc := &FontCache{
		dirs:  dirs,
		fonts: make(map[string]*opentype.Font),
		faces: make(map[fontKey]font.Face),
	}
	if f, err := opentype.Parse(goregular.TTF); err == nil {
		fc.fonts[DefaultFontFamily] = f
	}
	return fc
}

// Face returns an unhinted face for the family at sizePx, falling back to the
// bundled family when name is unknown. It returns nil only if no font parses.
func (fc *FontCache) Face(name string, sizePx float64) font.Face {
	fc.ensureScanned()
	key := fontKey{name: strings.ToLower(strings.TrimSpace(name)), size: sizePx}

	fc.mu.RLock()
	face, ok := fc.faces[key]
	f := fc.fonts[key.name]
	if f == nil {
		f = fc.fonts[DefaultFontFamily]
	}
	fc.mu.RUnlock()
	if ok {
		return face
	}
	if f == nil {
		return nil
	}

	// DPI 72 makes Size a pixel size.
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    sizePx,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil
	}
	fc.mu.Lock()
	if cached, ok := fc.faces[key]; ok {
		face = cached
	} else {
		fc.faces[key] = face
	}
	fc.mu.Unlock()
	return face
}

// Measure returns the advance width of s in pixels.
func (fc *FontCache) Measure(name, s string, sizePx float64) float64 {
	face := fc.Face(name, sizePx)
	if face == nil {
		return textWidth(s, sizePx)
	}
	return fixedToFloat(font.MeasureString(face, s))
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// Families lists the registered font names, for diagnostics.
func (fc *FontCache) Families() []string {
	fc.ensureScanned()
	fc.mu.RLock()
	defer fc.mu.RUnlock()
	names := make([]string, 0, len(fc.fonts))
	for name := range fc.fonts {
		names = append(names, name)
	}
	return names
}

// LoadFont loads a font file and registers it under name.
// Returns an error if the file exceeds maxFontFileSize.
func (fc *FontCache) LoadFont(name, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Size() > maxFontFileSize {
		return fmt.Errorf("font file too large: %d bytes (max %d)", info.Size(), maxFontFileSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return fc.LoadFontData(name, data)
}

// LoadFontData registers a TrueType/OpenType font from raw bytes.
func (fc *FontCache) LoadFontData(name string, data []byte) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font %q: %w", name, err)
	}
	fc.mu.Lock()
	fc.fonts[strings.ToLower(name)] = f
	fc.registerByFamilyName(f)
	fc.mu.Unlock()
	return nil
}

func (fc *FontCache) ensureScanned() {
	fc.mu.RLock()
	scanned := fc.scanned
	fc.mu.RUnlock()
	if scanned {
		return
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()
	if fc.scanned {
		return
	}
	fc.scanned = true
	for _, dir := range fc.dirs {
		fc.scanDirDepth(dir, 0)
	}
}

// maxFontScanDepth limits recursive directory traversal when scanning for fonts.
const maxFontScanDepth = 3

// maxFontFileSize limits the size of individual font files loaded into memory.
const maxFontFileSize = 20 << 20 // 20 MB

func (fc *FontCache) scanDirDepth(dir string, depth int) {
	if depth > maxFontScanDepth {
		return
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			fc.scanDirDepth(filepath.Join(dir, entry.Name()), depth+1)
			continue
		}
		lower := strings.ToLower(entry.Name())
		isTTC := strings.HasSuffix(lower, ".ttc") || strings.HasSuffix(lower, ".otc")
		isSingle := strings.HasSuffix(lower, ".ttf") || strings.HasSuffix(lower, ".otf")
		if !isTTC && !isSingle {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.Size() > maxFontFileSize {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		if isTTC {
			fc.loadCollection(data, lower)
		} else {
			fc.loadSingleFont(data, lower)
		}
	}
}

// loadSingleFont registers a font by file name and by internal family name.
func (fc *FontCache) loadSingleFont(data []byte, lowerFilename string) {
	f, err := opentype.Parse(data)
	if err != nil {
		return
	}
	fc.fonts[strings.TrimSuffix(lowerFilename, filepath.Ext(lowerFilename))] = f
	fc.registerByFamilyName(f)
}

// loadCollection registers every font of a collection by family name, and
// the first one also by file name.
func (fc *FontCache) loadCollection(data []byte, lowerFilename string) {
	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return
	}
	for i := 0; i < coll.NumFonts(); i++ {
		f, err := coll.Font(i)
		if err != nil {
			continue
		}
		if i == 0 {
			fc.fonts[strings.TrimSuffix(lowerFilename, filepath.Ext(lowerFilename))] = f
		}
		fc.registerByFamilyName(f)
	}
}

// registerByFamilyName registers f under its family and full names.
func (fc *FontCache) registerByFamilyName(f *opentype.Font) {
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		fc.fonts[strings.ToLower(name)] = f
	}
	if name, err := f.Name(nil, sfnt.NameIDFull); err == nil && name != "" {
		fc.fonts[strings.ToLower(name)] = f
	}
}
