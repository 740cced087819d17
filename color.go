package gochart

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ParseColor parses a hex color. Accepts "#RGB", "#RRGGBB" and 8-char ARGB;
// the leading "#" is optional and ARGB alpha is dropped.
func ParseColor(s string) (colorful.Color, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 8 {
		s = s[2:]
	}
	if len(s) != 3 && len(s) != 6 {
		return colorful.Color{}, false
	}
	if !isHex(s) {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex("#" + s)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

// NormalizeColor returns s as lowercase "#rrggbb", or false if it is not a hex color.
func NormalizeColor(s string) (string, bool) {
	c, ok := ParseColor(s)
	if !ok {
		return "", false
	}
	return c.Hex(), true
}

func isHex(s string) bool {
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}

// ColorSource records which rule produced a resolved color.
type ColorSource string

const (
	SourceExplicit  ColorSource = "explicit"
	SourceCanonical ColorSource = "canonical"
	SourcePalette   ColorSource = "palette"
)

// ResolvedColor is the final color of one series, slice or stage.
type ResolvedColor struct {
	ID     string      `json:"id"`
	Color  string      `json:"color"`
	Source ColorSource `json:"source"`
}

// ColorAssignment maps series ids to colors, in series order.
type ColorAssignment []ResolvedColor

// Of returns the color for an id, or "" when the id is unknown.
func (a ColorAssignment) Of(id string) string {
	for _, rc := range a {
		if rc.ID == id {
			return rc.Color
		}
	}
	return ""
}

// At returns the color at index i, cycling when i is out of range.
func (a ColorAssignment) At(i int) string {
	if len(a) == 0 {
		return ""
	}
	return a[i%len(a)].Color
}

// ColorResolver assigns display colors from a theme.
type ColorResolver struct {
	palette   []string
	stacked   []string
	canonical map[string]string
}

// NewColorResolver creates a resolver over the theme's palettes and canonical names.
func NewColorResolver(t *Theme) *ColorResolver {
	r := &ColorResolver{
		palette:   normalizeAll(t.Palette, DefaultPalette),
		stacked:   normalizeAll(t.StackedPalette, DefaultStackedPalette),
		canonical: make(map[string]string, len(t.CanonicalColors)),
	}
	for name, c := range t.CanonicalColors {
		if hex, ok := NormalizeColor(c); ok {
			r.canonical[canonicalKey(name)] = hex
		}
	}
	return r
}

func normalizeAll(colors, fallback []string) []string {
	out := make([]string, 0, len(colors))
	for _, c := range colors {
		if hex, ok := NormalizeColor(c); ok {
			out = append(out, hex)
		}
	}
	if len(out) == 0 {
		return normalizeAll(fallback, DefaultPalette)
	}
	return out
}

func canonicalKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Palette returns the palette used for the kind.
func (r *ColorResolver) Palette(kind Kind, stacked bool) []string {
	if kind == KindStackedBar || (kind == KindBar && stacked) {
		return r.stacked
	}
	return r.palette
}

// Resolve picks a color: explicit > canonical name > palette[index % len].
func (r *ColorResolver) Resolve(id, explicit string, index int, palette []string) ResolvedColor {
	if hex, ok := NormalizeColor(explicit); ok {
		return ResolvedColor{ID: id, Color: hex, Source: SourceExplicit}
	}
	if hex, ok := r.canonical[canonicalKey(id)]; ok {
		return ResolvedColor{ID: id, Color: hex, Source: SourceCanonical}
	}
	return ResolvedColor{ID: id, Color: palette[index%len(palette)], Source: SourcePalette}
}

// ResolveSpec assigns a color to every series of the spec. Funnel charts
// color stages, so they get one entry per label; an explicit color on the
// funnel series fills every stage.
func (r *ColorResolver) ResolveSpec(spec *ChartSpec) ColorAssignment {
	palette := r.Palette(spec.Kind, spec.Options.Stacked)
	if spec.Kind == KindFunnel {
		explicit := ""
		if s := spec.FirstSeries(); s != nil {
			explicit = s.Color
		}
		out := make(ColorAssignment, len(spec.Labels))
		for i, label := range spec.Labels {
			out[i] = r.Resolve(label, explicit, i, palette)
		}
		return out
	}
	out := make(ColorAssignment, len(spec.Series))
	for i, s := range spec.Series {
		out[i] = r.Resolve(s.ID, s.Color, i, palette)
	}
	return out
}

// GradientStop is one stop of a vertical gradient.
type GradientStop struct {
	Offset  float64 `json:"offset"`
	Color   string  `json:"color"`
	Opacity float64 `json:"opacity"`
}

// areaGradient fades a series color from opaque near the line to nearly
// transparent at the baseline. The faded stop is blended toward white.
func areaGradient(hex string) []GradientStop {
	c, ok := ParseColor(hex)
	if !ok {
		return []GradientStop{{0.05, hex, 0.8}, {0.95, hex, 0.05}}
	}
	white := colorful.Color{R: 1, G: 1, B: 1}
	return []GradientStop{
		{Offset: 0.05, Color: c.Hex(), Opacity: 0.8},
		{Offset: 0.95, Color: c.BlendLab(white, 0.3).Clamped().Hex(), Opacity: 0.05},
	}
}

// tint returns hex mixed toward white by t (0 keeps the color).
func tint(hex string, t float64) string {
	c, ok := ParseColor(hex)
	if !ok {
		return hex
	}
	return c.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, t).Clamped().Hex()
}
