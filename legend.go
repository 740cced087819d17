package gochart

import (
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// LegendSymbol is the swatch shape of a legend entry.
type LegendSymbol string

const (
	SymbolRect   LegendSymbol = "rect"
	SymbolLine   LegendSymbol = "line"
	SymbolCircle LegendSymbol = "circle"
)

// LegendEntry is one laid-out legend item.
type LegendEntry struct {
	ID     string       `json:"id"`
	Label  string       `json:"label"`
	Color  string       `json:"color"`
	Symbol LegendSymbol `json:"symbol"`
	X      float64      `json:"x"`
	Y      float64      `json:"y"`
	Width  float64      `json:"width"`
}

// Legend is the laid-out legend of a chart.
type Legend struct {
	Position LegendPosition `json:"position"`
	Size     LegendSize     `json:"size"`
	FontSize float64        `json:"fontSize"`
	Swatch   float64        `json:"swatch"`
	Box      Rect           `json:"box"`
	Entries  []LegendEntry  `json:"entries"`
}

// textMeasure returns the pixel width of s at the given font size.
type textMeasure func(s string, size float64) float64

type legendMetrics struct {
	fontSize, swatch float64
}

var legendPresets = map[LegendSize]legendMetrics{
	LegendSmall:  {fontSize: 10, swatch: 8},
	LegendMedium: {fontSize: 12, swatch: 10},
	LegendLarge:  {fontSize: 14, swatch: 12},
}

const (
	legendGap     = 16 // between entries
	legendPadding = 8
	swatchGap     = 6
)

// buildLegend returns the legend entries for the spec, or nil when the legend
// is disabled or would hold fewer than two entries.
func buildLegend(spec *ChartSpec, colors ColorAssignment, theme *Theme) *Legend {
	if !spec.Options.ShowLegend {
		return nil
	}
	var entries []LegendEntry
	switch spec.Kind {
	case KindTable, KindHeatmap:
		return nil
	case KindWaterfall:
		entries = []LegendEntry{
			{ID: "increase", Label: "Increase", Color: theme.IncreaseColor, Symbol: SymbolRect},
			{ID: "decrease", Label: "Decrease", Color: theme.DecreaseColor, Symbol: SymbolRect},
		}
	case KindFunnel:
		for i, label := range spec.Labels {
			entries = append(entries, LegendEntry{ID: label, Label: label, Color: colors.At(i), Symbol: SymbolRect})
		}
	default:
		for i, s := range spec.Series {
			entries = append(entries, LegendEntry{
				ID: s.ID, Label: s.ID, Color: colors.Of(s.ID), Symbol: seriesSymbol(spec.Kind, i),
			})
		}
	}
	if len(entries) < 2 {
		return nil
	}
	size := spec.Options.LegendSize
	preset, ok := legendPresets[size]
	if !ok {
		size, preset = LegendMedium, legendPresets[LegendMedium]
	}
	pos := spec.Options.LegendPosition
	switch pos {
	case LegendTop, LegendBottom, LegendLeft, LegendRight:
	default:
		pos = LegendBottom
	}
	return &Legend{
		Position: pos,
		Size:     size,
		FontSize: preset.fontSize,
		Swatch:   preset.swatch,
		Entries:  entries,
	}
}

func seriesSymbol(kind Kind, index int) LegendSymbol {
	switch kind {
	case KindLine:
		return SymbolLine
	case KindScatter, KindPie:
		return SymbolCircle
	case KindCombo:
		if index > 0 {
			return SymbolLine
		}
	}
	return SymbolRect
}

// textWidth measures s with the basic 7x13 face scaled to size.
func textWidth(s string, size float64) float64 {
	face := basicfont.Face7x13
	w := font.MeasureString(face, s).Ceil()
	return float64(w) * size / float64(face.Height)
}

// layout places the entries inside outer at the legend position and returns
// the space left for the plot. A nil measure falls back to textWidth.
func (l *Legend) layout(outer Rect, measure textMeasure) Rect {
	if measure == nil {
		measure = textWidth
	}
	entryWidth := func(label string) float64 {
		return l.Swatch + swatchGap + measure(label, l.FontSize)
	}
	rowHeight := math.Max(l.FontSize, l.Swatch) + legendPadding
	switch l.Position {
	case LegendLeft, LegendRight:
		colWidth := 0.0
		for _, e := range l.Entries {
			colWidth = math.Max(colWidth, entryWidth(e.Label))
		}
		bandWidth := math.Min(colWidth+2*legendPadding, outer.Width/3)
		x := outer.X + legendPadding
		if l.Position == LegendRight {
			x = outer.Right() - bandWidth + legendPadding
		}
		total := rowHeight * float64(len(l.Entries))
		y := outer.Y + math.Max(0, (outer.Height-total)/2)
		for i := range l.Entries {
			e := &l.Entries[i]
			e.Width = entryWidth(e.Label)
			e.X, e.Y = x, y+float64(i)*rowHeight
		}
		if l.Position == LegendRight {
			l.Box = Rect{X: outer.Right() - bandWidth, Y: outer.Y, Width: bandWidth, Height: outer.Height}
			return outer.Inset(0, bandWidth, 0, 0)
		}
		l.Box = Rect{X: outer.X, Y: outer.Y, Width: bandWidth, Height: outer.Height}
		return outer.Inset(0, 0, 0, bandWidth)
	}

	// Horizontal: wrap entries into centered rows.
	maxWidth := outer.Width - 2*legendPadding
	var rows [][]int
	var rowWidths []float64
	cur, curWidth := []int{}, 0.0
	for i, e := range l.Entries {
		w := entryWidth(e.Label)
		if len(cur) > 0 && curWidth+legendGap+w > maxWidth {
			rows, rowWidths = append(rows, cur), append(rowWidths, curWidth)
			cur, curWidth = []int{}, 0
		}
		if len(cur) > 0 {
			curWidth += legendGap
		}
		cur, curWidth = append(cur, i), curWidth+w
	}
	rows, rowWidths = append(rows, cur), append(rowWidths, curWidth)

	bandHeight := rowHeight*float64(len(rows)) + legendPadding
	top := outer.Y + legendPadding/2
	if l.Position == LegendBottom {
		top = outer.Bottom() - bandHeight + legendPadding/2
	}
	for r, idx := range rows {
		x := outer.X + (outer.Width-rowWidths[r])/2
		for _, i := range idx {
			e := &l.Entries[i]
			e.Width = entryWidth(e.Label)
			e.X, e.Y = x, top+float64(r)*rowHeight
			x += e.Width + legendGap
		}
	}
	if l.Position == LegendBottom {
		l.Box = Rect{X: outer.X, Y: outer.Bottom() - bandHeight, Width: outer.Width, Height: bandHeight}
		return outer.Inset(0, 0, bandHeight, 0)
	}
	l.Box = Rect{X: outer.X, Y: outer.Y, Width: outer.Width, Height: bandHeight}
	return outer.Inset(bandHeight, 0, 0, 0)
}

// TooltipEntry is one formatted value in a tooltip.
type TooltipEntry struct {
	ID    string  `json:"id"`
	Color string  `json:"color"`
	Value string  `json:"value"`
	Raw   float64 `json:"raw"`
}

// Tooltip describes the hover card for one index.
type Tooltip struct {
	Index      int            `json:"index"`
	Title      string         `json:"title"`
	Entries    []TooltipEntry `json:"entries"`
	Comparison string         `json:"comparison,omitempty"`
	X          float64        `json:"x"`
	Y          float64        `json:"y"`
}

// buildTooltip formats the hovered row. It returns nil without a valid hover.
func buildTooltip(in *RenderInput, tree *RenderTree, f *formatter) *Tooltip {
	if in.Hover == nil {
		return nil
	}
	h := *in.Hover
	spec := in.Spec
	switch spec.Kind {
	case KindTable, KindHeatmap:
		return nil
	case KindScatter:
		return scatterTooltip(in, h, f)
	}
	if h < 0 || h >= len(in.Rows) {
		return nil
	}
	row := in.Rows[h]
	tip := &Tooltip{Index: h, Title: row.Name, X: tree.Frame.X + tree.Frame.Width/2, Y: tree.Frame.Y}

	switch spec.Kind {
	case KindPie:
		v := row.Get(row.Name)
		if v.Valid {
			tip.Entries = append(tip.Entries, TooltipEntry{ID: row.Name, Color: in.Colors.Of(row.Name), Value: f.Number(v.Float), Raw: v.Float})
		}
		return tip
	case KindFunnel:
		if s := spec.FirstSeries(); s != nil {
			if v := row.Get(s.ID); v.Valid {
				tip.Entries = append(tip.Entries, TooltipEntry{ID: s.ID, Color: in.Colors.At(h), Value: f.Number(v.Float), Raw: v.Float})
			}
		}
	default:
		for _, s := range spec.Series {
			v := row.Get(s.ID)
			if !v.Valid {
				continue
			}
			tip.Entries = append(tip.Entries, TooltipEntry{ID: s.ID, Color: in.Colors.Of(s.ID), Value: f.Number(v.Float), Raw: v.Float})
		}
	}
	band := newBand(len(in.Rows), tree.Frame, 0)
	tip.X = band.Center(h)
	if c := tree.Metrics.Comparison; c != nil {
		tip.Comparison = f.Percent(c.Percentage)
		if tree.Metrics.ComparisonText != "" {
			tip.Comparison += " " + tree.Metrics.ComparisonText
		}
	}
	return tip
}

func scatterTooltip(in *RenderInput, h int, f *formatter) *Tooltip {
	tip := &Tooltip{Index: h, X: in.Frame.X, Y: in.Frame.Y}
	for _, s := range in.Spec.Series {
		if h < 0 || h >= len(s.Points) {
			continue
		}
		p := s.Points[h]
		val := "(" + f.Number(p.X) + ", " + f.Number(p.Y) + ")"
		if p.Z != nil {
			val += " · " + f.Number(*p.Z)
		}
		tip.Entries = append(tip.Entries, TooltipEntry{ID: s.ID, Color: in.Colors.Of(s.ID), Value: val, Raw: p.Y})
	}
	if len(tip.Entries) == 0 {
		return nil
	}
	tip.Title = tip.Entries[0].ID
	return tip
}
