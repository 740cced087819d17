package gochart

import "math"

const heatCellGap = 1

// renderHeatmap lays out a grid with one column per distinct x and one row
// per distinct y, in first-seen order. Cell opacity follows value / max.
func renderHeatmap(in *RenderInput) (*Plot, error) {
	cells := in.Spec.Heatmap.Cells
	xs, ys := distinct(cells, func(c HeatCell) string { return c.X }), distinct(cells, func(c HeatCell) string { return c.Y })
	peak := math.Inf(-1)
	for _, c := range cells {
		peak = math.Max(peak, c.Value)
	}

	base := in.Theme.HeatColor
	if s := in.Spec.FirstSeries(); s != nil {
		base = in.Colors.Of(s.ID)
	}

	cw := in.Frame.Width / float64(len(xs))
	ch := in.Frame.Height / float64(len(ys))
	grid := group("cells")
	labels := group("cell-labels")
	for i, c := range cells {
		col, row := xs[c.X], ys[c.Y]
		x := in.Frame.X + float64(col)*cw
		y := in.Frame.Y + float64(row)*ch
		it := HeatIntensity(c.Value, peak)
		grid.Add(&Node{
			Kind: NodeRect, Role: "cell", ID: c.X, Label: c.Y, Index: i,
			X: x + heatCellGap, Y: y + heatCellGap,
			Width: math.Max(0, cw-2*heatCellGap), Height: math.Max(0, ch-2*heatCellGap),
			Fill: base, Opacity: it.Opacity, Value: ptr(c.Value), Share: ptr(it.Normalized),
		})
		text := in.Theme.DarkTextColor
		if it.LightLabel {
			text = in.Theme.LightTextColor
		}
		labels.Add(&Node{
			Kind: NodeText, Role: "cell-label", ID: c.X, Label: c.Y, Index: i,
			Text: in.Format(c.Value), X: x + cw/2, Y: y + ch/2, Anchor: "middle",
			FontSize: axisFontSize, Fill: text,
		})
	}

	axes := group("axes")
	for name, col := range orderedKeys(xs) {
		axes.Add(&Node{
			Kind: NodeText, Role: "x-label", Text: name, Label: name, Index: col,
			X: in.Frame.X + (float64(col)+0.5)*cw, Y: in.Frame.Bottom() + 16, Anchor: "middle",
			FontSize: axisFontSize, Fill: in.Theme.AxisTextColor,
		})
	}
	for name, row := range orderedKeys(ys) {
		axes.Add(&Node{
			Kind: NodeText, Role: "y-label", Text: name, Label: name, Index: row,
			X: in.Frame.X - 6, Y: in.Frame.Y + (float64(row)+0.5)*ch, Anchor: "end",
			FontSize: axisFontSize, Fill: in.Theme.AxisTextColor,
		})
	}
	return &Plot{Root: group("plot", axes, grid, labels)}, nil
}

// distinct maps each key to its first-seen position.
func distinct(cells []HeatCell, key func(HeatCell) string) map[string]int {
	out := make(map[string]int)
	for _, c := range cells {
		k := key(c)
		if _, ok := out[k]; !ok {
			out[k] = len(out)
		}
	}
	return out
}

// orderedKeys yields the keys of an index map in index order.
func orderedKeys(idx map[string]int) func(yield func(string, int) bool) {
	names := make([]string, len(idx))
	for k, i := range idx {
		names[i] = k
	}
	return func(yield func(string, int) bool) {
		for i, k := range names {
			if !yield(k, i) {
				return
			}
		}
	}
}
