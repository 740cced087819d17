package gochart

import "math"

const (
	bandPadding     = 0.2
	singleBarWidth  = 32
	barGap          = 4
	barCornerRadius = 4
)

func renderBar(in *RenderInput) (*Plot, error) {
	ids := seriesIDs(in.Spec)
	stacked := in.Spec.Kind == KindStackedBar || in.Options.Stacked
	lo, hi := extent(in.Rows, ids, stacked)
	scale := newValueScale(lo, hi, in.Frame)
	band := newBand(len(in.Rows), in.Frame, bandPadding)

	root := group("plot", cartesianAxes(in, band, scale))
	if stacked {
		root.Add(stackedBars(in, ids, band, scale)...)
	} else {
		root.Add(groupedBars(in, ids, band, scale)...)
	}
	return &Plot{Root: root, Scale: scale}, nil
}

// barLayout returns the bar width and the width of the whole group at one
// label. A lone series gets a fixed narrow bar instead of filling the band.
func barLayout(n int, band bandScale) (barW, groupW float64) {
	if n <= 1 {
		w := math.Min(singleBarWidth, band.Inner())
		return w, w
	}
	groupW = band.Inner()
	barW = math.Max(1, (groupW-barGap*float64(n-1))/float64(n))
	return barW, groupW
}

func groupedBars(in *RenderInput, ids []string, band bandScale, scale *ValueScale) []*Node {
	barW, groupW := barLayout(len(ids), band)
	out := make([]*Node, 0, len(ids))
	for j, id := range ids {
		g := group("series")
		g.ID, g.Index = id, j
		color := in.Colors.Of(id)
		for i, r := range in.Rows {
			v := r.Get(id)
			if !v.Valid {
				continue
			}
			x := band.Center(i) - groupW/2 + float64(j)*(barW+barGap)
			g.Add(barRect("bar", id, r.Name, i, x, barW, 0, v.Float, scale, barCornerRadius, color))
		}
		out = append(out, g)
	}
	return out
}

// stackedBars accumulates segments in series order. Only the topmost
// non-empty segment of each stack gets rounded corners.
func stackedBars(in *RenderInput, ids []string, band bandScale, scale *ValueScale) []*Node {
	w := band.Inner()
	if len(ids) == 1 {
		w, _ = barLayout(1, band)
	}
	groups := make([]*Node, len(ids))
	for j, id := range ids {
		groups[j] = group("series")
		groups[j].ID, groups[j].Index = id, j
	}
	totals := group("totals")
	for i, r := range in.Rows {
		top := -1
		for j, id := range ids {
			if v := r.Get(id); v.Valid && v.Float != 0 {
				top = j
			}
		}
		base := 0.0
		for j, id := range ids {
			v := r.Get(id)
			if !v.Valid {
				continue
			}
			radius := 0.0
			if j == top {
				radius = barCornerRadius
			}
			groups[j].Add(barRect("segment", id, r.Name, i, band.Center(i)-w/2, w, base, v.Float, scale, radius, in.Colors.Of(id)))
			base += v.Float
		}
		if top >= 0 {
			totals.Add(&Node{
				Kind: NodeText, Role: "stack-total", Label: r.Name, Index: i,
				Text: in.Format(base), X: band.Center(i), Y: scale.Y(base) - 6, Anchor: "middle",
				FontSize: axisFontSize, Fill: in.Theme.AxisTextColor, Value: ptr(base),
			})
		}
	}
	return append(groups, totals)
}

// barRect spans from base to base+value on the value scale.
func barRect(role, id, label string, index int, x, w, base, value float64, scale *ValueScale, radius float64, color string) *Node {
	y0, y1 := scale.Y(base), scale.Y(base+value)
	return &Node{
		Kind: NodeRect, Role: role, ID: id, Label: label, Index: index,
		X: x, Y: math.Min(y0, y1), Width: w, Height: math.Abs(y0 - y1),
		CornerRadius: radius, Fill: color,
		Value: ptr(value), Base: ptr(base),
	}
}
