package gochart

const (
	lineWidth       = 2
	dotRadius       = 3.5
	activeDotRadius = 6
)

func renderLine(in *RenderInput) (*Plot, error) {
	ids := seriesIDs(in.Spec)
	lo, hi := extent(in.Rows, ids, false)
	scale := newValueScale(lo, hi, in.Frame)
	band := newBand(len(in.Rows), in.Frame, 0)

	root := group("plot", cartesianAxes(in, band, scale))
	for i, id := range ids {
		root.Add(seriesLine(in, id, i, band, scale))
	}
	return &Plot{Root: root, Scale: scale}, nil
}

// seriesLine draws one series as a path broken at nulls, plus its markers.
func seriesLine(in *RenderInput, id string, index int, band bandScale, scale *ValueScale) *Node {
	color := in.Colors.Of(id)
	pts := make([]Point, len(in.Rows))
	valid := make([]bool, len(in.Rows))
	for i, r := range in.Rows {
		v := r.Get(id)
		pts[i] = Point{X: band.Center(i), Y: scale.Y(v.Or(0))}
		valid[i] = v.Valid
	}
	segs := splitSegments(pts, valid)

	g := group("series")
	g.ID, g.Index = id, index
	g.Add(&Node{
		Kind: NodePath, Role: "line", ID: id,
		D: linePath(segs, in.Options.Curved), Segments: segs, Curve: curveName(in.Options.Curved),
		Fill: "none", Stroke: color, StrokeWidth: lineWidth,
	})
	g.Add(dots(in, id, color, pts, valid)...)
	return g
}

func curveName(curved bool) string {
	if curved {
		return CurveMonotoneX
	}
	return CurveLinear
}

// dots returns point markers when ShowDots is set, and always the active
// marker at the hovered index.
func dots(in *RenderInput, id, color string, pts []Point, valid []bool) []*Node {
	var out []*Node
	for i, p := range pts {
		if !valid[i] {
			continue
		}
		hovered := in.Hover != nil && *in.Hover == i
		if !in.Options.ShowDots && !hovered {
			continue
		}
		role, r := "dot", dotRadius
		if hovered {
			role, r = "active-dot", activeDotRadius
		}
		out = append(out, &Node{
			Kind: NodeCircle, Role: role, ID: id, Label: in.Rows[i].Name, Index: i,
			X: p.X, Y: p.Y, Radius: r,
			Fill: color, Stroke: in.Theme.LightTextColor, StrokeWidth: 1.5,
			Value: ptr(in.Rows[i].Get(id).Float),
		})
	}
	return out
}
