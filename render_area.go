package gochart

import "strings"

// renderArea fills under each series line with a vertical gradient. With
// Stacked each series sits on the running total of the ones before it;
// otherwise areas overlap from the zero baseline.
func renderArea(in *RenderInput) (*Plot, error) {
	ids := seriesIDs(in.Spec)
	stacked := in.Options.Stacked
	curved := in.Options.Curved
	lo, hi := extent(in.Rows, ids, stacked)
	scale := newValueScale(lo, hi, in.Frame)
	band := newBand(len(in.Rows), in.Frame, 0)

	root := group("plot", cartesianAxes(in, band, scale))
	bases := make([]float64, len(in.Rows))
	for j, id := range ids {
		color := in.Colors.Of(id)
		top := make([]Point, len(in.Rows))
		bottom := make([]Point, len(in.Rows))
		valid := make([]bool, len(in.Rows))
		for i, r := range in.Rows {
			v := r.Get(id)
			b := 0.0
			if stacked {
				b = bases[i]
			}
			x := band.Center(i)
			top[i] = Point{X: x, Y: scale.Y(b + v.Or(0))}
			bottom[i] = Point{X: x, Y: scale.Y(b)}
			valid[i] = v.Valid
			if stacked && v.Valid {
				bases[i] += v.Float
			}
		}
		topSegs := splitSegments(top, valid)
		bottomSegs := splitSegments(bottom, valid)

		var fill strings.Builder
		for k := range topSegs {
			writeCurve(&fill, topSegs[k], curved, true)
			writeCurve(&fill, reversed(bottomSegs[k]), curved && stacked, false)
			fill.WriteString("Z")
		}

		g := group("series")
		g.ID, g.Index = id, j
		g.Add(
			&Node{Kind: NodePath, Role: "area", ID: id, D: fill.String(), Fill: color, Gradient: areaGradient(color)},
			&Node{
				Kind: NodePath, Role: "line", ID: id,
				D: linePath(topSegs, curved), Segments: topSegs, Curve: curveName(curved),
				Fill: "none", Stroke: color, StrokeWidth: lineWidth,
			},
		)
		g.Add(dots(in, id, color, top, valid)...)
		root.Add(g)
	}
	return &Plot{Root: root, Scale: scale}, nil
}

func reversed(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}
