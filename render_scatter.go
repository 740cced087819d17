package gochart

import "math"

const (
	scatterMinRadius     = 4
	scatterMaxRadius     = 14
	scatterDefaultRadius = 5
)

// renderScatter plots independent {x,y,z} points. Z, when present, scales
// marker area between the min and max radius.
func renderScatter(in *RenderInput) (*Plot, error) {
	var xlo, xhi, ylo, yhi float64
	zlo, zhi := math.Inf(1), math.Inf(-1)
	for _, s := range in.Spec.Series {
		for _, p := range s.Points {
			xlo, xhi = math.Min(xlo, p.X), math.Max(xhi, p.X)
			ylo, yhi = math.Min(ylo, p.Y), math.Max(yhi, p.Y)
			if p.Z != nil {
				zlo, zhi = math.Min(zlo, *p.Z), math.Max(zhi, *p.Z)
			}
		}
	}
	ys := newValueScale(ylo, yhi, in.Frame)
	xmin, xmax, xstep := niceDomain(xlo, xhi, 5)
	xs := linearScale{min: xmin, max: xmax, from: in.Frame.X, to: in.Frame.Right()}

	axes := group("axes", valueAxis(in, ys)...)
	for v := xmin; v <= xmax+xstep/2; v += xstep {
		tick := math.Round(v/xstep) * xstep
		x := xs.At(tick)
		if in.Options.ShowGrid {
			axes.Add(&Node{
				Kind: NodeLine, Role: "grid",
				X: x, Y: in.Frame.Y, X2: x, Y2: in.Frame.Bottom(),
				Stroke: in.Theme.GridColor, StrokeWidth: 1,
			})
		}
		axes.Add(&Node{
			Kind: NodeText, Role: "x-label", Text: in.Format(tick),
			X: x, Y: in.Frame.Bottom() + 16, Anchor: "middle",
			FontSize: axisFontSize, Fill: in.Theme.AxisTextColor,
		})
	}

	root := group("plot", axes)
	for j, s := range in.Spec.Series {
		g := group("series")
		g.ID, g.Index = s.ID, j
		color := in.Colors.Of(s.ID)
		for i, p := range s.Points {
			hovered := in.Hover != nil && *in.Hover == i
			opacity := 0.8
			if hovered {
				opacity = 1
			}
			g.Add(&Node{
				Kind: NodeCircle, Role: "point", ID: s.ID, Index: i,
				X: xs.At(p.X), Y: ys.Y(p.Y), Radius: markerRadius(p.Z, zlo, zhi),
				Fill: color, Opacity: opacity, Value: ptr(p.Y),
			})
		}
		root.Add(g)
	}
	return &Plot{Root: root, Scale: ys}, nil
}

func markerRadius(z *float64, lo, hi float64) float64 {
	if z == nil {
		return scatterDefaultRadius
	}
	if hi <= lo {
		return (scatterMinRadius + scatterMaxRadius) / 2
	}
	t := (*z - lo) / (hi - lo)
	min2, max2 := scatterMinRadius*scatterMinRadius, scatterMaxRadius*scatterMaxRadius
	return math.Sqrt(float64(min2) + t*float64(max2-min2))
}
