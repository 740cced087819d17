package gochart

import (
	"fmt"
	"math"
)

const (
	pieActiveOffset  = 6
	pieLabelRadius   = 0.65
	pieMinLabelShare = 0.05
)

// renderPie sizes each slice by value / sum of values. Values are absolute
// magnitudes; negative and null values get no wedge.
func renderPie(in *RenderInput) (*Plot, error) {
	sum := 0.0
	for _, r := range in.Rows {
		if v := r.Get(r.Name); v.Valid && v.Float > 0 {
			sum += v.Float
		}
	}
	if sum <= 0 {
		return nil, NewSpecError(in.Spec.Kind, "", fmt.Errorf("%w: pie values sum to zero", ErrMissingData))
	}

	cx := in.Frame.X + in.Frame.Width/2
	cy := in.Frame.Y + in.Frame.Height/2
	radius := math.Min(in.Frame.Width, in.Frame.Height)/2 - pieActiveOffset

	slices := group("slices")
	labels := group("slice-labels")
	angle := 0.0
	for i, r := range in.Rows {
		v := math.Max(0, r.Get(r.Name).Or(0))
		share := v / sum
		sweep := share * 360
		if sweep <= 0 {
			continue
		}
		rr := radius
		if in.Hover != nil && *in.Hover == i {
			rr += pieActiveOffset
		}
		slices.Add(&Node{
			Kind: NodeArc, Role: "slice", ID: r.Name, Label: r.Name, Index: i,
			X: cx, Y: cy, Radius: rr, StartAngle: angle, EndAngle: angle + sweep,
			D: arcPath(cx, cy, rr, angle, angle+sweep),
			Fill: in.Colors.Of(r.Name), Stroke: in.Theme.LightTextColor, StrokeWidth: 1,
			Value: ptr(v), Share: ptr(share),
		})
		if share >= pieMinLabelShare {
			lx, ly := polar(cx, cy, radius*pieLabelRadius, angle+sweep/2)
			labels.Add(&Node{
				Kind: NodeText, Role: "slice-label", ID: r.Name, Index: i,
				Text: in.Share(share), X: lx, Y: ly, Anchor: "middle",
				FontSize: axisFontSize, Fill: in.Theme.LightTextColor,
			})
		}
		angle += sweep
	}
	return &Plot{Root: group("plot", slices, labels)}, nil
}
