package gochart

import (
	"fmt"
	"math"
)

const (
	funnelGap        = 6
	funnelMinLabelPx = 48
)

// renderFunnel stacks one centered horizontal bar per label, in input order.
// Bar width is value / max(value) of the plot width.
func renderFunnel(in *RenderInput) (*Plot, error) {
	s := in.Spec.FirstSeries()
	if s == nil {
		return nil, NewSpecError(in.Spec.Kind, "", fmt.Errorf("%w: funnel needs a series", ErrMissingData))
	}
	data := column(in.Rows, s.ID)
	widths := FunnelWidths(data)

	n := float64(len(in.Rows))
	h := math.Max(1, (in.Frame.Height-funnelGap*(n-1))/n)
	cx := in.Frame.X + in.Frame.Width/2

	stages := group("stages")
	labels := group("stage-labels")
	for i, r := range in.Rows {
		w := in.Frame.Width * widths[i] / 100
		y := in.Frame.Y + float64(i)*(h+funnelGap)
		stages.Add(&Node{
			Kind: NodeRect, Role: "stage", ID: r.Name, Label: r.Name, Index: i,
			X: cx - w/2, Y: y, Width: w, Height: h, CornerRadius: barCornerRadius,
			Fill: in.Colors.At(i), Value: ptr(data[i].Or(0)), Share: ptr(widths[i] / 100),
		})
		fill := in.Theme.LightTextColor
		if w < funnelMinLabelPx {
			fill = in.Theme.DarkTextColor
		}
		labels.Add(&Node{
			Kind: NodeText, Role: "stage-label", ID: r.Name, Label: r.Name, Index: i,
			Text: r.Name + " " + in.Format(data[i].Or(0)), X: cx, Y: y + h/2, Anchor: "middle",
			FontSize: axisFontSize, Fill: fill,
		})
	}
	return &Plot{Root: group("plot", stages, labels)}, nil
}
