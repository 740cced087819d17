package gochart

import "fmt"

const connectorTint = 0.4

// renderWaterfall draws the first series as a ladder: each bar starts at the
// running total of the steps before it. Thin connectors join consecutive bar
// tops. Null steps draw no bar but still hold their label slot.
func renderWaterfall(in *RenderInput) (*Plot, error) {
	s := in.Spec.FirstSeries()
	if s == nil {
		return nil, NewSpecError(in.Spec.Kind, "", fmt.Errorf("%w: waterfall needs a series", ErrMissingData))
	}
	data := column(in.Rows, s.ID)
	steps := Waterfall(data)

	lo, hi := 0.0, 0.0
	for _, st := range steps {
		lo = min(lo, st.Base, st.Cumulative)
		hi = max(hi, st.Base, st.Cumulative)
	}
	scale := newValueScale(lo, hi, in.Frame)
	band := newBand(len(in.Rows), in.Frame, bandPadding)
	w := band.Inner()

	bars := group("series")
	bars.ID = s.ID
	connectors := group("connectors")
	connColor := tint(in.Theme.AxisTextColor, connectorTint)
	prev := -1
	for i, st := range steps {
		if !data[i].Valid {
			continue
		}
		color := in.Theme.IncreaseColor
		if !st.Increase {
			color = in.Theme.DecreaseColor
		}
		x := band.Center(i) - w/2
		bar := barRect("step", s.ID, in.Rows[i].Name, i, x, w, st.Base, st.Value, scale, 0, color)
		bars.Add(bar)
		if prev >= 0 {
			y := scale.Y(steps[prev].Cumulative)
			connectors.Add(&Node{
				Kind: NodeLine, Role: "connector", Index: i,
				X: band.Center(prev) + w/2, Y: y, X2: x, Y2: y,
				Stroke: connColor, StrokeWidth: 1,
			})
		}
		prev = i
	}
	return &Plot{Root: group("plot", cartesianAxes(in, band, scale), connectors, bars), Scale: scale}, nil
}
