package gochart

// renderCombo draws the first series as bars and every later series as a
// line over the same value axis.
func renderCombo(in *RenderInput) (*Plot, error) {
	ids := seriesIDs(in.Spec)
	lo, hi := extent(in.Rows, ids, false)
	scale := newValueScale(lo, hi, in.Frame)
	band := newBand(len(in.Rows), in.Frame, bandPadding)

	root := group("plot", cartesianAxes(in, band, scale))
	root.Add(groupedBars(in, ids[:1], band, scale)...)
	for i := 1; i < len(ids); i++ {
		root.Add(seriesLine(in, ids[i], i, band, scale))
	}
	return &Plot{Root: root, Scale: scale}, nil
}
