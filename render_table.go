package gochart

// renderTable passes the header/row payload through as a single table node.
// Rows are copied so the tree never aliases the spec.
func renderTable(in *RenderInput) (*Plot, error) {
	src := in.Spec.Table
	t := &TableData{Headers: append([]string(nil), src.Headers...)}
	t.Rows = make([][]string, len(src.Rows))
	for i, row := range src.Rows {
		t.Rows[i] = append([]string(nil), row...)
	}
	node := &Node{
		Kind: NodeTable, Role: "table",
		X: in.Frame.X, Y: in.Frame.Y, Width: in.Frame.Width, Height: in.Frame.Height,
		Stroke: in.Theme.GridColor, Fill: in.Theme.DarkTextColor, FontSize: axisFontSize,
		Table: t,
	}
	return &Plot{Root: group("plot", node)}, nil
}
