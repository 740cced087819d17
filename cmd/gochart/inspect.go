package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	gochart "github.com/VantageDataChat/GoChart"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#4338ca")).
			Padding(0, 1).
			Bold(true)
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6b7280")).
			Width(14)
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#dc2626")).
			Bold(true)
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <spec.json|->",
	Short: "Summarize how a spec lays out",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}
		spec, err := readSpec(args[0])
		if err != nil {
			return err
		}
		var hover *int
		if cmd.Flags().Changed("hover") {
			hover = &hoverIndex
		}
		printSummary(cmd.OutOrStdout(), spec, engine.Render(spec, hover))
		return nil
	},
}

func init() {
	inspectCmd.Flags().IntVar(&hoverIndex, "hover", 0, "Hovered label or slice index")
}

func printSummary(w io.Writer, spec *gochart.ChartSpec, tree *gochart.RenderTree) {
	title := string(tree.Kind)
	if tree.Title != "" {
		title += " · " + tree.Title
	}
	fmt.Fprintln(w, headerStyle.Render(title))
	row := func(label, value string) {
		fmt.Fprintln(w, labelStyle.Render(label)+value)
	}

	row("size", fmt.Sprintf("%gx%g", tree.Width, tree.Height))
	if tree.IsPlaceholder() {
		row("placeholder", warnStyle.Render(tree.Placeholder.Reason+": "+tree.Placeholder.Message))
		if err := gochart.Validate(spec); err != nil {
			fmt.Fprintln(w, warnStyle.Render(err.Error()))
		}
		return
	}
	f := tree.Frame
	row("plot frame", fmt.Sprintf("x=%.1f y=%.1f w=%.1f h=%.1f", f.X, f.Y, f.Width, f.Height))
	if tree.Scale != nil {
		row("value axis", fmt.Sprintf("%g..%g step %g", tree.Scale.Min, tree.Scale.Max, tree.Scale.Step))
	}
	for _, c := range tree.Colors {
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(c.Color)).Render("  ")
		row("color", fmt.Sprintf("%s %s %s (%s)", swatch, c.Color, c.ID, c.Source))
	}
	if tree.Legend != nil {
		row("legend", fmt.Sprintf("%s, %s, %d entries", tree.Legend.Position, tree.Legend.Size, len(tree.Legend.Entries)))
	}
	if c := tree.Metrics.Comparison; c != nil {
		row("comparison", fmt.Sprintf("%+.1f%% (index %d vs %d)", c.Percentage, c.Index, c.BaseIndex))
	}
	if tree.Metrics.OverallPerformance != "" {
		row("performance", tree.Metrics.OverallPerformance)
	}
	if tip := tree.Tooltip; tip != nil {
		parts := make([]string, 0, len(tip.Entries))
		for _, e := range tip.Entries {
			parts = append(parts, e.ID+"="+e.Value)
		}
		row("tooltip", tip.Title+": "+strings.Join(parts, ", "))
	}
	row("nodes", roleCounts(tree.Root))
}

// roleCounts lists how many nodes carry each role, sorted by role.
func roleCounts(root *gochart.Node) string {
	counts := map[string]int{}
	root.Walk(func(n *gochart.Node) {
		if n.Role != "" {
			counts[n.Role]++
		}
	})
	roles := make([]string, 0, len(counts))
	for r := range counts {
		roles = append(roles, r)
	}
	sort.Strings(roles)
	parts := make([]string, len(roles))
	for i, r := range roles {
		parts[i] = fmt.Sprintf("%s:%d", r, counts[r])
	}
	return strings.Join(parts, " ")
}
