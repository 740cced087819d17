package main

import (
	"fmt"
	"sort"

	gochart "github.com/VantageDataChat/GoChart"
	"github.com/spf13/cobra"
)

var (
	fontDirs   []string
	sampleText string
	sampleSize float64
)

var fontsCmd = &cobra.Command{
	Use:   "fonts",
	Short: "List fonts available for legend measurement",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}
		theme := engine.Theme()
		fc := gochart.NewFontCache(append(append([]string(nil), theme.FontDirs...), fontDirs...)...)
		families := fc.Families()
		sort.Strings(families)
		w := cmd.OutOrStdout()
		for _, name := range families {
			marker := " "
			if name == theme.FontFamily {
				marker = "*"
			}
			fmt.Fprintf(w, "%s %-32s %6.1fpx\n", marker, name, fc.Measure(name, sampleText, sampleSize))
		}
		return nil
	},
}

func init() {
	fontsCmd.Flags().StringSliceVar(&fontDirs, "font-dir", nil, "Extra directories to scan for fonts")
	fontsCmd.Flags().StringVar(&sampleText, "sample", "Quarterly revenue", "Text to measure")
	fontsCmd.Flags().Float64Var(&sampleSize, "size", 12, "Sample font size in px")
	rootCmd.AddCommand(fontsCmd)
}
