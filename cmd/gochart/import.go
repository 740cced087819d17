package main

import (
	"os"

	gochart "github.com/VantageDataChat/GoChart"
	"github.com/VantageDataChat/GoChart/sheet"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	sheetName   string
	importKind  string
	importTitle string
	importOut   string
)

var importCmd = &cobra.Command{
	Use:   "import <book.xlsx>",
	Short: "Build a spec from a spreadsheet",
	Long: `Build a chart spec from one sheet of an xlsx workbook. The first row holds
headers; the first column holds labels and each further column is a series.
Pie reads label/value rows, heatmap reads x/y/value rows, scatter reads x/y/z.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := sheet.Load(args[0], sheet.Options{
			Sheet: sheetName,
			Kind:  gochart.Kind(importKind),
			Title: importTitle,
		})
		if err != nil {
			return err
		}
		if err := gochart.Validate(spec); err != nil {
			logger.Warn("imported spec will render as a placeholder", zap.Error(err))
		}
		if importOut == "" {
			return writeJSON(cmd.OutOrStdout(), spec)
		}
		f, err := os.Create(importOut)
		if err != nil {
			return err
		}
		defer f.Close()
		return writeJSON(f, spec)
	},
}

func init() {
	importCmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet name (default: active sheet)")
	importCmd.Flags().StringVarP(&importKind, "kind", "k", string(gochart.KindBar), "Chart kind")
	importCmd.Flags().StringVar(&importTitle, "title", "", "Chart title")
	importCmd.Flags().StringVarP(&importOut, "out", "o", "", "Output file (default: stdout)")
}
