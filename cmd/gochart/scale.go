package main

import (
	"fmt"
	"strconv"

	gochart "github.com/VantageDataChat/GoChart"
	"github.com/spf13/cobra"
)

var scaleCmd = &cobra.Command{
	Use:   "scale <width> <height>",
	Short: "Show the reference layout scaled to a canvas size",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid width: %w", err)
		}
		h, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid height: %w", err)
		}
		s := gochart.Scale(w, h)
		return writeJSON(cmd.OutOrStdout(), struct {
			Scale     float64                 `json:"scale"`
			Layout    gochart.ReferenceLayout `json:"layout"`
			WidthEMU  int64                   `json:"widthEmu"`
			HeightEMU int64                   `json:"heightEmu"`
		}{
			Scale:     float64(s),
			Layout:    gochart.DefaultReferenceLayout().Scaled(s),
			WidthEMU:  gochart.PixelToEMU(w),
			HeightEMU: gochart.PixelToEMU(h),
		})
	},
}
