package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	gochart "github.com/VantageDataChat/GoChart"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose   bool
	themePath string
	width     float64
	height    float64
	lenient   bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:     "gochart",
	Short:   "Lay out chart specs as render trees",
	Version: gochart.Version,
	Long: `gochart turns declarative JSON chart specs into laid-out render trees.

Each spec names a chart kind, category labels and numeric series. The output
is JSON geometry with resolved colors, legend, tooltip and derived metrics.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&themePath, "theme", "", "Theme YAML file (default: built-in theme)")
	rootCmd.PersistentFlags().Float64Var(&width, "width", 0, "Output width in px (default: theme viewport)")
	rootCmd.PersistentFlags().Float64Var(&height, "height", 0, "Output height in px (default: theme viewport)")
	rootCmd.PersistentFlags().BoolVar(&lenient, "lenient", false, "Pad short series with nulls instead of rejecting them")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(scaleCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newEngine builds an engine from the global flags.
func newEngine() (*gochart.Engine, error) {
	opts := []gochart.Option{gochart.WithLogger(logger)}
	if themePath != "" {
		theme, err := gochart.LoadTheme(themePath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, gochart.WithTheme(theme))
	}
	if width > 0 && height > 0 {
		opts = append(opts, gochart.WithViewport(width, height))
	}
	if lenient {
		opts = append(opts, gochart.WithLenientShapes())
	}
	return gochart.New(opts...), nil
}

// readSpec reads a JSON spec from path, or stdin when path is "-".
func readSpec(path string) (*gochart.ChartSpec, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read spec: %w", err)
	}
	return gochart.ParseSpec(data)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
