package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gochart "github.com/VantageDataChat/GoChart"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	hoverIndex int
	outPath    string
	strict     bool
	outDir     string
	jobs       int
)

var renderCmd = &cobra.Command{
	Use:   "render <spec.json|->",
	Short: "Render one spec to a JSON render tree",
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
		if strict {
			if err := gochart.Validate(spec); err != nil {
				return err
			}
		}
		var hover *int
		if cmd.Flags().Changed("hover") {
			hover = &hoverIndex
		}
		tree := engine.Render(spec, hover)
		if outPath == "" {
			return writeJSON(cmd.OutOrStdout(), tree)
		}
		return writeTree(outPath, tree)
	},
}

var batchCmd = &cobra.Command{
	Use:   "batch <spec.json>...",
	Short: "Render many specs concurrently",
	Long: `Render every given spec with one shared engine. Each tree is written to
--out-dir as <name>.tree.json. A spec that cannot be laid out still produces
its placeholder tree.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(outDir, 0750); err != nil {
			return fmt.Errorf("failed to create output dir: %w", err)
		}
		return renderBatch(cmd.Context(), engine, args, outDir, jobs)
	},
}

func init() {
	renderCmd.Flags().IntVar(&hoverIndex, "hover", 0, "Hovered label or slice index")
	renderCmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default: stdout)")
	renderCmd.Flags().BoolVar(&strict, "strict", false, "Validate the spec and fail instead of rendering a placeholder")

	batchCmd.Flags().StringVarP(&outDir, "out-dir", "o", ".", "Output directory")
	batchCmd.Flags().IntVarP(&jobs, "jobs", "j", 4, "Maximum concurrent renders")
}

// renderBatch renders paths with at most limit renders in flight.
func renderBatch(ctx context.Context, engine *gochart.Engine, paths []string, dir string, limit int) error {
	eg, egCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}
	for _, path := range paths {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			spec, err := readSpec(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			tree := engine.Render(spec, nil)
			if tree.IsPlaceholder() {
				logger.Warn("placeholder rendered",
					zap.String("spec", path),
					zap.String("reason", tree.Placeholder.Reason))
			}
			dst := filepath.Join(dir, treeName(path))
			if err := writeTree(dst, tree); err != nil {
				return err
			}
			logger.Debug("tree written", zap.String("spec", path), zap.String("out", dst))
			return nil
		})
	}
	return eg.Wait()
}

func treeName(specPath string) string {
	base := filepath.Base(specPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".tree.json"
}

func writeTree(path string, tree *gochart.RenderTree) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	if err := writeJSON(f, tree); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
