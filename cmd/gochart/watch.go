package main

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	gochart "github.com/VantageDataChat/GoChart"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const watchDebounce = 200 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch <spec.json>",
	Short: "Re-render a spec every time it changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		dst := outPath
		if dst == "" {
			dst = filepath.Join(filepath.Dir(args[0]), treeName(args[0]))
		}
		return watchSpec(ctx, engine, args[0], dst)
	},
}

func init() {
	watchCmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default: <spec>.tree.json next to the spec)")
}

// watchSpec renders once, then again after each burst of writes settles.
// The directory is watched so editors that replace the file are followed.
func watchSpec(ctx context.Context, engine *gochart.Engine, path, dst string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	rerender := func() {
		spec, err := readSpec(path)
		if err != nil {
			logger.Warn("spec unreadable", zap.String("spec", path), zap.Error(err))
			return
		}
		if err := writeTree(dst, engine.Render(spec, nil)); err != nil {
			logger.Warn("tree not written", zap.String("out", dst), zap.Error(err))
			return
		}
		logger.Info("rendered", zap.String("spec", path), zap.String("out", dst))
	}
	rerender()

	target := filepath.Clean(path)
	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				timer.Reset(watchDebounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", zap.Error(err))
		case <-timer.C:
			rerender()
		}
	}
}
