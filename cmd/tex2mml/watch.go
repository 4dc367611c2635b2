package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/pgfjr/tex2mml"
)

// watchDelay coalesces the burst of events one save produces.
const watchDelay = 50 * time.Millisecond

func (a *app) watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Reconvert a formula file whenever it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			useColor := ShouldUseColor(a.noColor)
			opts := a.options()

			convert := func() {
				data, err := os.ReadFile(path)
				if err != nil {
					FormatError(a.stderr, err, useColor)
					return
				}
				input := string(data)
				out, err := tex2mml.Convert(input, !a.inline, opts...)
				if err != nil {
					FormatError(a.stderr, newConversionError(err, input, path), useColor)
					return
				}
				_, _ = fmt.Fprintln(a.stdout, out)
			}

			convert()
			return watchFile(cmd.Context(), path, a.logger(), convert)
		},
	}

	cmd.Flags().BoolVar(&a.inline, "inline", false, "Use inline layout instead of block")
	return cmd
}

// watchFile calls onChange after path is written or recreated, until ctx
// is cancelled. The parent directory is watched so editors that replace
// the file on save are still seen.
func watchFile(ctx context.Context, path string, logger *slog.Logger, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	logger.Debug("[WATCH] started", "file", target)

	timer := time.NewTimer(watchDelay)
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
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("[WATCH] change", "file", event.Name, "op", event.Op.String())
			timer.Reset(watchDelay)

		case <-timer.C:
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", path, err)
		}
	}
}
