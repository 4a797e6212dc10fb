// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"cogentcore.org/lines/base/errors"
	"cogentcore.org/lines/model"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newWatchCmd(o *options) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "watch <model>",
		Short: "Render a model to SVG each time it changes",
		Long: `Watch renders the model, then rerenders it each time the model file
is written, updating only what changed, until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = svgName(args[0])
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return o.watch(ctx, args[0], out, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output SVG file, - for standard output")
	return cmd
}

// watch renders modelFile to out and rerenders it on each change,
// until ctx is done. All chart updates happen on this goroutine.
// An out of "-" writes each rendering to stdout.
func (o *options) watch(ctx context.Context, modelFile, out string, stdout io.Writer) error {
	m, err := model.Open(modelFile)
	if err != nil {
		return err
	}
	ch, err := o.newChart(m)
	if err != nil {
		return err
	}
	if err := ch.save(out, stdout); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	// editors often replace files, so watch the directory
	if err := watcher.Add(filepath.Dir(modelFile)); err != nil {
		return err
	}
	name := filepath.Clean(modelFile)
	slog.Info("linemark: watching", "model", modelFile, "out", out)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != name || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			src, err := model.Open(modelFile)
			if errors.Log(err) != nil {
				continue
			}
			ch.update(src)
			errors.Log(ch.save(out, stdout))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("linemark: watch error", "err", err)
		}
	}
}
