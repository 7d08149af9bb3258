// seehuhn.de/go/pixelgrid - a pixel grid drawing surface
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"

	"seehuhn.de/go/pixelgrid"
)

type renderCmd struct {
	ImageOutput

	NoGrid bool `help:"Do not draw separator lines between cells"`
	Watch  bool `help:"Render again whenever the script file changes"`
}

func (c *renderCmd) Validate(kctx *kong.Context) error {
	if err := c.ImageOutput.Validate(kctx); err != nil {
		return err
	}
	if c.Watch && (c.Script == pipeName || c.Out == pipeName) {
		return errors.New("--watch needs a script file and an output file")
	}
	return nil
}

func (c *renderCmd) Run(logger *slog.Logger) error {
	r := pixelgrid.NewRenderer()
	if err := c.renderOnce(r, logger); err != nil {
		return err
	}
	if !c.Watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return watchFile(ctx, c.Script, logger, func() {
		err := c.renderOnce(r, logger)
		if err != nil {
			// keep watching, the next edit may fix the script
			logger.Error("render failed", "script", c.Script, "error", err)
		}
	})
}

func (c *renderCmd) renderOnce(r *pixelgrid.Renderer, logger *slog.Logger) error {
	s, err := c.load(logger)
	if err != nil {
		return err
	}

	screen := image.NewRGBA(image.Rectangle{Max: s.camera.Screen()})
	r.Render(screen, s.grid, s.camera, s.palette, !c.NoGrid)

	if err := c.write(screen); err != nil {
		return err
	}
	logger.Info("frame written",
		"out", c.Out,
		"format", c.Format,
		"size", screen.Bounds().Size())
	return nil
}

// watchFile calls fn whenever the file at name is written, until ctx is
// cancelled.  The parent directory is watched, so that editors which
// replace the file are handled.
func watchFile(ctx context.Context, name string, logger *slog.Logger, fn func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not create watcher: %w", err)
	}
	defer w.Close()

	abs, err := filepath.Abs(name)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("could not watch %s: %w", name, err)
	}
	logger.Info("watching for changes", "script", name)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Debug("script changed", "script", name, "op", ev.Op.String())
			fn()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}
