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

// Command pixeldraw draws a script of shapes onto a pixel grid and writes
// either a rendered screen frame or the grid cells themselves as an image.
package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"seehuhn.de/go/pixelgrid"
)

type cli struct {
	Verbose bool `help:"Log details of every frame" short:"v"`

	Render renderCmd `cmd:"" help:"Render the screen view of a drawing script"`
	Export exportCmd `cmd:"" help:"Write the grid cells of a drawing script as an image"`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("pixeldraw"),
		kong.Description("Draw lines, circles, rectangles and fills on a pixel grid."),
		kong.UsageOnError())

	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	if c.Verbose {
		pixelgrid.SetLogger(logger)
	}

	err := kctx.Run(logger)
	kctx.FatalIfErrorf(err)
}
