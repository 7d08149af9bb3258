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
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"golang.org/x/image/bmp"
	"golang.org/x/term"

	"seehuhn.de/go/pixelgrid"
	"seehuhn.de/go/pixelgrid/shape"
)

const pipeName = "-"

// ImageOutput holds the flags shared by all commands which write an image.
type ImageOutput struct {
	Script string `arg:"" help:"Drawing script (JSON), or - for stdin" default:"-"`
	Out    string `help:"Output file, or - for stdout" short:"o" default:"-"`
	Format string `help:"Image format (png or bmp); derived from the output file name if empty"`
}

func (o *ImageOutput) Validate(kctx *kong.Context) error {
	if o.Script == pipeName && term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("`-` should be used with a pipe for stdin")
	}
	if o.Out == pipeName && term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("`-` should be used with a pipe for stdout")
	}
	switch strings.ToLower(o.Format) {
	case "png", "bmp":
		o.Format = strings.ToLower(o.Format)
	case "":
		if strings.ToLower(filepath.Ext(o.Out)) == ".bmp" {
			o.Format = "bmp"
		} else {
			o.Format = "png"
		}
	default:
		return fmt.Errorf("unsupported image format %q", o.Format)
	}
	return nil
}

// session is a decoded script with the grid, camera and palette it
// describes, after all shapes have been drawn.
type session struct {
	grid    *pixelgrid.Grid
	camera  *pixelgrid.Camera
	palette pixelgrid.Palette
}

// load reads and runs the drawing script.
func (o *ImageOutput) load(logger *slog.Logger) (*session, error) {
	var r io.Reader = os.Stdin
	if o.Script != pipeName {
		f, err := os.Open(o.Script)
		if err != nil {
			return nil, fmt.Errorf("could not open script: %w", err)
		}
		defer f.Close()
		r = f
	}

	script, err := shape.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", o.Script, err)
	}
	grid, err := script.NewGrid()
	if err != nil {
		return nil, err
	}
	cam, err := script.NewCamera(grid)
	if err != nil {
		return nil, err
	}

	shape.DrawAll(grid, script.Shapes(cam))
	logger.Info("script loaded",
		"script", o.Script,
		"grid", script.Grid,
		"shapes", script.Len(),
		"plotted", grid.Plotted())

	return &session{grid: grid, camera: cam, palette: script.NewPalette()}, nil
}

// write encodes img to the output file.
func (o *ImageOutput) write(img image.Image) (err error) {
	var w io.Writer = os.Stdout
	if o.Out != pipeName {
		f, createErr := os.Create(o.Out)
		if createErr != nil {
			return fmt.Errorf("could not create output file %q: %w", o.Out, createErr)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("could not close output file %q: %w", o.Out, closeErr)
			}
		}()
		w = f
	}

	switch o.Format {
	case "bmp":
		err = bmp.Encode(w, img)
	default:
		err = png.Encode(w, img)
	}
	if err != nil {
		return fmt.Errorf("could not encode %s: %w", o.Format, err)
	}
	return nil
}
