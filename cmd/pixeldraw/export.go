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
	"image"
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/disintegration/imaging"
)

type exportCmd struct {
	ImageOutput

	Scale int `help:"Size of one grid cell in output pixels" default:"1"`
}

func (c *exportCmd) Validate(kctx *kong.Context) error {
	if err := c.ImageOutput.Validate(kctx); err != nil {
		return err
	}
	if c.Scale < 1 {
		return errors.New("--scale must be at least 1")
	}
	return nil
}

func (c *exportCmd) Run(logger *slog.Logger) error {
	s, err := c.load(logger)
	if err != nil {
		return err
	}

	var img image.Image = s.grid
	if c.Scale > 1 {
		img = imaging.Resize(s.grid, s.grid.Width()*c.Scale, s.grid.Height()*c.Scale, imaging.NearestNeighbor)
	}
	if err := c.write(img); err != nil {
		return err
	}
	logger.Info("grid exported",
		"out", c.Out,
		"format", c.Format,
		"size", img.Bounds().Size())
	return nil
}
