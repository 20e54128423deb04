package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var ErrCanvasClosed = errors.New("canvas closed")

// Canvas owns the in-memory image a figure is drawn on. It must be closed
// once written.
type Canvas struct {
	img *vgimg.Canvas
	dc  draw.Canvas
}

// NewCanvas allocates a white image of the given size.
func NewCanvas(width, height vg.Length) *Canvas {
	img := vgimg.New(width, height)
	return &Canvas{img: img, dc: draw.New(img)}
}

// DrawTiles lays the plots out in a grid and draws them. Nil plots leave their tile empty.
func (c *Canvas) DrawTiles(plots [][]*plot.Plot, t draw.Tiles) error {
	if c.img == nil {
		return ErrCanvasClosed
	}
	if len(plots) != t.Rows {
		return fmt.Errorf("got %d plot rows for %d tile rows", len(plots), t.Rows)
	}
	for _, row := range plots {
		if len(row) != t.Cols {
			return fmt.Errorf("got %d plot columns for %d tile columns", len(row), t.Cols)
		}
	}
	canvases := plot.Align(plots, t, c.dc)
	for j := range plots {
		for i := range plots[j] {
			if plots[j][i] != nil {
				plots[j][i].Draw(canvases[j][i])
			}
		}
	}
	return nil
}

// DrawTitle writes txt centered at the top edge, offset down by pad.
func (c *Canvas) DrawTitle(txt string, sty text.Style, pad vg.Length) error {
	if c.img == nil {
		return ErrCanvasClosed
	}
	sty.XAlign = draw.XCenter
	sty.YAlign = draw.YTop
	pt := vg.Point{X: (c.dc.Min.X + c.dc.Max.X) / 2, Y: c.dc.Max.Y - pad}
	c.dc.FillText(sty, pt, txt)
	return nil
}

// WriteTo encodes the canvas as PNG.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	if c.img == nil {
		return 0, ErrCanvasClosed
	}
	png := vgimg.PngCanvas{Canvas: c.img}
	return png.WriteTo(w)
}

// Save writes the PNG to path, creating the parent directory and replacing
// any existing file.
func (c *Canvas) Save(path string) error {
	if c.img == nil {
		return ErrCanvasClosed
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// Close releases the image. Calling it again is a no-op.
func (c *Canvas) Close() error {
	c.img = nil
	c.dc = draw.Canvas{}
	return nil
}
