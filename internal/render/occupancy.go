package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/rhyrak/labgrid/pkg/model"
)

var (
	// OccupiedColor fills the intervals taken by a class.
	OccupiedColor color.Color = color.NRGBA{R: 255, A: 255}
	// FreeColor is the translucent background of every room row.
	FreeColor color.Color = color.NRGBA{G: 128, A: 77}
)

type span struct{ from, to float64 }

// occupancy draws one row per room: the free background across the window,
// the occupied spans on top and a separator line at every row boundary.
type occupancy struct {
	rows       [][]span
	start, end float64
	clipped    int
	dropped    int

	Occupied  color.Color
	Free      color.Color
	Separator draw.LineStyle
}

// newOccupancy converts the schedule into drawable spans. A span ending before
// it starts is drawn between its ends. Spans are clipped to [start, end];
// empty spans and spans entirely outside it are dropped.
func newOccupancy(s model.RoomSchedule, start, end float64) (*occupancy, error) {
	o := &occupancy{
		rows:     make([][]span, len(s)),
		start:    start,
		end:      end,
		Occupied: OccupiedColor,
		Free:     FreeColor,
		Separator: draw.LineStyle{
			Color: color.Black,
			Width: vg.Points(0.8),
		},
	}
	for i, slots := range s {
		for _, in := range slots.Intervals {
			from, err := model.ParseClock(in.Start)
			if err != nil {
				return nil, fmt.Errorf("room %s: %w", slots.Room, err)
			}
			to, err := model.ParseClock(in.End)
			if err != nil {
				return nil, fmt.Errorf("room %s: %w", slots.Room, err)
			}
			if to < from {
				from, to = to, from
			}
			if from < start || to > end {
				o.clipped++
			}
			from, to = max(from, start), min(to, end)
			if to <= from {
				o.dropped++
				continue
			}
			o.rows[i] = append(o.rows[i], span{from, to})
		}
	}
	return o, nil
}

// Plot implements the plot.Plotter interface.
func (o *occupancy) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	fill := func(x0, x1, y float64, col color.Color) {
		pts := []vg.Point{
			{X: trX(x0), Y: trY(y)},
			{X: trX(x0), Y: trY(y + 1)},
			{X: trX(x1), Y: trY(y + 1)},
			{X: trX(x1), Y: trY(y)},
		}
		c.FillPolygon(col, c.ClipPolygonXY(pts))
	}
	for j, spans := range o.rows {
		y := float64(j)
		fill(o.start, o.end, y, o.Free)
		for _, s := range spans {
			fill(s.from, s.to, y, o.Occupied)
		}
	}
	for j := 0; j <= len(o.rows); j++ {
		y := trY(float64(j))
		c.StrokeLine2(o.Separator, trX(o.start), y, trX(o.end), y)
	}
}

// swatch is a legend thumbnail filled with a single color.
type swatch struct{ color color.Color }

// Thumbnail implements the plot.Thumbnailer interface.
func (s swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(s.color, c.ClipPolygonY(pts))
}
