package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/rhyrak/labgrid/internal/logger"
	"github.com/rhyrak/labgrid/pkg/model"
)

var ErrEmptyWeek = errors.New("no days to render")

type Options struct {
	// Start and End bound the X axis in fractional hours.
	Start float64
	End   float64
	// TickMinutes is the spacing of the X ticks and grid lines.
	TickMinutes int
	Title       string
	Width       vg.Length
	Height      vg.Length
	Rows        int
	Cols        int
}

func DefaultOptions() Options {
	return Options{
		Start:       8,
		End:         23,
		TickMinutes: 30,
		Title:       "Grilla de ocupación de laboratorios - Semana completa",
		Width:       18 * vg.Inch,
		Height:      12 * vg.Inch,
		Rows:        3,
		Cols:        2,
	}
}

// Panel is one day's subplot.
type Panel struct {
	Day    string
	Plot   *plot.Plot
	Legend bool
}

type Renderer struct {
	opts Options
	log  logger.Logger
}

func NewRenderer(opts Options, log logger.Logger) *Renderer {
	if log == nil {
		log = logger.NopLogger{}
	}
	def := DefaultOptions()
	if opts.TickMinutes <= 0 {
		opts.TickMinutes = def.TickMinutes
	}
	if opts.Rows <= 0 || opts.Cols <= 0 {
		opts.Rows, opts.Cols = def.Rows, def.Cols
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = def.Width, def.Height
	}
	return &Renderer{opts: opts, log: log}
}

// Ticks returns the X ticks from Start to End every TickMinutes, both ends included.
func (r *Renderer) Ticks() []plot.Tick {
	step := float64(r.opts.TickMinutes) / 60
	n := int(math.Round((r.opts.End - r.opts.Start) / step))
	ticks := make([]plot.Tick, 0, n+1)
	for i := 0; i <= n; i++ {
		v := r.opts.Start + float64(i)*step
		ticks = append(ticks, plot.Tick{Value: v, Label: model.FormatClock(v)})
	}
	return ticks
}

// Panels builds one subplot per day. Only the first carries the legend.
func (r *Renderer) Panels(week model.Week) ([]Panel, error) {
	if len(week) == 0 {
		return nil, ErrEmptyWeek
	}
	if len(week) > r.opts.Rows*r.opts.Cols {
		return nil, fmt.Errorf("%d days do not fit a %dx%d grid", len(week), r.opts.Rows, r.opts.Cols)
	}
	ticks := r.Ticks()
	panels := make([]Panel, 0, len(week))
	for i, day := range week {
		p, err := r.dayPlot(day, ticks, i == 0)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", day.Day, err)
		}
		panels = append(panels, Panel{Day: day.Day, Plot: p, Legend: i == 0})
	}
	return panels, nil
}

func (r *Renderer) dayPlot(day model.DayGrid, ticks []plot.Tick, legend bool) (*plot.Plot, error) {
	occ, err := newOccupancy(day.Schedule, r.opts.Start, r.opts.End)
	if err != nil {
		return nil, err
	}
	if occ.clipped > 0 || occ.dropped > 0 {
		r.log.Debugw("intervals clipped to window", map[string]any{
			"day":     day.Day,
			"clipped": occ.clipped,
			"dropped": occ.dropped,
		})
	}

	p := plot.New()
	p.Title.Text = day.Day
	p.X.Label.Text = "Hora"
	p.Y.Label.Text = "Laboratorio"

	grid := plotter.NewGrid()
	grid.Horizontal.Color = nil
	grid.Vertical.Color = color.Gray{Y: 160}
	grid.Vertical.Width = vg.Points(0.5)
	grid.Vertical.Dashes = nil
	p.Add(occ, grid)

	p.X.Min, p.X.Max = r.opts.Start, r.opts.End
	p.Y.Min, p.Y.Max = 0, float64(len(day.Schedule))
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	yticks := make([]plot.Tick, len(day.Schedule))
	for j, slots := range day.Schedule {
		yticks[j] = plot.Tick{Value: float64(j) + 0.5, Label: slots.Room.String()}
	}
	p.Y.Tick.Marker = plot.ConstantTicks(yticks)

	if legend {
		p.Legend.Add("Ocupado", swatch{occ.Occupied})
		p.Legend.Add("Libre", swatch{occ.Free})
		p.Legend.Top = true
	}
	return p, nil
}

// Render draws the week on a fresh canvas and writes it as PNG to path.
// Nothing is written when any day fails to build.
func (r *Renderer) Render(week model.Week, path string) error {
	panels, err := r.Panels(week)
	if err != nil {
		return err
	}

	plots := make([][]*plot.Plot, r.opts.Rows)
	for j := range plots {
		plots[j] = make([]*plot.Plot, r.opts.Cols)
	}
	for i, panel := range panels {
		plots[i/r.opts.Cols][i%r.opts.Cols] = panel.Plot
	}

	titleBand := vg.Points(40)
	canvas := NewCanvas(r.opts.Width, r.opts.Height)
	defer canvas.Close()

	tiles := draw.Tiles{
		Rows:      r.opts.Rows,
		Cols:      r.opts.Cols,
		PadTop:    titleBand,
		PadBottom: vg.Points(10),
		PadLeft:   vg.Points(10),
		PadRight:  vg.Points(10),
		PadX:      vg.Points(30),
		PadY:      vg.Points(30),
	}
	if err := canvas.DrawTiles(plots, tiles); err != nil {
		return err
	}

	sty := panels[0].Plot.Title.TextStyle
	sty.Font.Size = vg.Points(16)
	if err := canvas.DrawTitle(r.opts.Title, sty, vg.Points(10)); err != nil {
		return err
	}
	if err := canvas.Save(path); err != nil {
		return err
	}
	r.log.Infof("wrote %s (%d days)", path, len(panels))
	return nil
}
