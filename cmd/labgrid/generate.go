package main

import (
	"fmt"
	"io"

	"gonum.org/v1/plot/vg"

	"github.com/rhyrak/labgrid/internal/config"
	"github.com/rhyrak/labgrid/internal/csvio"
	"github.com/rhyrak/labgrid/internal/logger"
	"github.com/rhyrak/labgrid/internal/occupancy"
	"github.com/rhyrak/labgrid/internal/render"
	"github.com/rhyrak/labgrid/internal/xlsxio"
)

// stdoutExport as an export path writes the interval CSV to the command output.
const stdoutExport = "-"

// generate loads every day, renders the grid and writes the configured exports.
func generate(cfg *config.Config, log logger.Logger, out io.Writer) error {
	loader := csvio.NewLoader(cfg.RoomIDs(), cfg.Pavilion, log)
	loader.Delimiter = cfg.DelimiterRune()
	loader.Keywords = csvio.Keywords{
		Room:     cfg.Keywords.Room,
		Start:    cfg.Keywords.Start,
		End:      cfg.Keywords.End,
		Pavilion: cfg.Keywords.Pavilion,
	}

	week, err := occupancy.LoadWeek(loader, cfg.Days, cfg.DayPath)
	if err != nil {
		return err
	}

	if valid, msg := occupancy.Validate(week, cfg.Window.Start, cfg.Window.End); !valid {
		log.Warnf("schedule checks failed:\n%s", msg)
	} else {
		log.Debugf("schedule checks:\n%s", msg)
	}

	r := render.NewRenderer(render.Options{
		Start:       cfg.Window.Start,
		End:         cfg.Window.End,
		TickMinutes: cfg.Window.TickMinutes,
		Title:       cfg.Title,
		Width:       vg.Length(cfg.WidthIn) * vg.Inch,
		Height:      vg.Length(cfg.HeightIn) * vg.Inch,
		Rows:        3,
		Cols:        2,
	}, log)
	if err := r.Render(week, cfg.Output); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	switch cfg.Export.CSV {
	case "":
	case stdoutExport:
		s, err := csvio.ExportIntervalsString(week)
		if err != nil {
			return fmt.Errorf("export csv: %w", err)
		}
		if _, err := io.WriteString(out, s); err != nil {
			return fmt.Errorf("export csv: %w", err)
		}
	default:
		if err := csvio.ExportIntervals(week, cfg.Export.CSV); err != nil {
			return fmt.Errorf("export csv: %w", err)
		}
		log.Infof("wrote %s", cfg.Export.CSV)
	}
	if cfg.Export.XLSX != "" {
		if err := xlsxio.ExportWorkbook(week, cfg.Window.Start, cfg.Window.End, cfg.Window.TickMinutes, cfg.Export.XLSX); err != nil {
			return fmt.Errorf("export xlsx: %w", err)
		}
		log.Infof("wrote %s", cfg.Export.XLSX)
	}
	return nil
}
