package xlsxio

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/rhyrak/labgrid/pkg/model"
)

const (
	occupiedColor = "#E74C3C"
	freeColor     = "#B7E1B5"
)

// Slots returns the start of every slot of step minutes within [start, end).
func Slots(start, end float64, stepMinutes int) []float64 {
	step := float64(stepMinutes) / 60
	var slots []float64
	for i := 0; ; i++ {
		s := start + float64(i)*step
		if s >= end-1e-9 {
			break
		}
		slots = append(slots, s)
	}
	return slots
}

// Occupied reports whether any interval covers part of the slot [from, to).
// Intervals with malformed times are ignored.
func Occupied(intervals []model.Interval, from, to float64) bool {
	for _, in := range intervals {
		start, err := model.ParseClock(in.Start)
		if err != nil {
			continue
		}
		end, err := model.ParseClock(in.End)
		if err != nil {
			continue
		}
		if start < to && end > from {
			return true
		}
	}
	return false
}

// ExportWorkbook writes one sheet per day: a header row of slot labels and
// one row per room with every slot styled occupied or free.
func ExportWorkbook(week model.Week, start, end float64, stepMinutes int, path string) error {
	if stepMinutes <= 0 {
		return fmt.Errorf("invalid slot size %d", stepMinutes)
	}
	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", TextRotation: 90},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	occupied, err := fillStyle(f, occupiedColor)
	if err != nil {
		return err
	}
	free, err := fillStyle(f, freeColor)
	if err != nil {
		return err
	}

	slots := Slots(start, end, stepMinutes)
	step := float64(stepMinutes) / 60
	for i, day := range week {
		idx, err := f.NewSheet(day.Day)
		if err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", day.Day, err)
		}
		if i == 0 {
			f.SetActiveSheet(idx)
		}
		if err := f.SetCellValue(day.Day, "A1", "Laboratorio"); err != nil {
			return err
		}
		for col, s := range slots {
			cell, err := excelize.CoordinatesToCellName(col+2, 1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(day.Day, cell, model.FormatClock(s)); err != nil {
				return err
			}
			if err := f.SetCellStyle(day.Day, cell, cell, header); err != nil {
				return err
			}
		}
		for row, rs := range day.Schedule {
			label, err := excelize.CoordinatesToCellName(1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(day.Day, label, int(rs.Room)); err != nil {
				return err
			}
			for col, s := range slots {
				cell, err := excelize.CoordinatesToCellName(col+2, row+2)
				if err != nil {
					return err
				}
				style := free
				if Occupied(rs.Intervals, s, math.Min(s+step, end)) {
					style = occupied
					if err := f.SetCellValue(day.Day, cell, "X"); err != nil {
						return err
					}
				}
				if err := f.SetCellStyle(day.Day, cell, cell, style); err != nil {
					return err
				}
			}
		}
		if len(slots) > 0 {
			last, err := excelize.ColumnNumberToName(len(slots) + 1)
			if err != nil {
				return err
			}
			if err := f.SetColWidth(day.Day, "B", last, 4); err != nil {
				return err
			}
		}
	}
	if len(week) > 0 {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

func fillStyle(f *excelize.File, color string) (int, error) {
	id, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "FFFFFF", Style: 1},
			{Type: "right", Color: "FFFFFF", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create fill style: %w", err)
	}
	return id, nil
}
