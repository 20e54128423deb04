package model

import "math"

type DayGrid struct {
	Day      string
	Schedule RoomSchedule
}

// Week holds one DayGrid per weekday in display order.
type Week []DayGrid

type IntervalCSVRow struct {
	Day             string `csv:"day"`
	Room            int    `csv:"room"`
	Start           string `csv:"start"`
	End             string `csv:"end"`
	DurationMinutes int    `csv:"duration_minutes"`
}

// Rows flattens the week into export rows. Intervals with unparsable times get a zero duration.
func (w Week) Rows() []*IntervalCSVRow {
	var rows []*IntervalCSVRow
	for _, day := range w {
		for _, slots := range day.Schedule {
			for _, in := range slots.Intervals {
				var minutes int
				start, err0 := ParseClock(in.Start)
				end, err1 := ParseClock(in.End)
				if err0 == nil && err1 == nil {
					minutes = int(math.Round((end - start) * 60))
				}
				rows = append(rows, &IntervalCSVRow{
					Day:             day.Day,
					Room:            int(slots.Room),
					Start:           in.Start,
					End:             in.End,
					DurationMinutes: minutes,
				})
			}
		}
	}
	return rows
}
