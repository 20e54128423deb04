package occupancy

import (
	"fmt"
	"sort"

	"github.com/rhyrak/labgrid/pkg/model"
)

type parsed struct {
	model.Interval
	from, to float64
}

// Validate checks the week for malformed, reversed, out of window and
// overlapping intervals. Returns false and a report for suspicious weeks.
func Validate(week model.Week, start, end float64) (bool, string) {
	var message string
	var malformed, reversed, outside, overlapping string

	for _, day := range week {
		for _, slots := range day.Schedule {
			var ok []parsed
			for _, in := range slots.Intervals {
				from, err0 := model.ParseClock(in.Start)
				to, err1 := model.ParseClock(in.End)
				if err0 != nil || err1 != nil {
					malformed += fmt.Sprintf("    %s %s %s-%s\n", day.Day, slots.Room, in.Start, in.End)
					continue
				}
				if to <= from {
					reversed += fmt.Sprintf("    %s %s %s-%s\n", day.Day, slots.Room, in.Start, in.End)
					continue
				}
				if from < start || to > end {
					outside += fmt.Sprintf("    %s %s %s-%s\n", day.Day, slots.Room, in.Start, in.End)
				}
				ok = append(ok, parsed{in, from, to})
			}
			sort.SliceStable(ok, func(i, j int) bool { return ok[i].from < ok[j].from })
			// latest tracks the interval reaching furthest so far
			for i, latest := 1, 0; i < len(ok); i++ {
				if ok[i].from < ok[latest].to {
					overlapping += fmt.Sprintf("    %s %s %s-%s overlaps %s-%s\n",
						day.Day, slots.Room, ok[i].Start, ok[i].End, ok[latest].Start, ok[latest].End)
				}
				if ok[i].to > ok[latest].to {
					latest = i
				}
			}
		}
	}

	valid := true
	check := func(name, found, what string) {
		if found == "" {
			message += "[  OK]: " + name + "\n"
			return
		}
		valid = false
		message += "[FAIL]: " + name + "\n- " + what + ":\n" + found
	}
	check("Time format check.", malformed, "Malformed time strings")
	check("Interval order check.", reversed, "Intervals ending before they start")
	check("Time window check.", outside, fmt.Sprintf("Intervals outside %s-%s", model.FormatClock(start), model.FormatClock(end)))
	check("Room overlap check.", overlapping, "Overlapping intervals")

	return valid, message
}
