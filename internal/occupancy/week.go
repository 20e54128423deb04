package occupancy

import (
	"fmt"

	"github.com/rhyrak/labgrid/pkg/model"
)

// DayLoader loads the room schedule stored at path.
type DayLoader interface {
	Load(path string) (model.RoomSchedule, error)
}

// LoadWeek loads one schedule per day, in order. The first error aborts the whole week.
func LoadWeek(l DayLoader, days []string, pathOf func(day string) string) (model.Week, error) {
	week := make(model.Week, 0, len(days))
	for _, day := range days {
		s, err := l.Load(pathOf(day))
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", day, err)
		}
		week = append(week, model.DayGrid{Day: day, Schedule: s})
	}
	return week, nil
}
