package csvio

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/rhyrak/labgrid/internal/logger"
	"github.com/rhyrak/labgrid/pkg/model"
)

// Loader reads one day's schedule file and keeps the rows of the whitelisted
// rooms in the configured pavilion.
type Loader struct {
	Rooms     []model.RoomID
	Pavilion  string
	Keywords  Keywords
	Delimiter rune
	Log       logger.Logger
}

// NewLoader creates a Loader with the default keywords and comma delimiter.
func NewLoader(rooms []model.RoomID, pavilion string, log logger.Logger) *Loader {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Loader{
		Rooms:     rooms,
		Pavilion:  pavilion,
		Keywords:  DefaultKeywords,
		Delimiter: ',',
		Log:       log,
	}
}

// Load reads path and groups the intervals of every whitelisted room.
func (l *Loader) Load(path string) (model.RoomSchedule, error) {
	rows, err := ReadRows(path, l.Delimiter)
	if err != nil {
		return nil, err
	}
	s, err := l.Parse(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	l.Log.Debugw("schedule loaded", map[string]any{"path": path, "intervals": s.Count()})
	return s, nil
}

// Parse groups already read rows. The header row is located first, then every
// following row is filtered; malformed rows are skipped.
func (l *Loader) Parse(rows [][]string) (model.RoomSchedule, error) {
	h, err := FindHeader(rows, l.Keywords.Room)
	if err != nil {
		return nil, err
	}
	cols, err := ResolveColumns(rows[h], l.Keywords)
	if err != nil {
		return nil, err
	}

	schedule := model.NewRoomSchedule(l.Rooms)
	var short, foreign, badRoom, unlisted int
	for _, row := range rows[h+1:] {
		r, ok := cols.Extract(row)
		if !ok {
			short++
			continue
		}
		if r.Pavilion != l.Pavilion {
			foreign++
			continue
		}
		id, err := strconv.Atoi(r.Room)
		if err != nil {
			badRoom++
			continue
		}
		if !slices.Contains(l.Rooms, model.RoomID(id)) {
			unlisted++
			continue
		}
		schedule.Add(model.RoomID(id), model.Interval{Start: r.Start, End: r.End})
	}

	if short+foreign+badRoom+unlisted > 0 {
		l.Log.Debugw("rows skipped", map[string]any{
			"short":    short,
			"pavilion": foreign,
			"room":     badRoom,
			"unlisted": unlisted,
		})
	}
	return schedule, nil
}
