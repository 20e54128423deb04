package csvio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rhyrak/labgrid/pkg/model"
)

var (
	ErrHeaderNotFound = errors.New("header row not found")
	ErrColumnNotFound = errors.New("column not found")
)

// ColumnNotFoundError names the keyword that matched no header cell.
type ColumnNotFoundError struct {
	Keyword string
	Header  []string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column %q not found in header %v", e.Keyword, e.Header)
}

func (e *ColumnNotFoundError) Is(target error) bool { return target == ErrColumnNotFound }

// Keywords are searched as lowercase substrings of header cells.
type Keywords struct {
	Room     string
	Start    string
	End      string
	Pavilion string
}

var DefaultKeywords = Keywords{Room: "aula", Start: "inicio", End: "fin", Pavilion: "pab"}

// Columns is a resolved column mapping for one file.
type Columns struct {
	Room     int
	Start    int
	End      int
	Pavilion int
}

// Max returns the highest index a row needs to reach.
func (c Columns) Max() int {
	return max(c.Room, c.Start, c.End, c.Pavilion)
}

// Extract picks the mapped cells out of a row. Rows too short to hold every column are rejected.
func (c Columns) Extract(row []string) (model.ScheduleRow, bool) {
	if len(row) <= c.Max() {
		return model.ScheduleRow{}, false
	}
	return model.ScheduleRow{
		Room:     strings.TrimSpace(row[c.Room]),
		Pavilion: strings.TrimSpace(row[c.Pavilion]),
		Start:    strings.TrimSpace(row[c.Start]),
		End:      strings.TrimSpace(row[c.End]),
	}, true
}

// FindHeader returns the index of the first row with a cell containing keyword.
func FindHeader(rows [][]string, keyword string) (int, error) {
	keyword = strings.ToLower(keyword)
	for i, row := range rows {
		for _, cell := range row {
			if strings.Contains(strings.ToLower(strings.TrimSpace(cell)), keyword) {
				return i, nil
			}
		}
	}
	return -1, ErrHeaderNotFound
}

// ResolveColumns maps every keyword to the first header cell containing it.
func ResolveColumns(header []string, kw Keywords) (Columns, error) {
	lower := make([]string, len(header))
	for i, h := range header {
		lower[i] = strings.ToLower(strings.TrimSpace(h))
	}
	find := func(keyword string) (int, error) {
		k := strings.ToLower(keyword)
		for i, h := range lower {
			if strings.Contains(h, k) {
				return i, nil
			}
		}
		return -1, &ColumnNotFoundError{Keyword: keyword, Header: header}
	}

	var cols Columns
	var err error
	if cols.Room, err = find(kw.Room); err != nil {
		return Columns{}, err
	}
	if cols.Start, err = find(kw.Start); err != nil {
		return Columns{}, err
	}
	if cols.End, err = find(kw.End); err != nil {
		return Columns{}, err
	}
	if cols.Pavilion, err = find(kw.Pavilion); err != nil {
		return Columns{}, err
	}
	return cols, nil
}
