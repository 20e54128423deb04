package csvio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhyrak/labgrid/pkg/model"
)

func exportWeek() model.Week {
	lunes := model.NewRoomSchedule([]model.RoomID{1103, 1104})
	lunes.Add(1104, model.Interval{Start: "10:00", End: "12:00"})
	lunes.Add(1103, model.Interval{Start: "08:00", End: "08:45"})
	return model.Week{{Day: "Lunes", Schedule: lunes}}
}

func TestExportIntervalsString(t *testing.T) {
	out, err := ExportIntervalsString(exportWeek())
	require.NoError(t, err)
	assert.Equal(t, "day,room,start,end,duration_minutes\n"+
		"Lunes,1103,08:00,08:45,45\n"+
		"Lunes,1104,10:00,12:00,120\n", out)
}

func TestExportIntervals(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "intervalos.csv")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer than the export\n\n\n\n\n\n\n"), 0o644))

	require.NoError(t, ExportIntervals(exportWeek(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want, err := ExportIntervalsString(exportWeek())
	require.NoError(t, err)
	assert.Equal(t, want, string(data))
}
