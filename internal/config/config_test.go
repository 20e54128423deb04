package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhyrak/labgrid/pkg/model"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, []string{"Lunes", "Martes", "Miercoles", "Jueves", "Viernes", "Sabado"}, cfg.Days)
	assert.Len(t, cfg.Rooms, 10)
	assert.Equal(t, 1103, cfg.Rooms[0])
	assert.Equal(t, 1112, cfg.Rooms[9])
	assert.Equal(t, "0", cfg.Pavilion)
	assert.Equal(t, Keywords{Room: "aula", Start: "inicio", End: "fin", Pavilion: "pab"}, cfg.Keywords)
	assert.Equal(t, Window{Start: 8, End: 23, TickMinutes: 30}, cfg.Window)
	assert.Equal(t, "figures/grafico.png", cfg.Output)
	assert.Equal(t, ',', cfg.DelimiterRune())
	assert.Equal(t, filepath.Join("data", "Lunes.csv"), cfg.DayPath("Lunes"))
	assert.Empty(t, cfg.Export.CSV)
	assert.Empty(t, cfg.Export.XLSX)
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labgrid.yaml")
	data := `data_dir: "horarios"
days: ["Lunes", "Martes"]
rooms: [201, 202, 203]
pavilion: "2"
window:
  start: 7
  end: 22
output: "out/semana.png"
export:
  csv: "out/semana.csv"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	checks := []struct {
		name string
		got  any
		want any
	}{
		{"data_dir", cfg.DataDir, "horarios"},
		{"days", len(cfg.Days), 2},
		{"pavilion", cfg.Pavilion, "2"},
		{"window.start", cfg.Window.Start, 7.0},
		{"window.end", cfg.Window.End, 22.0},
		{"window.tick_minutes", cfg.Window.TickMinutes, 30},
		{"output", cfg.Output, "out/semana.png"},
		{"export.csv", cfg.Export.CSV, "out/semana.csv"},
		{"keywords.room", cfg.Keywords.Room, "aula"},
	}
	for _, c := range checks {
		assert.Equal(t, c.want, c.got, c.name)
	}
	assert.Equal(t, []model.RoomID{201, 202, 203}, cfg.RoomIDs())
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("LABGRID_PAVILION", "3")
	t.Setenv("LABGRID_WINDOW__START", "7")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "3", cfg.Pavilion)
	assert.Equal(t, 7.0, cfg.Window.Start)
	assert.Equal(t, 23.0, cfg.Window.End)
}

func TestLoadNestedEnvOverride(t *testing.T) {
	t.Setenv("LABGRID_EXPORT__CSV", "x.csv")
	t.Setenv("LABGRID_WINDOW__END", "20")
	t.Setenv("LABGRID_WINDOW__TICK_MINUTES", "15")
	t.Setenv("LABGRID_KEYWORDS__ROOM", "sala")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "x.csv", cfg.Export.CSV)
	assert.Equal(t, Window{Start: 8, End: 20, TickMinutes: 15}, cfg.Window)
	assert.Equal(t, "sala", cfg.Keywords.Room)
}

func TestLoadWindowBoundsDefaultSeparately(t *testing.T) {
	dir := t.TempDir()

	endOnly := filepath.Join(dir, "end.yaml")
	require.NoError(t, os.WriteFile(endOnly, []byte("window:\n  end: 20\n"), 0o644))
	cfg, err := Load(endOnly)
	require.NoError(t, err)
	assert.Equal(t, 8.0, cfg.Window.Start)
	assert.Equal(t, 20.0, cfg.Window.End)

	midnight := filepath.Join(dir, "midnight.yaml")
	require.NoError(t, os.WriteFile(midnight, []byte("window:\n  start: 0\n  end: 6\n"), 0o644))
	cfg, err = Load(midnight)
	require.NoError(t, err)
	assert.Equal(t, 0.0, cfg.Window.Start)
	assert.Equal(t, 6.0, cfg.Window.End)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "labgrid.toml"))
	assert.ErrorContains(t, err, "unsupported config format")

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"window": {"start": 20, "end": 10}}`), 0o644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "window end")
}

func TestValidate(t *testing.T) {
	cfg := NewDefaultConfiguration()
	require.NoError(t, cfg.Validate())

	dup := *cfg
	dup.Rooms = []int{1103, 1103}
	assert.ErrorContains(t, dup.Validate(), "duplicate room")

	delim := *cfg
	delim.Delimiter = ";;"
	assert.ErrorContains(t, delim.Validate(), "delimiter")

	days := *cfg
	days.Days = []string{"a", "b", "c", "d", "e", "f", "g"}
	assert.ErrorContains(t, days.Validate(), "at most 6 days")
}
