package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/rhyrak/labgrid/pkg/model"
)

// EnvPrefix selects the environment variables read as overrides,
// e.g. LABGRID_WINDOW__START=7.
const EnvPrefix = "LABGRID_"

type Config struct {
	DataDir   string   `json:"data_dir"`
	Extension string   `json:"extension"`
	Delimiter string   `json:"delimiter"`
	Days      []string `json:"days"`
	Rooms     []int    `json:"rooms"`
	Pavilion  string   `json:"pavilion"`
	Keywords  Keywords `json:"keywords"`
	Window    Window   `json:"window"`
	Output    string   `json:"output"`
	Title     string   `json:"title"`
	WidthIn   float64  `json:"width_in"`
	HeightIn  float64  `json:"height_in"`
	Export    Export   `json:"export"`
	LogLevel  string   `json:"log_level"`
}

// Keywords are matched as lowercase substrings of the header cells.
type Keywords struct {
	Room     string `json:"room"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Pavilion string `json:"pavilion"`
}

// Window is the displayed time range in fractional hours.
type Window struct {
	Start       float64 `json:"start"`
	End         float64 `json:"end"`
	TickMinutes int     `json:"tick_minutes"`
}

// DefaultWindow spans 08:00 to 23:00 with a tick every half hour.
var DefaultWindow = Window{Start: 8, End: 23, TickMinutes: 30}

// Export paths; an empty path disables the export and "-" writes the CSV to stdout.
type Export struct {
	CSV  string `json:"csv"`
	XLSX string `json:"xlsx"`
}

// NewDefaultConfiguration returns the configuration used when no file is given.
func NewDefaultConfiguration() *Config {
	c := &Config{}
	c.SetDefaults()
	return c
}

// Load reads the optional file at path, then applies environment overrides.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	// each bound falls back on its own, 0 is a valid start
	if !k.Exists("window.start") {
		cfg.Window.Start = DefaultWindow.Start
	}
	if !k.Exists("window.end") {
		cfg.Window.End = DefaultWindow.End
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults fills every unset field with the weekly lab grid defaults.
func (c *Config) SetDefaults() {
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if c.Extension == "" {
		c.Extension = ".csv"
	}
	if c.Delimiter == "" {
		c.Delimiter = ","
	}
	if len(c.Days) == 0 {
		c.Days = []string{"Lunes", "Martes", "Miercoles", "Jueves", "Viernes", "Sabado"}
	}
	if len(c.Rooms) == 0 {
		for r := 1103; r <= 1112; r++ {
			c.Rooms = append(c.Rooms, r)
		}
	}
	if c.Pavilion == "" {
		c.Pavilion = "0"
	}
	if c.Keywords.Room == "" {
		c.Keywords.Room = "aula"
	}
	if c.Keywords.Start == "" {
		c.Keywords.Start = "inicio"
	}
	if c.Keywords.End == "" {
		c.Keywords.End = "fin"
	}
	if c.Keywords.Pavilion == "" {
		c.Keywords.Pavilion = "pab"
	}
	if c.Window.End == 0 {
		c.Window.End = DefaultWindow.End
		if c.Window.Start == 0 {
			c.Window.Start = DefaultWindow.Start
		}
	}
	if c.Window.TickMinutes == 0 {
		c.Window.TickMinutes = DefaultWindow.TickMinutes
	}
	if c.Output == "" {
		c.Output = "figures/grafico.png"
	}
	if c.Title == "" {
		c.Title = "Grilla de ocupación de laboratorios - Semana completa"
	}
	if c.WidthIn == 0 {
		c.WidthIn = 18
	}
	if c.HeightIn == 0 {
		c.HeightIn = 12
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks the fields the pipeline cannot work without.
func (c Config) Validate() error {
	if len(c.Days) > 6 {
		return fmt.Errorf("at most 6 days fit the grid, got %d", len(c.Days))
	}
	if len([]rune(c.Delimiter)) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	if c.Window.End <= c.Window.Start {
		return fmt.Errorf("window end %v must be after start %v", c.Window.End, c.Window.Start)
	}
	if c.Window.TickMinutes < 0 {
		return fmt.Errorf("tick_minutes must be positive, got %d", c.Window.TickMinutes)
	}
	if c.WidthIn <= 0 || c.HeightIn <= 0 {
		return fmt.Errorf("figure size must be positive")
	}
	seen := make(map[int]bool, len(c.Rooms))
	for _, r := range c.Rooms {
		if seen[r] {
			return fmt.Errorf("duplicate room %d", r)
		}
		seen[r] = true
	}
	return nil
}

// RoomIDs returns the room whitelist in display order.
func (c Config) RoomIDs() []model.RoomID {
	ids := make([]model.RoomID, len(c.Rooms))
	for i, r := range c.Rooms {
		ids[i] = model.RoomID(r)
	}
	return ids
}

// DelimiterRune returns the field delimiter as a rune.
func (c Config) DelimiterRune() rune {
	return []rune(c.Delimiter)[0]
}

// DayPath returns the input file of the given day.
func (c Config) DayPath(day string) string {
	return filepath.Join(c.DataDir, day+c.Extension)
}
