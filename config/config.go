// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// MinGridSize is the smallest grid that still fits the starting snake,
// which occupies row 5 from column 3 to column 5.
const MinGridSize = 6

// Config holds all game configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Game      GameConfig      `yaml:"game"`
	Board     BoardConfig     `yaml:"board"`
	HUD       HUDConfig       `yaml:"hud"`
	Particles ParticlesConfig `yaml:"particles"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// GameConfig holds the rules of the board and the tick cadence.
type GameConfig struct {
	GridSize     int `yaml:"grid_size"`      // Cells per side
	TickPeriodMS int `yaml:"tick_period_ms"` // Milliseconds between snake steps
	MaxCatchUp   int `yaml:"max_catch_up"`   // Max steps fired in one frame (0 = unbounded)
}

// BoardConfig holds board colors and cell geometry. Colors are "#RRGGBB"
// or "#RRGGBBAA".
type BoardConfig struct {
	CellInset        float64 `yaml:"cell_inset"`
	BackgroundTop    string  `yaml:"background_top"`
	BackgroundBottom string  `yaml:"background_bottom"`
	BoardTop         string  `yaml:"board_top"`
	BoardBottom      string  `yaml:"board_bottom"`
	Snake            string  `yaml:"snake"`
	Food             string  `yaml:"food"`
	Overlay          string  `yaml:"overlay"`
	Text             string  `yaml:"text"`
}

// HUDConfig holds score text and game-over overlay sizes.
type HUDConfig struct {
	Height           int `yaml:"height"`
	ScoreFontSize    int `yaml:"score_font_size"`
	GameOverFontSize int `yaml:"game_over_font_size"`
	ButtonWidth      int `yaml:"button_width"`
	ButtonHeight     int `yaml:"button_height"`
	ButtonFontSize   int `yaml:"button_font_size"`
}

// ParticlesConfig holds effect particle parameters.
type ParticlesConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Max        int     `yaml:"max"`
	FoodBurst  int     `yaml:"food_burst"`
	CrashBurst int     `yaml:"crash_burst"`
	Lifetime   float64 `yaml:"lifetime"` // Seconds
	Speed      float64 `yaml:"speed"`    // Cells per second
	Drag       float64 `yaml:"drag"`     // Velocity decay per second
	Size       float64 `yaml:"size"`     // Fraction of a cell
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfWindow    int `yaml:"perf_window"`
	LogEveryTicks int `yaml:"log_every_ticks"`
}

// Palette holds the parsed board colors.
type Palette struct {
	BackgroundTop    color.RGBA
	BackgroundBottom color.RGBA
	BoardTop         color.RGBA
	BoardBottom      color.RGBA
	Snake            color.RGBA
	Food             color.RGBA
	Overlay          color.RGBA
	Text             color.RGBA
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	TickPeriod time.Duration // Game.TickPeriodMS as a duration
	Palette    Palette
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports every setting the game cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Game.GridSize < MinGridSize {
		errs = append(errs, fmt.Errorf("game.grid_size %d is below the minimum of %d", c.Game.GridSize, MinGridSize))
	}
	if c.Game.TickPeriodMS <= 0 {
		errs = append(errs, fmt.Errorf("game.tick_period_ms must be positive, got %d", c.Game.TickPeriodMS))
	}
	if c.Game.MaxCatchUp < 0 {
		errs = append(errs, fmt.Errorf("game.max_catch_up must not be negative, got %d", c.Game.MaxCatchUp))
	}
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.Board.CellInset < 0 {
		errs = append(errs, fmt.Errorf("board.cell_inset must not be negative, got %g", c.Board.CellInset))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() error {
	c.Derived.TickPeriod = time.Duration(c.Game.TickPeriodMS) * time.Millisecond

	colors := []struct {
		key string
		src string
		dst *color.RGBA
	}{
		{"board.background_top", c.Board.BackgroundTop, &c.Derived.Palette.BackgroundTop},
		{"board.background_bottom", c.Board.BackgroundBottom, &c.Derived.Palette.BackgroundBottom},
		{"board.board_top", c.Board.BoardTop, &c.Derived.Palette.BoardTop},
		{"board.board_bottom", c.Board.BoardBottom, &c.Derived.Palette.BoardBottom},
		{"board.snake", c.Board.Snake, &c.Derived.Palette.Snake},
		{"board.food", c.Board.Food, &c.Derived.Palette.Food},
		{"board.overlay", c.Board.Overlay, &c.Derived.Palette.Overlay},
		{"board.text", c.Board.Text, &c.Derived.Palette.Text},
	}
	for _, col := range colors {
		rgba, err := ParseColor(col.src)
		if err != nil {
			return fmt.Errorf("%s: %w", col.key, err)
		}
		*col.dst = rgba
	}
	return nil
}

// ParseColor parses "#RRGGBB" or "#RRGGBBAA". Alpha defaults to 255.
func ParseColor(s string) (color.RGBA, error) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return color.RGBA{}, fmt.Errorf("color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
