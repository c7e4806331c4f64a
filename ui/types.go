// Package ui draws the score line, the game-over overlay and the debug
// perf panel on top of the board.
package ui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/snake/config"
)

// Theme holds UI styling constants.
type Theme struct {
	Text           rl.Color
	Overlay        rl.Color
	PanelBg        rl.Color
	PanelBorder    rl.Color
	LabelColor     rl.Color
	Warn           rl.Color
	Hot            rl.Color
	Padding        int32
	LineHeight     int32
	FontSize       int32
	ScoreFontSize  int32
	TitleFontSize  int32
	ButtonFontSize int32
	ButtonWidth    float32
	ButtonHeight   float32
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		Text:           rl.White,
		Overlay:        rl.Color{R: 0, G: 0, B: 0, A: 179},
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 240},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		LabelColor:     rl.LightGray,
		Warn:           rl.Orange,
		Hot:            rl.Red,
		Padding:        10,
		LineHeight:     16,
		FontSize:       12,
		ScoreFontSize:  24,
		TitleFontSize:  36,
		ButtonFontSize: 18,
		ButtonWidth:    180,
		ButtonHeight:   44,
	}
}

// ThemeFromConfig overrides the defaults with configured colors and sizes.
func ThemeFromConfig(cfg *config.Config) Theme {
	t := DefaultTheme()
	t.Text = ToColor(cfg.Derived.Palette.Text)
	t.Overlay = ToColor(cfg.Derived.Palette.Overlay)
	t.ScoreFontSize = int32(cfg.HUD.ScoreFontSize)
	t.TitleFontSize = int32(cfg.HUD.GameOverFontSize)
	t.ButtonFontSize = int32(cfg.HUD.ButtonFontSize)
	t.ButtonWidth = float32(cfg.HUD.ButtonWidth)
	t.ButtonHeight = float32(cfg.HUD.ButtonHeight)
	return t
}

// ToColor converts a parsed config color.
func ToColor(c color.RGBA) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
