package ui

import (
	"fmt"
	"sort"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the score line.
type HUDData struct {
	Score       int
	Best        int
	ScreenWidth int32
	HUDHeight   int32
}

// HUD renders the score above the board.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD(r *Renderer) *HUD {
	return &HUD{renderer: r}
}

// ScoreText formats the score line.
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	t := h.renderer.Theme
	y := (data.HUDHeight - t.ScoreFontSize) / 2
	h.renderer.DrawCenteredText(ScoreText(data.Score), data.ScreenWidth/2, y, t.ScoreFontSize, t.Text)

	if data.Best > 0 {
		best := fmt.Sprintf("Best: %d", data.Best)
		w := rl.MeasureText(best, t.FontSize)
		rl.DrawText(best, data.ScreenWidth-w-t.Padding, y, t.FontSize, t.LabelColor)
	}
}

// PerfPanelData holds frame timing for display.
type PerfPanelData struct {
	PhaseAvg map[string]time.Duration
	Total    time.Duration
	FPS      float64
	Tick     int
}

// PerfPanel renders the frame phase breakdown.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
	visible  bool
}

// NewPerfPanel creates a hidden performance panel.
func NewPerfPanel(r *Renderer, x, y int32) *PerfPanel {
	return &PerfPanel{renderer: r, x: x, y: y}
}

// Toggle switches panel visibility.
func (p *PerfPanel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// IsVisible returns whether the panel is shown.
func (p *PerfPanel) IsVisible() bool {
	return p.visible
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(data PerfPanelData) {
	if !p.visible {
		return
	}
	r := p.renderer
	t := r.Theme

	names := make([]string, 0, len(data.PhaseAvg))
	for name := range data.PhaseAvg {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return data.PhaseAvg[names[i]] > data.PhaseAvg[names[j]]
	})

	height := t.Padding*2 + t.LineHeight*int32(len(names)+2)
	r.DrawPanel(p.x, p.y, 200, height)

	x := p.x + t.Padding
	y := p.y + t.Padding
	rl.DrawText(fmt.Sprintf("FPS %.0f  tick %d", data.FPS, data.Tick), x, y, t.FontSize, t.Text)
	y += t.LineHeight
	rl.DrawText(fmt.Sprintf("frame %s", data.Total.Round(time.Microsecond)), x, y, t.FontSize, rl.Yellow)
	y += t.LineHeight

	for _, name := range names {
		avg := data.PhaseAvg[name]
		pct := 0.0
		if data.Total > 0 {
			pct = float64(avg) / float64(data.Total) * 100
		}

		color := t.LabelColor
		if pct > 50 {
			color = t.Hot
		} else if pct > 25 {
			color = t.Warn
		}

		rl.DrawText(fmt.Sprintf("%-10s %6s %5.1f%%", name, avg.Round(time.Microsecond), pct), x, y, t.FontSize, color)
		y += t.LineHeight
	}
}
