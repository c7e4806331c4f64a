package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the given theme.
func NewRenderer(theme Theme) *Renderer {
	return &Renderer{Theme: theme}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawCenteredText draws text horizontally centered on cx.
func (r *Renderer) DrawCenteredText(text string, cx, y, fontSize int32, color rl.Color) {
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, cx-w/2, y, fontSize, color)
}

// DrawScrim covers the whole screen with the overlay color.
func (r *Renderer) DrawScrim(screenW, screenH int32) {
	rl.DrawRectangle(0, 0, screenW, screenH, r.Theme.Overlay)
}

// Button draws a raygui button with the label in the theme's font size and
// reports whether it was activated this frame.
func (r *Renderer) Button(bounds rl.Rectangle, label string) bool {
	pressed := gui.Button(bounds, "")
	size := r.Theme.ButtonFontSize
	w := rl.MeasureText(label, size)
	rl.DrawText(label,
		int32(bounds.X+bounds.Width/2)-w/2,
		int32(bounds.Y+bounds.Height/2)-size/2,
		size, rl.DarkGray)
	return pressed
}

// centerRect returns a w x h rectangle centered on (cx, cy).
func centerRect(cx, cy, w, h float32) rl.Rectangle {
	return rl.Rectangle{X: cx - w/2, Y: cy - h/2, Width: w, Height: h}
}
