package renderer

import rl "github.com/gen2brain/raylib-go/raylib"

// BackgroundRenderer fills the screen with a vertical gradient.
type BackgroundRenderer struct {
	top, bottom rl.Color
}

// NewBackgroundRenderer creates a new background renderer.
func NewBackgroundRenderer(top, bottom rl.Color) *BackgroundRenderer {
	return &BackgroundRenderer{top: top, bottom: bottom}
}

// Draw renders the gradient over the whole screen.
func (b *BackgroundRenderer) Draw(screenW, screenH int32) {
	rl.DrawRectangleGradientV(0, 0, screenW, screenH, b.top, b.bottom)
}
