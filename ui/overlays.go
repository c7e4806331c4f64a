package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// GameOverText is the overlay title.
const GameOverText = "Game Over!"

// ResetLabel is the overlay button label.
const ResetLabel = "Reset Game"

// GameOverLayout positions the overlay title and reset button.
type GameOverLayout struct {
	TitleY int32
	Button rl.Rectangle
}

// LayoutGameOver stacks the title above the button around the screen center.
func LayoutGameOver(t Theme, screenW, screenH int32) GameOverLayout {
	cx := float32(screenW) / 2
	cy := float32(screenH) / 2
	gap := float32(t.Padding) * 2

	return GameOverLayout{
		TitleY: int32(cy - gap/2 - float32(t.TitleFontSize)),
		Button: centerRect(cx, cy+gap/2+t.ButtonHeight/2, t.ButtonWidth, t.ButtonHeight),
	}
}

// GameOverOverlay dims the screen and offers a reset.
type GameOverOverlay struct {
	renderer *Renderer
}

// NewGameOverOverlay creates the overlay.
func NewGameOverOverlay(r *Renderer) *GameOverOverlay {
	return &GameOverOverlay{renderer: r}
}

// Draw renders the overlay and reports whether the reset button was activated.
func (o *GameOverOverlay) Draw(screenW, screenH int32) bool {
	r := o.renderer
	t := r.Theme
	layout := LayoutGameOver(t, screenW, screenH)

	r.DrawScrim(screenW, screenH)
	r.DrawCenteredText(GameOverText, screenW/2, layout.TitleY, t.TitleFontSize, t.Text)
	return r.Button(layout.Button, ResetLabel)
}
