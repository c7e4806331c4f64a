package game

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput processes keyboard and pointer input.
func (g *Game) handleInput() {
	// Window resize propagation
	g.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeyF3) {
		g.perfPanel.Toggle()
	}

	g.handlePointer()
}

// handlePointer feeds the primary pointer into the drag tracker. Raylib
// reports the first touch point as the left mouse button.
func (g *Game) handlePointer() {
	pos := rl.GetMousePosition()

	switch {
	case rl.IsMouseButtonPressed(rl.MouseButtonLeft):
		g.pointerPressed(pos.X, pos.Y)
	case rl.IsMouseButtonReleased(rl.MouseButtonLeft):
		g.drag.Release()
	case rl.IsMouseButtonDown(rl.MouseButtonLeft):
		g.pointerMoved(pos.X, pos.Y)
	}
}

// pointerPressed starts a drag. Only presses on the board steer; the HUD
// band and the side margins are ignored.
func (g *Game) pointerPressed(x, y float32) {
	if g.state.GameOver {
		return
	}
	if _, ok := g.camera.ScreenToCell(x, y); !ok {
		return
	}
	g.drag.Press(x, y)
}

// pointerMoved steers by the offset from the press point.
func (g *Game) pointerMoved(x, y float32) {
	if dir, ok := g.drag.Move(x, y); ok {
		g.steer(dir)
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	g.resize(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
}

func (g *Game) resize(w, h float32) {
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h
	g.camera.Resize(w, h)
}

// frameTime returns the duration of the last frame.
func frameTime() time.Duration {
	return time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
}
