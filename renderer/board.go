// Package renderer draws the screen background, the board and its contents.
package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/snake/camera"
	"github.com/pthm-cable/snake/components"
	"github.com/pthm-cable/snake/config"
	"github.com/pthm-cable/snake/systems"
)

// Colors holds the board palette in raylib form.
type Colors struct {
	BackgroundTop    rl.Color
	BackgroundBottom rl.Color
	BoardTop         rl.Color
	BoardBottom      rl.Color
	Snake            rl.Color
	Food             rl.Color
}

// ColorsFromPalette converts the parsed config palette.
func ColorsFromPalette(p config.Palette) Colors {
	return Colors{
		BackgroundTop:    toColor(p.BackgroundTop),
		BackgroundBottom: toColor(p.BackgroundBottom),
		BoardTop:         toColor(p.BoardTop),
		BoardBottom:      toColor(p.BoardBottom),
		Snake:            toColor(p.Snake),
		Food:             toColor(p.Food),
	}
}

func toColor(c color.RGBA) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// BoardRenderer draws the board, the snake and the food.
type BoardRenderer struct {
	colors Colors
	inset  float32
}

// NewBoardRenderer creates a board renderer. inset is the gap in pixels
// left on the right and bottom of every cell.
func NewBoardRenderer(colors Colors, inset float32) *BoardRenderer {
	return &BoardRenderer{colors: colors, inset: inset}
}

// Draw renders the board gradient, then the food, then the snake on top.
func (b *BoardRenderer) Draw(cam *camera.Camera, s systems.State) {
	board := cam.Board()
	rl.DrawRectangleGradientV(
		int32(board.X), int32(board.Y), int32(board.W), int32(board.H),
		b.colors.BoardTop, b.colors.BoardBottom,
	)

	b.drawCell(cam, s.Food, b.colors.Food)
	for _, seg := range s.Snake {
		b.drawCell(cam, seg, b.colors.Snake)
	}
}

func (b *BoardRenderer) drawCell(cam *camera.Camera, c components.Cell, col rl.Color) {
	r := cam.CellRect(c, b.inset)
	rl.DrawRectangleRec(rl.Rectangle{X: r.X, Y: r.Y, Width: r.W, Height: r.H}, col)
}
