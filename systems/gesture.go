package systems

import "github.com/pthm-cable/snake/components"

// Interpret maps a drag vector to a cardinal direction. The dominant axis
// wins; ties go to the vertical axis, and a zero vector reads as Up.
// There is no deadzone, so small diagonal drags can flip direction.
func Interpret(dx, dy float32) components.Direction {
	if absf(dx) > absf(dy) {
		if dx > 0 {
			return components.Right
		}
		return components.Left
	}
	if dy > 0 {
		return components.Down
	}
	return components.Up
}

// DragTracker turns pointer samples into directions. The drag vector is
// measured from the press point, not from the previous sample.
type DragTracker struct {
	startX, startY float32
	lastX, lastY   float32
	active         bool
}

// Press starts a drag at (x, y).
func (d *DragTracker) Press(x, y float32) {
	d.startX, d.startY = x, y
	d.lastX, d.lastY = x, y
	d.active = true
}

// Move samples the pointer while pressed. It reports a direction only when
// the pointer actually moved since the last sample.
func (d *DragTracker) Move(x, y float32) (components.Direction, bool) {
	if !d.active || (x == d.lastX && y == d.lastY) {
		return components.Up, false
	}
	d.lastX, d.lastY = x, y
	return Interpret(x-d.startX, y-d.startY), true
}

// Release ends the drag.
func (d *DragTracker) Release() {
	d.active = false
}

// Active reports whether a drag is in progress.
func (d *DragTracker) Active() bool {
	return d.active
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
