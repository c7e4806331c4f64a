package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/snake/camera"
	"github.com/pthm-cable/snake/components"
	"github.com/pthm-cable/snake/systems"
)

// ParticleRenderer renders effect particles.
type ParticleRenderer struct {
	food  rl.Color
	crash rl.Color
}

// NewParticleRenderer creates a particle renderer. Food bursts use the food
// color; crash bursts are red.
func NewParticleRenderer(food rl.Color) *ParticleRenderer {
	return &ParticleRenderer{
		food:  food,
		crash: rl.Color{R: 255, G: 80, B: 60, A: 255},
	}
}

// Draw renders all live particles as fading circles.
func (r *ParticleRenderer) Draw(cam *camera.Camera, ps *systems.ParticleSystem) {
	ps.Each(func(pos components.Position, p components.Particle) {
		alpha := p.Alpha()

		color := r.food
		if p.Kind == components.ParticleCrash {
			color = r.crash
		}
		color.A = uint8(float32(color.A) * alpha)

		// Shrink as it fades
		radius := p.Size * cam.CellSize * (0.5 + 0.5*alpha)
		if radius < 0.5 {
			radius = 0.5
		}
		sx, sy := cam.PointToScreen(pos.X, pos.Y)
		rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, radius, color)
	})
}
