package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"
	"golang.org/x/exp/rand"

	"github.com/pthm-cable/snake/components"
)

// ParticleParams configures burst particles.
type ParticleParams struct {
	Max      int     // Live particle cap
	Lifetime float32 // Seconds
	Speed    float32 // Cells per second at emission
	Drag     float32 // Velocity decay per second
	Size     float32 // Fraction of a cell
}

// ParticleSystem manages effect particles for visual feedback.
// Particles live in their own ECS world and never touch game state.
type ParticleSystem struct {
	world  *ecs.World
	mapper *ecs.Map3[components.Position, components.Velocity, components.Particle]
	filter *ecs.Filter3[components.Position, components.Velocity, components.Particle]

	params ParticleParams
	rng    *rand.Rand
	count  int
	dead   []ecs.Entity
}

// NewParticleSystem creates a new particle system.
func NewParticleSystem(seed uint64, params ParticleParams) *ParticleSystem {
	if params.Max < 1 {
		params.Max = 256
	}
	world := ecs.NewWorld()
	return &ParticleSystem{
		world:  world,
		mapper: ecs.NewMap3[components.Position, components.Velocity, components.Particle](world),
		filter: ecs.NewFilter3[components.Position, components.Velocity, components.Particle](world),
		params: params,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Burst emits up to n particles from (x, y) in cell units, spread evenly
// around the circle with some jitter. Returns the number emitted.
func (s *ParticleSystem) Burst(x, y float32, n int, kind components.ParticleKind) int {
	emitted := 0
	for i := 0; i < n && s.count < s.params.Max; i++ {
		angle := (float64(i) + s.rng.Float64()*0.5) / float64(n) * 2 * math.Pi
		speed := s.params.Speed * (0.5 + s.rng.Float32())

		pos := components.Position{X: x, Y: y}
		vel := components.Velocity{
			X: float32(math.Cos(angle)) * speed,
			Y: float32(math.Sin(angle)) * speed,
		}
		life := s.params.Lifetime * (0.75 + 0.5*s.rng.Float32())
		p := components.Particle{Kind: kind, Life: life, MaxLife: life, Size: s.params.Size}

		s.mapper.NewEntity(&pos, &vel, &p)
		s.count++
		emitted++
	}
	return emitted
}

// Update advances all particles by dt seconds and removes expired ones.
func (s *ParticleSystem) Update(dt float32) {
	if s.count == 0 || dt <= 0 {
		return
	}
	decay := float32(math.Exp(-float64(s.params.Drag * dt)))

	s.dead = s.dead[:0]
	query := s.filter.Query()
	for query.Next() {
		pos, vel, p := query.Get()

		p.Life -= dt
		if p.Life <= 0 {
			s.dead = append(s.dead, query.Entity())
			continue
		}

		pos.X += vel.X * dt
		pos.Y += vel.Y * dt
		vel.X *= decay
		vel.Y *= decay
	}

	// Remove outside the query
	for _, e := range s.dead {
		s.world.RemoveEntity(e)
		s.count--
	}
}

// Each calls fn for every live particle.
func (s *ParticleSystem) Each(fn func(pos components.Position, p components.Particle)) {
	if s.count == 0 {
		return
	}
	query := s.filter.Query()
	for query.Next() {
		pos, _, p := query.Get()
		fn(*pos, *p)
	}
}

// Count returns the number of live particles.
func (s *ParticleSystem) Count() int {
	return s.count
}

// Clear removes every particle.
func (s *ParticleSystem) Clear() {
	s.dead = s.dead[:0]
	query := s.filter.Query()
	for query.Next() {
		s.dead = append(s.dead, query.Entity())
	}
	for _, e := range s.dead {
		s.world.RemoveEntity(e)
	}
	s.count = 0
}
