package components

// Position is a particle position in cell units (1.0 = one grid cell).
type Position struct {
	X, Y float32
}

// Velocity is a particle velocity in cells per second.
type Velocity struct {
	X, Y float32
}

// ParticleKind selects the tint of an effect particle.
type ParticleKind uint8

const (
	ParticleFood  ParticleKind = iota // Food eaten
	ParticleCrash                     // Game over at the head
)

// Particle holds the lifetime of an effect particle.
type Particle struct {
	Kind    ParticleKind
	Life    float32 // Seconds remaining
	MaxLife float32
	Size    float32 // Fraction of a cell
}

// Alpha returns the remaining life as a fade factor in [0, 1].
func (p Particle) Alpha() float32 {
	if p.MaxLife <= 0 || p.Life <= 0 {
		return 0
	}
	if p.Life >= p.MaxLife {
		return 1
	}
	return p.Life / p.MaxLife
}
