package frontend

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"warped/game"
)

// Particle represents a single particle in a particle system
type Particle struct {
	x, y     float64
	vx, vy   float64
	age      float64 // age in seconds
	lifetime float64 // total lifetime in seconds
	color    color.RGBA
	size     float64
}

// IsAlive returns true if the particle is still alive
func (p *Particle) IsAlive() bool {
	return p.age < p.lifetime
}

// ParticleSystem emits exhaust behind the player while it moves. It reads
// the player's visual from the stage and never touches the simulation.
type ParticleSystem struct {
	particles     []Particle
	maxParticles  int
	emissionRate  float64 // particles per second
	emissionTimer float64 // time since last emission
	velocityMin   float64
	velocityMax   float64
	spreadAngle   float64 // half-angle in radians
	lifetimeMin   float64
	lifetimeMax   float64
	sizeMin       float64
	sizeMax       float64
	colorBase     color.RGBA

	// Player position on the previous update
	lastX, lastY float64
	tracking     bool

	rng *rand.Rand
}

// NewExhaustSystem creates the player's exhaust trail
func NewExhaustSystem(rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		maxParticles: 80,
		emissionRate: 90,
		velocityMin:  60,
		velocityMax:  140,
		spreadAngle:  math.Pi / 8,
		lifetimeMin:  0.15,
		lifetimeMax:  0.4,
		sizeMin:      1.5,
		sizeMax:      3.5,
		colorBase:    color.RGBA{R: 255, G: 190, B: 60, A: 255},
		rng:          rng,
	}
}

// Update follows the player visual and emits against its direction of travel
func (ps *ParticleSystem) Update(dt float64, stage *game.Stage) {
	var player *game.Visual
	if ids := stage.FindByTag(game.TagPlayer); len(ids) > 0 {
		player, _ = stage.Visual(ids[0])
	}

	if player != nil && ps.tracking {
		dx, dy := player.X-ps.lastX, player.Y-ps.lastY
		if moved := math.Hypot(dx, dy); moved > 0 && moved < player.W {
			// Exhaust leaves opposite to the motion, from the ship's rear edge
			back := math.Atan2(-dy, -dx)
			ps.emit(dt, player.X+math.Cos(back)*player.W/3, player.Y+math.Sin(back)*player.H/3, back)
		} else {
			ps.emissionTimer = 0
		}
	}
	if player != nil {
		ps.lastX, ps.lastY = player.X, player.Y
	}
	ps.tracking = player != nil

	for i := len(ps.particles) - 1; i >= 0; i-- {
		p := &ps.particles[i]
		p.age += dt
		p.x += p.vx * dt
		p.y += p.vy * dt

		// Remove dead particles
		if !p.IsAlive() {
			ps.particles = append(ps.particles[:i], ps.particles[i+1:]...)
		}
	}
}

// emit adds the particles due for dt at (x, y) heading along angle
func (ps *ParticleSystem) emit(dt, x, y, angle float64) {
	ps.emissionTimer += dt
	count := int(ps.emissionRate * ps.emissionTimer)
	if count <= 0 {
		return
	}
	ps.emissionTimer -= float64(count) / ps.emissionRate

	for i := 0; i < count && len(ps.particles) < ps.maxParticles; i++ {
		a := angle + (ps.rng.Float64()-0.5)*ps.spreadAngle*2
		speed := ps.velocityMin + ps.rng.Float64()*(ps.velocityMax-ps.velocityMin)
		ps.particles = append(ps.particles, Particle{
			x:        x,
			y:        y,
			vx:       math.Cos(a) * speed,
			vy:       math.Sin(a) * speed,
			lifetime: ps.lifetimeMin + ps.rng.Float64()*(ps.lifetimeMax-ps.lifetimeMin),
			color:    ps.colorBase,
			size:     ps.sizeMin + ps.rng.Float64()*(ps.sizeMax-ps.sizeMin),
		})
	}
}

// Draw renders all particles, fading with age
func (ps *ParticleSystem) Draw(screen *ebiten.Image) {
	for _, p := range ps.particles {
		alpha := 0.6 * math.Max(0, 1-p.age/p.lifetime)
		vector.DrawFilledCircle(screen, float32(p.x), float32(p.y), float32(p.size), fade(p.color, alpha), true)
	}
}

// Reset drops all particles, used between sessions
func (ps *ParticleSystem) Reset() {
	ps.particles = ps.particles[:0]
	ps.emissionTimer = 0
	ps.tracking = false
}
