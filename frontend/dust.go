package frontend

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	dustCount     = 90
	dustBaseSpeed = 40.0 // pixels per second for the nearest layer
)

// dust is a single background star
type dust struct {
	x, y  float64
	speed float64 // 0.2 to 1, far stars drift slower
	size  float64
}

// Starfield drifts dust down the scene for a parallax background
type Starfield struct {
	dust          []dust
	width, height float64
	rng           *rand.Rand
}

// NewStarfield scatters dust over a scene
func NewStarfield(width, height float64, rng *rand.Rand) *Starfield {
	s := &Starfield{
		dust:   make([]dust, dustCount),
		width:  width,
		height: height,
		rng:    rng,
	}
	for i := range s.dust {
		speed := 0.2 + rng.Float64()*0.8
		s.dust[i] = dust{
			x:     rng.Float64() * width,
			y:     rng.Float64() * height,
			speed: speed,
			size:  0.6 + speed*1.4,
		}
	}
	return s
}

// Update moves the dust, stars leaving the bottom wrap to the top at a new column
func (s *Starfield) Update(dt float64) {
	for i := range s.dust {
		d := &s.dust[i]
		d.y += dustBaseSpeed * d.speed * dt
		if d.y > s.height {
			d.y -= s.height
			d.x = s.rng.Float64() * s.width
		}
	}
}

// Draw renders the dust, brighter for nearer stars
func (s *Starfield) Draw(screen *ebiten.Image) {
	for _, d := range s.dust {
		v := uint8(80 + 175*d.speed)
		vector.DrawFilledCircle(screen, float32(d.x), float32(d.y), float32(d.size), color.RGBA{v, v, v, 255}, true)
	}
}
