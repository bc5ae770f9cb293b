package game

import "time"

const (
	// ExplosionFrames is the length of the animation strip
	ExplosionFrames = 12

	// explosionTicksPerFrame plays the strip at half a frame per tick
	explosionTicksPerFrame = 2
)

// Explosion is a short animation that removes itself
type Explosion struct {
	Body

	Scale float64
	age   int
}

// newExplosion creates an explosion at pos
func newExplosion(ctx *Context, pos Position, scale float64) *Explosion {
	return &Explosion{
		Body:  newBody(ctx, Sprite{Kind: SpriteExplosion, Scale: scale}, pos, TagExplosion),
		Scale: scale,
	}
}

// Kind returns KindExplosion
func (e *Explosion) Kind() EntityKind {
	return KindExplosion
}

// Finish removes the explosion's visual
func (e *Explosion) Finish() {
	e.finish()
}

// Update advances the animation and finishes after the last frame
func (e *Explosion) Update(now time.Time) {
	if e.finished {
		return
	}
	e.age++
	frame := e.age / explosionTicksPerFrame
	if frame >= ExplosionFrames {
		e.Finish()
		return
	}
	e.ctx.Scene.SetFrame(e.Visual, frame)
}
