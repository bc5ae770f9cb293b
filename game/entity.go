package game

import (
	"math"
	"time"
)

// Position is a center point plus the visual rotation. Angle 0 points up.
type Position struct {
	X, Y  float64
	Angle float64
}

// Advance returns the position moved by speed along angle
func (p Position) Advance(angle, speed float64) Position {
	p.X += math.Cos(angle-math.Pi/2) * speed
	p.Y += math.Sin(angle-math.Pi/2) * speed
	return p
}

// AngleTo returns the rotation that faces (x, y)
func (p Position) AngleTo(x, y float64) float64 {
	return math.Atan2(y-p.Y, x-p.X) + math.Pi/2
}

// EntityKind identifies the type of entity
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindEnemy
	KindMeteorite
	KindLaser
	KindCollectable
	KindExplosion
	kindCount
)

// String returns the kind name
func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindMeteorite:
		return "meteorite"
	case KindLaser:
		return "laser"
	case KindCollectable:
		return "collectable"
	case KindExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// Entity is the capability set every simulated object provides
type Entity interface {
	// Update runs one tick of movement, off-screen and collision rules
	Update(now time.Time)

	// Finish ends the entity, only the first call has an effect
	Finish()

	Finished() bool
	Kind() EntityKind
	Core() *Body
}

// Body is the state shared by all entities
type Body struct {
	// Handle into the world arena, set on spawn
	Handle Handle

	// Visual in the scene
	Visual VisualID

	Pos Position
	Tag Tag

	ctx      *Context
	finished bool
	subs     []Subscription
}

// newBody creates a body and its visual
func newBody(ctx *Context, sprite Sprite, pos Position, tag Tag) Body {
	return Body{
		Visual: ctx.Scene.CreateVisual(sprite, pos, tag),
		Pos:    pos,
		Tag:    tag,
		ctx:    ctx,
	}
}

// Core returns the shared state, promoted to every entity embedding Body
func (b *Body) Core() *Body {
	return b
}

// Finished reports whether the entity has ended
func (b *Body) Finished() bool {
	return b.finished
}

// Bounds returns the visual's box, ok is false once the visual is gone
func (b *Body) Bounds() (AABB, bool) {
	return b.ctx.Scene.BoundsOf(b.Visual)
}

// subscribe registers a bus handler released on finish
func (b *Body) subscribe(action Action, handler Handler) {
	b.subs = append(b.subs, b.ctx.Bus.Subscribe(action, handler))
}

// sync pushes position and rotation to the visual
func (b *Body) sync() {
	b.ctx.Scene.SetPosition(b.Visual, b.Pos.X, b.Pos.Y)
	b.ctx.Scene.SetRotation(b.Visual, b.Pos.Angle)
}

// finish marks the body finished and runs the shared teardown once.
// It returns false when the body was already finished.
func (b *Body) finish() bool {
	if b.finished {
		return false
	}
	b.finished = true
	for _, sub := range b.subs {
		b.ctx.Bus.Unsubscribe(sub)
	}
	b.subs = nil
	b.ctx.Scene.RemoveVisual(b.Visual)
	return true
}

// removeVisual detaches another entity's visual, used for laser hits
func (b *Body) removeVisual(id VisualID) {
	b.ctx.Scene.RemoveVisual(id)
}
