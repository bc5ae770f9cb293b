package game

import "time"

// Meteorite flies straight and shatters when shot
type Meteorite struct {
	Body

	Color MeteoriteColor
	Size  MeteoriteSize
}

// newMeteorite creates a meteorite travelling along pos.Angle
func newMeteorite(ctx *Context, c MeteoriteColor, size MeteoriteSize, pos Position) *Meteorite {
	sprite := Sprite{Kind: SpriteMeteorite, Variant: int(c), Scale: GetMeteoriteSizeConfig(size).Scale}
	return &Meteorite{
		Body:  newBody(ctx, sprite, pos, TagMeteorite),
		Color: c,
		Size:  size,
	}
}

// Kind returns KindMeteorite
func (m *Meteorite) Kind() EntityKind {
	return KindMeteorite
}

// Finish removes the meteorite's visual
func (m *Meteorite) Finish() {
	m.finish()
}

// Update moves the meteorite, drops it once clear of the screen, then collides
func (m *Meteorite) Update(now time.Time) {
	if m.finished {
		return
	}
	m.Pos = m.Pos.Advance(m.Pos.Angle, m.ctx.Config.Meteorite.Speed)
	m.sync()

	if box, ok := m.Bounds(); ok {
		w, h := m.ctx.Scene.Size()
		if IsOffscreen(box, w, h, m.ctx.Config.Meteorite.OffscreenMargin) {
			m.Finish()
			return
		}
	}
	m.checkCollisions()
}

// checkCollisions resolves player lasers, then player contact
func (m *Meteorite) checkCollisions() {
	ctx := m.ctx
	sizeCfg := GetMeteoriteSizeConfig(m.Size)

	if laser, ok := firstHit(ctx.Scene, m.Visual, TagPlayerLaser); ok {
		m.removeVisual(laser)
		m.Shatter()
		if ctx.Rand.Float64() < ctx.Config.Meteorite.CollectableChance {
			if t, ok := ChooseCollectable(ctx.Config.Collectable.Weights(), ctx.Rand.Float64()); ok {
				ctx.Factory.SpawnCollectable(t, m.Pos.X, m.Pos.Y)
			}
		}
		ctx.Factory.SpawnExplosion(m.Pos, sizeCfg.ExplosionScale, true)
		m.Finish()
		ctx.Bus.Broadcast(Message{Action: ActionAddScore, Amount: sizeCfg.Score})
		return
	}

	if player := ctx.World.Player(); player != nil && collides(ctx.Scene, m.Visual, player.Visual) {
		if !ctx.immortal() {
			ctx.Scene.RemoveVisual(player.Visual)
			ctx.Factory.SpawnExplosion(player.Pos, 1, false)
			player.Finish()
			ctx.Factory.SpawnPlayer()
			m.Shatter()
			ctx.Bus.Send(ActionImmortalityOn)
			ctx.Bus.Send(ActionRemoveLife)
		}
		ctx.Factory.SpawnExplosion(m.Pos, sizeCfg.ExplosionScale, false)
		m.Finish()
	}
}

// Shatter spawns two children of the next smaller size at ±ShatterAngle.
// A small meteorite does not shatter.
func (m *Meteorite) Shatter() []*Meteorite {
	sizeCfg := GetMeteoriteSizeConfig(m.Size)
	if !sizeCfg.CanShatter {
		return nil
	}
	delta := m.ctx.Config.Meteorite.ShatterAngle
	left := Position{X: m.Pos.X, Y: m.Pos.Y, Angle: m.Pos.Angle - delta}
	right := Position{X: m.Pos.X, Y: m.Pos.Y, Angle: m.Pos.Angle + delta}
	return []*Meteorite{
		m.ctx.Factory.SpawnMeteorite(m.Color, sizeCfg.Smaller, left),
		m.ctx.Factory.SpawnMeteorite(m.Color, sizeCfg.Smaller, right),
	}
}
