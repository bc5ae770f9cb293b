package game

import (
	"math"
	"time"
)

// Player is the ship under input control
type Player struct {
	Body

	// LaserLevel selects the volley pattern, 1 to 3
	LaserLevel int

	// Pointer held down
	firing bool

	lastShot time.Time
	hasShot  bool

	shieldActive bool
	shieldVisual VisualID
	shieldSince  time.Time
}

// newPlayer creates a player and subscribes it to pointer and power-up messages
func newPlayer(ctx *Context, pos Position, laserLevel int) *Player {
	p := &Player{
		Body:       newBody(ctx, Sprite{Kind: SpritePlayer, Scale: 0.8}, pos, TagPlayer),
		LaserLevel: laserLevel,
	}
	p.subscribe(ActionPointerDown, func(Message) { p.firing = true })
	p.subscribe(ActionPointerUp, func(Message) { p.firing = false })
	p.subscribe(ActionPointerMove, p.onPointerMove)
	p.subscribe(ActionShieldOn, func(Message) { p.enableShield(ctx.Clock.Now()) })
	p.subscribe(ActionIncreaseLaserLevel, func(Message) {
		if p.LaserLevel < ctx.Config.Stats.MaxLaserLevel {
			p.LaserLevel++
		}
	})
	return p
}

// Kind returns KindPlayer
func (p *Player) Kind() EntityKind {
	return KindPlayer
}

// ShieldActive reports whether the shield visual is up
func (p *Player) ShieldActive() bool {
	return p.shieldActive
}

// Firing reports whether the pointer is held
func (p *Player) Firing() bool {
	return p.firing
}

// Update runs one tick: fire, move, shield, collisions
func (p *Player) Update(now time.Time) {
	if p.finished {
		return
	}
	if p.firing {
		p.shoot(now)
	}
	p.move()
	p.updateShield(now)
	p.checkCollisions()
}

// Finish removes the player's visual and its shield
func (p *Player) Finish() {
	if !p.finish() {
		return
	}
	if p.shieldActive {
		p.ctx.Scene.RemoveVisual(p.shieldVisual)
		p.shieldActive = false
		p.ctx.Bus.Send(ActionShieldOff)
	}
}

// onPointerMove turns the ship toward the pointer, no smoothing
func (p *Player) onPointerMove(msg Message) {
	p.Pos.Angle = p.Pos.AngleTo(msg.X, msg.Y)
	p.ctx.Scene.SetRotation(p.Visual, p.Pos.Angle)
}

// size returns the player's current footprint
func (p *Player) size() (float64, float64) {
	if box, ok := p.Bounds(); ok {
		return box.W, box.H
	}
	return p.ctx.Scene.Footprint(Sprite{Kind: SpritePlayer, Scale: 0.8})
}

// move steps in each held direction while the visual stays inside the scene
func (p *Player) move() {
	in := p.ctx.Input
	speed := p.ctx.Config.Player.Speed
	sw, sh := p.ctx.Scene.Size()
	w, h := p.size()

	if in.IsHeld(KeyLeft) && p.Pos.X-speed >= w/2 {
		p.Pos.X -= speed
	}
	if in.IsHeld(KeyUp) && p.Pos.Y-speed >= h/2 {
		p.Pos.Y -= speed
	}
	if in.IsHeld(KeyRight) && p.Pos.X+speed <= sw-w/2 {
		p.Pos.X += speed
	}
	if in.IsHeld(KeyDown) && p.Pos.Y+speed <= sh-h/2 {
		p.Pos.Y += speed
	}
	p.sync()
}

// shoot fires a volley for the current laser level once the cooldown has passed
func (p *Player) shoot(now time.Time) {
	if p.hasShot && now.Sub(p.lastShot) < Seconds(p.ctx.Config.Player.LaserCooldown) {
		return
	}
	f := p.ctx.Factory
	r := p.Pos.Angle
	switch p.LaserLevel {
	case 1:
		f.SpawnLaser(OriginPlayer, LaserBlue, p.nosePosition(0, r), true)
	case 2:
		f.SpawnLaser(OriginPlayer, LaserBlue, p.pairPosition(1, r), true)
		f.SpawnLaser(OriginPlayer, LaserBlue, p.pairPosition(-1, r), false)
	case 3:
		const theta = math.Pi / 6
		f.SpawnLaser(OriginPlayer, LaserBlue, p.pairPosition(1, r), true)
		f.SpawnLaser(OriginPlayer, LaserBlue, p.pairPosition(-1, r), false)
		f.SpawnLaser(OriginPlayer, LaserBlue, p.nosePosition(-theta, r+theta), false)
		f.SpawnLaser(OriginPlayer, LaserBlue, p.nosePosition(theta, r-theta), false)
	default:
		return
	}
	p.lastShot = now
	p.hasShot = true
}

// nosePosition returns a muzzle on the hull edge, rotated by -offset from the facing
func (p *Player) nosePosition(offset, angle float64) Position {
	w, h := p.size()
	a := p.Pos.Angle - math.Pi/2 - offset
	return Position{
		X:     p.Pos.X + math.Cos(a)*w/1.7,
		Y:     p.Pos.Y + math.Sin(a)*h/1.7,
		Angle: angle,
	}
}

// pairPosition returns the left (side=1) or right (side=-1) muzzle of the level 2 pair
func (p *Player) pairPosition(side, angle float64) Position {
	_, h := p.size()
	theta := p.Pos.Angle + math.Pi
	ox := side * p.ctx.Config.Player.SideLaserOffset
	oy := h / 1.7
	return Position{
		X:     p.Pos.X + ox*math.Cos(theta) - oy*math.Sin(theta),
		Y:     p.Pos.Y + ox*math.Sin(theta) + oy*math.Cos(theta),
		Angle: angle,
	}
}

// enableShield refreshes the activation time and raises the shield visual once
func (p *Player) enableShield(now time.Time) {
	if p.finished {
		return
	}
	p.shieldSince = now
	if !p.shieldActive {
		p.shieldVisual = p.ctx.Factory.SpawnShield(p.Pos.X, p.Pos.Y)
		p.shieldActive = true
	}
}

// updateShield keeps the shield on the ship and drops it after ShieldDuration
func (p *Player) updateShield(now time.Time) {
	if !p.shieldActive {
		return
	}
	p.ctx.Scene.SetPosition(p.shieldVisual, p.Pos.X, p.Pos.Y)
	if now.Sub(p.shieldSince) > Seconds(p.ctx.Config.Stats.ShieldDuration) {
		p.ctx.Scene.RemoveVisual(p.shieldVisual)
		p.shieldActive = false
		p.ctx.Bus.Send(ActionShieldOff)
	}
}

// checkCollisions handles enemy laser hits while not immortal
func (p *Player) checkCollisions() {
	if p.ctx.immortal() {
		return
	}
	laser, ok := firstHit(p.ctx.Scene, p.Visual, TagEnemyLaser)
	if !ok {
		return
	}
	p.removeVisual(laser)
	p.ctx.Factory.SpawnExplosion(p.Pos, 1, true)
	p.Finish()
	p.ctx.Bus.Send(ActionRemoveLife)
	p.ctx.Factory.SpawnPlayer()
	p.ctx.Bus.Send(ActionImmortalityOn)
}
