package game

import (
	"math"
	"time"
)

// Enemy drifts along a wandering heading while facing the player
type Enemy struct {
	Body

	Color   EnemyColor
	Variant EnemyVariant

	// Heading is the travel direction, independent of the facing angle
	Heading float64

	ShootingIntensity   float64
	nextShot            time.Time
	nextDirectionChange time.Time
}

// newEnemy creates an enemy and schedules its first shot and turn
func newEnemy(ctx *Context, c EnemyColor, variant EnemyVariant, pos Position, heading float64) *Enemy {
	now := ctx.Clock.Now()
	e := &Enemy{
		Body:              newBody(ctx, enemySprite(c, variant), pos, TagEnemy),
		Color:             c,
		Variant:           variant,
		Heading:           heading,
		ShootingIntensity: ctx.Config.Enemy.ShootingIntensity,
	}
	e.nextShot = now.Add(ctx.Intervals.Uniform(e.ShootingIntensity))
	e.nextDirectionChange = now.Add(ctx.Intervals.Normal(ctx.Config.Enemy.DirectionChangeIntensity))
	return e
}

// Kind returns KindEnemy
func (e *Enemy) Kind() EntityKind {
	return KindEnemy
}

// Finish removes the enemy's visual
func (e *Enemy) Finish() {
	e.finish()
}

// Update runs one tick: shoot, wander, face the player, move, collide
func (e *Enemy) Update(now time.Time) {
	if e.finished {
		return
	}
	if now.After(e.nextShot) {
		e.shoot(now)
	}
	if now.After(e.nextDirectionChange) {
		e.nextDirectionChange = now.Add(e.ctx.Intervals.Normal(e.ctx.Config.Enemy.DirectionChangeIntensity))
		e.Heading = e.ctx.Rand.Float64() * 2 * math.Pi
	}
	if player := e.ctx.World.Player(); player != nil {
		e.Pos.Angle = e.Pos.AngleTo(player.Pos.X, player.Pos.Y)
	}
	e.Pos = e.Pos.Advance(e.Heading, e.ctx.Config.Enemy.Speed)
	e.sync()
	e.checkCollisions()
}

// shoot fires one laser from the nose along the facing angle
func (e *Enemy) shoot(now time.Time) {
	box, ok := e.Bounds()
	if !ok {
		return
	}
	a := e.Pos.Angle - math.Pi/2
	pos := Position{
		X:     e.Pos.X + math.Cos(a)*box.W/1.7,
		Y:     e.Pos.Y + math.Sin(a)*box.H/1.7,
		Angle: e.Pos.Angle,
	}
	e.ctx.Factory.SpawnLaser(OriginEnemy, GetEnemyColorConfig(e.Color).Laser, pos, true)
	e.nextShot = now.Add(e.ctx.Intervals.Uniform(e.ShootingIntensity))
}

// checkCollisions resolves player lasers, player contact and leaving the screen, in that order
func (e *Enemy) checkCollisions() {
	ctx := e.ctx
	if laser, ok := firstHit(ctx.Scene, e.Visual, TagPlayerLaser); ok {
		e.removeVisual(laser)
		ctx.Bus.Broadcast(Message{Action: ActionAddScore, Amount: GetEnemyVariantConfig(e.Variant).Score})
		ctx.Factory.SpawnExplosion(e.Pos, 1, true)
		e.Finish()
		return
	}

	if player := ctx.World.Player(); player != nil && collides(ctx.Scene, e.Visual, player.Visual) {
		if !ctx.immortal() {
			ctx.Factory.SpawnExplosion(player.Pos, 1, false)
			player.Finish()
			ctx.Factory.SpawnPlayer()
			ctx.Bus.Send(ActionImmortalityOn)
			ctx.Bus.Send(ActionRemoveLife)
		}
		ctx.Factory.SpawnExplosion(e.Pos, 1, true)
		e.Finish()
		return
	}

	box, ok := e.Bounds()
	if !ok {
		return
	}
	w, h := ctx.Scene.Size()
	if IsOffscreen(box, w, h, 0) {
		e.Finish()
	}
}
