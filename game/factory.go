package game

// Factory builds entities, creates their visuals and registers them in the world
type Factory struct {
	ctx *Context
}

// NewFactory creates a factory bound to ctx
func NewFactory(ctx *Context) *Factory {
	return &Factory{ctx: ctx}
}

// SpawnPlayer creates a fresh player at the start position with the starting laser level
func (f *Factory) SpawnPlayer() *Player {
	cfg := f.ctx.Config
	pos := Position{X: cfg.Player.StartX, Y: cfg.Player.StartY}
	p := newPlayer(f.ctx, pos, cfg.Stats.StartingLaserLevel)
	f.ctx.World.Spawn(p)
	return p
}

// SpawnEnemy creates an enemy at pos travelling along heading
func (f *Factory) SpawnEnemy(c EnemyColor, variant EnemyVariant, pos Position, heading float64) *Enemy {
	e := newEnemy(f.ctx, c, variant, pos, heading)
	f.ctx.World.Spawn(e)
	return e
}

// SpawnMeteorite creates a meteorite at pos travelling along pos.Angle
func (f *Factory) SpawnMeteorite(c MeteoriteColor, size MeteoriteSize, pos Position) *Meteorite {
	m := newMeteorite(f.ctx, c, size, pos)
	f.ctx.World.Spawn(m)
	return m
}

// SpawnLaser creates a laser travelling along pos.Angle
func (f *Factory) SpawnLaser(origin LaserOrigin, c LaserColor, pos Position, playSound bool) *Laser {
	l := newLaser(f.ctx, origin, c, pos)
	f.ctx.World.Spawn(l)
	if playSound {
		f.ctx.Audio.Play(EffectLaser)
	}
	return l
}

// SpawnCollectable creates a stationary pickup at (x, y)
func (f *Factory) SpawnCollectable(t CollectableType, x, y float64) *Collectable {
	c := newCollectable(f.ctx, t, Position{X: x, Y: y})
	f.ctx.World.Spawn(c)
	return c
}

// SpawnExplosion starts an explosion animation at pos
func (f *Factory) SpawnExplosion(pos Position, scale float64, playSound bool) *Explosion {
	if scale <= 0 {
		scale = 1
	}
	e := newExplosion(f.ctx, Position{X: pos.X, Y: pos.Y}, scale)
	f.ctx.World.Spawn(e)
	if playSound {
		f.ctx.Audio.Play(EffectExplosion)
	}
	return e
}

// SpawnShield creates the shield visual, its owner moves and removes it
func (f *Factory) SpawnShield(x, y float64) VisualID {
	return f.ctx.Scene.CreateVisual(Sprite{Kind: SpriteShield, Scale: 1}, Position{X: x, Y: y}, TagShield)
}
