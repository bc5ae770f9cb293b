package game

import "time"

// Updater is anything driven once per tick
type Updater interface {
	Update(now time.Time)
}

// Spawner fires a spawn action at normally distributed intervals
type Spawner struct {
	// Intensity is the target spawns per minute
	Intensity float64

	// Spawned counts completed spawns
	Spawned int

	ctx       *Context
	nextSpawn time.Time
	spawn     func(now time.Time)
}

// NewSpawner creates a spawner and schedules its first spawn
func NewSpawner(ctx *Context, intensity float64, spawn func(now time.Time)) *Spawner {
	s := &Spawner{
		Intensity: intensity,
		ctx:       ctx,
		spawn:     spawn,
	}
	s.nextSpawn = ctx.Clock.Now().Add(ctx.Intervals.Normal(intensity))
	return s
}

// Update spawns once the deadline is due and schedules the next one
func (s *Spawner) Update(now time.Time) {
	if now.Before(s.nextSpawn) {
		return
	}
	s.nextSpawn = now.Add(s.ctx.Intervals.Normal(s.Intensity))
	s.spawn(now)
	s.Spawned++
}

// NextSpawn returns the current deadline
func (s *Spawner) NextSpawn() time.Time {
	return s.nextSpawn
}

// EnemySpawner spawns enemies on the perimeter and raises its intensity over time
type EnemySpawner struct {
	*Spawner

	// Ramps counts difficulty increases
	Ramps int

	lastRamp time.Time
}

// NewEnemySpawner creates the enemy spawner with the configured starting intensity
func NewEnemySpawner(ctx *Context) *EnemySpawner {
	es := &EnemySpawner{lastRamp: ctx.Clock.Now()}
	es.Spawner = NewSpawner(ctx, ctx.Config.Spawner.EnemyIntensity, es.spawnEnemy)
	return es
}

// Update spawns when due and applies the difficulty ramp
func (es *EnemySpawner) Update(now time.Time) {
	es.Spawner.Update(now)

	cfg := es.ctx.Config.Spawner
	if cfg.DifficultyInterval <= 0 || !now.After(es.lastRamp.Add(Seconds(cfg.DifficultyInterval))) {
		return
	}
	es.lastRamp = now
	es.Intensity *= cfg.DifficultyMultiplier
	if cfg.DifficultyMaxIntensity > 0 && es.Intensity > cfg.DifficultyMaxIntensity {
		es.Intensity = cfg.DifficultyMaxIntensity
	}
	es.Ramps++
	if es.ctx.Logger != nil {
		es.ctx.Logger.Printf("difficulty ramp %d: enemy intensity %.2f/min", es.Ramps, es.Intensity)
	}
}

// spawnEnemy places a random enemy on the perimeter heading for the player
func (es *EnemySpawner) spawnEnemy(now time.Time) {
	ctx := es.ctx
	c := EnemyColor(ctx.Rand.Intn(int(enemyColorCount)))
	variant := EnemyVariant(ctx.Rand.Intn(int(enemyVariantCount)))

	sw, sh := ctx.Scene.Size()
	w, h := ctx.Scene.Footprint(enemySprite(c, variant))
	pos, _ := RandomPerimeterPoint(ctx.Rand, sw, sh, w, h)

	heading := pos.Angle
	if player := ctx.World.Player(); player != nil {
		heading = pos.AngleTo(player.Pos.X, player.Pos.Y)
	}
	pos.Angle = heading
	ctx.Factory.SpawnEnemy(c, variant, pos, heading)
}

// NewMeteoriteSpawner creates the meteorite spawner, it has no ramp
func NewMeteoriteSpawner(ctx *Context) *Spawner {
	return NewSpawner(ctx, ctx.Config.Spawner.MeteoriteIntensity, func(now time.Time) {
		c := MeteoriteColor(ctx.Rand.Intn(int(meteoriteColorCount)))
		size := MeteoriteSize(ctx.Rand.Intn(int(meteoriteSizeCount)))

		sw, sh := ctx.Scene.Size()
		sprite := Sprite{Kind: SpriteMeteorite, Variant: int(c), Scale: GetMeteoriteSizeConfig(size).Scale}
		w, h := ctx.Scene.Footprint(sprite)
		pos, _ := RandomPerimeterPoint(ctx.Rand, sw, sh, w, h)
		ctx.Factory.SpawnMeteorite(c, size, pos)
	})
}

// NewCollectableSpawner creates a spawner dropping random pickups anywhere on screen
func NewCollectableSpawner(ctx *Context) *Spawner {
	return NewSpawner(ctx, ctx.Config.Collectable.SpawnerIntensity, func(now time.Time) {
		t := CollectableType(ctx.Rand.Intn(int(collectableTypeCount)))
		sw, sh := ctx.Scene.Size()
		ctx.Factory.SpawnCollectable(t, ctx.Rand.Float64()*sw, ctx.Rand.Float64()*sh)
	})
}
