package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// enemySpawnerFor builds an enemy spawner over a quiet session with its own seed
func enemySpawnerFor(t *testing.T, seed int64, cfg Config) (*harness, *EnemySpawner) {
	h := newHarness(t, quietConfig())
	rng := rand.New(rand.NewSource(seed))
	h.ctx.Rand = rng
	h.ctx.Intervals = NewIntervalGenerator(rng)
	h.ctx.Config.Spawner = cfg.Spawner
	return h, NewEnemySpawner(h.ctx)
}

func TestEnemySpawnerRate(t *testing.T) {
	cfg := quietConfig()
	cfg.Spawner.EnemyIntensity = 20

	const seeds = 100
	total := 0
	for seed := int64(1); seed <= seeds; seed++ {
		h, es := enemySpawnerFor(t, seed, cfg)
		for i := 0; i < 1000; i++ {
			h.advance(h.ctx.Config.TickDuration())
			es.Update(h.clock.Now())
		}
		total += es.Spawned
	}
	mean := float64(total) / seeds
	// about 6.5 expected over 16.7s at a 2.64s mean wait
	assert.GreaterOrEqual(t, mean, 5.0)
	assert.LessOrEqual(t, mean, 8.0)
}

func TestEnemySpawnerPlacesEnemiesOffscreen(t *testing.T) {
	cfg := quietConfig()
	cfg.Spawner.EnemyIntensity = 600
	h, es := enemySpawnerFor(t, 3, cfg)
	for i := 0; i < 300; i++ {
		h.advance(h.ctx.Config.TickDuration())
		es.Update(h.clock.Now())
	}
	require.Positive(t, es.Spawned)

	sw, sh := h.stage.Size()
	screen := AABB{X: 1e-6, Y: 1e-6, W: sw - 2e-6, H: sh - 2e-6}
	h.ctx.World.Each(func(e Entity) {
		enemy, ok := e.(*Enemy)
		if !ok {
			return
		}
		box, _ := enemy.Bounds()
		assert.False(t, Intersects(box, screen))
		assert.True(t, enemy.Color >= EnemyRed && enemy.Color < enemyColorCount)
		assert.True(t, enemy.Variant >= EnemySmall && enemy.Variant < enemyVariantCount)
	})
	assert.Equal(t, es.Spawned, h.ctx.World.Count(KindEnemy))
}

func TestEnemySpawnerRamp(t *testing.T) {
	cfg := quietConfig()
	cfg.Spawner.EnemyIntensity = 20
	cfg.Spawner.DifficultyInterval = 10
	cfg.Spawner.DifficultyMultiplier = 1.1
	h, es := enemySpawnerFor(t, 1, cfg)

	tick := h.ctx.Config.TickDuration()
	for i := 0; i < 660; i++ {
		h.advance(tick)
		es.Update(h.clock.Now())
	}
	assert.Equal(t, 1, es.Ramps)
	assert.InDelta(t, 22, es.Intensity, 1e-9)

	for i := 0; i < 600; i++ {
		h.advance(tick)
		es.Update(h.clock.Now())
	}
	assert.Equal(t, 2, es.Ramps)
	assert.InDelta(t, 24.2, es.Intensity, 1e-9)
}

func TestEnemySpawnerRampCap(t *testing.T) {
	cfg := quietConfig()
	cfg.Spawner.EnemyIntensity = 20
	cfg.Spawner.DifficultyInterval = 1
	cfg.Spawner.DifficultyMultiplier = 2
	cfg.Spawner.DifficultyMaxIntensity = 50
	h, es := enemySpawnerFor(t, 1, cfg)

	for i := 0; i < 600; i++ {
		h.advance(h.ctx.Config.TickDuration())
		es.Update(h.clock.Now())
	}
	assert.Equal(t, 50.0, es.Intensity)
}

func TestSpawnerHighIntensitySpawnsEveryTick(t *testing.T) {
	h := newHarness(t, quietConfig())
	count := 0
	s := NewSpawner(h.ctx, 1e9, func(time.Time) { count++ })
	for i := 0; i < 10; i++ {
		h.advance(h.ctx.Config.TickDuration())
		s.Update(h.clock.Now())
	}
	assert.Equal(t, 10, count)
	assert.Equal(t, 10, s.Spawned)
}

func TestSpawnerZeroIntensityNeverSpawns(t *testing.T) {
	h := newHarness(t, quietConfig())
	s := NewSpawner(h.ctx, 0, func(time.Time) { t.Fatal("spawned") })
	for i := 0; i < 100; i++ {
		h.advance(h.ctx.Config.TickDuration())
		s.Update(h.clock.Now())
	}
	assert.Equal(t, 0, s.Spawned)
}

func TestMeteoriteSpawnerSpawnsMeteorites(t *testing.T) {
	h := newHarness(t, quietConfig())
	h.ctx.Config.Spawner.MeteoriteIntensity = 600
	s := NewMeteoriteSpawner(h.ctx)
	for i := 0; i < 300; i++ {
		h.advance(h.ctx.Config.TickDuration())
		s.Update(h.clock.Now())
	}
	require.Positive(t, s.Spawned)
	assert.Len(t, h.meteorites(), s.Spawned)
}
