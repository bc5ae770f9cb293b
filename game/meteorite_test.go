package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stillMeteoriteConfig() Config {
	cfg := quietConfig()
	cfg.Meteorite.Speed = 0
	return cfg
}

func TestMeteoriteShotShattersIntoTwoSmaller(t *testing.T) {
	h := newHarness(t, stillMeteoriteConfig())
	m := h.ctx.Factory.SpawnMeteorite(MeteoriteWhite, MeteoriteLarge, Position{X: 100, Y: 100})
	laser := h.ctx.Factory.SpawnLaser(OriginPlayer, LaserBlue, Position{X: 100, Y: 100}, false)
	h.settle()

	h.step(1)
	assert.True(t, m.Finished())
	assert.False(t, h.stage.Attached(laser.Visual))

	children := h.meteorites()
	require.Len(t, children, 2)
	angles := []float64{children[0].Pos.Angle, children[1].Pos.Angle}
	assert.ElementsMatch(t, []float64{-math.Pi / 6, math.Pi / 6}, angles)
	for _, c := range children {
		assert.Equal(t, MeteoriteMedium, c.Size)
		assert.Equal(t, MeteoriteWhite, c.Color)
		assert.Equal(t, 100.0, c.Pos.X)
		assert.Equal(t, 100.0, c.Pos.Y)
	}

	assert.Equal(t, 1, h.countAction(ActionAddScore))
	assert.Equal(t, 3, h.session.Stats().Score)
	assert.Equal(t, 1, h.ctx.World.Count(KindExplosion))
	assert.Equal(t, 1, h.audio.count(EffectExplosion))

	h.step(1)
	assert.True(t, laser.Finished())
}

func TestMeteoriteScoreAndChildrenBySize(t *testing.T) {
	tests := []struct {
		size     MeteoriteSize
		score    int
		children int
		child    MeteoriteSize
	}{
		{MeteoriteLarge, 3, 2, MeteoriteMedium},
		{MeteoriteMedium, 2, 2, MeteoriteSmall},
		{MeteoriteSmall, 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(GetMeteoriteSizeConfig(tt.size).Name, func(t *testing.T) {
			h := newHarness(t, stillMeteoriteConfig())
			h.ctx.Factory.SpawnMeteorite(MeteoriteGray, tt.size, Position{X: 300, Y: 300})
			h.ctx.Factory.SpawnLaser(OriginPlayer, LaserBlue, Position{X: 300, Y: 300}, false)
			h.settle()
			h.step(1)

			assert.Equal(t, tt.score, h.session.Stats().Score)
			children := h.meteorites()
			assert.Len(t, children, tt.children)
			for _, c := range children {
				assert.Equal(t, tt.child, c.Size)
			}
		})
	}
}

func TestMeteoriteShatterTerminates(t *testing.T) {
	h := newHarness(t, stillMeteoriteConfig())
	generation := []*Meteorite{h.ctx.Factory.SpawnMeteorite(MeteoriteWhite, MeteoriteLarge, Position{X: 500, Y: 500})}
	total := 0
	for depth := 0; len(generation) > 0; depth++ {
		require.Less(t, depth, 3)
		var next []*Meteorite
		for _, m := range generation {
			next = append(next, m.Shatter()...)
		}
		total += len(next)
		generation = next
	}
	// 2 medium, 4 small
	assert.Equal(t, 6, total)
}

func TestMeteoriteDropsCollectable(t *testing.T) {
	cfg := stillMeteoriteConfig()
	cfg.Meteorite.CollectableChance = 1
	cfg.Collectable.LifeWeight = 0
	cfg.Collectable.LaserWeight = 0
	cfg.Collectable.ShieldWeight = 5
	h := newHarness(t, cfg)
	h.ctx.Factory.SpawnMeteorite(MeteoriteWhite, MeteoriteSmall, Position{X: 300, Y: 300})
	h.ctx.Factory.SpawnLaser(OriginPlayer, LaserBlue, Position{X: 300, Y: 300}, false)
	h.settle()
	h.step(1)

	var drops []*Collectable
	h.ctx.World.Each(func(e Entity) {
		if c, ok := e.(*Collectable); ok {
			drops = append(drops, c)
		}
	})
	require.Len(t, drops, 1)
	assert.Equal(t, CollectableShield, drops[0].Type)
	assert.Equal(t, 300.0, drops[0].Pos.X)
	assert.Equal(t, 300.0, drops[0].Pos.Y)
}

func TestMeteoriteHitsPlayer(t *testing.T) {
	h := newHarness(t, stillMeteoriteConfig())
	old := h.player()
	m := h.ctx.Factory.SpawnMeteorite(MeteoriteWhite, MeteoriteMedium, Position{X: old.Pos.X, Y: old.Pos.Y})
	h.settle()
	h.step(1)

	assert.True(t, m.Finished())
	assert.True(t, old.Finished())
	assert.False(t, h.stage.Attached(old.Visual))

	fresh := h.player()
	require.NotNil(t, fresh)
	assert.NotSame(t, old, fresh)
	assert.Equal(t, h.ctx.Config.Player.StartX, fresh.Pos.X)

	st := h.session.Stats()
	assert.Equal(t, 2, st.Lives)
	assert.True(t, st.Immortal)
	assert.Equal(t, []Action{ActionImmortalityOn, ActionRemoveLife}, h.actions())

	// contact shatters too
	assert.Len(t, h.meteorites(), 2)
	assert.Equal(t, 0, st.Score)
}

func TestMeteoriteHitsImmortalPlayer(t *testing.T) {
	h := newHarness(t, stillMeteoriteConfig())
	h.ctx.Bus.Send(ActionImmortalityOn)
	h.msgs = nil

	p := h.player()
	m := h.ctx.Factory.SpawnMeteorite(MeteoriteWhite, MeteoriteLarge, Position{X: p.Pos.X, Y: p.Pos.Y})
	h.settle()
	h.step(1)

	assert.True(t, m.Finished())
	assert.False(t, p.Finished())
	assert.Same(t, p, h.player())
	assert.Equal(t, 3, h.session.Stats().Lives)
	assert.Empty(t, h.meteorites())
	assert.Empty(t, h.msgs)
}

func TestMeteoriteLeavesScreenPastMargin(t *testing.T) {
	cfg := quietConfig()
	h := newHarness(t, cfg)

	// heading left from just inside the margin
	m := h.ctx.Factory.SpawnMeteorite(MeteoriteWhite, MeteoriteSmall, Position{X: -120, Y: 300, Angle: -math.Pi / 2})
	h.settle()
	h.step(1)
	assert.False(t, m.Finished())

	h.step(10)
	assert.True(t, m.Finished())
	assert.Equal(t, 0, h.session.Stats().Score)
}
