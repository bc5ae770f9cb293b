package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectableGrantsOnce(t *testing.T) {
	h := newHarness(t, quietConfig())
	p := h.player()
	c := h.ctx.Factory.SpawnCollectable(CollectableLife, p.Pos.X, p.Pos.Y)
	h.settle()
	h.step(5)

	assert.True(t, c.Finished())
	assert.Equal(t, 1, h.countAction(ActionAddLife))
	assert.Equal(t, 4, h.session.Stats().Lives)
	assert.Equal(t, 1, h.audio.count(EffectPickup))
}

func TestCollectableTypes(t *testing.T) {
	tests := []struct {
		name   string
		t      CollectableType
		action Action
	}{
		{"life", CollectableLife, ActionAddLife},
		{"laser", CollectableLaser, ActionIncreaseLaserLevel},
		{"shield", CollectableShield, ActionShieldOn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, quietConfig())
			p := h.player()
			h.ctx.Factory.SpawnCollectable(tt.t, p.Pos.X, p.Pos.Y)
			h.settle()
			h.step(1)
			assert.Equal(t, []Action{tt.action}, h.actions())
		})
	}
}

func TestCollectableUnknownTypeFinishesSilently(t *testing.T) {
	h := newHarness(t, quietConfig())
	p := h.player()
	c := h.ctx.Factory.SpawnCollectable(CollectableType(42), p.Pos.X, p.Pos.Y)
	h.settle()
	h.step(1)

	assert.True(t, c.Finished())
	assert.Empty(t, h.msgs)
}

func TestCollectableWaitsForPlayer(t *testing.T) {
	h := newHarness(t, quietConfig())
	c := h.ctx.Factory.SpawnCollectable(CollectableLaser, 100, 100)
	h.settle()
	h.step(60)
	assert.False(t, c.Finished())
	assert.Empty(t, h.msgs)
}

func TestChooseCollectable(t *testing.T) {
	weights := DefaultConfig().Collectable.Weights()
	tests := []struct {
		u    float64
		want CollectableType
	}{
		{0, CollectableLife},
		{0.32, CollectableLife},
		{0.34, CollectableLaser},
		{0.66, CollectableLaser},
		{0.67, CollectableShield},
		{0.999, CollectableShield},
	}
	for _, tt := range tests {
		got, ok := ChooseCollectable(weights, tt.u)
		assert.True(t, ok)
		assert.Equal(t, tt.want, got, "u=%v", tt.u)
	}

	skewed := []CollectableWeight{{CollectableLife, 0}, {CollectableLaser, -4}, {CollectableShield, 1}}
	got, ok := ChooseCollectable(skewed, 0.1)
	assert.True(t, ok)
	assert.Equal(t, CollectableShield, got)

	_, ok = ChooseCollectable([]CollectableWeight{{CollectableLife, 0}}, 0.5)
	assert.False(t, ok)
}

func TestExplosionPlaysTwelveFrames(t *testing.T) {
	h := newHarness(t, quietConfig())
	e := h.ctx.Factory.SpawnExplosion(Position{X: 50, Y: 50}, 0.5, false)
	h.settle()

	h.step(23)
	assert.False(t, e.Finished())
	v, ok := h.stage.Visual(e.Visual)
	assert.True(t, ok)
	assert.Equal(t, 11, v.Frame)
	assert.Equal(t, 96.0, v.W)

	h.step(1)
	assert.True(t, e.Finished())
	assert.False(t, h.stage.Attached(e.Visual))
}
