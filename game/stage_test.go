package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageTagIndex(t *testing.T) {
	s := NewStage(100, 100)
	a := s.CreateVisual(Sprite{Kind: SpriteLaser, Scale: 0.25}, Position{X: 10, Y: 10}, TagPlayerLaser)
	b := s.CreateVisual(Sprite{Kind: SpriteLaser, Scale: 0.25}, Position{X: 20, Y: 10}, TagPlayerLaser)
	c := s.CreateVisual(Sprite{Kind: SpriteLaser, Scale: 0.25}, Position{X: 30, Y: 10}, TagEnemyLaser)

	assert.Equal(t, []VisualID{a, b}, s.FindByTag(TagPlayerLaser))
	assert.Equal(t, []VisualID{c}, s.FindByTag(TagEnemyLaser))
	assert.Nil(t, s.FindByTag(TagNone))

	assert.True(t, s.RemoveVisual(a))
	assert.False(t, s.RemoveVisual(a))
	assert.Equal(t, []VisualID{b}, s.FindByTag(TagPlayerLaser))
	assert.Len(t, s.Visuals(), 2)
}

func TestStageBoundsAreCentered(t *testing.T) {
	s := NewStage(100, 100)
	id := s.CreateVisual(Sprite{Kind: SpritePlayer, Scale: 0.5}, Position{X: 50, Y: 40}, TagPlayer)

	box, ok := s.BoundsOf(id)
	require.True(t, ok)
	assert.Equal(t, AABB{X: 25, Y: 21, W: 50, H: 38}, box)

	s.SetPosition(id, 60, 40)
	box, _ = s.BoundsOf(id)
	assert.Equal(t, 35.0, box.X)

	s.RemoveVisual(id)
	_, ok = s.BoundsOf(id)
	assert.False(t, ok)
}

func TestStageEnemyFootprintByVariant(t *testing.T) {
	s := NewStage(100, 100)
	var last float64
	for v := EnemySmall; v < enemyVariantCount; v++ {
		w, _ := s.Footprint(enemySprite(EnemyYellow, v))
		assert.Greater(t, w, last)
		last = w

		c, variant := EnemySpriteParts(enemySprite(EnemyYellow, v).Variant)
		assert.Equal(t, EnemyYellow, c)
		assert.Equal(t, v, variant)
	}
}
