package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersects(t *testing.T) {
	a := AABB{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name string
		b    AABB
		want bool
	}{
		{"overlap", AABB{X: 5, Y: 5, W: 10, H: 10}, true},
		{"contained", AABB{X: 2, Y: 2, W: 2, H: 2}, true},
		{"touching right edge", AABB{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touching bottom edge", AABB{X: 0, Y: 10, W: 5, H: 5}, false},
		{"apart", AABB{X: 20, Y: 20, W: 5, H: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Intersects(a, tt.b))
			assert.Equal(t, tt.want, Intersects(tt.b, a))
		})
	}
}

func TestIsOffscreen(t *testing.T) {
	const w, h = 100.0, 50.0
	tests := []struct {
		name   string
		box    AABB
		margin float64
		want   bool
	}{
		{"inside", AABB{X: 10, Y: 10, W: 5, H: 5}, 0, false},
		{"straddling left", AABB{X: -3, Y: 10, W: 5, H: 5}, 0, false},
		{"touching left", AABB{X: -5, Y: 10, W: 5, H: 5}, 0, false},
		{"past left", AABB{X: -6, Y: 10, W: 5, H: 5}, 0, true},
		{"past right", AABB{X: 101, Y: 10, W: 5, H: 5}, 0, true},
		{"past top", AABB{X: 10, Y: -7, W: 5, H: 5}, 0, true},
		{"past bottom", AABB{X: 10, Y: 51, W: 5, H: 5}, 0, true},
		{"within margin", AABB{X: 150, Y: 10, W: 5, H: 5}, 100, false},
		{"beyond margin", AABB{X: 201, Y: 10, W: 5, H: 5}, 100, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOffscreen(tt.box, w, h, tt.margin))
		})
	}
}

func TestPointOffscreen(t *testing.T) {
	assert.False(t, PointOffscreen(0, 0, 100, 50))
	assert.False(t, PointOffscreen(100, 50, 100, 50))
	assert.True(t, PointOffscreen(-0.1, 10, 100, 50))
	assert.True(t, PointOffscreen(10, 50.1, 100, 50))
}

func TestCollidesSkipsMissingVisual(t *testing.T) {
	stage := NewStage(100, 100)
	a := stage.CreateVisual(Sprite{Kind: SpritePlayer, Scale: 0.8}, Position{X: 50, Y: 50}, TagPlayer)
	b := stage.CreateVisual(Sprite{Kind: SpriteLaser, Scale: 0.25}, Position{X: 50, Y: 50}, TagEnemyLaser)
	assert.True(t, collides(stage, a, b))

	stage.RemoveVisual(b)
	assert.False(t, collides(stage, a, b))
	_, ok := firstHit(stage, a, TagEnemyLaser)
	assert.False(t, ok)
}
