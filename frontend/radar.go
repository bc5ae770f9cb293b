package frontend

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"warped/game"
)

const (
	radarEdgeMargin = 14.0  // Marker inset from the screen edge
	radarMarkerSize = 9.0   // Marker half length
	radarRange      = 400.0 // Markers fade out beyond this distance from the edge
)

// drawRadar marks enemies and meteorites that are still off screen with an
// arrow on the nearest edge, pointing at them.
func (r *Renderer) drawRadar(screen *ebiten.Image) {
	w, h := r.stage.Size()
	cx, cy := w/2, h/2

	for _, tag := range []game.Tag{game.TagEnemy, game.TagMeteorite} {
		for _, id := range r.stage.FindByTag(tag) {
			v, ok := r.stage.Visual(id)
			if !ok || !game.IsOffscreen(v.Bounds(), w, h, 0) {
				continue
			}

			// Clamp the direction from the center to the inset screen rectangle
			dx, dy := v.X-cx, v.Y-cy
			limitX, limitY := cx-radarEdgeMargin, cy-radarEdgeMargin
			f := math.Min(limitX/math.Max(math.Abs(dx), 1e-9), limitY/math.Max(math.Abs(dy), 1e-9))
			mx, my := cx+dx*f, cy+dy*f

			// Fade by how far beyond the edge it still is
			distance := math.Hypot(v.X-mx, v.Y-my)
			opacity := clamp(1-distance/radarRange, 0.15, 1)

			clr := markerColor(v)
			angle := math.Atan2(dy, dx)
			tipX, tipY := mx+math.Cos(angle)*radarMarkerSize, my+math.Sin(angle)*radarMarkerSize
			for _, side := range []float64{-2.5, 2.5} {
				bx := mx + math.Cos(angle+side)*radarMarkerSize
				by := my + math.Sin(angle+side)*radarMarkerSize
				vector.StrokeLine(screen, float32(tipX), float32(tipY), float32(bx), float32(by), 2, fade(clr, opacity), true)
			}
		}
	}
}

// markerColor matches the marker to the visual's paint
func markerColor(v *game.Visual) color.RGBA {
	if v.Sprite.Kind == game.SpriteEnemy {
		c, _ := game.EnemySpriteParts(v.Sprite.Variant)
		return game.GetEnemyColorConfig(c).RGBA
	}
	return game.GetMeteoriteColor(game.MeteoriteColor(v.Sprite.Variant))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
