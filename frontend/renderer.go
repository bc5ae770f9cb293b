package frontend

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"warped/game"
)

var (
	backgroundColor = color.RGBA{20, 20, 40, 255}
	playerColor     = color.RGBA{80, 170, 255, 255}
	shieldColor     = color.RGBA{90, 230, 230, 255}
	explosionColor  = color.RGBA{255, 170, 60, 255}
	heartColor      = color.RGBA{230, 60, 90, 255}
	heartOffColor   = color.RGBA{70, 50, 70, 255}
	boundsColor     = color.RGBA{0, 255, 0, 255}
)

// Renderer draws the stage and the HUD. The layout matches the scene, so
// scene coordinates are screen coordinates.
type Renderer struct {
	stage *game.Stage
	hud   *game.ScreenHUD
	face  text.Face

	starfield *Starfield
	exhaust   *ParticleSystem
}

// NewRenderer creates a renderer for a stage and its HUD
func NewRenderer(stage *game.Stage, hud *game.ScreenHUD) *Renderer {
	w, h := stage.Size()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Renderer{
		stage:     stage,
		hud:       hud,
		face:      text.NewGoXFace(basicfont.Face7x13),
		starfield: NewStarfield(w, h, rng),
		exhaust:   NewExhaustSystem(rng),
	}
}

// Update advances the decorations that live outside the simulation
func (r *Renderer) Update(dt float64) {
	r.starfield.Update(dt)
	r.exhaust.Update(dt, r.stage)
}

// Reset clears per-session decorations
func (r *Renderer) Reset() {
	r.exhaust.Reset()
}

// Render draws the background, all visuals in creation order, then the HUD
func (r *Renderer) Render(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	r.starfield.Draw(screen)
	r.exhaust.Draw(screen)

	debug := GetDebugState()
	for _, v := range r.stage.Visuals() {
		r.RenderVisual(screen, v)
		if debug.ShowBounds {
			b := v.Bounds()
			vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, boundsColor, false)
		}
	}
	r.drawRadar(screen)
	r.renderHUD(screen)

	if debug.ShowCounts {
		y := 10
		for tag := game.TagPlayer; tag <= game.TagShield; tag++ {
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%-12s %d", tag, r.stage.CountByTag(tag)), 10, y)
			y += 16
		}
	}
}

// RenderVisual draws a single visual as vector shapes
func (r *Renderer) RenderVisual(screen *ebiten.Image, v *game.Visual) {
	if v.Alpha <= 0 {
		return
	}
	x, y := float32(v.X), float32(v.Y)
	radius := float32(math.Min(v.W, v.H) / 2)

	switch v.Sprite.Kind {
	case game.SpritePlayer:
		clr := fade(playerColor, v.Alpha)
		vector.DrawFilledCircle(screen, x, y, radius*0.8, clr, true)
		r.renderNose(screen, v, float64(radius)*1.2, clr)

	case game.SpriteEnemy:
		c, _ := game.EnemySpriteParts(v.Sprite.Variant)
		clr := fade(game.GetEnemyColorConfig(c).RGBA, v.Alpha)
		vector.DrawFilledCircle(screen, x, y, radius*0.8, clr, true)
		r.renderNose(screen, v, float64(radius)*1.2, clr)

	case game.SpriteMeteorite:
		clr := fade(game.GetMeteoriteColor(game.MeteoriteColor(v.Sprite.Variant)), v.Alpha)
		vector.DrawFilledCircle(screen, x, y, radius, clr, true)

	case game.SpriteLaser:
		// Lasers are long and thin, draw a bolt along the rotation
		half := v.H / 2
		dx, dy := game.Velocity(v.Rotation, half)
		clr := fade(game.GetLaserColor(game.LaserColor(v.Sprite.Variant)), v.Alpha)
		vector.StrokeLine(screen, float32(v.X-dx), float32(v.Y-dy), float32(v.X+dx), float32(v.Y+dy), float32(v.W/3), clr, true)

	case game.SpriteCollectable:
		clr := fade(game.GetCollectableTypeConfig(game.CollectableType(v.Sprite.Variant)).RGBA, v.Alpha)
		vector.StrokeCircle(screen, x, y, radius, 3, clr, true)
		vector.DrawFilledCircle(screen, x, y, radius*0.5, clr, true)

	case game.SpriteExplosion:
		// Frames grow the blast and fade it out
		t := float64(v.Frame+1) / float64(game.ExplosionFrames)
		clr := fade(explosionColor, v.Alpha*(1-t*0.8))
		vector.DrawFilledCircle(screen, x, y, radius*float32(0.3+0.7*t), clr, true)

	case game.SpriteShield:
		vector.StrokeCircle(screen, x, y, radius, 3, fade(shieldColor, v.Alpha*0.8), true)
	}
}

// renderNose draws the facing direction indicator
func (r *Renderer) renderNose(screen *ebiten.Image, v *game.Visual, length float64, clr color.Color) {
	dx, dy := game.Velocity(v.Rotation, length)
	vector.StrokeLine(screen, float32(v.X), float32(v.Y), float32(v.X+dx), float32(v.Y+dy), 3, clr, true)
}

// renderHUD draws hearts bottom right, the score bottom left and the game over banner
func (r *Renderer) renderHUD(screen *ebiten.Image) {
	w, h := r.stage.Size()

	const heartRadius, heartGap = 10, 8
	for i := range r.hud.Lives {
		clr := heartOffColor
		if r.hud.Lives[i] {
			clr = heartColor
		}
		cx := w - 30 - float64(len(r.hud.Lives)-1-i)*(2*heartRadius+heartGap)
		vector.DrawFilledCircle(screen, float32(cx), float32(h-30), heartRadius, clr, true)
	}

	r.drawText(screen, fmt.Sprintf("SCORE %d", r.hud.Score), 30, h-40, 2, text.AlignStart, color.White)

	if r.hud.Over {
		r.drawText(screen, "GAME OVER", w/2, h/2-60, 6, text.AlignCenter, color.White)
		r.drawText(screen, fmt.Sprintf("FINAL SCORE %d", r.hud.FinalScore), w/2, h/2+30, 3, text.AlignCenter, color.White)
		r.drawText(screen, "PRESS ENTER TO PLAY AGAIN", w/2, h/2+90, 2, text.AlignCenter, color.Gray{Y: 180})
	}
}

// RenderTitle draws the title screen
func (r *Renderer) RenderTitle(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	r.starfield.Draw(screen)
	w, h := r.stage.Size()
	r.drawText(screen, "WARPED", w/2, h/2-80, 8, text.AlignCenter, playerColor)
	r.drawText(screen, "PRESS ENTER TO START", w/2, h/2+30, 3, text.AlignCenter, color.White)
	r.drawText(screen, "ARROWS OR WASD TO MOVE, MOUSE TO AIM AND FIRE, ESC TO QUIT", w/2, h/2+90, 2, text.AlignCenter, color.Gray{Y: 180})
}

// drawText draws a scaled line of text anchored at (x, y)
func (r *Renderer) drawText(screen *ebiten.Image, s string, x, y, scale float64, align text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(screen, s, r.face, op)
}

// fade scales a color by alpha, ebiten colors are premultiplied
func fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha < 0 {
		alpha = 0
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
